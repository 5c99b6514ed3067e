package engine

import (
	"runtime"

	"github.com/qub-hpc/mastiff/partition"
	"go.uber.org/zap"
)

// Config is the optional configuration surface for Compute. Every field
// has a documented default; zero-value Config is invalid (use
// DefaultConfig or the With* options).
type Config struct {
	// Threads is the number of worker goroutines fanned out per round.
	// Default: runtime.GOMAXPROCS(0) (hardware parallelism).
	Threads int

	// PartitionsPerThread is the oversubscription factor F passed to
	// partition.Build. Default: 64.
	PartitionsPerThread int

	// Validate runs msf.Validate against the computed forest before
	// returning. Default: false.
	Validate bool

	// Logger receives Debug-level round/partition/component diagnostics
	// and Error-level fatal-condition detail. Default: zap.NewNop().
	Logger *zap.Logger
}

// Option configures a Config via the functional-options pattern.
type Option func(*Config)

// WithThreads overrides the worker goroutine count.
func WithThreads(n int) Option {
	return func(c *Config) { c.Threads = n }
}

// WithPartitionsPerThread overrides the partitions-per-thread factor F.
func WithPartitionsPerThread(f int) Option {
	return func(c *Config) { c.PartitionsPerThread = f }
}

// WithValidate enables post-computation validation against the source
// graph via msf.Validate.
func WithValidate(v bool) Option {
	return func(c *Config) { c.Validate = v }
}

// WithLogger sets the zap.Logger used for round diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// DefaultConfig returns a Config with sensible defaults: Threads =
// hardware parallelism, PartitionsPerThread = 64, Validate = false, a
// no-op Logger.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Threads:             runtime.GOMAXPROCS(0),
		PartitionsPerThread: partition.DefaultPartitionsPerThread,
		Validate:            false,
		Logger:              zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Threads <= 0 {
		cfg.Threads = 1
	}
	if cfg.PartitionsPerThread <= 0 {
		cfg.PartitionsPerThread = partition.DefaultPartitionsPerThread
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}
