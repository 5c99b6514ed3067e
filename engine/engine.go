package engine

import (
	"math"
	"sync/atomic"

	"github.com/qub-hpc/mastiff/contraction"
	"github.com/qub-hpc/mastiff/csr"
	"github.com/qub-hpc/mastiff/msf"
	"github.com/qub-hpc/mastiff/partition"
	"github.com/qub-hpc/mastiff/selector"
	"github.com/qub-hpc/mastiff/unionfind"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Compute runs the parallel Borůvka-style contraction loop to completion
// and returns the resulting MSF.
//
// Steps:
//  1. Allocate the round state: union-find, per-vertex cursor, partition
//     plan (computed once), dispatcher, and the output Result.
//  2. Repeat until a round publishes zero candidates:
//     a. Reset the dispatcher; fan Threads workers out over the partition
//     plan running selector.ScanRange (the select phase); barrier.
//     b. Reset the dispatcher again; fan Threads workers out running
//     contraction.ContractRange (the contract phase); barrier.
//  3. If cfg.Validate, run msf.Validate against the result before
//     returning.
//
// Complexity: O(m log n) total work across all rounds (each round's work
// shrinks as cursor[] advances past confirmed-dead prefixes); O(⌈log2 n⌉)
// rounds on connected inputs, fewer in practice since every round merges
// at least one component into another.
func Compute(g *csr.Graph, opts ...Option) (*msf.Result, error) {
	cfg := DefaultConfig(opts...)
	logger := cfg.Logger

	if uint64(g.N) > uint64(math.MaxInt32) || uint64(len(g.Edges)) > uint64(math.MaxUint32) {
		// A conservative OutOfMemory guard: this engine addresses vertices,
		// edge indices, and CAS-packed 32-bit fields throughout, so a
		// platform/field size mismatch is the one allocation-time failure
		// mode it can detect up front rather than corrupt memory later.
		err := fatalf("OutOfMemory", ErrOutOfMemory)
		logger.Error("graph too large", zap.Uint32("n", g.N), zap.Error(err))
		return nil, err
	}

	uf := unionfind.New(g.N)
	cursor := make([]uint32, g.N)
	result := msf.NewResult(g.N)

	plan := partition.Build(g.N, g.Offsets, cfg.Threads, cfg.PartitionsPerThread)
	dispatcher := partition.NewDispatcher(plan)

	logger.Debug("starting MASTIFF computation",
		zap.Uint32("n", g.N), zap.Uint64("m", g.M),
		zap.Int("partitions", plan.Count()), zap.Int("threads", cfg.Threads))

	round := 0
	for {
		round++

		// Select phase.
		best := selector.New(g.N)
		dispatcher.Reset()
		if err := runRound(cfg.Threads, dispatcher, plan, func(lo, hi uint32) {
			selector.ScanRange(g, uf, best, cursor, lo, hi)
		}); err != nil {
			return nil, err
		}

		// Contract phase.
		var candidates atomic.Int64
		var firstErr atomic.Pointer[error]
		dispatcher.Reset()
		if err := runRound(cfg.Threads, dispatcher, plan, func(lo, hi uint32) {
			n, cerr := contraction.ContractRange(g, uf, best, result, lo, hi)
			candidates.Add(n)
			if cerr != nil {
				firstErr.CompareAndSwap(nil, &cerr)
			}
		}); err != nil {
			return nil, err
		}
		if p := firstErr.Load(); p != nil {
			err := fatalf("OutOfMemory", *p)
			logger.Error("contraction failed", zap.Error(err))
			return nil, err
		}

		logger.Debug("round complete", zap.Int("round", round),
			zap.Int64("candidates", candidates.Load()), zap.Int("msf_edges", result.Count()))

		if candidates.Load() == 0 {
			break
		}
	}

	if cfg.Validate {
		if err := msf.Validate(g, result.Edges()); err != nil {
			logger.Error("MSF validation failed", zap.Error(err))
			return nil, fatalf("ValidationFailed", err)
		}
	}

	return result, nil
}

// runRound fans `workers` goroutines out over dispatcher, each repeatedly
// claiming a partition index and invoking work(lo, hi) on its vertex
// range, until the dispatcher is exhausted. It returns once every worker
// has returned (the round barrier).
func runRound(workers int, dispatcher *partition.Dispatcher, plan partition.Plan, work func(lo, hi uint32)) error {
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				idx, ok := dispatcher.Next()
				if !ok {
					return nil
				}
				lo, hi := plan.Range(idx)
				work(lo, hi)
			}
		})
	}
	return g.Wait()
}
