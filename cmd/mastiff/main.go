package main

import (
	"fmt"
	"os"

	"github.com/qub-hpc/mastiff/csr"
	"github.com/qub-hpc/mastiff/engine"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		threads   int
		validate  bool
		verbose   bool
		symm      bool
		maxWeight uint32
	)

	cmd := &cobra.Command{
		Use:   "mastiff <graph-file>",
		Short: "Compute a minimum spanning forest with the parallel contraction engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			defer logger.Sync() //nolint:errcheck

			g, err := loadGraph(args[0], symm, maxWeight)
			if err != nil {
				return err
			}

			opts := []engine.Option{
				engine.WithValidate(validate),
				engine.WithLogger(logger),
			}
			if threads > 0 {
				opts = append(opts, engine.WithThreads(threads))
			}

			result, err := engine.Compute(g, opts...)
			if err != nil {
				return err
			}

			fmt.Printf("vertices=%d edges=%d msf_edges=%d total_weight=%d\n",
				g.N, g.M, result.Count(), result.TotalWeight())
			return nil
		},
	}

	cmd.Flags().IntVar(&threads, "threads", 0, "worker goroutines per round (default: GOMAXPROCS)")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the computed forest against the input graph")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&symm, "symmetrize", false, "treat the input as a directed edge list and symmetrize/weight it first")
	cmd.Flags().Uint32Var(&maxWeight, "max-weight", 100, "maximum edge weight assigned when --symmetrize is set")

	return cmd
}

func loadGraph(path string, symm bool, maxWeight uint32) (*csr.Graph, error) {
	if !symm {
		return loadCSR(path)
	}
	n, edges, err := loadDirectedEdgeList(path)
	if err != nil {
		return nil, err
	}
	return symmetrize(n, edges, maxWeight)
}
