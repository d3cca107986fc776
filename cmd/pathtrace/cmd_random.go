package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/graphfile"
)

type randomOptions struct {
	nodes     int
	prob      float64
	minWeight int64
	maxWeight int64
	seed      int64
	letters   bool
}

func RandomCommand(opts *globalOptions) *cobra.Command {
	opt := randomOptions{}

	cmd := &cobra.Command{
		Use:   "random OUTPUT_FILE",
		Short: "Generate a random G(n,p) graph file with uniform integer weights",
		Args:  cobra.ExactArgs(1),
		RunE:  RandomFunc(opts, &opt),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opt.minWeight < 0 || opt.maxWeight < opt.minWeight {
				return errors.New("weights must satisfy 0 <= --min-weight <= --max-weight")
			}
			if _, err := graphfile.FormatFromPath(args[0]); err != nil {
				return err
			}

			return nil
		},
	}
	setFlagErrorFunc(cmd)

	cmd.Flags().IntVarP(&opt.nodes, "nodes", "n", 10, "number of vertices")
	cmd.Flags().Float64VarP(&opt.prob, "prob", "p", 0.4, "probability of each possible edge")
	cmd.Flags().Int64Var(&opt.minWeight, "min-weight", 3, "smallest edge weight")
	cmd.Flags().Int64Var(&opt.maxWeight, "max-weight", 7, "largest edge weight")
	cmd.Flags().Int64Var(&opt.seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&opt.letters, "letters", false, "name vertices A, B, ..., Z, AA, ... instead of 0, 1, ...")

	return cmd
}

func RandomFunc(opts *globalOptions, opt *randomOptions) cobraFuncE {
	return handleErrors(opts, func(cmd *cobra.Command, args []string) error {
		seed := opt.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log := opts.log.With("file", args[0], "seed", seed)

		bopts := []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(opt.minWeight, opt.maxWeight)),
		}
		if opt.letters {
			bopts = append(bopts, builder.WithIDScheme(builder.ExcelColumnIDFn))
		}

		g, err := builder.BuildGraph(nil, bopts, builder.RandomSparse(opt.nodes, opt.prob))
		if err != nil {
			return fmt.Errorf("failed to generate graph: %w", err)
		}
		placeOnCircle(g)

		if err := graphfile.Save(args[0], g); err != nil {
			return fmt.Errorf("failed to save graph: %w", err)
		}

		log.Infow("graph generated", "vertices", g.VertexCount(), "edges", g.EdgeCount())

		return nil
	})
}

// placeOnCircle gives every vertex a drawing position on a circle, in ID order.
func placeOnCircle(g *core.Graph) {
	ids := g.Vertices()
	radius := float64(len(ids))
	for i, id := range ids {
		angle := 2 * math.Pi * float64(i) / float64(len(ids))
		_ = g.SetMetadata(id, graphfile.PosKey, &graphfile.Position{
			X: math.Round(radius*math.Cos(angle)*100) / 100,
			Y: math.Round(radius*math.Sin(angle)*100) / 100,
		})
	}
}
