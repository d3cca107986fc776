package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/graphfile"
	"github.com/katalvlaran/pathtrace/render"
)

type solveOptions struct {
	start       string
	all         bool
	output      string
	eventsFile  string
	dotDir      string
	pruning     bool
	concurrency int
	targets     []string
}

// solveReport is what solve prints for one start vertex.
type solveReport struct {
	Start       string           `json:"start"`
	Routes      []dijkstra.Route `json:"routes"`
	Unreachable []string         `json:"unreachable,omitempty"`
	Paths       []pathReport     `json:"paths,omitempty"`
}

type pathReport struct {
	Target   string   `json:"target"`
	Distance int64    `json:"distance"`
	Vertices []string `json:"vertices"`
}

func SolveCommand(opts *globalOptions) *cobra.Command {
	opt := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve GRAPH_FILE",
		Short: "Compute shortest paths from a start vertex of a YAML or JSON graph file",
		Args:  cobra.ExactArgs(1),
		RunE:  SolveFunc(opts, &opt),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opt.all && opt.start != "" {
				return errors.New("--start and --all are mutually exclusive")
			}
			if !opt.all && opt.start == "" {
				return errors.New("one of --start or --all is required")
			}
			if opt.all && (opt.eventsFile != "" || opt.dotDir != "" || len(opt.targets) > 0) {
				return errors.New("--events, --dot-dir and --path need a single --start")
			}
			if _, err := graphfile.ParseFormat(opt.output); err != nil {
				return fmt.Errorf("invalid --output: %w", err)
			}

			return nil
		},
	}
	setFlagErrorFunc(cmd)

	cmd.Flags().StringVarP(&opt.start, "start", "s", "", "vertex to compute shortest paths from")
	cmd.Flags().BoolVar(&opt.all, "all", false, "compute shortest paths from every vertex")
	cmd.Flags().StringVarP(&opt.output, "output", "o", string(graphfile.FormatYAML), "output format (yaml or json)")
	cmd.Flags().StringVar(&opt.eventsFile, "events", "", "write the relaxation event log to this .yaml or .json file")
	cmd.Flags().StringVar(&opt.dotDir, "dot-dir", "", "write one Graphviz DOT frame per relaxation event into this directory")
	cmd.Flags().BoolVar(&opt.pruning, "pruning", false, "skip queue pushes that cannot improve on an earlier candidate")
	cmd.Flags().IntVar(&opt.concurrency, "concurrency", 0, "parallel queries for --all (0 means one per CPU)")
	cmd.Flags().StringSliceVar(&opt.targets, "path", nil, "also print the shortest path to these vertices")

	return cmd
}

func SolveFunc(opts *globalOptions, opt *solveOptions) cobraFuncE {
	return handleErrors(opts, func(cmd *cobra.Command, args []string) error {
		log := opts.log.With("graph", args[0])

		g, err := graphfile.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load graph: %w", err)
		}
		log.Debugw("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())

		format, _ := graphfile.ParseFormat(opt.output)
		engineOpts := []dijkstra.Option{
			dijkstra.WithLogger(log.Desugar()),
			dijkstra.WithConcurrency(opt.concurrency),
		}
		if opt.pruning {
			engineOpts = append(engineOpts, dijkstra.WithPruning())
		}

		var reports []solveReport
		if opt.all {
			all, err := dijkstra.ComputeMany(cmd.Context(), g, g.Vertices(), engineOpts...)
			if err != nil {
				return fmt.Errorf("failed to compute shortest paths: %w", err)
			}
			for _, start := range g.Vertices() {
				reports = append(reports, newSolveReport(start, all[start]))
			}
		} else {
			report, err := solveOne(log, g, opt, engineOpts)
			if err != nil {
				return err
			}
			reports = append(reports, report)
		}

		var out interface{} = reports
		if !opt.all {
			out = reports[0]
		}
		data, err := graphfile.Marshal(out, format)
		if err != nil {
			return fmt.Errorf("failed to encode routes: %w", err)
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write routes: %w", err)
		}

		log.Infow("shortest paths computed", "starts", len(reports))

		return nil
	})
}

func solveOne(log *zap.SugaredLogger, g *core.Graph, opt *solveOptions, engineOpts []dijkstra.Option) (solveReport, error) {
	var (
		routes map[string]dijkstra.Route
		events []dijkstra.Event
		err    error
	)
	if opt.eventsFile != "" || opt.dotDir != "" {
		routes, events, err = dijkstra.ComputeWithEvents(g, opt.start, engineOpts...)
	} else {
		routes, err = dijkstra.Compute(g, opt.start, engineOpts...)
	}
	if err != nil {
		return solveReport{}, fmt.Errorf("failed to compute shortest paths: %w", err)
	}

	report := newSolveReport(opt.start, routes)
	for _, target := range opt.targets {
		path, dist, err := dijkstra.PathTo(routes, target)
		if err != nil {
			return solveReport{}, fmt.Errorf("failed to trace path to %q: %w", target, err)
		}
		report.Paths = append(report.Paths, pathReport{Target: target, Distance: dist, Vertices: path})
	}

	if opt.eventsFile != "" {
		if err := writeEvents(opt.eventsFile, events); err != nil {
			return solveReport{}, err
		}
		log.Infow("event log written", "file", opt.eventsFile, "events", len(events))
	}
	if opt.dotDir != "" {
		n, err := writeFrames(opt.dotDir, g, events)
		if err != nil {
			return solveReport{}, err
		}
		log.Infow("frames written", "dir", opt.dotDir, "frames", n)
	}

	return report, nil
}

func newSolveReport(start string, routes map[string]dijkstra.Route) solveReport {
	report := solveReport{Start: start, Routes: make([]dijkstra.Route, 0, len(routes))}
	for _, r := range routes {
		report.Routes = append(report.Routes, r)
		if !r.Reachable() {
			report.Unreachable = append(report.Unreachable, r.Node)
		}
	}
	sort.Slice(report.Routes, func(i, j int) bool { return report.Routes[i].Node < report.Routes[j].Node })
	sort.Strings(report.Unreachable)

	return report
}

func writeEvents(path string, events []dijkstra.Event) error {
	format, err := graphfile.FormatFromPath(path)
	if err != nil {
		return fmt.Errorf("invalid --events file: %w", err)
	}
	data, err := graphfile.Marshal(events, format)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}

	return nil
}

// writeFrames writes graph.dot plus frame-NNNN.dot per event and returns the frame count.
func writeFrames(dir string, g *core.Graph, events []dijkstra.Event) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create frame directory: %w", err)
	}

	base, err := render.Graph(g)
	if err != nil {
		return 0, fmt.Errorf("failed to render graph: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "graph.dot"), []byte(base), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write graph: %w", err)
	}

	frames, err := render.Frames(g, events)
	if err != nil {
		return 0, fmt.Errorf("failed to render frames: %w", err)
	}
	for i, dot := range frames {
		name := filepath.Join(dir, fmt.Sprintf("frame-%04d.dot", i))
		if err := os.WriteFile(name, []byte(dot), 0o644); err != nil {
			return 0, fmt.Errorf("failed to write frame %d: %w", i, err)
		}
	}

	return len(frames), nil
}
