package dijkstra

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ComputeMany runs one independent Compute per start vertex, concurrently,
// against the same read-only graph. The result maps each start to its route
// table.
//
// At most Options.Concurrency queries run at once (NumCPU if ≤ 0). The first
// failing query cancels the ones not yet started, and its error is returned.
// ctx is checked before each query; a single query is never interrupted.
func ComputeMany(ctx context.Context, g Graph, starts []string, opts ...Option) (map[string]map[string]Route, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := resolveOptions(opts)
	cfg.Stats = nil // one Stats sink cannot serve parallel runs

	limit := cfg.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	results := make([]map[string]Route, len(starts))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)
	for i, start := range starts {
		i, start := i, start
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := newRunner(g, start, cfg, false)
			if err != nil {
				return fmt.Errorf("start %q: %w", start, err)
			}
			if err = r.process(); err != nil {
				return fmt.Errorf("start %q: %w", start, err)
			}
			results[i] = r.routes

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]map[string]Route, len(starts))
	for i, start := range starts {
		out[start] = results[i]
	}

	return out, nil
}
