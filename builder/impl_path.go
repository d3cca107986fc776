// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Model: simple path v0—v1—…—v(n-1), IDs via cfg.idFn, weights via cfg.weightFn.
// Contract: n ≥ 2 (else ErrTooFewVertices).
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor for a simple path over n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
