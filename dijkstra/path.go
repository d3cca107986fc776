package dijkstra

import "fmt"

// PathTo reconstructs the path from the start vertex of a Compute result to
// target by following Through pointers. It returns the vertices in
// start→target order and the total distance.
//
// Errors: ErrVertexNotFound if target (or a predecessor) is missing from
// routes, ErrUnreachable if target has infinite distance, ErrBrokenPath if
// the chain loops.
//
// Complexity: O(path length).
func PathTo(routes map[string]Route, target string) ([]string, int64, error) {
	r, ok := routes[target]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, target)
	}
	if !r.Reachable() {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnreachable, target)
	}

	dist := r.Score
	path := []string{target}
	for r.Through != r.Node {
		if len(path) > len(routes) {
			return nil, 0, fmt.Errorf("%w: cycle reaching %q", ErrBrokenPath, target)
		}
		next, ok := routes[r.Through]
		if !ok {
			return nil, 0, fmt.Errorf("%w: predecessor %q of %q", ErrVertexNotFound, r.Through, r.Node)
		}
		r = next
		path = append(path, r.Node)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist, nil
}
