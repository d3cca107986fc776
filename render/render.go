// Package render draws a graph and the relaxation events of a shortest-path
// run as Graphviz DOT documents, one frame per event.
//
// A frame shows every edge with its weight, paints the expanded vertex
// green and the relaxed edge blue, and writes each vertex's recorded route
// ("score via through") next to it. Vertex positions stored by graphfile are
// pinned with the "pos" attribute so consecutive frames keep their layout
// when fed to neato -n.
//
// Rendering is a pure function of its inputs; Events are never modified.
package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/graphfile"
)

const (
	graphName = "pathtrace"

	colorExpanded    = "#00ff00"
	colorRelaxed     = "#0000ff"
	colorRoute       = "#00a000"
	colorDefaultNode = "seashell2"
	colorDefaultEdge = "black"
	infinityLabel    = "∞"
)

// Options tweaks the look of a frame.
type Options struct {
	// RankDir is passed as the graph's rankdir attribute ("LR", "TB", ...).
	RankDir string
	// HideWeights drops the weight labels from edges.
	HideWeights bool
}

// Option configures Options.
type Option func(*Options)

// WithRankDir sets the layout direction.
func WithRankDir(dir string) Option {
	return func(o *Options) { o.RankDir = dir }
}

// WithoutWeights hides edge weights.
func WithoutWeights() Option {
	return func(o *Options) { o.HideWeights = true }
}

// Graph renders g alone, without any route information.
func Graph(g *core.Graph, opts ...Option) (string, error) {
	return draw(g, nil, resolve(opts))
}

// Frame renders g overlaid with the state captured by ev.
func Frame(g *core.Graph, ev dijkstra.Event, opts ...Option) (string, error) {
	return draw(g, &ev, resolve(opts))
}

// Frames renders one frame per event, in order.
func Frames(g *core.Graph, events []dijkstra.Event, opts ...Option) ([]string, error) {
	o := resolve(opts)
	out := make([]string, 0, len(events))
	for i := range events {
		dot, err := draw(g, &events[i], o)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", events[i].Step, err)
		}
		out = append(out, dot)
	}

	return out, nil
}

func resolve(opts []Option) Options {
	o := Options{RankDir: "LR"}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func draw(g *core.Graph, ev *dijkstra.Event, o Options) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if o.RankDir != "" {
		if err := graph.AddAttr(graphName, "rankdir", o.RankDir); err != nil {
			return "", err
		}
	}

	for _, id := range g.Vertices() {
		attrs := map[string]string{
			"label":     quote(id),
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": colorDefaultNode,
		}
		if pos, ok := position(g, id); ok {
			attrs["pos"] = pos
		}
		if ev != nil {
			if r, ok := ev.Route(id); ok {
				attrs["xlabel"] = quote(routeLabel(r))
			}
			if id == ev.Node {
				attrs["fillcolor"] = quote(colorExpanded)
			}
		}
		if err := graph.AddNode(graphName, quote(id), attrs); err != nil {
			return "", fmt.Errorf("failed to add vertex %q: %w", id, err)
		}
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{"color": colorDefaultEdge}
		if !o.HideWeights {
			attrs["label"] = quote(strconv.FormatInt(e.Weight, 10))
		}
		if ev != nil {
			if onRoute(ev, e) {
				attrs["color"] = quote(colorRoute)
				attrs["penwidth"] = "2"
			}
			if sameEdge(ev.Edge, e) {
				attrs["color"] = quote(colorRelaxed)
				attrs["penwidth"] = "3"
			}
		}
		if err := graph.AddEdge(quote(e.From), quote(e.To), false, attrs); err != nil {
			return "", fmt.Errorf("failed to add edge %s—%s: %w", e.From, e.To, err)
		}
	}

	return graph.String(), nil
}

// routeLabel formats a recorded route as "score via through".
func routeLabel(r dijkstra.Route) string {
	if !r.Reachable() {
		return infinityLabel
	}
	if r.Through == r.Node {
		return strconv.FormatInt(r.Score, 10)
	}

	return fmt.Sprintf("%d via %s", r.Score, r.Through)
}

// onRoute reports whether e joins a vertex to its recorded predecessor in ev.
func onRoute(ev *dijkstra.Event, e core.Edge) bool {
	for _, end := range [2]string{e.From, e.To} {
		r, ok := ev.Route(end)
		if ok && r.Reachable() && r.Through != r.Node && r.Through == e.Other(end) {
			return true
		}
	}

	return false
}

func sameEdge(pair [2]string, e core.Edge) bool {
	return (pair[0] == e.From && pair[1] == e.To) || (pair[0] == e.To && pair[1] == e.From)
}

func position(g *core.Graph, id string) (string, bool) {
	value, ok := g.MetadataValue(id, graphfile.PosKey)
	if !ok {
		return "", false
	}
	pos, ok := value.(*graphfile.Position)
	if !ok {
		return "", false
	}

	return quote(fmt.Sprintf("%g,%g!", pos.X, pos.Y)), true
}

func quote(s string) string {
	return strconv.Quote(s)
}
