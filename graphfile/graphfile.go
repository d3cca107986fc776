// Package graphfile reads and writes graph definitions as YAML or JSON.
//
// A definition lists vertices and weighted undirected edges:
//
//	loops: false
//	nodes:
//	  - id: A
//	    pos: {x: 0, y: 1.5}
//	  - id: B
//	edges:
//	  - {from: A, to: B, weight: 7}
//
// Nodes that only appear as edge endpoints are created implicitly. A node
// position, when given, is kept as Vertex.Metadata[PosKey] so a renderer can
// pin the layout. JSON is valid YAML, so Parse accepts both; Marshal picks
// the output format from the Format argument.
//
// Parse follows YAML 1.2: IDs such as Y, n, on or 0 stay strings, and the key
// y in a position is the coordinate, not a boolean.
package graphfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goyaml "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/pathtrace/core"
)

// PosKey is the Vertex.Metadata key holding a *Position.
const PosKey = "pos"

// Sentinel errors.
var (
	// ErrEmptyDefinition indicates a definition with neither nodes nor edges.
	ErrEmptyDefinition = errors.New("graphfile: definition has no nodes")

	// ErrDuplicateNode indicates the same node ID listed twice.
	ErrDuplicateNode = errors.New("graphfile: duplicate node")

	// ErrDuplicateEdge indicates the same unordered pair listed twice.
	ErrDuplicateEdge = errors.New("graphfile: duplicate edge")

	// ErrUnknownFormat indicates a file extension or format name that is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("graphfile: unknown format")
)

// Format selects the serialization of Marshal and Save.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Position is an optional drawing coordinate for a node.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is one vertex entry.
type Node struct {
	ID  string    `json:"id" yaml:"id"`
	Pos *Position `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// Edge is one undirected weighted edge entry.
type Edge struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Definition is the on-disk form of a graph.
type Definition struct {
	Loops bool   `json:"loops,omitempty" yaml:"loops,omitempty"`
	Nodes []Node `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Edges []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Parse decodes a YAML or JSON definition. Unknown fields are rejected.
// Empty input yields an empty Definition.
func Parse(data []byte) (*Definition, error) {
	decoder := goyaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	def := &Definition{}
	if err := decoder.Decode(def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse graph definition: %w", err)
	}

	return def, nil
}

// Load reads the file at path and builds a graph from it.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := def.Graph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Graph validates def and builds the corresponding core.Graph.
// Negative weights are accepted here; rejecting them is the engine's job.
func (def *Definition) Graph() (*core.Graph, error) {
	if len(def.Nodes) == 0 && len(def.Edges) == 0 {
		return nil, ErrEmptyDefinition
	}

	var opts []core.GraphOption
	if def.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for i, n := range def.Nodes {
		if g.HasVertex(n.ID) {
			return nil, fmt.Errorf("%w: nodes[%d] %q", ErrDuplicateNode, i, n.ID)
		}
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("nodes[%d]: %w", i, err)
		}
		if n.Pos != nil {
			pos := *n.Pos
			if err := g.SetMetadata(n.ID, PosKey, &pos); err != nil {
				return nil, fmt.Errorf("nodes[%d]: %w", i, err)
			}
		}
	}

	for i, e := range def.Edges {
		if g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("%w: edges[%d] %s—%s", ErrDuplicateEdge, i, e.From, e.To)
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph converts g back into a Definition. Nodes and edges come out in
// the graph's deterministic order.
func FromGraph(g *core.Graph) *Definition {
	def := &Definition{Loops: g.Looped()}
	for _, id := range g.Vertices() {
		n := Node{ID: id}
		if value, ok := g.MetadataValue(id, PosKey); ok {
			if pos, ok := value.(*Position); ok {
				p := *pos
				n.Pos = &p
			}
		}
		def.Nodes = append(def.Nodes, n)
	}
	for _, e := range g.Edges() {
		def.Edges = append(def.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return def
}

// Marshal serializes v in the given format. It is used for definitions and
// for any other JSON-tagged value such as route tables.
func Marshal(v interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes g to path, choosing the format from its extension.
func Save(path string, g *core.Graph) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(FromGraph(g), format)
	if err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write graph file: %w", err)
	}

	return nil
}
