// Package shapefile decodes axis graphs from YAML, TOML and JSON documents.
//
// A document lists the roots of the graph and its nodes. Points are written
// as two-element arrays:
//
//	roots: [1]
//	nodes:
//	  - next: 2
//	    axis: [[2, 2], [8, 2]]
//	    boundary:
//	      - loop: 0
//	        points: [[0, 0], [10, 0]]
//	    center: [2, 2]
//	    radius: 2
//
// A node's axis has either no points or 2 to 4 control points, as does every
// boundary segment. Unknown fields are rejected.
package shapefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/thin"
	"honnef.co/go/thin/bez"
)

// ErrFormat is returned for unsupported document formats.
var ErrFormat = errors.New("unsupported document format")

type Format int

const (
	YAML Format = iota + 1
	TOML
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format of the file at path, based on its extension.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// Document is the serialized form of a [thin.AxisGraph].
type Document struct {
	Roots []int  `json:"roots" yaml:"roots" toml:"roots"`
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
}

type Node struct {
	Next        int         `json:"next" yaml:"next" toml:"next"`
	Axis        [][]float64 `json:"axis,omitempty" yaml:"axis,omitempty" toml:"axis,omitempty"`
	Boundary    []Segment   `json:"boundary,omitempty" yaml:"boundary,omitempty" toml:"boundary,omitempty"`
	Terminating bool        `json:"terminating,omitempty" yaml:"terminating,omitempty" toml:"terminating,omitempty"`
	Sharp       bool        `json:"sharp,omitempty" yaml:"sharp,omitempty" toml:"sharp,omitempty"`
	HoleClosing bool        `json:"holeClosing,omitempty" yaml:"holeClosing,omitempty" toml:"holeClosing,omitempty"`
	Center      []float64   `json:"center,omitempty" yaml:"center,omitempty" toml:"center,omitempty"`
	Radius      float64     `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
}

type Segment struct {
	Loop   int         `json:"loop" yaml:"loop" toml:"loop"`
	Points [][]float64 `json:"points" yaml:"points" toml:"points"`
}

// Load reads the document at path, choosing the format by the file's
// extension, and returns the graph it describes.
func Load(path string) (*thin.AxisGraph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode reads a document in the given format from r and returns the graph
// it describes. The graph is checked with [thin.Validate]; errors fail the
// decoding and warnings are logged to [thin.Logger].
func Decode(r io.Reader, format Format) (*thin.AxisGraph, error) {
	var doc Document
	if err := decode(r, format, &doc); err != nil {
		return nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, err
	}
	findings := thin.Validate(g)
	for _, f := range findings {
		if f.Severity == thin.SeverityWarning {
			thin.Logger().Warn("questionable axis graph", "node", f.Node, "finding", f.Message)
		}
	}
	if err := thin.Err(findings); err != nil {
		return nil, fmt.Errorf("invalid axis graph: %w", err)
	}
	return g, nil
}

func decode(r io.Reader, format Format, doc *Document) error {
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(doc)
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(doc)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(doc)
	default:
		return fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("decoding %s: %w", format, err)
	}
	return nil
}

// Graph converts the document to an axis graph. It checks the shape of the
// geometry, but not the structure of the graph; see [thin.Validate] for
// that.
func (doc *Document) Graph() (*thin.AxisGraph, error) {
	g := &thin.AxisGraph{
		Nodes: make([]thin.Node, 0, len(doc.Nodes)),
		Roots: make([]thin.NodeID, len(doc.Roots)),
	}
	for i, r := range doc.Roots {
		g.Roots[i] = thin.NodeID(r)
	}
	for i, dn := range doc.Nodes {
		n, err := dn.node()
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		g.Add(n)
	}
	return g, nil
}

func (dn *Node) node() (thin.Node, error) {
	n := thin.Node{
		Next:        thin.NodeID(dn.Next),
		Terminating: dn.Terminating,
		Sharp:       dn.Sharp,
		HoleClosing: dn.HoleClosing,
		Radius:      dn.Radius,
	}
	if len(dn.Axis) > 0 {
		seg, err := segment(dn.Axis)
		if err != nil {
			return thin.Node{}, fmt.Errorf("axis: %w", err)
		}
		n.Axis = seg
	}
	for i, ds := range dn.Boundary {
		seg, err := segment(ds.Points)
		if err != nil {
			return thin.Node{}, fmt.Errorf("boundary segment %d: %w", i, err)
		}
		n.Boundary = append(n.Boundary, thin.BoundarySegment{Segment: seg, Loop: thin.LoopID(ds.Loop)})
	}
	if dn.Center != nil {
		pt, err := point(dn.Center)
		if err != nil {
			return thin.Node{}, fmt.Errorf("center: %w", err)
		}
		n.Center = pt
	}
	return n, nil
}

func segment(coords [][]float64) (bez.Segment, error) {
	pts := make([]bez.Point, len(coords))
	for i, c := range coords {
		pt, err := point(c)
		if err != nil {
			return bez.Segment{}, err
		}
		pts[i] = pt
	}
	return bez.SegmentFromPoints(pts)
}

func point(c []float64) (bez.Point, error) {
	if len(c) != 2 {
		return bez.Point{}, fmt.Errorf("point has %d coordinates, want 2", len(c))
	}
	return bez.Pt(c[0], c[1]), nil
}

// FromGraph returns the document describing g.
func FromGraph(g *thin.AxisGraph) *Document {
	doc := &Document{
		Roots: make([]int, len(g.Roots)),
		Nodes: make([]Node, len(g.Nodes)),
	}
	for i, r := range g.Roots {
		doc.Roots[i] = int(r)
	}
	for i, n := range g.Nodes {
		dn := Node{
			Next:        int(n.Next),
			Terminating: n.Terminating,
			Sharp:       n.Sharp,
			HoleClosing: n.HoleClosing,
			Radius:      n.Radius,
		}
		if !n.Axis.IsZero() {
			dn.Axis = coords(n.Axis)
		}
		for _, b := range n.Boundary {
			dn.Boundary = append(dn.Boundary, Segment{Loop: int(b.Loop), Points: coords(b.Segment)})
		}
		if n.Center != (bez.Point{}) {
			dn.Center = []float64{n.Center.X, n.Center.Y}
		}
		doc.Nodes[i] = dn
	}
	return doc
}

func coords(seg bez.Segment) [][]float64 {
	pts := seg.Points()
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

// Encode writes doc to w in the given format.
func (doc *Document) Encode(w io.Writer, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %s", ErrFormat, format)
	}
}
