package shapefile

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/thin"
	"honnef.co/go/thin/bez"
)

func line(x0, y0, x1, y1 float64) bez.Segment {
	return bez.Line{P0: bez.Pt(x0, y0), P1: bez.Pt(x1, y1)}.Seg()
}

func rectGraph() *thin.AxisGraph {
	bs := func(seg bez.Segment) thin.BoundarySegment { return thin.BoundarySegment{Segment: seg} }
	return &thin.AxisGraph{
		Roots: []thin.NodeID{1},
		Nodes: []thin.Node{
			{
				Next:        1,
				Axis:        line(2, 2, 2, 2),
				Boundary:    []thin.BoundarySegment{bs(line(0, 4, 0, 0))},
				Terminating: true,
				Center:      bez.Pt(2, 2),
				Radius:      2,
			},
			{
				Next:     2,
				Axis:     line(2, 2, 8, 2),
				Boundary: []thin.BoundarySegment{bs(line(0, 0, 5, 0)), bs(line(5, 0, 10, 0))},
				Center:   bez.Pt(2, 2),
				Radius:   2,
			},
			{
				Next:        3,
				Axis:        line(8, 2, 8, 2),
				Boundary:    []thin.BoundarySegment{bs(line(10, 0, 10, 4))},
				Terminating: true,
				Center:      bez.Pt(8, 2),
				Radius:      2,
			},
			{
				Next:     0,
				Axis:     line(8, 2, 2, 2),
				Boundary: []thin.BoundarySegment{bs(line(10, 4, 0, 4))},
				Center:   bez.Pt(8, 2),
				Radius:   2,
			},
		},
	}
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"rect.yaml", "rect.toml", "rect.json"} {
		t.Run(name, func(t *testing.T) {
			g, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, rectGraph(), g)
		})
	}
}

func TestLoadCurves(t *testing.T) {
	g, err := Load(filepath.Join("testdata", "curves.yml"))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	b := g.Nodes[0].Boundary
	require.Len(t, b, 2)
	assert.Equal(t, bez.QuadKind, b[0].Segment.Kind)
	assert.Equal(t, bez.CubicKind, b[1].Segment.Kind)
	assert.Equal(t, bez.Pt(3, 3), b[1].Segment.P2)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "unknown.yaml"))
	assert.ErrorContains(t, err, "colour")

	_, err = Load(filepath.Join("testdata", "degree.json"))
	assert.ErrorIs(t, err, bez.ErrSegmentDegree)

	_, err = Load(filepath.Join("testdata", "broken.toml"))
	assert.ErrorContains(t, err, "invalid axis graph")
	var verr thin.ValidationError
	if assert.True(t, errors.As(err, &verr)) {
		assert.Equal(t, thin.SeverityError, verr.Severity)
	}

	_, err = Load(filepath.Join("testdata", "rect.svg"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		doc    string
	}{
		{YAML, "roots: [0]\nnodes:\n  - next: 0\n"},
		{TOML, "roots = [0]\n\n[[nodes]]\nnext = 0\n"},
		{JSON, `{"roots": [0], "nodes": [{"next": 0}]}`},
	}
	extra := map[Format]string{
		YAML: "roots: [0]\nextra: 1\nnodes:\n  - next: 0\n",
		TOML: "roots = [0]\nextra = 1\n\n[[nodes]]\nnext = 0\n",
		JSON: `{"roots": [0], "extra": 1, "nodes": [{"next": 0}]}`,
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format)
			require.NoError(t, err)
			_, err = Decode(strings.NewReader(extra[tt.format]), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodeBadPoint(t *testing.T) {
	const doc = `{"roots": [0], "nodes": [{"next": 0, "center": [1, 2, 3]}]}`
	_, err := Decode(strings.NewReader(doc), JSON)
	assert.ErrorContains(t, err, "node 0: center: point has 3 coordinates, want 2")
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.yaml", YAML},
		{"a.YML", YAML},
		{"dir.json/a.toml", TOML},
		{"a.json", JSON},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}
	_, err := FormatOf("a")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestEncode(t *testing.T) {
	want := rectGraph()
	want.Nodes[3].Axis = bez.QuadBez{P0: bez.Pt(8, 2), P1: bez.Pt(5, 2.5), P2: bez.Pt(2, 2)}.Seg()
	want.Nodes[1].Boundary[1].Loop = 4
	for _, format := range []Format{YAML, TOML, JSON} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, FromGraph(want).Encode(&buf, format))
			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
