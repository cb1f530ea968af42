package thin

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(g *AxisGraph)
		want   []ValidationError
	}{
		{
			name:   "valid",
			modify: func(g *AxisGraph) {},
		},
		{
			name:   "no roots",
			modify: func(g *AxisGraph) { g.Roots = nil },
			want: []ValidationError{
				{Node: NoNode, Message: "graph has no roots", Severity: SeverityError},
			},
		},
		{
			name:   "root out of range",
			modify: func(g *AxisGraph) { g.Roots = append(g.Roots, 10) },
			want: []ValidationError{
				{Node: NoNode, Message: "root 10 out of range", Severity: SeverityError},
			},
		},
		{
			name:   "duplicate root",
			modify: func(g *AxisGraph) { g.Roots = append(g.Roots, 1) },
			want: []ValidationError{
				{Node: 1, Message: "node is listed as root more than once", Severity: SeverityWarning},
			},
		},
		{
			name: "unreachable",
			modify: func(g *AxisGraph) {
				id := g.Add(Node{Axis: point(0, 0)})
				g.Link(id)
			},
			want: []ValidationError{
				{Node: 4, Message: "node is not reachable from any root", Severity: SeverityWarning},
			},
		},
		{
			name: "missing boundary geometry",
			modify: func(g *AxisGraph) {
				g.Nodes[1].Boundary = append(g.Nodes[1].Boundary, BoundarySegment{})
			},
			want: []ValidationError{
				{Node: 1, Message: "boundary segment 2 has no geometry", Severity: SeverityError},
			},
		},
		{
			name: "sharp leaf with boundary",
			modify: func(g *AxisGraph) {
				g.Nodes[0].Sharp = true
			},
			want: []ValidationError{
				{Node: 0, Message: "boundary segment 0 of a sharp leaf has nonzero length", Severity: SeverityWarning},
			},
		},
		{
			name: "boundary without axis",
			modify: func(g *AxisGraph) {
				g.Nodes[3].Axis = Node{}.Axis
			},
			want: []ValidationError{
				{Node: 3, Message: "boundary of an edge without axis geometry is ignored", Severity: SeverityWarning},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := rectGraph()
			tt.modify(g)
			diff(t, tt.want, Validate(g))
		})
	}
}

func TestValidateNext(t *testing.T) {
	g := rectGraph()
	g.Nodes[2].Next = -3
	got := Validate(g)
	var nodes []NodeID
	for _, f := range got {
		if f.Severity != SeverityError {
			t.Errorf("unexpected finding %v", f)
		}
		nodes = append(nodes, f.Node)
	}
	// The broken cycle is reported for the root, the broken reference for
	// the node itself.
	diff(t, []NodeID{1, 2}, nodes)
	if err := Err(got); !errors.Is(err, got[0]) {
		t.Errorf("Err(%v) = %v", got, err)
	}
}

func TestErr(t *testing.T) {
	if err := Err(nil); err != nil {
		t.Errorf("got %v, want nil", err)
	}
	warning := ValidationError{Node: 3, Message: "w", Severity: SeverityWarning}
	if err := Err([]ValidationError{warning}); err != nil {
		t.Errorf("got %v, want nil for warnings", err)
	}
	e := ValidationError{Node: NoNode, Message: "graph has no roots", Severity: SeverityError}
	err := Err([]ValidationError{warning, e})
	diff(t, "[error] graph has no roots", err.Error())
	diff(t, "[warning] node 3: w", warning.Error())
}
