package thin

import (
	"errors"
	"fmt"

	"honnef.co/go/thin/bez"
)

// ErrMalformedGraph is returned when following Next from a root leaves the
// graph or doesn't return to the root.
var ErrMalformedGraph = errors.New("malformed axis graph")

// NodeID identifies a node by its index in [AxisGraph.Nodes].
type NodeID int

// NoNode is the NodeID that refers to no node.
const NoNode NodeID = -1

// LoopID identifies a closed boundary loop, either the outer envelope of a
// shape or one of its holes.
type LoopID int

// BoundarySegment is a piece of the original boundary together with the loop
// it belongs to.
type BoundarySegment struct {
	Segment bez.Segment
	Loop    LoopID
}

// Node is a node of an axis graph: a contact point of a maximal disk with the
// boundary, and the edge to the next node.
type Node struct {
	// Next is the following node on the same cycle.
	Next NodeID
	// Axis is the axis curve from this node to Next. The zero Segment means
	// the edge carries no axis geometry.
	Axis bez.Segment
	// Boundary holds the boundary pieces generated by the edge, in boundary
	// order.
	Boundary []BoundarySegment

	// Terminating is set for leaves of the axis, where the edge carries no
	// more than a single maximal disk.
	Terminating bool
	// Sharp is set when the node sits in a sharp corner of the boundary and
	// thus touches zero boundary length.
	Sharp bool
	// HoleClosing is set for synthetic nodes closing the axis around a hole.
	// They have no real boundary.
	HoleClosing bool

	// Center and Radius describe the maximal disk.
	Center bez.Point
	Radius float64
}

// AxisGraph is an arena of axis nodes.
type AxisGraph struct {
	Nodes []Node
	// Roots holds one node per component of the axis, each the start of a
	// traversal.
	Roots []NodeID
}

// Add appends n to the graph and returns its ID.
func (g *AxisGraph) Add(n Node) NodeID {
	g.Nodes = append(g.Nodes, n)
	return NodeID(len(g.Nodes) - 1)
}

// Node returns the node with the given ID, or nil if there is none.
func (g *AxisGraph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.Nodes) {
		return nil
	}
	return &g.Nodes[id]
}

// Link sets the Next fields of the given nodes so that they form a cycle in
// the given order.
func (g *AxisGraph) Link(ids ...NodeID) {
	for i, id := range ids {
		g.Nodes[id].Next = ids[(i+1)%len(ids)]
	}
}

// Cycle returns the nodes visited by following Next from root until it
// returns to root, starting with root itself.
//
// If maxSteps is positive, at most that many nodes are visited; otherwise the
// limit is the number of nodes in the graph. Running into an invalid NodeID
// or exceeding the limit results in an error wrapping [ErrMalformedGraph].
func (g *AxisGraph) Cycle(root NodeID, maxSteps int) ([]NodeID, error) {
	if maxSteps <= 0 {
		maxSteps = len(g.Nodes)
	}
	if g.Node(root) == nil {
		return nil, fmt.Errorf("%w: root %d out of range", ErrMalformedGraph, root)
	}
	var ids []NodeID
	id := root
	for {
		if len(ids) == maxSteps {
			return nil, fmt.Errorf("%w: cycle from root %d doesn't close within %d nodes", ErrMalformedGraph, root, maxSteps)
		}
		ids = append(ids, id)
		next := g.Nodes[id].Next
		if g.Node(next) == nil {
			return nil, fmt.Errorf("%w: node %d has invalid next node %d", ErrMalformedGraph, id, next)
		}
		if next == root {
			return ids, nil
		}
		id = next
	}
}
