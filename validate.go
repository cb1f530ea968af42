package thin

import (
	"errors"
	"fmt"

	"honnef.co/go/thin/bez"
)

// Severity indicates whether a validation finding makes a graph unusable or
// is merely informational.
type Severity int

const (
	SeverityError   Severity = iota // thinning will fail or produce garbage
	SeverityWarning                 // informational
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ValidationError describes a single finding of [Validate].
type ValidationError struct {
	Node     NodeID // the offending node, or NoNode for graph-level findings
	Message  string
	Severity Severity
}

func (e ValidationError) Error() string {
	if e.Node == NoNode {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] node %d: %s", e.Severity, e.Node, e.Message)
}

// Validate checks the structure of g and returns its findings. An empty
// result means the graph is valid. Validate never modifies g.
//
// Errors are reported for graphs without roots, invalid node references,
// cycles that don't return to their root and boundary segments without
// geometry. Warnings are reported for nodes not reachable from any root, for
// sharp leaves that touch boundary of nonzero length and for edges whose
// boundary is dropped because they carry no axis geometry.
func Validate(g *AxisGraph) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateRoots(g)...)
	errs = append(errs, validateNodes(g)...)
	return errs
}

// Err combines the error-severity findings into a single error, or returns
// nil if there are none.
func Err(findings []ValidationError) error {
	var errs []error
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs = append(errs, f)
		}
	}
	return errors.Join(errs...)
}

func validateRoots(g *AxisGraph) []ValidationError {
	if len(g.Roots) == 0 {
		return []ValidationError{{Node: NoNode, Message: "graph has no roots", Severity: SeverityError}}
	}
	var errs []ValidationError
	reached := make([]bool, len(g.Nodes))
	seen := map[NodeID]bool{}
	broken := false
	for _, root := range g.Roots {
		if g.Node(root) == nil {
			errs = append(errs, ValidationError{Node: NoNode, Message: fmt.Sprintf("root %d out of range", root), Severity: SeverityError})
			continue
		}
		if seen[root] {
			errs = append(errs, ValidationError{Node: root, Message: "node is listed as root more than once", Severity: SeverityWarning})
			continue
		}
		seen[root] = true
		ids, err := g.Cycle(root, 0)
		if err != nil {
			errs = append(errs, ValidationError{Node: root, Message: err.Error(), Severity: SeverityError})
			broken = true
			continue
		}
		for _, id := range ids {
			reached[id] = true
		}
	}
	if broken {
		// Reachability is meaningless with broken cycles.
		return errs
	}
	for id, ok := range reached {
		if !ok {
			errs = append(errs, ValidationError{Node: NodeID(id), Message: "node is not reachable from any root", Severity: SeverityWarning})
		}
	}
	return errs
}

func validateNodes(g *AxisGraph) []ValidationError {
	var errs []ValidationError
	for i := range g.Nodes {
		id := NodeID(i)
		n := &g.Nodes[i]
		if g.Node(n.Next) == nil {
			errs = append(errs, ValidationError{Node: id, Message: fmt.Sprintf("next node %d out of range", n.Next), Severity: SeverityError})
		}
		for j, b := range n.Boundary {
			if b.Segment.IsZero() {
				errs = append(errs, ValidationError{Node: id, Message: fmt.Sprintf("boundary segment %d has no geometry", j), Severity: SeverityError})
			}
		}
		if n.Terminating && n.Sharp {
			for j, b := range n.Boundary {
				if !b.Segment.IsZero() && b.Segment.Arclen(bez.DefaultAccuracy) > 0 {
					errs = append(errs, ValidationError{Node: id, Message: fmt.Sprintf("boundary segment %d of a sharp leaf has nonzero length", j), Severity: SeverityWarning})
				}
			}
		}
		if n.Axis.IsZero() && len(n.Boundary) > 0 && !n.HoleClosing {
			errs = append(errs, ValidationError{Node: id, Message: "boundary of an edge without axis geometry is ignored", Severity: SeverityWarning})
		}
	}
	return errs
}
