package bez

import (
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 2))
	p.QuadTo(Pt(1.5, 2), Pt(2, 0))
	p.CubicTo(Pt(3, 1), Pt(4, 1), Pt(5, -0.25))
	p.ClosePath()

	want := "M0,0 L1,2 Q1.5,2 2,0 C3,1 4,1 5,-0.25 Z"
	if got := p.SVG(SVGOptions{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}
}

func TestSVGPrecision(t *testing.T) {
	p := BezPath{MoveTo(Pt(1.0/3.0, 100)), LineTo(Pt(-0.0001, 2.5))}
	want := "M0.33,100 L0,2.5"
	if got := p.SVG(SVGOptions{MaxPrecision: 2}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSegmentPathElement(t *testing.T) {
	tests := []struct {
		seg  Segment
		want PathElement
	}{
		{Line{Pt(0, 0), Pt(1, 1)}.Seg(), LineTo(Pt(1, 1))},
		{QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 0)}.Seg(), QuadTo(Pt(1, 1), Pt(2, 0))},
		{CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}.Seg(), CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0))},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.seg.PathElement())
	}
}

func TestControlBox(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1, 2))
	p.QuadTo(Pt(5, -3), Pt(3, 2))
	p.CubicTo(Pt(0, 7), Pt(2, 2), Pt(1, 2))
	p.ClosePath()
	got := p.ControlBox()
	diff(t, Rect{X0: 0, Y0: -3, X1: 5, Y1: 7}, got)
	diff(t, 5.0, got.Width())
	diff(t, 10.0, got.Height())
	diff(t, Pt(2.5, 2), got.Center())
	diff(t, Rect{X0: -1, Y0: -5, X1: 6, Y1: 9}, got.Inflate(1, 2))
	diff(t, Rect{}, BezPath(nil).ControlBox())
}
