// Package viz renders a trapezoidal map to a raster image for debugging.
// It is a read-only observer of *trapmap.Map: the core never imports it.
//
// Generalized from a pointer-linked query graph to trapmap's index arenas.
package viz

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/fsanna/trapmap/dbg"
	"github.com/fsanna/trapmap/geom"
	"github.com/fsanna/trapmap/trapmap"
)

// padding in pixels around the drawn shape, so a trapezoid bounded by the
// bounding box's edge doesn't draw flush against the canvas border.
const padding = 40

// Draw renders every live trapezoid reachable from the DAG's leaves to a
// gg canvas at the given scale (pixels per map unit) and saves it to path.
func Draw(m *trapmap.Map, d *trapmap.DAG, scale float64, path string) error {
	c := render(m, d, scale)
	return c.SavePNG(path)
}

// Preview renders and saves to a temp file, then prints it to the terminal
// via imgcat (iTerm2 only; a no-op escape sequence elsewhere).
func Preview(m *trapmap.Map, d *trapmap.DAG, scale float64) error {
	const tmp = "/tmp/trapmap.png"
	if err := Draw(m, d, scale, tmp); err != nil {
		return err
	}
	return imgcat.CatFile(tmp, os.Stdout)
}

func render(m *trapmap.Map, d *trapmap.DAG, scale float64) *gg.Context {
	bbMin, bbMax := m.BoundingBox()
	width := int(scale*(bbMax.X-bbMin.X)) + padding*2
	height := int(scale*(bbMax.Y-bbMin.Y)) + padding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin is bottom-left, then pad and scale into map space.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-bbMin.X, -bbMin.Y)

	c.SetLineWidth(2)

	traps := liveTrapezoids(m, d)
	for _, idx := range traps {
		drawTrapezoid(c, m, idx, false)
	}
	for _, idx := range traps {
		drawTrapezoid(c, m, idx, true)
	}
	return c
}

// liveTrapezoids walks the DAG and returns the trapezoid index of every
// reachable leaf, in leaf-visitation order.
func liveTrapezoids(m *trapmap.Map, d *trapmap.DAG) []trapmap.Index {
	var out []trapmap.Index
	seen := make(map[trapmap.Index]bool)
	var walk func(idx trapmap.Index)
	walk = func(idx trapmap.Index) {
		n := d.Nodes[idx]
		if n.IsLeaf() {
			if !seen[n.Object] {
				seen[n.Object] = true
				out = append(out, n.Object)
			}
			return
		}
		walk(n.LeftChild)
		walk(n.RightChild)
	}
	walk(0)
	return out
}

func drawTrapezoid(c *gg.Context, m *trapmap.Map, idx trapmap.Index, stroke bool) {
	t := m.Trapezoid(idx)
	leftX, rightX := m.Point(t.LeftPoint).X, m.Point(t.RightPoint).X
	bbMin, bbMax := m.BoundingBox()

	topLeft, topRight := wallY(m, t.Top, leftX, rightX, bbMax.Y)
	botLeft, botRight := wallY(m, t.Bottom, leftX, rightX, bbMin.Y)

	c.MoveTo(leftX, topLeft)
	c.LineTo(rightX, topRight)
	c.LineTo(rightX, botRight)
	c.LineTo(leftX, botLeft)
	c.ClosePath()

	if stroke {
		c.SetRGB(0, 1, 0)
		c.Stroke()
		return
	}

	if t.Top != trapmap.NONE && t.Bottom != trapmap.NONE {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
	} else {
		c.SetRGBA(1, 1, 0, 0.5)
	}
	c.Fill()

	c.SetRGB(1, 1, 1)
	centerX := (leftX + rightX) / 2
	centerY := (topLeft + topRight + botLeft + botRight) / 4
	px, py := c.TransformPoint(centerX, centerY)
	c.Push()
	c.Identity()
	c.DrawStringAnchored(dbg.Name(dbg.KindTrapezoid, idx), px, py, 0.5, 0.5)
	c.Pop()
}

// wallY returns seg's y-coordinate at leftX and rightX; seg == NONE stands
// for the bounding box's flat top or bottom edge, at fallback.
func wallY(m *trapmap.Map, seg trapmap.Index, leftX, rightX, fallback float64) (atLeft, atRight float64) {
	if seg == trapmap.NONE {
		return fallback, fallback
	}
	s := m.Segment(seg)
	if s.IsHorizontal() {
		return s.Start.Y, s.Start.Y
	}
	left := geom.Intersection(s, leftX)
	right := geom.Intersection(s, rightX)
	return left.Y, right.Y
}

