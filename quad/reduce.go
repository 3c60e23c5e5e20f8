package quad

import (
	"image"

	"github.com/MightyBOBcnc/SimpleHydrology/vec"
)

// Surface is a height field addressable by absolute world coordinate.
// Nodes and maps both satisfy it, so normals can be computed per tile or
// across tile seams with the same code.
type Surface interface {
	OutOfBounds(p image.Point) bool
	Height(p image.Point) float32
}

// Normal approximates the surface normal at p by four-quadrant finite
// differences at the given step. Each in-bounds diagonal quadrant
// contributes the cross product of its two edge vectors, with heights
// exaggerated by heightScale; quadrants whose diagonal is out of bounds
// are skipped, so edge cells average fewer planes. The zero vector comes
// back only when every quadrant is out of bounds.
func Normal(t Surface, p image.Point, step int, heightScale float32) vec.Vec3 {
	var n vec.Vec3
	s := vec.V3(1, heightScale, 1)

	h := t.Height(p)
	dx := image.Pt(step, 0)
	dy := image.Pt(0, step)

	if !t.OutOfBounds(p.Add(image.Pt(step, step))) {
		n = n.Add(s.Multiply(vec.V3(0, t.Height(p.Add(dy))-h, 1)).
			Cross(s.Multiply(vec.V3(1, t.Height(p.Add(dx))-h, 0))))
	}

	if !t.OutOfBounds(p.Sub(image.Pt(step, step))) {
		n = n.Add(s.Multiply(vec.V3(0, t.Height(p.Sub(dy))-h, -1)).
			Cross(s.Multiply(vec.V3(-1, t.Height(p.Sub(dx))-h, 0))))
	}

	// Two alternative planes (+X -> -Y) and (-X -> +Y).
	if !t.OutOfBounds(p.Add(image.Pt(step, -step))) {
		n = n.Add(s.Multiply(vec.V3(1, t.Height(p.Add(dx))-h, 0)).
			Cross(s.Multiply(vec.V3(0, t.Height(p.Sub(dy))-h, -1))))
	}

	if !t.OutOfBounds(p.Add(image.Pt(-step, step))) {
		n = n.Add(s.Multiply(vec.V3(-1, t.Height(p.Sub(dx))-h, 0)).
			Cross(s.Multiply(vec.V3(0, t.Height(p.Add(dy))-h, 1))))
	}

	if n.SquaredLength() > 0 {
		n = n.Normalize()
	}
	return n
}
