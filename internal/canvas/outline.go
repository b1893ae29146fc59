package canvas

import "math"

// EllipseSegments is the perimeter resolution of flattened circles and
// ellipses.
const EllipseSegments = 40

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Bounds returns the smallest box holding pts.
func Bounds(pts []Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// EllipseOutline flattens an axis-aligned ellipse in local space into a
// closed polygon under m. It returns nil for a degenerate ellipse.
func EllipseOutline(m Affine, cx, cy, rx, ry float64) []Point {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	pts := make([]Point, 0, EllipseSegments)
	for i := 0; i < EllipseSegments; i++ {
		sin, cos := math.Sincos(float64(i) / EllipseSegments * 2 * math.Pi)
		x, y := m.Apply(cx+rx*cos, cy+ry*sin)
		pts = append(pts, Point{x, y})
	}
	return pts
}

// LineOutline returns the quad covered by a butt-capped segment under m, or
// nil when the segment has no length or no width.
func LineOutline(m Affine, x0, y0, x1, y1, width float64) []Point {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return nil
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	pts := make([]Point, 0, 4)
	for _, p := range [4][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	} {
		x, y := m.Apply(p[0], p[1])
		pts = append(pts, Point{x, y})
	}
	return pts
}
