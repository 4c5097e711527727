package glasspane

import "math"

// seamEpsilon filters out zero-length segments where an arc endpoint lands
// exactly on the next edge anchor (fully-rounded corners degenerate the
// straight edges to points).
const seamEpsilon = 1e-9

// ClampRadii limits each corner radius to min(w, h)/2 and floors negatives
// at zero. Out-of-range radii are never an error, only clamped.
func ClampRadii(r CornerRadii, w, h float64) CornerRadii {
	limit := math.Min(w, h) / 2
	r.TopLeft = clampRadius(r.TopLeft, limit)
	r.TopRight = clampRadius(r.TopRight, limit)
	r.BottomRight = clampRadius(r.BottomRight, limit)
	r.BottomLeft = clampRadius(r.BottomLeft, limit)
	return r
}

func clampRadius(r, limit float64) float64 {
	if r < 0 {
		return 0
	}
	if r > limit {
		return limit
	}
	return r
}

// BuildBoundary returns the closed boundary polygon of a rounded rectangle
// of the given width and height, centered at the origin in Y-up local space.
//
// The walk is: bottom edge, bottom-right arc, right edge, top-right arc,
// top edge, top-left arc, left edge, bottom-left arc. Each arc spans exactly
// a quarter turn approximated by smoothness straight segments around its own
// center, so non-uniform per-corner radii join without seams. A zero radius
// degenerates to a sharp corner with no arc points.
//
// The polygon is closed by wraparound (the first point is not repeated) and
// contains no duplicate consecutive points. With all four radii positive and
// non-degenerate edges it has exactly 4*smoothness + 4 vertices.
func BuildBoundary(w, h float64, radii CornerRadii, smoothness int) []Vec2 {
	return appendBoundary(nil, w, h, radii, smoothness)
}

// appendBoundary is BuildBoundary writing into a reusable buffer.
// dst is truncated and returned with the boundary appended.
func appendBoundary(dst []Vec2, w, h float64, radii CornerRadii, smoothness int) []Vec2 {
	dst = dst[:0]
	if w <= 0 || h <= 0 {
		return dst
	}
	if smoothness < 1 {
		smoothness = 1
	}
	radii = ClampRadii(radii, w, h)

	hw := w / 2
	hh := h / 2

	// Per-corner arc data, in walk order. Anchor is where the incoming edge
	// meets the arc; the arc sweeps a quarter turn from startAngle.
	corners := [4]struct {
		radius   float64
		anchor   Vec2
		center   Vec2
		startAng float64
	}{
		{radii.BottomRight, Vec2{hw - radii.BottomRight, -hh}, Vec2{hw - radii.BottomRight, -hh + radii.BottomRight}, -math.Pi / 2},
		{radii.TopRight, Vec2{hw, hh - radii.TopRight}, Vec2{hw - radii.TopRight, hh - radii.TopRight}, 0},
		{radii.TopLeft, Vec2{-hw + radii.TopLeft, hh}, Vec2{-hw + radii.TopLeft, hh - radii.TopLeft}, math.Pi / 2},
		{radii.BottomLeft, Vec2{-hw, -hh + radii.BottomLeft}, Vec2{-hw + radii.BottomLeft, -hh + radii.BottomLeft}, math.Pi},
	}

	for _, c := range corners {
		dst = appendBoundaryPoint(dst, c.anchor)
		if c.radius == 0 {
			continue
		}
		step := (math.Pi / 2) / float64(smoothness)
		for i := 1; i <= smoothness; i++ {
			ang := c.startAng + step*float64(i)
			dst = appendBoundaryPoint(dst, Vec2{
				X: c.center.X + c.radius*math.Cos(ang),
				Y: c.center.Y + c.radius*math.Sin(ang),
			})
		}
	}

	// Drop a wraparound duplicate (fully-rounded shapes close exactly on
	// the first anchor).
	if n := len(dst); n > 1 && samePoint(dst[n-1], dst[0]) {
		dst = dst[:n-1]
	}
	return dst
}

// appendBoundaryPoint appends p unless it coincides with the previous point.
func appendBoundaryPoint(dst []Vec2, p Vec2) []Vec2 {
	if n := len(dst); n > 0 && samePoint(dst[n-1], p) {
		return dst
	}
	return append(dst, p)
}

func samePoint(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < seamEpsilon && math.Abs(a.Y-b.Y) < seamEpsilon
}

// BoundaryContains reports whether (x, y) lies inside a convex boundary
// polygon, using the same-side cross-product test. Works for either winding
// order. Boundary polygons from BuildBoundary are always convex.
func BoundaryContains(points []Vec2, x, y float64) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := points[i].X
		y1 := points[i].Y
		j := (i + 1) % n
		x2 := points[j].X
		y2 := points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// boundaryAABB returns the axis-aligned bounds of a boundary polygon as
// (minX, minY, maxX, maxY).
func boundaryAABB(points []Vec2) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
