package glasspane

import (
	"fmt"
	"os"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D point in the panel's local shape space (origin at the panel
// center, Y up; renderers flip as needed).
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for positions, rotations, and per-axis scale.
type Vec3 struct {
	X, Y, Z float64
}

// CornerRadii holds per-corner border radii, clockwise from top-left.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// ExtrudeSettings describes how a 3D backend should extrude the boundary
// polygon into a mesh. The bundled EbitenRenderer only uses Depth (as a
// flat back-face offset); full bevel geometry is the backend's job.
type ExtrudeSettings struct {
	Depth          float64
	BevelEnabled   bool
	BevelThickness float64
	BevelSize      float64
	BevelSegments  int
}

// Transform is the per-frame render state for a panel. Emitted every tick,
// whether or not geometry changed.
type Transform struct {
	Position Vec3
	Rotation Vec3 // Euler angles in radians
	Scale    Vec3
	Opacity  float64
	Visible  bool
	Color    Color
}

// Geometry carries a freshly rebuilt boundary polygon plus the extrusion
// profile. Only emitted on frames where a dimension-affecting channel moved.
// The Boundary slice is owned by the panel and reused across rebuilds;
// renderers must copy what they keep.
type Geometry struct {
	Boundary []Vec2
	Extrude  ExtrudeSettings
}

// Renderer consumes panel output. SetTransform is called once per tick;
// SetGeometry only on rebuild frames. Implementations must not retain the
// Geometry.Boundary slice.
type Renderer interface {
	SetTransform(t Transform)
	SetGeometry(g Geometry)
}

// warnf prints a non-fatal diagnostic to stderr. The engine never aborts on
// bad input values; it clamps or falls back and reports here.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[glasspane] warning: "+format+"\n", args...)
}
