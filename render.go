package glasspane

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenRenderer is the bundled Renderer implementation. It fan-triangulates
// the boundary polygon once per geometry rebuild and draws it with
// DrawTriangles each frame, transforming vertices on the CPU.
//
// The 3D transform is projected orthographically: X/Y position map to the
// screen, rotation Z spins the panel, and rotation X/Y foreshorten the
// panel's height/width by their cosine. Position Z is ignored. When the
// extrusion depth is positive, a darkened back face is drawn first, offset
// along the screen diagonal, as a cheap depth cue.
type EbitenRenderer struct {
	transform Transform
	extrude   ExtrudeSettings

	// Local-space mesh, rebuilt on SetGeometry.
	verts []ebiten.Vertex
	inds  []uint16

	// Reused per-draw transform buffers.
	worldVerts []ebiten.Vertex
	backVerts  []ebiten.Vertex
}

// NewEbitenRenderer creates an empty renderer. Attach it to a panel with
// Panel.SetRenderer and call Draw once per frame after Panel.Tick.
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// SetTransform stores the per-frame transform. Called by the panel every tick.
func (r *EbitenRenderer) SetTransform(t Transform) {
	r.transform = t
}

// SetGeometry fan-triangulates the boundary polygon into the renderer's
// local mesh buffers. Boundary polygons are convex, so a fan rooted at
// vertex 0 is always valid.
func (r *EbitenRenderer) SetGeometry(g Geometry) {
	r.extrude = g.Extrude

	n := len(g.Boundary)
	if n < 3 {
		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
		return
	}

	// Grow buffers to high-water mark.
	if cap(r.verts) < n {
		r.verts = make([]ebiten.Vertex, n)
	}
	r.verts = r.verts[:n]
	numInds := (n - 2) * 3
	if cap(r.inds) < numInds {
		r.inds = make([]uint16, numInds)
	}
	r.inds = r.inds[:numInds]

	for i, p := range g.Boundary {
		r.verts[i] = ebiten.Vertex{
			DstX: float32(p.X),
			DstY: float32(p.Y),
			// Untextured: sample the center of the white pixel.
			SrcX: 0.5, SrcY: 0.5,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	for i := 0; i < n-2; i++ {
		r.inds[i*3+0] = 0
		r.inds[i*3+1] = uint16(i + 1)
		r.inds[i*3+2] = uint16(i + 2)
	}
}

// Draw renders the panel to screen using the most recent transform and
// geometry. No-op while the panel is hidden, fully transparent, or has no
// geometry yet.
func (r *EbitenRenderer) Draw(screen *ebiten.Image) {
	t := r.transform
	if !t.Visible || t.Opacity <= 0 || len(r.verts) == 0 {
		return
	}

	m := projectTransform(t)
	white := ensureWhitePixel()

	var triOp ebiten.DrawTrianglesOptions

	if r.extrude.Depth > 0 {
		back := m
		back[4] += r.extrude.Depth
		back[5] += r.extrude.Depth
		shade := Color{t.Color.R * 0.35, t.Color.G * 0.35, t.Color.B * 0.35, t.Color.A}
		dst := ensureVertexBuffer(&r.backVerts, len(r.verts))
		projectVertices(r.verts, dst, back, shade, t.Opacity)
		screen.DrawTriangles(dst, r.inds, white, &triOp)
	}

	dst := ensureVertexBuffer(&r.worldVerts, len(r.verts))
	projectVertices(r.verts, dst, m, t.Color, t.Opacity)
	screen.DrawTriangles(dst, r.inds, white, &triOp)
}

// projectTransform builds the [a, b, c, d, tx, ty] affine matrix for a
// panel transform. Shape space is Y-up; the matrix flips to screen space
// (Y down) and applies the cosine foreshortening for X/Y tilt.
func projectTransform(t Transform) [6]float64 {
	sx := t.Scale.X * math.Abs(math.Cos(t.Rotation.Y))
	sy := t.Scale.Y * math.Abs(math.Cos(t.Rotation.X))

	sin, cos := math.Sincos(t.Rotation.Z)
	return [6]float64{
		cos * sx,
		sin * sx,
		sin * sy, // -(-sy)*sin: Y flip folded into the rotation column
		-cos * sy,
		t.Position.X,
		t.Position.Y,
	}
}

// projectVertices applies an affine matrix, tint, and opacity to the local
// mesh, writing premultiplied vertex colors the way DrawTriangles expects.
func projectVertices(src, dst []ebiten.Vertex, m [6]float64, tint Color, opacity float64) {
	a, b, c, d, tx, ty := m[0], m[1], m[2], m[3], m[4], m[5]
	ca := float32(tint.A * opacity)
	cr := float32(tint.R) * ca
	cg := float32(tint.G) * ca
	cb := float32(tint.B) * ca

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
}

// ensureVertexBuffer grows *buf to hold n vertices, reusing capacity.
func ensureVertexBuffer(buf *[]ebiten.Vertex, n int) []ebiten.Vertex {
	if cap(*buf) < n {
		*buf = make([]ebiten.Vertex, n)
	}
	*buf = (*buf)[:n]
	return *buf
}

// --- White pixel singleton (no sync.Once — the engine is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white image used to
// draw untextured panel meshes.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
