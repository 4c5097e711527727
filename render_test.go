package glasspane

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSetGeometryFanTriangulation(t *testing.T) {
	r := NewEbitenRenderer()
	r.SetGeometry(Geometry{Boundary: BuildBoundary(2, 1, CornerRadii{}, 4)})

	if got := len(r.verts); got != 4 {
		t.Fatalf("vertex count = %d, want 4 for a sharp rectangle", got)
	}
	if got := len(r.inds); got != 6 {
		t.Fatalf("index count = %d, want 6 (two triangles)", got)
	}
	// Fan rooted at vertex 0.
	want := []uint16{0, 1, 2, 0, 2, 3}
	for i, idx := range r.inds {
		if idx != want[i] {
			t.Fatalf("indices = %v, want %v", r.inds, want)
		}
	}
}

func TestSetGeometryDegenerateClearsMesh(t *testing.T) {
	r := NewEbitenRenderer()
	r.SetGeometry(Geometry{Boundary: BuildBoundary(1, 1, CornerRadii{}, 4)})
	r.SetGeometry(Geometry{Boundary: nil})
	if len(r.verts) != 0 || len(r.inds) != 0 {
		t.Errorf("mesh not cleared: %d verts, %d inds", len(r.verts), len(r.inds))
	}
}

func TestSetGeometryReusesBuffers(t *testing.T) {
	r := NewEbitenRenderer()
	big := BuildBoundary(2, 1, CornerRadii{0.2, 0.2, 0.2, 0.2}, 16)
	small := BuildBoundary(2, 1, CornerRadii{}, 16)
	r.SetGeometry(Geometry{Boundary: big})

	allocs := testing.AllocsPerRun(100, func() {
		r.SetGeometry(Geometry{Boundary: small})
		r.SetGeometry(Geometry{Boundary: big})
	})
	if allocs != 0 {
		t.Errorf("allocs per rebuild pair = %v, want 0 after high-water mark", allocs)
	}
}

func TestProjectTransformIdentity(t *testing.T) {
	m := projectTransform(Transform{Scale: Vec3{1, 1, 1}})
	want := [6]float64{1, 0, 0, -1, 0, 0} // Y-up shape space flips to Y-down screen
	for i := range m {
		if math.Abs(m[i]-want[i]) > 1e-12 {
			t.Fatalf("matrix = %v, want %v", m, want)
		}
	}
}

func TestProjectTransformTranslation(t *testing.T) {
	m := projectTransform(Transform{Position: Vec3{X: 100, Y: 40}, Scale: Vec3{1, 1, 1}})
	if m[4] != 100 || m[5] != 40 {
		t.Errorf("translation = (%v, %v), want (100, 40)", m[4], m[5])
	}
}

func TestProjectTransformTiltForeshortens(t *testing.T) {
	// Tilting around Y shrinks the projected width by cos(angle); tilting
	// around X shrinks the height. Scale magnitudes live in m[0] and m[3].
	m := projectTransform(Transform{Rotation: Vec3{Y: math.Pi / 3}, Scale: Vec3{1, 1, 1}})
	if got := math.Abs(m[0]); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("projected X scale = %v, want cos(60deg) = 0.5", got)
	}
	if got := math.Abs(m[3]); math.Abs(got-1) > 1e-12 {
		t.Errorf("projected Y scale = %v, want untouched 1", got)
	}

	m = projectTransform(Transform{Rotation: Vec3{X: math.Pi / 2}, Scale: Vec3{1, 1, 1}})
	if got := math.Abs(m[3]); got > 1e-12 {
		t.Errorf("projected Y scale = %v, want 0 at edge-on tilt", got)
	}
}

func TestProjectTransformSpin(t *testing.T) {
	// A quarter turn around Z maps local +X to screen +Y.
	m := projectTransform(Transform{Rotation: Vec3{Z: math.Pi / 2}, Scale: Vec3{1, 1, 1}})
	x := m[0]*1 + m[2]*0 + m[4]
	y := m[1]*1 + m[3]*0 + m[5]
	if math.Abs(x) > 1e-12 || math.Abs(y-1) > 1e-12 {
		t.Errorf("rotated +X maps to (%v, %v), want (0, 1)", x, y)
	}
}

func TestProjectVerticesPremultipliesColor(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 1, DstY: 2, SrcX: 0.5, SrcY: 0.5}}
	dst := make([]ebiten.Vertex, 1)
	tint := Color{R: 1, G: 0.5, B: 0, A: 0.8}
	projectVertices(src, dst, [6]float64{1, 0, 0, 1, 0, 0}, tint, 0.5)

	v := dst[0]
	wantA := float32(0.8 * 0.5)
	if math.Abs(float64(v.ColorA-wantA)) > 1e-6 {
		t.Errorf("ColorA = %v, want %v", v.ColorA, wantA)
	}
	if math.Abs(float64(v.ColorR-1*wantA)) > 1e-6 {
		t.Errorf("ColorR = %v, want premultiplied %v", v.ColorR, 1*wantA)
	}
	if math.Abs(float64(v.ColorG-0.5*wantA)) > 1e-6 {
		t.Errorf("ColorG = %v, want premultiplied %v", v.ColorG, 0.5*wantA)
	}
	if v.ColorB != 0 {
		t.Errorf("ColorB = %v, want 0", v.ColorB)
	}
	if v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Error("texture coordinates must pass through")
	}
}

func TestProjectVerticesAppliesMatrix(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 2, DstY: 3}}
	dst := make([]ebiten.Vertex, 1)
	// Scale x2, translate (10, 20), Y flip.
	projectVertices(src, dst, [6]float64{2, 0, 0, -2, 10, 20}, ColorWhite, 1)
	if dst[0].DstX != 14 || dst[0].DstY != 14 {
		t.Errorf("projected = (%v, %v), want (14, 14)", dst[0].DstX, dst[0].DstY)
	}
}

func TestEnsureVertexBufferGrowsAndReuses(t *testing.T) {
	var buf []ebiten.Vertex
	a := ensureVertexBuffer(&buf, 8)
	if len(a) != 8 {
		t.Fatalf("len = %d, want 8", len(a))
	}
	b := ensureVertexBuffer(&buf, 4)
	if len(b) != 4 || cap(b) < 8 {
		t.Errorf("len = %d cap = %d, want shrink-in-place over capacity 8", len(b), cap(b))
	}
}

func TestPanelDrivesRendererMesh(t *testing.T) {
	p := NewPanel(PanelConfig{Width: 2, Height: 1, BorderSmoothness: 8})
	r := NewEbitenRenderer()
	p.SetRenderer(r)
	p.Tick(1.0 / 60.0)

	if got, want := len(r.verts), 4*8+4; got != want {
		t.Errorf("vertex count = %d, want %d", got, want)
	}
	if r.transform.Scale != (Vec3{1, 1, 1}) {
		t.Errorf("renderer transform scale = %+v, want identity", r.transform.Scale)
	}
}
