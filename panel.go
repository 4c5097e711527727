package glasspane

// Defaults applied by normalizeConfig for zero-valued PanelConfig fields.
const (
	defaultDimension    = 1.0
	defaultBorderRadius = 0.2
	defaultSmoothness   = 16
	defaultStiffness    = 15.0
	defaultDamping      = 0.8
	defaultThreshold    = 0.001
)

// defaultExtrude is used when PanelConfig.Extrude is the zero value:
// a flat front face with a slim bevel profile for 3D backends.
var defaultExtrude = ExtrudeSettings{
	Depth:          0,
	BevelEnabled:   true,
	BevelThickness: 0.02,
	BevelSize:      0.02,
	BevelSegments:  3,
}

// BorderRadius is the polymorphic corner-radius input on PanelConfig:
// one scalar for all corners, or four per-corner values. The zero value
// selects the default uniform radius.
type BorderRadius struct {
	corners   CornerRadii
	uniform   float64
	perCorner bool
	valid     bool
}

// UniformRadius applies r to all four corners.
func UniformRadius(r float64) BorderRadius {
	return BorderRadius{uniform: r, valid: true}
}

// PerCornerRadius specifies each corner, clockwise from top-left.
func PerCornerRadius(tl, tr, br, bl float64) BorderRadius {
	return BorderRadius{
		corners:   CornerRadii{TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl},
		perCorner: true,
		valid:     true,
	}
}

// resolve normalizes to a concrete CornerRadii.
func (b BorderRadius) resolve() CornerRadii {
	switch {
	case b.perCorner:
		return b.corners
	case b.valid:
		return CornerRadii{b.uniform, b.uniform, b.uniform, b.uniform}
	default:
		d := defaultBorderRadius
		return CornerRadii{d, d, d, d}
	}
}

// PanelScale is the polymorphic base-scale input on PanelConfig: uniform or
// per-axis. The zero value means scale 1.
type PanelScale struct {
	v     Vec3
	valid bool
}

// UniformScale applies s to all three axes.
func UniformScale(s float64) PanelScale {
	return PanelScale{v: Vec3{s, s, s}, valid: true}
}

// PerAxisScale specifies each axis independently.
func PerAxisScale(x, y, z float64) PanelScale {
	return PanelScale{v: Vec3{x, y, z}, valid: true}
}

func (s PanelScale) resolve() Vec3 {
	if s.valid {
		return s.v
	}
	return Vec3{1, 1, 1}
}

// PanelConfig configures a Panel. The zero value of every field selects the
// documented default; configs are treated as immutable snapshots and replaced
// wholesale via Panel.Configure.
type PanelConfig struct {
	Width, Height    float64      // panel dimensions (default 1x1)
	BorderRadius     BorderRadius // default uniform 0.2
	BorderSmoothness int          // arc segments per corner (default 16, min 1)

	Position Vec3 // base position
	Rotation Vec3 // base rotation, Euler radians
	Scale    PanelScale

	// Per-state override records. Nil selects the built-in default for that
	// state (hover 1.05x, tap 0.95x, active 1.08x, disabled 0.9x at half
	// opacity).
	WhileHover    *AnimationValues
	WhileTap      *AnimationValues
	WhileActive   *AnimationValues
	WhileDisabled *AnimationValues

	SpringStrength     float64 // default 15
	Damping            float64 // default 0.8
	AnimationThreshold float64 // default 0.001

	// Optional per-family spring overrides. Motion covers position and
	// rotation channels; Shape covers dimension, scale, radius, and opacity
	// channels. Nil derives the family from the three fields above.
	MotionSpring *SpringParams
	ShapeSpring  *SpringParams

	Extrude ExtrudeSettings // zero value selects defaultExtrude
	Color   PanelColor      // default opaque white

	Active   bool
	Disabled bool
	Hidden   bool // panels are visible by default
}

// Panel is the animation controller for one glass panel. It owns all channel
// state exclusively; Tick must be called from a single goroutine, once per
// displayed frame. Panels are independent — no state is shared between
// instances.
//
// Geometry policy: a Scale override animates the width, height, and
// corner-radius channels (base value x scale) and regenerates the boundary
// polygon while they move. The transform scale channels are left alone, so
// the mesh is never scaled twice. Explicit Width/Height overrides bypass
// Scale for that axis and keep the base radii.
type Panel struct {
	cfg     PanelConfig
	radii   CornerRadii // normalized base radii
	scale   Vec3        // normalized base transform scale
	color   Color
	smooth  int
	extrude ExtrudeSettings

	springs  springVector
	flags    interactionFlags
	visible  bool
	baseAnim AnimationValues

	renderer      Renderer
	boundary      []Vec2
	geometryDirty bool
	prevDims      [len(dimensionChannels)]float64

	// Interaction callbacks, fired at most once per raw input edge.
	// All are optional.
	OnHoverStart func()
	OnHoverEnd   func()
	OnTapStart   func()
	OnTapEnd     func()
	OnClick      func()            // pointer released while not disabled
	OnToggle     func(active bool) // fired alongside OnClick with the new Active value
}

// NewPanel creates a panel at rest on the config's base values: every
// channel starts with current == target == base and zero velocity.
func NewPanel(cfg PanelConfig) *Panel {
	p := &Panel{}
	p.applyConfig(cfg)
	p.springs.reset(p.baseChannels())
	return p
}

// applyConfig normalizes cfg and captures base values and spring params.
func (p *Panel) applyConfig(cfg PanelConfig) {
	if cfg.Width <= 0 {
		cfg.Width = defaultDimension
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultDimension
	}
	if cfg.BorderSmoothness < 1 {
		cfg.BorderSmoothness = defaultSmoothness
	}
	if cfg.SpringStrength == 0 {
		cfg.SpringStrength = defaultStiffness
	}
	if cfg.Damping == 0 {
		cfg.Damping = defaultDamping
	}
	if cfg.AnimationThreshold == 0 {
		cfg.AnimationThreshold = defaultThreshold
	}
	if cfg.Extrude == (ExtrudeSettings{}) {
		cfg.Extrude = defaultExtrude
	}

	p.cfg = cfg
	p.radii = ClampRadii(cfg.BorderRadius.resolve(), cfg.Width, cfg.Height)
	p.scale = cfg.Scale.resolve()
	p.color = cfg.Color.resolve()
	p.smooth = cfg.BorderSmoothness
	p.extrude = cfg.Extrude
	p.flags.active = cfg.Active
	p.flags.disabled = cfg.Disabled
	p.visible = !cfg.Hidden
	p.geometryDirty = true

	base := SpringParams{
		Stiffness: cfg.SpringStrength,
		Damping:   cfg.Damping,
		Threshold: cfg.AnimationThreshold,
	}.normalize()
	p.springs.params[familyMotion] = base
	p.springs.params[familyShape] = base
	if cfg.MotionSpring != nil {
		p.springs.params[familyMotion] = cfg.MotionSpring.normalize()
	}
	if cfg.ShapeSpring != nil {
		p.springs.params[familyShape] = cfg.ShapeSpring.normalize()
	}
}

// baseChannels returns the at-rest channel values for the current config.
func (p *Panel) baseChannels() [numChannels]float64 {
	var base [numChannels]float64
	base[chPosX] = p.cfg.Position.X
	base[chPosY] = p.cfg.Position.Y
	base[chPosZ] = p.cfg.Position.Z
	base[chRotX] = p.cfg.Rotation.X
	base[chRotY] = p.cfg.Rotation.Y
	base[chRotZ] = p.cfg.Rotation.Z
	base[chScaleX] = p.scale.X
	base[chScaleY] = p.scale.Y
	base[chScaleZ] = p.scale.Z
	base[chWidth] = p.cfg.Width
	base[chHeight] = p.cfg.Height
	base[chOpacity] = 1
	base[chRadiusTL] = p.radii.TopLeft
	base[chRadiusTR] = p.radii.TopRight
	base[chRadiusBR] = p.radii.BottomRight
	base[chRadiusBL] = p.radii.BottomLeft
	return base
}

// Configure replaces the panel's configuration wholesale. Channel positions
// and velocities are kept, so in-flight motion glides toward the new base
// rather than snapping.
func (p *Panel) Configure(cfg PanelConfig) {
	p.applyConfig(cfg)
}

// SetRenderer attaches the render target. The next Tick emits both geometry
// and transform to it.
func (p *Panel) SetRenderer(r Renderer) {
	p.renderer = r
	p.geometryDirty = true
}

// SetBaseAnimation sets the externally supplied base override record that
// sits underneath all interaction states. Pass the zero value to clear it.
func (p *Panel) SetBaseAnimation(v AnimationValues) {
	p.baseAnim = v
}

// BaseAnimation returns the current base override record.
func (p *Panel) BaseAnimation() AnimationValues {
	return p.baseAnim
}

// --- Raw interaction inputs ---

// PointerEnter marks the panel hovered. Fires OnHoverStart on the edge.
func (p *Panel) PointerEnter() {
	if p.flags.hovered {
		return
	}
	p.flags.hovered = true
	if p.OnHoverStart != nil {
		p.OnHoverStart()
	}
}

// PointerLeave clears the hover state. Fires OnHoverEnd on the edge.
// A held press is not released; the host reports that via PointerUp.
func (p *Panel) PointerLeave() {
	if !p.flags.hovered {
		return
	}
	p.flags.hovered = false
	if p.OnHoverEnd != nil {
		p.OnHoverEnd()
	}
}

// PointerDown marks the panel pressed. Fires OnTapStart on the edge.
func (p *Panel) PointerDown() {
	if p.flags.pressed {
		return
	}
	p.flags.pressed = true
	if p.OnTapStart != nil {
		p.OnTapStart()
	}
}

// PointerUp releases a press. Fires OnTapEnd, and — unless the panel is
// disabled — OnClick plus OnToggle with the flipped Active flag.
func (p *Panel) PointerUp() {
	if !p.flags.pressed {
		return
	}
	p.flags.pressed = false
	if p.OnTapEnd != nil {
		p.OnTapEnd()
	}
	if p.flags.disabled {
		return
	}
	if p.OnClick != nil {
		p.OnClick()
	}
	p.flags.active = !p.flags.active
	if p.OnToggle != nil {
		p.OnToggle(p.flags.active)
	}
}

// SetActive sets the externally controlled Active flag.
func (p *Panel) SetActive(active bool) {
	p.flags.active = active
}

// SetDisabled sets the Disabled flag. Disabling mid-press does not snap:
// springs keep settling toward the Disabled target on subsequent ticks.
func (p *Panel) SetDisabled(disabled bool) {
	p.flags.disabled = disabled
}

// SetVisible controls whether the renderer should draw the panel.
// Visibility is not animated.
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
}

// Hovered reports the current hover state.
func (p *Panel) Hovered() bool { return p.flags.hovered }

// Pressed reports the current press state.
func (p *Panel) Pressed() bool { return p.flags.pressed }

// Active reports the toggleable Active flag.
func (p *Panel) Active() bool { return p.flags.active }

// Disabled reports the Disabled flag.
func (p *Panel) Disabled() bool { return p.flags.disabled }

// Visible reports whether the panel should be drawn.
func (p *Panel) Visible() bool { return p.visible }

// --- Per-frame update ---

// Tick advances the panel by delta seconds and emits to the renderer.
//
// Order within a tick is fixed: resolve the interaction target, write
// channel targets, integrate all springs, then decide on a geometry rebuild
// — radius and dimension targets are always final before the shape builder
// reads them. The transform is pushed every frame; geometry only on frames
// where a dimension-affecting channel moved.
func (p *Panel) Tick(delta float64) {
	resolved := resolveOverrides(p.flags, p.overrides(), p.baseAnim)
	p.applyTargets(resolved)

	for i, c := range dimensionChannels {
		p.prevDims[i] = p.springs.current[c]
	}
	p.springs.step(delta)

	if p.geometryDirty || p.dimensionsChanged() {
		p.rebuildBoundary()
		p.geometryDirty = false
		if p.renderer != nil {
			p.renderer.SetGeometry(Geometry{Boundary: p.boundary, Extrude: p.extrude})
		}
	}
	if p.renderer != nil {
		p.renderer.SetTransform(p.Transform())
	}
}

func (p *Panel) overrides() stateOverrides {
	return stateOverrides{
		whileHover:    p.cfg.WhileHover,
		whileTap:      p.cfg.WhileTap,
		whileActive:   p.cfg.WhileActive,
		whileDisabled: p.cfg.WhileDisabled,
	}
}

// applyTargets translates a resolved override record into per-channel
// targets.
func (p *Panel) applyTargets(r AnimationValues) {
	v := &p.springs
	cfg := &p.cfg

	v.setTarget(chPosX, r.X.Or(cfg.Position.X))
	v.setTarget(chPosY, r.Y.Or(cfg.Position.Y))
	v.setTarget(chPosZ, r.Z.Or(cfg.Position.Z))

	v.setTarget(chRotX, cfg.Rotation.X+r.RotateX.Or(0))
	v.setTarget(chRotY, cfg.Rotation.Y+r.RotateY.Or(0))
	v.setTarget(chRotZ, cfg.Rotation.Z+r.RotateZ.Or(0))

	v.setTarget(chScaleX, p.scale.X)
	v.setTarget(chScaleY, p.scale.Y)
	v.setTarget(chScaleZ, p.scale.Z*r.ScaleZ.Or(1))

	s := r.Scale.Or(1)
	w := r.Width.Or(cfg.Width * s * r.ScaleX.Or(1))
	h := r.Height.Or(cfg.Height * s * r.ScaleY.Or(1))
	v.setTarget(chWidth, w)
	v.setTarget(chHeight, h)

	var radii CornerRadii
	if r.CornerRadius.Valid() {
		cr := r.CornerRadius.Or(0)
		radii = CornerRadii{cr, cr, cr, cr}
	} else {
		radii = CornerRadii{
			TopLeft:     p.radii.TopLeft * s,
			TopRight:    p.radii.TopRight * s,
			BottomRight: p.radii.BottomRight * s,
			BottomLeft:  p.radii.BottomLeft * s,
		}
	}
	radii = ClampRadii(radii, w, h)
	v.setTarget(chRadiusTL, radii.TopLeft)
	v.setTarget(chRadiusTR, radii.TopRight)
	v.setTarget(chRadiusBR, radii.BottomRight)
	v.setTarget(chRadiusBL, radii.BottomLeft)

	v.setTarget(chOpacity, r.Opacity.Or(1))
}

// dimensionsChanged reports whether any dimension-affecting channel's
// current value moved during the last step. Catches both in-flight springs
// and within-threshold snaps.
func (p *Panel) dimensionsChanged() bool {
	for i, c := range dimensionChannels {
		if p.springs.current[c] != p.prevDims[i] {
			return true
		}
	}
	return false
}

// rebuildBoundary regenerates the boundary polygon from the current channel
// values into the panel's reused buffer.
func (p *Panel) rebuildBoundary() {
	cur := &p.springs.current
	p.boundary = appendBoundary(p.boundary,
		cur[chWidth], cur[chHeight],
		CornerRadii{
			TopLeft:     cur[chRadiusTL],
			TopRight:    cur[chRadiusTR],
			BottomRight: cur[chRadiusBR],
			BottomLeft:  cur[chRadiusBL],
		},
		p.smooth)
}

// --- Observers ---

// Transform returns the panel's current render transform. Also pushed to
// the attached renderer every Tick.
func (p *Panel) Transform() Transform {
	cur := &p.springs.current
	return Transform{
		Position: Vec3{cur[chPosX], cur[chPosY], cur[chPosZ]},
		Rotation: Vec3{cur[chRotX], cur[chRotY], cur[chRotZ]},
		Scale:    Vec3{cur[chScaleX], cur[chScaleY], cur[chScaleZ]},
		Opacity:  cur[chOpacity],
		Visible:  p.visible,
		Color:    p.color,
	}
}

// Dimensions returns the current animated width and height.
func (p *Panel) Dimensions() (w, h float64) {
	return p.springs.current[chWidth], p.springs.current[chHeight]
}

// Settled reports whether every channel is at rest.
func (p *Panel) Settled() bool {
	for c := channel(0); c < numChannels; c++ {
		if !p.springs.settled[c] {
			return false
		}
	}
	return true
}

// Boundary returns the most recently built boundary polygon in local shape
// space. The slice is reused across rebuilds; callers must copy what they
// keep. Builds lazily if the panel has never ticked.
func (p *Panel) Boundary() []Vec2 {
	if len(p.boundary) == 0 {
		p.rebuildBoundary()
	}
	return p.boundary
}

// Contains reports whether the local-space point (x, y) lies inside the
// panel's current silhouette. Useful for host-side pointer hit testing.
func (p *Panel) Contains(x, y float64) bool {
	return BoundaryContains(p.Boundary(), x, y)
}
