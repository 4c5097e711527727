package glasspane

// OptFloat is an optional float64. The zero value is unset; unset fields
// never participate in merges and fall back to the channel's base value.
type OptFloat struct {
	val float64
	set bool
}

// Opt wraps v as a set OptFloat.
func Opt(v float64) OptFloat {
	return OptFloat{val: v, set: true}
}

// Valid reports whether the value is set.
func (o OptFloat) Valid() bool { return o.set }

// Or returns the value when set, otherwise def.
func (o OptFloat) Or(def float64) float64 {
	if o.set {
		return o.val
	}
	return def
}

// AnimationValues is a sparse override record over the animatable channel
// set. Unset fields mean "keep the base value". Records merge field by
// field: a set field in the later record overwrites, an unset field never
// does.
type AnimationValues struct {
	X, Y, Z OptFloat // absolute position (default: base position)

	// Scale drives the width/height and corner-radius targets
	// multiplicatively; ScaleX/ScaleY multiply base width/height
	// independently. ScaleZ multiplies the base transform Z scale.
	Scale, ScaleX, ScaleY, ScaleZ OptFloat

	Width, Height OptFloat // absolute dimensions; suppress Scale for that axis

	RotateX, RotateY, RotateZ OptFloat // added to base rotation

	Opacity OptFloat // default 1

	CornerRadius OptFloat // absolute radius applied to all four corners
}

// Merge returns a with every set field of over overwriting the
// corresponding field of a.
func (a AnimationValues) Merge(over AnimationValues) AnimationValues {
	mergeOpt(&a.X, over.X)
	mergeOpt(&a.Y, over.Y)
	mergeOpt(&a.Z, over.Z)
	mergeOpt(&a.Scale, over.Scale)
	mergeOpt(&a.ScaleX, over.ScaleX)
	mergeOpt(&a.ScaleY, over.ScaleY)
	mergeOpt(&a.ScaleZ, over.ScaleZ)
	mergeOpt(&a.Width, over.Width)
	mergeOpt(&a.Height, over.Height)
	mergeOpt(&a.RotateX, over.RotateX)
	mergeOpt(&a.RotateY, over.RotateY)
	mergeOpt(&a.RotateZ, over.RotateZ)
	mergeOpt(&a.Opacity, over.Opacity)
	mergeOpt(&a.CornerRadius, over.CornerRadius)
	return a
}

func mergeOpt(dst *OptFloat, src OptFloat) {
	if src.set {
		*dst = src
	}
}

// IsZero reports whether no field is set.
func (a AnimationValues) IsZero() bool {
	return a == AnimationValues{}
}

// Default per-state override records, used when the host does not supply
// its own While* record for that state.
var (
	defaultWhileHover    = AnimationValues{Scale: Opt(1.05)}
	defaultWhileTap      = AnimationValues{Scale: Opt(0.95)}
	defaultWhileActive   = AnimationValues{Scale: Opt(1.08)}
	defaultWhileDisabled = AnimationValues{Scale: Opt(0.9), Opacity: Opt(0.5)}
)

// interactionFlags is the discrete state sampled each tick. Hovered and
// pressed come from raw pointer edges; active and disabled are externally
// controlled and orthogonal.
type interactionFlags struct {
	hovered  bool
	pressed  bool
	active   bool
	disabled bool
}

// stateOverrides bundles the host-supplied per-state records. A nil entry
// selects the built-in default for that state.
type stateOverrides struct {
	whileHover    *AnimationValues
	whileTap      *AnimationValues
	whileActive   *AnimationValues
	whileDisabled *AnimationValues
}

func (s stateOverrides) hover() AnimationValues    { return orDefault(s.whileHover, defaultWhileHover) }
func (s stateOverrides) tap() AnimationValues      { return orDefault(s.whileTap, defaultWhileTap) }
func (s stateOverrides) active() AnimationValues   { return orDefault(s.whileActive, defaultWhileActive) }
func (s stateOverrides) disabled() AnimationValues { return orDefault(s.whileDisabled, defaultWhileDisabled) }

func orDefault(v *AnimationValues, def AnimationValues) AnimationValues {
	if v != nil {
		return *v
	}
	return def
}

// resolveOverrides maps the current interaction flags to one merged override
// record. Precedence: Disabled > Pressed > Hovered > Active > Idle.
//
// Active is a base layer, not a peer: when set, its record merges in before
// the precedence check, so a sparse higher-priority record only overrides
// the Active fields it actually defines. The base record (externally
// supplied offsets) sits underneath everything.
func resolveOverrides(flags interactionFlags, ov stateOverrides, base AnimationValues) AnimationValues {
	acc := base
	if flags.active {
		acc = acc.Merge(ov.active())
	}
	switch {
	case flags.disabled:
		return acc.Merge(ov.disabled())
	case flags.pressed:
		return acc.Merge(ov.tap())
	case flags.hovered:
		return acc.Merge(ov.hover())
	default:
		return acc
	}
}
