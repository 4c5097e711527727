package glasspane

import "math"

// springTimeScale converts spring velocity into per-frame displacement.
// Relative responsiveness between channels depends on every channel sharing
// this constant; do not vary it per channel.
const springTimeScale = 50.0

// Spring parameter clamping bounds. Degenerate inputs (stiffness <= 0,
// damping outside (0,1], mass <= 0) are clamped at normalization time so the
// integrator can never diverge.
const (
	minStiffness = 0.01
	minDamping   = 0.01
	minThreshold = 1e-9
)

// SpringParams tunes one spring family.
//
// Damping is a multiplicative velocity decay applied once per step, not a
// physical damping coefficient: 0.8 means velocity keeps 80% of its
// magnitude each frame. Stable, visually pleasing ranges are stiffness
// 6-25 with damping 0.6-0.85.
type SpringParams struct {
	Stiffness float64 // restoring force per unit displacement (>0)
	Damping   float64 // velocity retained per step, in (0, 1]
	Mass      float64 // inertia divisor (>0, default 1)
	Threshold float64 // settle distance for displacement and velocity (>0)
}

// normalize clamps degenerate values into safe ranges and fills defaults.
func (p SpringParams) normalize() SpringParams {
	if p.Stiffness <= 0 {
		p.Stiffness = minStiffness
	}
	if p.Damping <= 0 {
		p.Damping = minDamping
	} else if p.Damping > 1 {
		p.Damping = 1
	}
	if p.Mass <= 0 {
		p.Mass = 1
	}
	if p.Threshold <= 0 {
		p.Threshold = minThreshold
	}
	return p
}

// StepSpring advances one scalar spring channel by delta seconds using
// explicit Euler integration:
//
//	v' = (v + disp*stiffness/mass*delta) * damping
//	c' = c + v'*delta*springTimeScale
//
// When both displacement and new velocity are inside the settle threshold,
// the value snaps to the target with zero velocity and settled is true.
// Deterministic: identical inputs always produce identical outputs.
func StepSpring(current, target, velocity, delta float64, p SpringParams) (newCurrent, newVelocity float64, settled bool) {
	disp := target - current
	force := disp * p.Stiffness / p.Mass
	newVelocity = (velocity + force*delta) * p.Damping
	newCurrent = current + newVelocity*delta*springTimeScale

	if math.Abs(target-newCurrent) < p.Threshold && math.Abs(newVelocity) < p.Threshold {
		return target, 0, true
	}
	return newCurrent, newVelocity, false
}

// --- Channel vector ---

// channel indexes one animatable scalar in the spring vector.
type channel int

const (
	chPosX channel = iota
	chPosY
	chPosZ
	chRotX
	chRotY
	chRotZ
	chScaleX
	chScaleY
	chScaleZ
	chWidth
	chHeight
	chOpacity
	chRadiusTL
	chRadiusTR
	chRadiusBR
	chRadiusBL
	numChannels
)

// dimensionChannels are the channels whose motion requires a geometry
// rebuild. Everything else is transform-only.
var dimensionChannels = [...]channel{
	chWidth, chHeight, chRadiusTL, chRadiusTR, chRadiusBR, chRadiusBL,
}

// family selects which SpringParams a channel uses.
func (c channel) family() springFamily {
	switch c {
	case chPosX, chPosY, chPosZ, chRotX, chRotY, chRotZ:
		return familyMotion
	default:
		return familyShape
	}
}

type springFamily int

const (
	familyMotion springFamily = iota // position and rotation channels
	familyShape                      // dimension, scale, radius, opacity channels
	numFamilies
)

// springVector owns current/target/velocity for the full channel set and
// steps them together. Exclusively mutated by the owning Panel; never shared.
type springVector struct {
	current  [numChannels]float64
	target   [numChannels]float64
	velocity [numChannels]float64
	settled  [numChannels]bool
	params   [numFamilies]SpringParams
}

// reset initializes every channel to at-rest on the given base values.
func (v *springVector) reset(base [numChannels]float64) {
	for c := channel(0); c < numChannels; c++ {
		v.current[c] = base[c]
		v.target[c] = base[c]
		v.velocity[c] = 0
		v.settled[c] = true
	}
}

// setTarget updates one channel's target. Current value and velocity are
// untouched; the spring glides from wherever it is.
func (v *springVector) setTarget(c channel, t float64) {
	v.target[c] = t
}

// step advances every channel by delta seconds.
func (v *springVector) step(delta float64) {
	for c := channel(0); c < numChannels; c++ {
		p := v.params[c.family()]
		v.current[c], v.velocity[c], v.settled[c] = StepSpring(
			v.current[c], v.target[c], v.velocity[c], delta, p)
	}
}

// dimensionsMoving reports whether any dimension-affecting channel is still
// animating after the most recent step.
func (v *springVector) dimensionsMoving() bool {
	for _, c := range dimensionChannels {
		if !v.settled[c] {
			return true
		}
	}
	return false
}
