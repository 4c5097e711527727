package glasspane

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BaseTween animates up to 4 fields of a Panel's base override record
// simultaneously. Create one via the convenience constructors
// (TweenBasePosition, TweenBaseScale, TweenBaseRotation, TweenBaseOpacity)
// and call Update(dt) each frame before Panel.Tick. The tweened values move
// the spring targets, so interaction states still layer on top and the
// springs do the smoothing.
//
// There is no global animation manager — hosts call Update themselves.
type BaseTween struct {
	tweens [4]*gween.Tween
	apply  [4]func(*AnimationValues, float64)
	count  int
	panel  *Panel
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values into the
// panel's base override record.
func (b *BaseTween) Update(dt float32) {
	if b.Done {
		return
	}

	vals := b.panel.BaseAnimation()
	allDone := true
	for i := 0; i < b.count; i++ {
		v, finished := b.tweens[i].Update(dt)
		b.apply[i](&vals, float64(v))
		if !finished {
			allDone = false
		}
	}
	b.Done = allDone
	b.panel.SetBaseAnimation(vals)
}

// TweenBasePosition animates the panel's base X/Y/Z position overrides to
// the given point over duration seconds using the easing function.
func TweenBasePosition(p *Panel, to Vec3, duration float32, fn ease.TweenFunc) *BaseTween {
	base := p.BaseAnimation()
	from := Vec3{
		X: base.X.Or(p.cfg.Position.X),
		Y: base.Y.Or(p.cfg.Position.Y),
		Z: base.Z.Or(p.cfg.Position.Z),
	}
	b := &BaseTween{count: 3, panel: p}
	b.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	b.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	b.tweens[2] = gween.New(float32(from.Z), float32(to.Z), duration, fn)
	b.apply[0] = func(v *AnimationValues, f float64) { v.X = Opt(f) }
	b.apply[1] = func(v *AnimationValues, f float64) { v.Y = Opt(f) }
	b.apply[2] = func(v *AnimationValues, f float64) { v.Z = Opt(f) }
	return b
}

// TweenBaseRotation animates the panel's base rotation offsets (added to
// the config rotation) to the given Euler angles.
func TweenBaseRotation(p *Panel, to Vec3, duration float32, fn ease.TweenFunc) *BaseTween {
	base := p.BaseAnimation()
	from := Vec3{
		X: base.RotateX.Or(0),
		Y: base.RotateY.Or(0),
		Z: base.RotateZ.Or(0),
	}
	b := &BaseTween{count: 3, panel: p}
	b.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	b.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	b.tweens[2] = gween.New(float32(from.Z), float32(to.Z), duration, fn)
	b.apply[0] = func(v *AnimationValues, f float64) { v.RotateX = Opt(f) }
	b.apply[1] = func(v *AnimationValues, f float64) { v.RotateY = Opt(f) }
	b.apply[2] = func(v *AnimationValues, f float64) { v.RotateZ = Opt(f) }
	return b
}

// TweenBaseScale animates the panel's base Scale override to the target
// factor.
func TweenBaseScale(p *Panel, to float64, duration float32, fn ease.TweenFunc) *BaseTween {
	from := p.BaseAnimation().Scale.Or(1)
	b := &BaseTween{count: 1, panel: p}
	b.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	b.apply[0] = func(v *AnimationValues, f float64) { v.Scale = Opt(f) }
	return b
}

// TweenBaseOpacity animates the panel's base Opacity override to the target
// value.
func TweenBaseOpacity(p *Panel, to float64, duration float32, fn ease.TweenFunc) *BaseTween {
	from := p.BaseAnimation().Opacity.Or(1)
	b := &BaseTween{count: 1, panel: p}
	b.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	b.apply[0] = func(v *AnimationValues, f float64) { v.Opacity = Opt(f) }
	return b
}
