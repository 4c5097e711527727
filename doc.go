// Package glasspane is a spring-animated rounded-panel engine for
// [Ebitengine] and other frame-driven renderers.
//
// A [Panel] owns a vector of spring channels (position, rotation, scale,
// width, height, opacity, per-corner radii) and advances them toward an
// interaction-derived target each frame. The host drives the engine with a
// single call per displayed frame:
//
//	panel := glasspane.NewPanel(glasspane.PanelConfig{
//		Width: 220, Height: 120,
//		BorderRadius: glasspane.UniformRadius(24),
//	})
//	panel.SetRenderer(renderer)
//	// each frame:
//	panel.Tick(1.0 / 60)
//
// Interaction state is fed through raw pointer edges
// ([Panel.PointerEnter], [Panel.PointerLeave], [Panel.PointerDown],
// [Panel.PointerUp]) plus the externally controlled Active and Disabled
// flags. Each tick the resolved state picks an override record
// ([AnimationValues]) which the springs chase; see [Panel.Tick] for the
// exact per-frame ordering.
//
// Geometry is procedural: the rounded-rectangle boundary polygon is rebuilt
// only on frames where a dimension-affecting channel (width, height, corner
// radius) is still in motion. Transform-only channels (position, rotation,
// scale, opacity) never trigger a rebuild and are pushed to the renderer
// every frame.
//
// # Rendering
//
// The engine emits to a [Renderer] interface. [EbitenRenderer] is the
// bundled implementation: it fan-triangulates the boundary polygon and
// draws it with DrawTriangles. 3D backends can consume the same
// [Transform] and [Geometry] values and extrude the boundary using
// [ExtrudeSettings].
//
// # Scripted motion
//
// [BaseTween] animates the panel's base override record over time (via
// [gween]), for scripted drifts that compose with interaction springs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package glasspane
