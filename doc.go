// Package motion is a deterministic scene-graph animation engine.
//
// Motion provides the node tree, structural alignment, path interpolation,
// timing curves and the animation families (transforms, fades, partial
// reveals, growth, rotation, counters) that programmatic explainer videos
// are built from. Rendering lives in motion/render; a windowed preview
// built on [Ebitengine] lives in examples/preview.
//
// # Quick start
//
// Build nodes, wrap them in animations and play them on a [Scene]:
//
//	scene := motion.NewScene(motion.SceneConfig{FPS: 30})
//	sq := motion.NewSquare("sq", 2)
//	create, _ := motion.ShowCreation(sq, motion.Config{})
//	_ = scene.Play(create)
//
// Set [Scene.OnFrame] to receive every frame, for example to rasterize
// it with render.Rasterize.
//
// For full control, drive an [Animation] yourself: call Begin once,
// Update with non-decreasing alphas in [0, 1], then Finish:
//
//	a, _ := motion.Transform(circle, square, motion.Config{RunTime: 2})
//	if err := a.Begin(); err != nil { ... }
//	for i := 1; i <= 60; i++ {
//		a.Update(float64(i) / 60)
//	}
//	a.Finish()
//
// # Nodes
//
// Every drawable is a [Node]: groups, cubic Bézier paths, point clouds,
// text and value holders. A node's family is the node and its descendants
// in pre-order; animations work member by member over families.
//
// # Configuration
//
// Every constructor takes a [Config]. Its zero value means "family
// default" for every field; pointer fields tell an explicit zero from
// unset:
//
//	motion.Config{RunTime: 3, LagRatio: motion.Float(0.5)}
//
// Timing curves are [RateFunc] values. The explainer curves ([Smooth],
// [ThereAndBack], ...) and the Penner curves of [gween] are registered by
// name, see [LookupRateFunc].
//
// # Composition
//
// [AnimationGroup], [LaggedStart], [LaggedStartMap] and [Succession] run
// child animations on one staggered timeline.
//
// # Scripts
//
// [ParseScript] reads YAML scene scripts; [ScriptRunner] plays them one
// frame at a time. The motion command renders scripts to PNG frames.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package motion
