// Package shimmer is a layered sprite-effect evaluator and renderer for
// [Ebitengine].
//
// Shimmer animates color tints, alpha fades, and vertex deformations over
// sprites without touching their textures: a drawable carries an
// [EffectStack] of up to six concurrent [Effect] values, each a lifetime
// window plus waves driving color, alpha, and spatial sub-effects. A single
// evaluation pass folds the whole stack into draw [Coefficients], and a Kage
// shader applies them per texel.
//
// # Quick start
//
// Build an effect fluently, push it onto a stack, and draw the stack's
// sprite through a [Renderer] each frame:
//
//	var stack shimmer.EffectStack
//	stack.SpriteIndex = 7
//	stack.Push(shimmer.NewEffect(shimmer.Looping(0, 1)).
//		Color(shimmer.Sine(2, -0.5, 0.5), shimmer.RGB{1, 0.9, 0.2},
//			shimmer.BlendAdd, shimmer.CompositeContributive).
//		Build())
//
//	r := shimmer.NewRenderer(shimmer.DefaultAtlas())
//	// in Draw:
//	r.Draw(screen, sheet, &stack, clock, &shimmer.DrawOptions{X: 160, Y: 120})
//
// Stock effects ([Flash], [FadeOut], [SquashStretch], [Shake]) cover the
// common cases; [OneShot] effects end on their own and can be swept with
// [EffectStack.Expire].
//
// # Evaluation model
//
// Everything is clock-driven: evaluation at time t depends only on the stack
// value and t, never on the previous frame. [EvaluateStack] is pure and
// allocation-free, so stacks can be evaluated anywhere, any number of times,
// including concurrently across independent stacks. [ApplyCoefficients] is
// the CPU mirror of the shader for headless use and tests.
//
// # Host layers
//
// [StackBuffer] manages slots of stacks for many drawables with dirty
// tracking, [Presets] loads named effects from YAML, and [ParamTween] eases
// effect parameters over time (via [gween]). ECS integration lives in the
// shimmer/ecs submodule ([Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package shimmer
