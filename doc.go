// Package unveil is a retained-mode, scroll-driven page engine for
// [Ebitengine] whose core is a reveal-on-scroll animation system.
//
// A page is a tree of [Node] values rooted at [Scene.Root] and viewed through
// a [Camera], which plays the role of the browser viewport: it scrolls, and
// visibility is measured against it.
//
// # Quick start
//
//	scene := unveil.NewScene()
//	cam := scene.NewCamera(unveil.Rect{Width: 960, Height: 720})
//	cam.SetBounds(unveil.Rect{Width: 960, Height: pageHeight})
//
//	block := unveil.NewBox("block", 400, 200, unveil.RGB(214, 191, 163))
//	block.SetPosition(280, 1200)
//	scene.Root().AddChild(block)
//
//	scene.Reveal(block, unveil.RevealOptions{
//		Variant: unveil.DefaultVariants().MustGet(unveil.VariantFadeInUp),
//	})
//
//	unveil.Run(scene, unveil.RunConfig{Title: "Page", Width: 960, Height: 720})
//
// # Reveals
//
// [Scene.Reveal] binds a one-way state machine to a node. The node starts in
// its variant's hidden state. The first time its layout box enters the
// viewport, it interpolates to the visible state and stays there. Variants
// with a [StaggerPlan] also reveal their children one after another, child i
// starting i × Increment seconds after the container.
//
// Visibility is measured once per [Scene.Update] by the observer registry
// ([Scene.Observe]). Entries are delivered after the measurement pass, and
// entries for released observations or disposed nodes are dropped.
//
// # Loops
//
// [Scene.StartLoop] runs a keyframe animation on a node's vertical offset from
// the moment it is created, regardless of visibility. [ScrollIndicatorLoop] is
// the bob used by the page's scroll-down hint.
//
// Tweens are computed with [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package unveil
