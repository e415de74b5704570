// Package panel is a minimal retained-mode panel tree that routes pointer
// input through nested rectangles and notifies observers through signals.
//
// It is meant to be embedded in an existing render/event loop: the tree
// never opens a window, polls the OS or draws primitives. The host supplies
// a [Surface] and feeds raw pointer [Event]s into a [Root].
//
// # Panels
//
// Every region is a [Panel]. Panels form a tree rooted at a [Root]. A
// panel's rectangle is relative to its parent, and children are painted and
// traversed in the order they were added.
//
//	root := panel.NewRoot(panel.NewImageSurface(ebiten.NewImage(200, 200)))
//	a := root.NewChild("a", panel.Rect{X: 10, Y: 10, Width: 50, Height: 50})
//
//	a.Entered.ConnectFunc(func(ev panel.Event) { log.Println("enter a") })
//	a.Pressed.ConnectFunc(func(pe panel.PointerEvent) {
//		log.Println("press at", pe.Pos) // local to a
//	})
//
// A panel has at most one parent. [Panel.AddChild] refuses a panel that is
// still attached elsewhere; detach it with [Panel.RemoveChild] first.
//
// # Dispatch
//
// [Root.Dispatch] walks the tree depth first and visits every child whose
// rectangle contains the pointer, translating the position into each
// child's space. Overlapping siblings all receive the event. Press, release
// and move signals fire on the way back up; move passes also diff the set
// of hovered children to fire Entered and Exited. Exiting a panel first
// exits every hovered descendant.
//
// Hit-testing ignores [Panel.Visible]: invisible panels are skipped by
// [Panel.Paint] but still receive events.
//
// # Signals
//
// A [Signal] calls its slots synchronously, in registration order. By
// default the first failing slot aborts the emission and the error unwinds
// the dispatch; [Signal.SetPolicy] with [CollectErrors] runs every slot and
// joins the failures instead.
//
// # Hosts
//
// [ImageSurface] and [EbitenInput] adapt [Ebitengine] images and mouse
// state, and [Run] wraps both into a ready-made game loop. The term
// subpackage adapts tcell screens and mouse events; the ecs module forwards
// panel signals into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package panel
