// Package ecs forwards panel signals into a [Donburi] world.
//
// A [Bridge] connects to the five signals of every panel it observes and
// publishes each emission as a [PanelEvent]. Subscribe to [PanelEventType]
// in your ECS systems and drain the queue with ProcessEvents.
//
// Usage:
//
//	bridge := ecs.NewBridge(world)
//	bridge.ObserveTree(root.Panel)
//	defer bridge.Close()
//
// Panels whose UserData holds a donburi.Entity tag their events with it.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
