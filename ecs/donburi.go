package ecs

import (
	"github.com/phanxgames/panel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SignalKind names the panel signal an event came from.
type SignalKind uint8

const (
	SignalPressed SignalKind = iota
	SignalReleased
	SignalMoved
	SignalEntered
	SignalExited
)

// PanelEvent is one signal emission, as published to the world.
type PanelEvent struct {
	Signal    SignalKind
	PanelID   uint32
	PanelName string
	// Entity is set when the panel's UserData holds a donburi.Entity.
	Entity    donburi.Entity
	HasEntity bool
	// Pos is local to the panel. Zero for SignalEntered and SignalExited.
	Pos   panel.Point
	Event panel.Event
}

// PanelEventType is the Donburi event type for panel events.
var PanelEventType = events.NewEventType[PanelEvent]()

// Bridge publishes the signals of observed panels to a world.
type Bridge struct {
	world donburi.World
	conns []panel.Connection
}

// NewBridge creates a bridge publishing into world.
func NewBridge(world donburi.World) *Bridge {
	return &Bridge{world: world}
}

// Observe connects to the five signals of p. Panels added to p later are
// not observed automatically.
func (b *Bridge) Observe(p *panel.Panel) {
	pointer := func(kind SignalKind) func(panel.PointerEvent) {
		return func(pe panel.PointerEvent) {
			b.publish(p, kind, pe.Pos, pe.Event)
		}
	}
	plain := func(kind SignalKind) func(panel.Event) {
		return func(ev panel.Event) {
			b.publish(p, kind, panel.Point{}, ev)
		}
	}
	b.conns = append(b.conns,
		p.Pressed.ConnectFunc(pointer(SignalPressed)),
		p.Released.ConnectFunc(pointer(SignalReleased)),
		p.Moved.ConnectFunc(pointer(SignalMoved)),
		p.Entered.ConnectFunc(plain(SignalEntered)),
		p.Exited.ConnectFunc(plain(SignalExited)),
	)
}

// ObserveTree observes p and every current descendant.
func (b *Bridge) ObserveTree(p *panel.Panel) {
	p.Walk(func(n *panel.Panel) bool {
		b.Observe(n)
		return true
	})
}

// Close disconnects every slot the bridge registered.
func (b *Bridge) Close() {
	for _, c := range b.conns {
		c.Disconnect()
	}
	b.conns = nil
}

func (b *Bridge) publish(p *panel.Panel, kind SignalKind, pos panel.Point, ev panel.Event) {
	e := PanelEvent{
		Signal:    kind,
		PanelID:   p.ID,
		PanelName: p.Name,
		Pos:       pos,
		Event:     ev,
	}
	if ent, ok := p.UserData.(donburi.Entity); ok {
		e.Entity = ent
		e.HasEntity = true
	}
	PanelEventType.Publish(b.world, e)
}
