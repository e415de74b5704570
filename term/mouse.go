package term

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/panel"
)

var buttonMap = [...]struct {
	mask   tcell.ButtonMask
	button panel.MouseButton
}{
	{tcell.Button1, panel.MouseButtonLeft},
	{tcell.Button2, panel.MouseButtonRight},
	{tcell.Button3, panel.MouseButtonMiddle},
}

// MouseTranslator turns tcell mouse reports, which carry the full button
// state, into discrete move, press and release events.
type MouseTranslator struct {
	prev    tcell.ButtonMask
	last    panel.Point
	hasLast bool
}

// Translate appends the events implied by ev to buf. The tcell event is
// carried as the payload of every produced event. Wheel reports only
// produce a move when the position changed.
func (m *MouseTranslator) Translate(ev *tcell.EventMouse, buf []panel.Event) []panel.Event {
	x, y := ev.Position()
	pos := panel.Point{X: x, Y: y}
	mods := modifiers(ev.Modifiers())
	buttons := ev.Buttons()

	if !m.hasLast || pos != m.last {
		buf = append(buf, panel.Event{Kind: panel.EventMove, Pos: pos, Modifiers: mods, Payload: ev})
		m.last = pos
		m.hasLast = true
	}
	for _, bm := range buttonMap {
		was := m.prev&bm.mask != 0
		now := buttons&bm.mask != 0
		if was == now {
			continue
		}
		kind := panel.EventRelease
		if now {
			kind = panel.EventPress
		}
		buf = append(buf, panel.Event{Kind: kind, Pos: pos, Button: bm.button, Modifiers: mods, Payload: ev})
	}
	m.prev = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	return buf
}

func modifiers(mm tcell.ModMask) panel.KeyModifiers {
	var mods panel.KeyModifiers
	if mm&tcell.ModShift != 0 {
		mods |= panel.ModShift
	}
	if mm&tcell.ModCtrl != 0 {
		mods |= panel.ModCtrl
	}
	if mm&tcell.ModAlt != 0 {
		mods |= panel.ModAlt
	}
	if mm&tcell.ModMeta != 0 {
		mods |= panel.ModMeta
	}
	return mods
}

// Loop renders root and feeds it every mouse event from screen until ctx is
// done, Ctrl-C is pressed, the screen is finalized or an observer fails.
// Resize events re-cover the whole screen. Other events are ignored.
//
// root must have been created over a CellSurface of screen.
func Loop(ctx context.Context, screen tcell.Screen, root *panel.Root) error {
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	screen.EnableMouse()
	render(screen, root)

	var mt MouseTranslator
	var buf []panel.Event
	for {
		ev := screen.PollEvent()
		if err := ctx.Err(); err != nil {
			return err
		}
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventMouse:
			buf = mt.Translate(ev, buf[:0])
			if err := root.DispatchAll(buf); err != nil {
				return err
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			continue
		case *tcell.EventResize:
			screen.Sync()
			root.SetSurface(NewCellSurface(screen))
		default:
			continue
		}
		render(screen, root)
	}
}

func render(screen tcell.Screen, root *panel.Root) {
	screen.Clear()
	root.Render()
	screen.Show()
}
