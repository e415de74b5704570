package panel

import (
	"errors"
	"slices"
	"testing"
)

func TestSignalEmitOrder(t *testing.T) {
	s := NewSignal[int]("test")
	var got []string
	s.ConnectFunc(func(v int) { got = append(got, "a") })
	s.ConnectFunc(func(v int) { got = append(got, "b") })
	s.ConnectFunc(func(v int) { got = append(got, "c") })

	if err := s.Emit(1); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSignalSamePayload(t *testing.T) {
	s := NewSignal[PointerEvent]("moved")
	var seen []PointerEvent
	for range 3 {
		s.ConnectFunc(func(pe PointerEvent) { seen = append(seen, pe) })
	}
	pe := PointerEvent{Pos: Point{4, 5}, Event: Event{Kind: EventMove}}
	_ = s.Emit(pe)
	if len(seen) != 3 {
		t.Fatalf("slots called %d times, want 3", len(seen))
	}
	for i, v := range seen {
		if v != pe {
			t.Errorf("slot %d got %v, want %v", i, v, pe)
		}
	}
}

func TestSignalNoDeduplication(t *testing.T) {
	s := NewSignal[int]("test")
	n := 0
	fn := func(int) { n++ }
	s.ConnectFunc(fn)
	s.ConnectFunc(fn)
	_ = s.Emit(0)
	if n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestSignalZeroValue(t *testing.T) {
	var s Signal[int]
	if err := s.Emit(1); err != nil {
		t.Errorf("empty emit returned %v", err)
	}
	called := false
	s.ConnectFunc(func(int) { called = true })
	_ = s.Emit(1)
	if !called {
		t.Error("slot not called on zero-value signal")
	}
}

func TestSignalDisconnect(t *testing.T) {
	s := NewSignal[int]("test")
	var got []string
	s.ConnectFunc(func(int) { got = append(got, "a") })
	b := s.ConnectFunc(func(int) { got = append(got, "b") })
	s.ConnectFunc(func(int) { got = append(got, "c") })

	b.Disconnect()
	b.Disconnect() // idempotent
	Connection{}.Disconnect()

	_ = s.Emit(0)
	if want := []string{"a", "c"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestSignalDisconnectDuringEmit(t *testing.T) {
	s := NewSignal[int]("test")
	var got []string
	var second Connection
	s.ConnectFunc(func(int) {
		got = append(got, "a")
		second.Disconnect()
	})
	second = s.ConnectFunc(func(int) { got = append(got, "b") })

	_ = s.Emit(0)
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("first emit = %v, want %v", got, want)
	}
	got = nil
	_ = s.Emit(0)
	if want := []string{"a"}; !slices.Equal(got, want) {
		t.Errorf("second emit = %v, want %v", got, want)
	}
}

func TestSignalConnectDuringEmit(t *testing.T) {
	s := NewSignal[int]("test")
	n := 0
	s.ConnectFunc(func(int) {
		s.ConnectFunc(func(int) { n++ })
	})
	_ = s.Emit(0)
	if n != 0 {
		t.Errorf("slot connected mid-emit ran in the same emission")
	}
}

func TestSignalStopOnError(t *testing.T) {
	s := NewSignal[int]("pressed")
	boom := errors.New("boom")
	var got []string
	s.ConnectFunc(func(int) { got = append(got, "a") })
	s.Connect(func(int) error { return boom })
	s.ConnectFunc(func(int) { got = append(got, "c") })

	err := s.Emit(0)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	var oe *ObserverError
	if !errors.As(err, &oe) {
		t.Fatalf("err is %T, want *ObserverError", err)
	}
	if oe.Signal != "pressed" {
		t.Errorf("Signal = %q, want pressed", oe.Signal)
	}
	if want := []string{"a"}; !slices.Equal(got, want) {
		t.Errorf("ran %v, want %v", got, want)
	}
}

func TestSignalCollectErrors(t *testing.T) {
	s := NewSignal[int]("moved")
	s.SetPolicy(CollectErrors)
	if s.Policy() != CollectErrors {
		t.Fatal("policy not set")
	}
	e1 := errors.New("first")
	e2 := errors.New("second")
	ran := 0
	s.Connect(func(int) error { ran++; return e1 })
	s.ConnectFunc(func(int) { ran++ })
	s.Connect(func(int) error { ran++; return e2 })

	err := s.Emit(0)
	if ran != 3 {
		t.Errorf("ran %d slots, want 3", ran)
	}
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Errorf("err = %v, want both failures", err)
	}
}

func TestSignalDisconnectAll(t *testing.T) {
	s := NewSignal[int]("test")
	s.ConnectFunc(func(int) {})
	s.ConnectFunc(func(int) {})
	s.DisconnectAll()
	if s.Len() != 0 {
		t.Errorf("Len = %d after DisconnectAll", s.Len())
	}
}

func TestObserverErrorMessage(t *testing.T) {
	p := New("button", Rect{})
	boom := errors.New("boom")
	p.Pressed.Connect(func(PointerEvent) error { return boom })
	err := p.Pressed.Emit(PointerEvent{})
	want := `panel: pressed observer on "button": boom`
	if err == nil || err.Error() != want {
		t.Errorf("err = %v, want %q", err, want)
	}

	unowned := (&ObserverError{Signal: "x", Err: boom}).Error()
	if unowned != "panel: x observer: boom" {
		t.Errorf("unowned message = %q", unowned)
	}
}
