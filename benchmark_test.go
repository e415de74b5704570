package panel

import "testing"

// buildGrid creates a root with n x n cells, each holding one inner panel.
func buildGrid(n, cell int) *Root {
	root := NewRoot(newRecordSurface(n*cell, n*cell))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := root.NewChild("cell", Rect{x * cell, y * cell, cell, cell})
			c.NewChild("inner", Rect{cell / 4, cell / 4, cell / 2, cell / 2})
			c.Moved.ConnectFunc(func(PointerEvent) {})
		}
	}
	return root
}

func BenchmarkDispatchMove_Grid32(b *testing.B) {
	root := buildGrid(32, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := (i * 7) % (32 * 20)
		y := (i * 13) % (32 * 20)
		_ = root.Dispatch(Event{Kind: EventMove, Pos: Point{x, y}})
	}
}

func BenchmarkDispatchPress_Grid32(b *testing.B) {
	root := buildGrid(32, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = root.Dispatch(Event{Kind: EventPress, Pos: Point{330, 330}})
	}
}

func BenchmarkDispatchMove_Deep(b *testing.B) {
	root := NewRoot(newRecordSurface(1000, 1000))
	p := root.Panel
	for range 30 {
		p = p.NewChild("level", Rect{1, 1, 900, 900})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = root.Dispatch(Event{Kind: EventMove, Pos: Point{50 + i%2, 50}})
	}
}

func BenchmarkRender_Grid32(b *testing.B) {
	root := buildGrid(32, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Render()
	}
}

func BenchmarkSignalEmit(b *testing.B) {
	s := NewSignal[PointerEvent]("moved")
	for range 8 {
		s.ConnectFunc(func(PointerEvent) {})
	}
	pe := PointerEvent{Pos: Point{1, 1}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Emit(pe)
	}
}
