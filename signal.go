package panel

import "errors"

// EmitPolicy selects how a Signal reacts to a failing slot.
type EmitPolicy uint8

const (
	// StopOnError aborts the emission at the first failing slot and returns
	// its error. Slots registered after it do not run.
	StopOnError EmitPolicy = iota
	// CollectErrors runs every slot and returns all failures joined.
	CollectErrors
)

type slot[T any] struct {
	id uint32
	fn func(T) error
}

// Signal is an ordered list of slots. Emit calls every slot synchronously,
// in registration order, with the same value.
//
// The zero value is ready to use.
type Signal[T any] struct {
	name   string
	owner  *Panel
	slots  []slot[T]
	nextID uint32
	policy EmitPolicy
}

// NewSignal returns an unowned signal. The name only shows up in
// ObserverError messages.
func NewSignal[T any](name string) *Signal[T] {
	return &Signal[T]{name: name}
}

// Connection identifies one registration on a Signal.
type Connection struct {
	id     uint32
	remove func(id uint32)
}

// Disconnect unregisters the slot. Calling it more than once, or on the
// zero Connection, is a no-op.
func (c Connection) Disconnect() {
	if c.remove == nil {
		return
	}
	c.remove(c.id)
}

// Connect appends fn to the slot list. The same function may be connected
// several times; it then runs once per registration.
func (s *Signal[T]) Connect(fn func(T) error) Connection {
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})
	return Connection{id: id, remove: s.disconnect}
}

// ConnectFunc is Connect for slots that cannot fail.
func (s *Signal[T]) ConnectFunc(fn func(T)) Connection {
	return s.Connect(func(v T) error {
		fn(v)
		return nil
	})
}

func (s *Signal[T]) disconnect(id uint32) {
	for i := range s.slots {
		if s.slots[i].id == id {
			// Copy-on-write: an in-flight Emit keeps iterating its own view.
			next := make([]slot[T], 0, len(s.slots)-1)
			next = append(next, s.slots[:i]...)
			s.slots = append(next, s.slots[i+1:]...)
			return
		}
	}
}

// DisconnectAll removes every slot.
func (s *Signal[T]) DisconnectAll() {
	s.slots = nil
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// SetPolicy sets how Emit handles failing slots. The default is StopOnError.
func (s *Signal[T]) SetPolicy(p EmitPolicy) {
	s.policy = p
}

// Policy returns the current emit policy.
func (s *Signal[T]) Policy() EmitPolicy {
	return s.policy
}

// Emit calls every slot connected when the emission starts. Slots connected
// or disconnected from inside a slot take effect from the next emission.
// Slot errors are wrapped in *ObserverError. Panics are not recovered.
func (s *Signal[T]) Emit(v T) error {
	slots := s.slots
	if len(slots) == 0 {
		return nil
	}
	var errs []error
	for _, sl := range slots {
		err := sl.fn(v)
		if err == nil {
			continue
		}
		oe := s.wrap(err)
		if s.policy == StopOnError {
			return oe
		}
		errs = append(errs, oe)
	}
	return errors.Join(errs...)
}

func (s *Signal[T]) wrap(err error) *ObserverError {
	oe := &ObserverError{Signal: s.name, Err: err}
	if s.owner != nil {
		oe.Panel = s.owner.Name
	}
	return oe
}
