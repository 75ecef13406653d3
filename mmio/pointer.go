package mmio

import "sync/atomic"

// UniquePointer is an exclusive handle to an object of type T inside a
// live MMIO region. While it is live, nothing else may access its range.
//
// Uniqueness is a runtime convention, not a compiler guarantee: the
// consuming operations (Split, Downgrade) mark the pointer dead, and any
// later use panics with a *Violation. Pass the pointer, don't copy the
// struct — the embedded atomic makes `go vet` flag value copies.
//
// The zero value is not usable; every UniquePointer comes from a root
// constructor or from projecting another UniquePointer.
type UniquePointer[T any] struct {
	h Handle

	// moved records whether a consuming operation already took this
	// pointer's exclusivity.
	moved atomic.Bool
}

// Get returns the address handle, for projection helpers or for feeding
// the platform accessor directly. No side effect.
func (p *UniquePointer[T]) Get() Handle {
	p.checkLive("Get")
	return p.h
}

// Downgrade consumes the unique pointer and returns a shared pointer to
// the same object. Exclusivity is given up for good: shared pointers are
// duplicated without restriction and can never be upgraded back, so the
// root claim stays registered for the life of the process.
func (p *UniquePointer[T]) Downgrade() SharedPointer[T] {
	p.consume("Downgrade")
	return SharedPointer[T]{h: p.h}
}

// checkLive panics if a consuming operation already took this pointer.
func (p *UniquePointer[T]) checkLive(op string) {
	if p.moved.Load() {
		violationf("mmio: %s through a unique pointer that was already consumed", op)
	}
}

// consume marks the pointer dead, panicking if it already was.
func (p *UniquePointer[T]) consume(op string) {
	if p.moved.Swap(true) {
		violationf("mmio: %s on a unique pointer that was already consumed", op)
	}
}

// SharedPointer is a non-exclusive handle to an object of type T inside
// a live MMIO region. It exposes only side-effect-free reads, which is
// exactly what makes unrestricted duplication safe: any number of
// goroutines may hold clones and read concurrently.
//
// SharedPointer is a plain value; assignment duplicates it. Clone exists
// for call sites that want the duplication to be visible.
type SharedPointer[T any] struct {
	h Handle
}

// Get returns the address handle. No side effect.
func (s SharedPointer[T]) Get() Handle { return s.h }

// Clone returns a duplicate handle to the same object. Duplication has
// no effect on the underlying memory.
func (s SharedPointer[T]) Clone() SharedPointer[T] { return s }
