package mmio

import (
	"reflect"
	"unsafe"
)

// Field projects a unique pointer to an aggregate into a unique pointer
// to one of its members. The selector is executed against a zero probe of
// P allocated in ordinary memory — never against the device — so the
// member offset comes from the compiler's own layout of P and is in
// bounds by construction. A selector that returns a pointer outside the
// probe (captured from elsewhere, or past the end via unsafe arithmetic)
// is rejected before any access occurs.
//
// The parent is borrowed, not consumed: projecting several distinct
// fields in sequence is the intended use. Projections are not tracked in
// the claim ledger, so calling Field twice with the same selector yields
// two live unique pointers to the same register — keeping sibling
// projections from aliasing is the caller's discipline, as the mapping
// contract is for roots. Split is the checked alternative when every
// element needs its own owner at once.
//
//	dr := mmio.Field(uart, func(r *uartRegs) *mmio.ReadWrite[uint32] { return &r.DR })
//
// Selecting an array element works the same way; the index is bounds
// checked on the probe, so an out-of-range index panics here, not on the
// device:
//
//	e2 := mmio.Field(bank, func(r *[4]mmio.ReadPureWrite[uint32]) *mmio.ReadPureWrite[uint32] { return &r[2] })
func Field[P, F any](p *UniquePointer[P], sel func(*P) *F) *UniquePointer[F] {
	p.checkLive("Field")
	off, size := fieldOffset(sel)
	return &UniquePointer[F]{h: p.h.sub(off, size)}
}

// SharedField mirrors Field for shared pointers, yielding shared
// sub-pointers.
func SharedField[P, F any](s SharedPointer[P], sel func(*P) *F) SharedPointer[F] {
	off, size := fieldOffset(sel)
	return SharedPointer[F]{h: s.h.sub(off, size)}
}

// Elem projects a unique pointer to an array into a unique pointer to
// element i. The element type is named explicitly; a mismatch with the
// array's element type, a non-array parent or an out-of-range index all
// panic before any access:
//
//	e := mmio.Elem[mmio.ReadPureWrite[uint32]](bank, 2)
func Elem[E, A any](p *UniquePointer[A], i int) *UniquePointer[E] {
	p.checkLive("Elem")
	n, stride := arrayLayout[A, E]("Elem")
	if i < 0 || i >= n {
		violationf("mmio: Elem index %d out of range [0, %d)", i, n)
	}
	return &UniquePointer[E]{h: p.h.sub(uintptr(i)*stride, stride)}
}

// SharedElem mirrors Elem for shared pointers.
func SharedElem[E, A any](s SharedPointer[A], i int) SharedPointer[E] {
	n, stride := arrayLayout[A, E]("SharedElem")
	if i < 0 || i >= n {
		violationf("mmio: SharedElem index %d out of range [0, %d)", i, n)
	}
	return SharedPointer[E]{h: s.h.sub(uintptr(i)*stride, stride)}
}

// Split consumes a unique pointer to an array and decomposes it into one
// unique pointer per element. The results cover disjoint ranges, so the
// at-most-one-owner invariant carries over to every element; the parent
// is dead afterwards and any further use of it panics.
func Split[E, A any](p *UniquePointer[A]) []*UniquePointer[E] {
	n, stride := arrayLayout[A, E]("Split")
	p.consume("Split")
	out := make([]*UniquePointer[E], n)
	for i := range out {
		out[i] = &UniquePointer[E]{h: p.h.sub(uintptr(i)*stride, stride)}
	}
	return out
}

// fieldOffset runs the selector over a heap probe of P and derives the
// member's (offset, size), validating containment. The probe is ordinary
// zeroed memory; reading it through a careless selector is harmless and
// no device access can happen here.
func fieldOffset[P, F any](sel func(*P) *F) (uintptr, uintptr) {
	probe := new(P)
	f := sel(probe)

	psize := unsafe.Sizeof(*probe)
	fsize := unsafe.Sizeof(*f)
	off := uintptr(unsafe.Pointer(f)) - uintptr(unsafe.Pointer(probe))
	// off is unsigned: a selector result below the probe wraps around and
	// fails the same bound.
	if off > psize || off+fsize > psize {
		violationf("mmio: field selector escaped its aggregate (offset %#x, size %d, aggregate size %d)",
			off, fsize, psize)
	}
	return off, fsize
}

// arrayLayout validates that A is an array of E and returns its length
// and element stride. In Go the stride of an array element equals the
// element size, so the derived handles tile the parent exactly.
func arrayLayout[A, E any](op string) (int, uintptr) {
	at := reflect.TypeOf((*A)(nil)).Elem()
	et := reflect.TypeOf((*E)(nil)).Elem()
	if at.Kind() != reflect.Array {
		violationf("mmio: %s over non-array type %v", op, at)
	}
	if at.Elem() != et {
		violationf("mmio: %s element type %v does not match array %v", op, et, at)
	}
	return at.Len(), et.Size()
}
