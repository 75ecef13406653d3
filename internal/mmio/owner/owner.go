// Package owner implements the single-owner claim ledger for MMIO ranges.
//
// Go has no affine types, so "at most one live unique pointer per address"
// cannot be proven by the compiler the way a borrow checker would. This
// package supplies the runtime convention that stands in for it: every
// root construction of a unique MMIO pointer claims its address interval
// here, and a claim that overlaps a live claim is an aliasing violation.
//
// The ledger deliberately tracks root claims only. Derived pointers
// (fields, split elements) stay inside their root's interval by
// construction, so checking them again would add hot-path cost without
// adding safety.
//
// # Thread Safety
//
// All operations take the ledger mutex. Claims happen at device setup
// time, never on the register access path, so a plain mutex over a small
// slice is the right trade-off; there is nothing here worth a lock-free
// structure.
package owner

import (
	"sync"
)

// Entry describes one live exclusive claim over an address interval.
type Entry struct {
	// ID identifies the claim for release.
	ID uint64

	// Base and Size delimit the claimed interval [Base, Base+Size).
	Base uintptr
	Size uintptr

	// Site is the callsite hash of the construction point, used when the
	// claim participates in a violation report. The ledger itself does not
	// interpret it.
	Site uint64
}

// Conflict reports an attempted claim that overlapped a live one.
type Conflict struct {
	// Attempted is the claim that was refused.
	Attempted Entry

	// Existing is the live claim it overlapped.
	Existing Entry
}

// Ledger is an interval set of live exclusive claims.
//
// The zero value is ready to use.
type Ledger struct {
	mu     sync.Mutex
	claims []Entry
	nextID uint64
}

// global is the process-wide ledger used by the public pointer layer.
var global Ledger

// Claim registers [base, base+size) as exclusively owned.
//
// On success it returns the claim ID and a nil conflict. If the interval
// overlaps any live claim, nothing is registered and the returned Conflict
// carries both parties. The caller decides how to fail; the ledger never
// panics on its own.
//
// A zero-size claim is legal and can never conflict; it still receives an
// ID so callers need not special-case it.
func (l *Ledger) Claim(base, size uintptr, site uint64) (uint64, *Conflict) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	c := Entry{ID: l.nextID, Base: base, Size: size, Site: site}

	if size > 0 {
		for i := range l.claims {
			e := &l.claims[i]
			if e.Size == 0 {
				continue
			}
			if base < e.Base+e.Size && e.Base < base+size {
				return 0, &Conflict{Attempted: c, Existing: *e}
			}
		}
	}

	l.claims = append(l.claims, c)
	return c.ID, nil
}

// Release drops a live claim. Releasing an unknown ID is a no-op: release
// runs from cleanup paths that must not fail twice.
func (l *Ledger) Release(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.claims {
		if l.claims[i].ID == id {
			last := len(l.claims) - 1
			l.claims[i] = l.claims[last]
			l.claims = l.claims[:last]
			return
		}
	}
}

// Live reports the number of live claims. Intended for tests.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.claims)
}

// Claim registers a claim with the process-wide ledger.
func Claim(base, size uintptr, site uint64) (uint64, *Conflict) {
	return global.Claim(base, size, site)
}

// Release drops a claim from the process-wide ledger.
func Release(id uint64) {
	global.Release(id)
}
