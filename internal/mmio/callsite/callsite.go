// Package callsite records and deduplicates the call sites at which MMIO
// claims are made, so that an aliasing violation can report where both of
// the conflicting pointers were constructed.
//
// Design:
//   - Fixed-size traces (8 frames, 64 bytes per trace)
//   - Hash-based deduplication (FNV-1a over the program counters)
//   - Global sync.Map storage (thread-safe)
//
// Capture happens on every root claim, which is a rare, slow-path event
// (device setup), so the ~500ns runtime.Callers cost is irrelevant. The
// hash is the only thing stored per claim; symbolization is deferred until
// a violation is actually reported.
package callsite

import (
	"fmt"
	"hash/fnv"
	"runtime"
	"strings"
	"sync"
	"unsafe"
)

// MaxFrames is the maximum number of stack frames captured per site.
// Pointer construction sites are shallow; 8 frames is more than enough to
// identify the driver code that created a claim.
const MaxFrames = 8

// Trace is a captured construction site, truncated to MaxFrames.
type Trace struct {
	PC [MaxFrames]uintptr
	N  int // number of valid entries in PC
}

// depot is the global deduplication store.
//
// Key: uint64 hash (FNV-1a of program counters)
// Value: *Trace
//
// Grows unbounded, but the number of distinct pointer construction sites in
// a program is small and fixed, so no eviction is needed.
var depot sync.Map

// Capture records the caller's stack and returns a hash that identifies it.
//
// skip has the same meaning as for runtime.Callers, relative to Capture's
// caller: 0 captures starting at the function that called Capture.
//
// Returns 0 if no stack is available.
func Capture(skip int) uint64 {
	var pcs [MaxFrames]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return 0
	}

	h := hashFrames(pcs[:n])
	if _, ok := depot.Load(h); ok {
		return h
	}
	depot.Store(h, &Trace{PC: pcs, N: n})
	return h
}

// Get retrieves a previously captured trace, or nil for an unknown hash.
func Get(hash uint64) *Trace {
	v, ok := depot.Load(hash)
	if !ok {
		return nil
	}
	return v.(*Trace)
}

// Format symbolizes a captured site into a multi-line, indented block in
// the style of a runtime stack trace. Unknown hashes yield a placeholder
// line rather than an error; violation reporting must never fail.
func Format(hash uint64) string {
	tr := Get(hash)
	if tr == nil {
		return "      [construction site unavailable]\n"
	}

	var b strings.Builder
	frames := runtime.CallersFrames(tr.PC[:tr.N])
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "      %s()\n          %s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	if b.Len() == 0 {
		return "      [construction site unavailable]\n"
	}
	return b.String()
}

// hashFrames computes an FNV-1a hash over the raw program counters.
// FNV-1a is fast and has good distribution for the small, word-aligned
// inputs we feed it.
func hashFrames(pcs []uintptr) uint64 {
	h := fnv.New64a()
	for _, pc := range pcs {
		var buf [8]byte
		*(*uintptr)(unsafe.Pointer(&buf[0])) = pc
		h.Write(buf[:])
	}
	// Reserve 0 as the "no stack" sentinel.
	sum := h.Sum64()
	if sum == 0 {
		sum = 1
	}
	return sum
}
