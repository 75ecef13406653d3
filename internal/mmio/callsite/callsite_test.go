package callsite

import (
	"strings"
	"testing"
)

// TestCapture_NonZero verifies that capturing from a normal goroutine
// always yields a usable hash.
func TestCapture_NonZero(t *testing.T) {
	h := Capture(0)
	if h == 0 {
		t.Fatal("Capture returned 0, expected a valid hash")
	}
	if Get(h) == nil {
		t.Error("Get returned nil for a hash Capture just stored")
	}
}

// TestCapture_Dedup verifies that the same call site produces the same
// hash and does not grow the depot.
func TestCapture_Dedup(t *testing.T) {
	var hs [2]uint64
	for i := range hs {
		hs[i] = Capture(0) // one call site, captured twice
	}

	h1, h2 := hs[0], hs[1]
	if h1 != h2 {
		t.Errorf("same call site produced different hashes: %#x vs %#x", h1, h2)
	}
	if Get(h1) != Get(h2) {
		t.Error("deduplicated hashes resolve to different traces")
	}
}

// TestCapture_DistinctSites verifies that different call sites hash
// differently.
func TestCapture_DistinctSites(t *testing.T) {
	h1 := Capture(0)
	h2 := Capture(0)
	if h1 == h2 {
		t.Errorf("distinct call sites produced identical hash %#x", h1)
	}
}

// TestFormat_ContainsCaller verifies that symbolization reaches back to
// the test function itself.
func TestFormat_ContainsCaller(t *testing.T) {
	h := Capture(0)
	out := Format(h)
	if !strings.Contains(out, "TestFormat_ContainsCaller") {
		t.Errorf("formatted site does not mention the capturing function:\n%s", out)
	}
	if !strings.Contains(out, "callsite_test.go") {
		t.Errorf("formatted site does not mention the capturing file:\n%s", out)
	}
}

// TestFormat_UnknownHash verifies the placeholder path; violation
// reporting must never fail even for a bogus hash.
func TestFormat_UnknownHash(t *testing.T) {
	out := Format(0xdeadbeef00000000)
	if !strings.Contains(out, "unavailable") {
		t.Errorf("expected placeholder for unknown hash, got:\n%s", out)
	}
}
