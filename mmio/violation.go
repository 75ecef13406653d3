package mmio

import (
	"fmt"
	"os"
	"strings"

	"github.com/kolkov/mmiosafe/internal/mmio/callsite"
	"github.com/kolkov/mmiosafe/internal/mmio/owner"
)

// Violation is the panic value for misuse of a static invariant that Go
// could not reject at compile time: reuse of a consumed unique pointer,
// a projection escaping its aggregate, an out-of-range element index, a
// width exceeding the addressed object, or overlapping root claims.
//
// A Violation always fires before any hardware access happens. It is a
// programming error, not an operational condition — nothing in this
// package returns it as an error value, and recovering one to continue
// driving hardware is never correct. It implements error only so test
// suites and crash handlers can format it.
type Violation struct {
	msg string
}

// Error returns the violation message.
func (v *Violation) Error() string { return v.msg }

// violationf panics with a formatted *Violation.
func violationf(format string, args ...any) {
	panic(&Violation{msg: fmt.Sprintf(format, args...)})
}

// reportConflict prints an aliasing report for an overlapping root claim
// to stderr, with the construction sites of both parties, then panics.
// The format follows the runtime race report shape so log scrapers treat
// it the same way.
func reportConflict(c *owner.Conflict) {
	var b strings.Builder
	b.WriteString("==================\n")
	b.WriteString("WARNING: MMIO ALIASING VIOLATION\n")
	fmt.Fprintf(&b, "Exclusive claim of [%#x, %#x) refused at:\n",
		c.Attempted.Base, c.Attempted.Base+c.Attempted.Size)
	b.WriteString(callsite.Format(c.Attempted.Site))
	fmt.Fprintf(&b, "\nOverlaps live exclusive claim of [%#x, %#x) created at:\n",
		c.Existing.Base, c.Existing.Base+c.Existing.Size)
	b.WriteString(callsite.Format(c.Existing.Site))
	b.WriteString("==================\n")
	fmt.Fprint(os.Stderr, b.String())

	violationf("mmio: exclusive claim of [%#x, %#x) overlaps a live unique pointer",
		c.Attempted.Base, c.Attempted.Base+c.Attempted.Size)
}
