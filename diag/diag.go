// Package diag reports programmer misuse of the formatter APIs.
//
// A formatter handed an impossible argument (an address too short for
// its format, a field of no bits) is looking at a caller bug, not a
// data condition. Bugf logs the report and panics with a *Bug so the
// enclosing unit of work stops; it is deliberately not a recoverable
// error channel. Code that owns a unit of work (one packet, one input
// line) converts the panic back to an error at its boundary with Catch.
package diag

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Logger receives bug reports before the panic. Swap it out to
// redirect or silence reports (tests point it at io.Discard).
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.ErrorLevel,
	Prefix: "pktfmt",
})

// Bug is the panic payload carried out of Bugf. It satisfies error so
// Catch can hand it to normal error paths.
type Bug struct {
	msg string
}

func (b *Bug) Error() string { return b.msg }

// Bugf reports a caller bug and aborts the current unit of work by
// panicking with a *Bug.
func Bugf(format string, args ...any) {
	b := &Bug{msg: fmt.Sprintf(format, args...)}
	Logger.Error("formatter misuse", "err", b.msg)
	panic(b)
}

// Catch recovers a *Bug panic into *err. Defer it at the boundary of a
// unit of work:
//
//	func renderLine(in string) (err error) {
//		defer diag.Catch(&err)
//		...
//	}
//
// Panics that are not *Bug are re-raised untouched.
func Catch(err *error) {
	switch v := recover().(type) {
	case nil:
	case *Bug:
		*err = v
	default:
		panic(v)
	}
}
