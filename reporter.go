package sq3

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// diagPrefix starts every diagnostic line
const diagPrefix = ";;; "

// reporter writes diagnostics to the diagnostic stream. Failures are
// highlighted when colour is enabled.
type reporter struct {
	w       io.Writer
	failure *color.Color
	warning *color.Color
}

// newReporter creates a reporter writing to w
func newReporter(w io.Writer, colorize bool) *reporter {
	failure := color.New(color.FgRed)
	warning := color.New(color.FgYellow)
	if colorize {
		failure.EnableColor()
		warning.EnableColor()
	} else {
		failure.DisableColor()
		warning.DisableColor()
	}
	return &reporter{
		w:       w,
		failure: failure,
		warning: warning,
	}
}

// info writes a prefixed diagnostic line
func (r *reporter) info(format string, args ...any) {
	fmt.Fprintf(r.w, diagPrefix+format+"\n", args...)
}

// warn writes a prefixed diagnostic line in the warning colour
func (r *reporter) warn(format string, args ...any) {
	r.warning.Fprintf(r.w, diagPrefix+format+"\n", args...)
}

// fail writes a prefixed diagnostic line in the failure colour
func (r *reporter) fail(format string, args ...any) {
	r.failure.Fprintf(r.w, diagPrefix+format+"\n", args...)
}

// plain writes an unprefixed line
func (r *reporter) plain(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// raw writes text as is
func (r *reporter) raw(text string) {
	fmt.Fprint(r.w, text)
}
