package host

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// ExitFatal is the process status for every fatal report.
const ExitFatal = 1

// PanicTag classifies a runtime panic report.
type PanicTag uint32

// PanicTagMessage is the only tag with a defined payload: UTF-8 text.
const PanicTagMessage PanicTag = 0

// Fatal is the single fatal-error path: log to the error stream, then exit
// non-zero. It never retries and never returns to the caller.
type Fatal struct {
	logger *log.Logger
	exit   func(code int)
}

// NewFatal creates a fatal path that logs through logger and terminates the process.
func NewFatal(logger *log.Logger) *Fatal {
	return &Fatal{logger: logger, exit: os.Exit}
}

// WithExit replaces the exit function. Tests use it to observe exits.
func (f *Fatal) WithExit(exit func(code int)) *Fatal {
	f.exit = exit
	return f
}

// Abort reports err and terminates with ExitFatal.
func (f *Fatal) Abort(msg string, err error, keyvals ...any) {
	if err != nil {
		keyvals = append(keyvals, "error", err)
	}
	f.logger.Error(msg, keyvals...)
	f.exit(ExitFatal)
}

// Panic handles a runtime panic report. A message-tagged text payload is
// surfaced as-is; a non-text payload or any other tag is an unreachable
// report and aborts just the same.
func (f *Fatal) Panic(tag PanicTag, payload []byte) {
	switch {
	case tag != PanicTagMessage:
		f.Abort("runtime panic with unsupported tag", nil, "tag", uint32(tag))
	case !utf8.Valid(payload):
		f.Abort("runtime panic with malformed payload", nil, "bytes", len(payload))
	default:
		f.Abort("runtime hit a panic: "+string(payload), nil)
	}
}

// Recover turns a Go panic on the calling goroutine into a fatal report.
// Use as `defer fatal.Recover()` at the top of main.
func (f *Fatal) Recover() {
	r := recover()
	if r == nil {
		return
	}
	f.Panic(PanicTagMessage, []byte(fmt.Sprint(r)))
}
