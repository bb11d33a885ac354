package safeprint

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Locator is the capability an error can implement to pin the source
// location it originated from. Errors without it are attributed to the
// call site of ErrorInfo — the handling site, which is the innermost
// frame still available once a Go error has been caught.
type Locator interface {
	Location() (file string, line int)
}

const noErrorMessage = "No active error to report. " +
	"ErrorInfo should be called with the error being handled."

// maxTraceFrames bounds the rendered traceback.
const maxTraceFrames = 16

// ErrorInfo prints a descriptive line for a caught error — concrete
// type name, message, and source location — followed by a short
// traceback of the handling goroutine. Output goes through Print with
// Error forced on, so it honors FilePath, FileLinesLimit, and the
// other options. A nil err prints a fixed notice instead.
func ErrorInfo(err error, opts Options) error {
	opts.Error = true
	if err == nil {
		return Print(noErrorMessage, opts)
	}

	file, line := errorLocation(err)
	msg := fmt.Sprintf("Line #: %d (%s) causes the error. %T: %v\nTraceback:\n%s",
		line, filepath.Base(file), err, err, handlerTrace())
	return Print(msg, opts)
}

// errorLocation prefers the error's own Location capability and falls
// back to the caller of ErrorInfo.
func errorLocation(err error) (string, int) {
	if loc, ok := err.(Locator); ok {
		return loc.Location()
	}
	if _, file, line, ok := runtime.Caller(2); ok {
		return file, line
	}
	return "unknown", 0
}

// handlerTrace renders the stack above ErrorInfo, innermost first.
func handlerTrace() string {
	pcs := make([]uintptr, maxTraceFrames)
	// Skip runtime.Callers, handlerTrace, and ErrorInfo itself.
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "    %s (%s:%d)\n", frame.Function, filepath.Base(frame.File), frame.Line)
		if !more {
			break
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
