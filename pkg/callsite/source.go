package callsite

import (
	"runtime"
	"runtime/debug"
	"strconv"
)

// Source produces the raw frames a Resolver filters. Implementations
// cover one introspection mechanism each.
type Source interface {
	Frames() []Frame
}

// TraceSource wraps an already-captured textual stack trace.
type TraceSource struct {
	Trace string
}

func (s TraceSource) Frames() []Frame {
	return ParseStack(s.Trace)
}

// RuntimeSource captures structured frames from the calling goroutine.
type RuntimeSource struct {
	// Skip drops that many extra frames below the Frames caller.
	Skip int
}

func (s RuntimeSource) Frames() []Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2+s.Skip, pcs)
	if n == 0 {
		return nil
	}

	var out []Frame
	iter := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := iter.Next()
		if fr.Function != "" || fr.File != "" {
			out = append(out, Frame{
				Function: fr.Function,
				File:     fr.File,
				Line:     lineText(fr.Line),
			})
		}
		if !more {
			break
		}
	}
	return out
}

// CaptureStack returns the running goroutine's trace in textual form,
// suitable for TraceSource.
func CaptureStack() string {
	return string(debug.Stack())
}

func lineText(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
