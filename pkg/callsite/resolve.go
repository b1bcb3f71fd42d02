package callsite

import "strings"

// Resolver filters raw frames down to the first one owned by caller
// code. A frame is dropped when its file path contains any PathMarker
// or its symbol contains any SymbolMarker; everything else survives.
type Resolver struct {
	PathMarkers   []string
	SymbolMarkers []string
}

// DefaultResolver recognizes this module's own frames plus the frames
// of the capture mechanism itself. Adding helper layers inside the
// logger keeps attribution correct as long as they live in these
// packages.
func DefaultResolver() Resolver {
	return Resolver{
		PathMarkers: []string{
			"lucerna/pkg/console/",
			"lucerna/pkg/callsite/",
			"/runtime/debug/stack.go",
		},
		SymbolMarkers: []string{
			"lucerna/pkg/console.",
			"lucerna/pkg/callsite.",
			"runtime/debug.Stack",
		},
	}
}

// Resolve returns the first frame not owned by the logger, normalized
// to a Descriptor. It never fails: an empty or fully-filtered frame
// list yields the unknown descriptor.
func (r Resolver) Resolve(frames []Frame) Descriptor {
	for _, f := range frames {
		if r.owned(f) {
			continue
		}
		return normalize(f)
	}
	return Unknown()
}

// ResolveTrace parses trace text and resolves it in one step.
func (r Resolver) ResolveTrace(trace string) Descriptor {
	return r.Resolve(ParseStack(trace))
}

func (r Resolver) owned(f Frame) bool {
	for _, m := range r.PathMarkers {
		if m != "" && strings.Contains(f.File, m) {
			return true
		}
	}
	for _, m := range r.SymbolMarkers {
		if m != "" && strings.Contains(f.Function, m) {
			return true
		}
	}
	return false
}

func normalize(f Frame) Descriptor {
	d := Descriptor{
		Function: f.Function,
		File:     baseName(f.File),
		Line:     f.Line,
	}
	if d.Function == "" || strings.HasSuffix(d.Function, "<anonymous>") {
		d.Function = GlobalScope
	}
	if d.File == "" {
		d.File = UnknownFile
	}
	if d.Line == "" {
		d.Line = UnknownLine
	}
	return d
}

// baseName strips directories from a path regardless of separator
// convention.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
