// Package callsite answers "who called the logger": it parses or
// captures stack frames, drops the logger's own, and reduces the first
// caller-owned frame to a compact descriptor.
package callsite

// Sentinel values for information the stack could not provide.
const (
	GlobalScope = "Global Scope"
	UnknownFile = "unknown"
	UnknownLine = "?"
)

// Descriptor is the resolved caller of a single log call: a readable
// function name, the base file name, and the line number as text.
// Fields hold sentinels when unresolvable. A Descriptor is built fresh
// per call and never reused.
type Descriptor struct {
	Function string
	File     string
	Line     string
}

// Unknown returns the fully-unresolved descriptor.
func Unknown() Descriptor {
	return Descriptor{Function: GlobalScope, File: UnknownFile, Line: UnknownLine}
}
