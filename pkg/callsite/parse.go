package callsite

import (
	"regexp"
	"strings"
)

// Frame is one raw stack-trace frame before filtering. Line stays text;
// sources that cannot provide a number leave it empty.
type Frame struct {
	Function string
	File     string
	Line     string
}

var (
	// at Object.handle (/srv/app/handlers.js:88:15)
	atParenRE = regexp.MustCompile(`^\s*at\s+(.+?)\s+\((.+):(\d+):(\d+)\)\s*$`)
	// at /srv/app/handlers.js:88:15, with or without a leading symbol
	atBareRE = regexp.MustCompile(`^\s*at\s+(.+):(\d+):(\d+)\s*$`)
	// at bootstrap.js:7 (no column)
	atShortRE = regexp.MustCompile(`^\s*at\s+(.+):(\d+)\s*$`)
	// tab-indented location line of a goroutine trace
	goLocRE = regexp.MustCompile(`^\t+(.+):(\d+)(?:\s+\+0x[0-9a-fA-F]+)?\s*$`)
)

// ParseStack splits an opaque textual stack trace into raw frames. The
// first line is the trace header and always skipped; lines matching no
// known frame shape are uninformative and dropped, never an error. Two
// line grammars are recognized: "at symbol (path:line:col)" frames and
// goroutine-dump pairs of a function line plus an indented location.
func ParseStack(trace string) []Frame {
	lines := strings.Split(trace, "\n")
	var frames []Frame
	for i := 1; i < len(lines); i++ {
		if f, ok := parseAtLine(lines[i]); ok {
			frames = append(frames, f)
			continue
		}
		if f, ok := parseGoroutinePair(lines, i); ok {
			frames = append(frames, f)
			i++ // location line consumed
		}
	}
	return frames
}

func parseAtLine(line string) (Frame, bool) {
	if m := atParenRE.FindStringSubmatch(line); m != nil {
		return Frame{Function: m[1], File: cleanPath(m[2]), Line: m[3]}, true
	}
	if m := atBareRE.FindStringSubmatch(line); m != nil {
		symbol, path := splitBare(m[1])
		return Frame{Function: symbol, File: path, Line: m[2]}, true
	}
	if m := atShortRE.FindStringSubmatch(line); m != nil {
		symbol, path := splitBare(m[1])
		return Frame{Function: symbol, File: path, Line: m[2]}, true
	}
	return Frame{}, false
}

// splitBare separates an optional symbol from an unparenthesized
// location token. Symbols never contain path separators, so a first
// word that does is part of the path, not a symbol.
func splitBare(token string) (symbol, path string) {
	i := strings.LastIndex(token, " ")
	if i < 0 {
		return "", cleanPath(token)
	}
	head := strings.TrimSpace(token[:i])
	if strings.ContainsAny(head, `/\`) {
		return "", cleanPath(token)
	}
	return head, cleanPath(token[i+1:])
}

func cleanPath(p string) string {
	return strings.Trim(p, "()")
}

// parseGoroutinePair matches a goroutine-dump frame: a column-0 function
// line followed by a tab-indented path:line location.
func parseGoroutinePair(lines []string, i int) (Frame, bool) {
	line := lines[i]
	if line == "" || line[0] == '\t' || line[0] == ' ' {
		return Frame{}, false
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "goroutine ") && strings.HasSuffix(trimmed, ":") {
		return Frame{}, false
	}
	if i+1 >= len(lines) {
		return Frame{}, false
	}
	m := goLocRE.FindStringSubmatch(lines[i+1])
	if m == nil {
		return Frame{}, false
	}

	fn := strings.TrimPrefix(trimmed, "created by ")
	if j := strings.Index(fn, " in goroutine "); j >= 0 {
		fn = fn[:j]
	}
	if strings.HasSuffix(fn, ")") {
		if j := strings.LastIndexByte(fn, '('); j > 0 {
			fn = fn[:j]
		}
	}
	return Frame{Function: fn, File: m[1], Line: m[2]}, true
}
