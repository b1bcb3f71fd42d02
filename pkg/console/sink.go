package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	sdjournal "github.com/coreos/go-systemd/v22/journal"
	"github.com/mattn/go-isatty"

	"github.com/modoterra/lucerna/pkg/core"
)

// Sink receives fully assembled events. Implementations own the final
// rendering decision for their medium.
type Sink interface {
	Write(e core.Event) error
}

// ConsoleSink writes decorated lines to a terminal, pipe or systemd
// journal stream. Capability is probed once at construction: ANSI
// styling survives only on real terminals without NO_COLOR set, and
// journal streams get sd-daemon <N> priority prefixes instead.
type ConsoleSink struct {
	mu      sync.Mutex
	w       io.Writer
	styled  bool
	journal bool
}

// NewConsoleSink builds a sink for w.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	s := &ConsoleSink{w: w}
	if f, ok := w.(*os.File); ok {
		switch f {
		case os.Stderr:
			s.journal, _ = sdjournal.StderrIsJournalStream()
		case os.Stdout:
			s.journal, _ = sdjournal.StdoutIsJournalStream()
		}
		if !s.journal {
			s.styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	if os.Getenv("NO_COLOR") != "" {
		s.styled = false
	}
	return s
}

// Write renders one event as a single line. Args are formatted with
// their native %v representation, space separated, never reordered.
func (s *ConsoleSink) Write(e core.Event) error {
	var b strings.Builder
	if s.journal {
		fmt.Fprintf(&b, "<%d>", e.Level.JournalPriority())
	}
	prefix := e.Prefix
	if !s.styled {
		prefix = stripANSI(prefix)
	}
	b.WriteString(prefix)
	for i, a := range e.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", a)
	}
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, b.String())
	return err
}

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes SGR escape sequences for media that cannot render
// them.
func stripANSI(s string) string {
	if !strings.Contains(s, "\x1b[") {
		return s
	}
	return ansiSeq.ReplaceAllString(s, "")
}
