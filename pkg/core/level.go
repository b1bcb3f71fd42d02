package core

// Level represents the severity of a single log call.
type Level string

const (
	LevelLog     Level = "LOG"
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
	LevelDebug   Level = "DEBUG"
)

// Levels returns all levels in display order.
func Levels() []Level {
	return []Level{LevelLog, LevelInfo, LevelWarning, LevelError, LevelDebug}
}

// Token returns the leading-argument severity token for the level.
// The generic LOG level has no token.
func (l Level) Token() string {
	if l == LevelLog {
		return ""
	}
	return "[" + string(l) + "]"
}

// Tag returns the bracketed tag appended to a decorated prefix.
func (l Level) Tag() string {
	return "[" + string(l) + "]"
}

// JournalPriority maps the level to an sd-daemon stream priority.
func (l Level) JournalPriority() int {
	switch l {
	case LevelDebug:
		return 7
	case LevelWarning:
		return 4
	case LevelError:
		return 3
	default:
		return 6
	}
}

// DetectToken reports whether v is a recognized severity token. Only the
// four exact strings "[INFO]", "[WARNING]", "[ERROR]" and "[DEBUG]"
// count; any other value is ordinary log content.
func DetectToken(v any) (Level, bool) {
	s, ok := v.(string)
	if !ok {
		return LevelLog, false
	}
	switch s {
	case "[INFO]":
		return LevelInfo, true
	case "[WARNING]":
		return LevelWarning, true
	case "[ERROR]":
		return LevelError, true
	case "[DEBUG]":
		return LevelDebug, true
	}
	return LevelLog, false
}
