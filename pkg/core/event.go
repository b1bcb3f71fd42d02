package core

// Event is a single decorated output unit handed to a sink. Args carry
// the caller's values in order, with a consumed severity token removed.
type Event struct {
	Level  Level
	Prefix string
	Args   []any
}
