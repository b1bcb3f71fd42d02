// Package buildinfo carries version metadata injected via -ldflags.
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version banner.
func String() string {
	return Version + " (" + Commit + ") built " + Date
}
