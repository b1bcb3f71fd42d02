// Package settings loads and stores the lucerna.yaml configuration
// overlay consumed by the console logger.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/modoterra/lucerna/pkg/console"
	"github.com/modoterra/lucerna/pkg/core"
)

// FileName is the canonical settings file name.
const FileName = "lucerna.yaml"

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "lucerna", FileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, ".config", "lucerna", FileName)
}

// Load reads and parses the overlay at path.
func Load(path string) (console.Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return console.Overlay{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document into an overlay. Unknown keys are
// ignored so older binaries accept newer files.
func Parse(data []byte) (console.Overlay, error) {
	var o console.Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return console.Overlay{}, fmt.Errorf("parse settings: %w", err)
	}
	return o, nil
}

// Save writes the overlay to path, creating parent directories.
func Save(path string, o console.Overlay) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Validate reports values the logger would silently fall back on.
// Tooling surfaces them; the logger itself stays lenient.
func Validate(o console.Overlay) []error {
	var errs []error
	if o.Theme != nil && !o.Theme.Known() {
		errs = append(errs, fmt.Errorf("unknown theme %q (known: dark, light, neon, minimal)", *o.Theme))
	}
	if o.ErrorHandling != nil && !o.ErrorHandling.Known() {
		errs = append(errs, fmt.Errorf("unknown errorHandling %q (known: silent, fallback, throw)", *o.ErrorHandling))
	}
	return errs
}

// FromEnv builds an overlay from LUCERNA_* environment variables.
// Malformed boolean values are ignored rather than reported: env
// decoration tweaks are never load-bearing.
func FromEnv() console.Overlay {
	var o console.Overlay
	if v := os.Getenv("LUCERNA_THEME"); v != "" {
		t := core.Theme(v)
		o.Theme = &t
	}
	o.ShowDate = envBool("LUCERNA_SHOW_DATE")
	o.ShowFilename = envBool("LUCERNA_SHOW_FILENAME")
	o.ShowLineNumber = envBool("LUCERNA_SHOW_LINE_NUMBER")
	o.ShowLogLevel = envBool("LUCERNA_SHOW_LOG_LEVEL")
	o.UseEmojis = envBool("LUCERNA_EMOJIS")
	o.Disable = envBool("LUCERNA_DISABLE")
	if v := os.Getenv("LUCERNA_ERROR_HANDLING"); v != "" {
		p := core.ErrorPolicy(v)
		o.ErrorHandling = &p
	}
	return o
}

// Effective resolves the configuration for this process: defaults,
// then the settings file if present, then environment overrides.
func Effective(path string) console.Config {
	cfg := console.DefaultConfig()
	if o, err := Load(path); err == nil {
		o.Apply(&cfg)
	}
	FromEnv().Apply(&cfg)
	return cfg
}

func envBool(key string) *bool {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

const defaultFile = `# lucerna console decoration settings
theme: dark            # dark, light, neon, minimal
showDate: true
showFilename: true
showLineNumber: true
showLogLevel: true
useEmojis: true
disable: false
errorHandling: silent  # silent, fallback, throw
`

// WriteDefault writes a commented starter file to path. Existing files
// are left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists: %s", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
