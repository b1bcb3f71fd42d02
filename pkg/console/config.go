package console

import "github.com/modoterra/lucerna/pkg/core"

// Config holds the full decoration settings of a Logger. Every field
// always carries a usable value; merging only ever overwrites.
type Config struct {
	Theme          core.Theme
	ShowDate       bool
	ShowFilename   bool
	ShowLineNumber bool
	ShowLogLevel   bool
	UseEmojis      bool
	Disable        bool
	ErrorHandling  core.ErrorPolicy
}

// DefaultConfig returns the settings a new Logger starts with.
func DefaultConfig() Config {
	return Config{
		Theme:          core.ThemeDark,
		ShowDate:       true,
		ShowFilename:   true,
		ShowLineNumber: true,
		ShowLogLevel:   true,
		UseEmojis:      true,
		ErrorHandling:  core.PolicySilent,
	}
}

// Overlay is a partial Config: nil fields leave the current value
// alone. The YAML keys are the public configuration surface; unknown
// keys in a settings document are ignored, so older binaries accept
// newer files.
type Overlay struct {
	Theme          *core.Theme       `yaml:"theme,omitempty"`
	ShowDate       *bool             `yaml:"showDate,omitempty"`
	ShowFilename   *bool             `yaml:"showFilename,omitempty"`
	ShowLineNumber *bool             `yaml:"showLineNumber,omitempty"`
	ShowLogLevel   *bool             `yaml:"showLogLevel,omitempty"`
	UseEmojis      *bool             `yaml:"useEmojis,omitempty"`
	Disable        *bool             `yaml:"disable,omitempty"`
	ErrorHandling  *core.ErrorPolicy `yaml:"errorHandling,omitempty"`
}

// Apply overwrites the fields of c that o carries. Absent fields keep
// their current setting; applying the same overlay twice changes
// nothing further.
func (o Overlay) Apply(c *Config) {
	if o.Theme != nil {
		c.Theme = *o.Theme
	}
	if o.ShowDate != nil {
		c.ShowDate = *o.ShowDate
	}
	if o.ShowFilename != nil {
		c.ShowFilename = *o.ShowFilename
	}
	if o.ShowLineNumber != nil {
		c.ShowLineNumber = *o.ShowLineNumber
	}
	if o.ShowLogLevel != nil {
		c.ShowLogLevel = *o.ShowLogLevel
	}
	if o.UseEmojis != nil {
		c.UseEmojis = *o.UseEmojis
	}
	if o.Disable != nil {
		c.Disable = *o.Disable
	}
	if o.ErrorHandling != nil {
		c.ErrorHandling = *o.ErrorHandling
	}
}
