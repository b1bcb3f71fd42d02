package core

// Theme names a set of prefix styling rules.
type Theme string

const (
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
	ThemeNeon    Theme = "neon"
	ThemeMinimal Theme = "minimal"
)

// Themes returns all known themes.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight, ThemeNeon, ThemeMinimal}
}

// Known reports whether the theme is one of the recognized names.
// Unknown themes are not an error: style lookup falls back to dark.
func (t Theme) Known() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeNeon, ThemeMinimal:
		return true
	}
	return false
}

// ErrorPolicy controls what an emit failure does.
type ErrorPolicy string

const (
	PolicySilent   ErrorPolicy = "silent"
	PolicyFallback ErrorPolicy = "fallback"
	PolicyThrow    ErrorPolicy = "throw"
)

// Policies returns all known error policies.
func Policies() []ErrorPolicy {
	return []ErrorPolicy{PolicySilent, PolicyFallback, PolicyThrow}
}

// Known reports whether the policy is one of the recognized names.
func (p ErrorPolicy) Known() bool {
	switch p {
	case PolicySilent, PolicyFallback, PolicyThrow:
		return true
	}
	return false
}
