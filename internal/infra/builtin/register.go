// Package builtin provides the preset issue templates written by `init`.
package builtin

// Preset is a built-in template file.
type Preset struct {
	FileName    string // File name inside the template directory
	Content     string // Full file content
	Description string // Shown by `init` output
}

// presets are the built-in templates in scaffold order.
var presets = []Preset{
	bugReportPreset,
	featureRequestPreset,
	questionPreset,
}

// Presets returns the built-in templates in scaffold order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// ChooserPreset returns the built-in template chooser (config.yml).
func ChooserPreset() Preset {
	return chooserPreset
}
