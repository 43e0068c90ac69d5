// Package config holds the editable launch configuration: a fixed, ordered
// set of fields with heterogeneous editing semantics, and the derivation of
// phpup argument vectors from their values.
package config

// Field is one editable configuration slot. Variants differ in how activation
// mutates them: TextField opens a modal edit session (driven by the TUI),
// ChoiceField cycles, ToggleField flips. Display is always a pure function of
// field state.
type Field interface {
	Label() string
	DisplayValue() string
}

// TextField is a free-form string value.
type TextField struct {
	label        string
	value        string
	AutoDetected bool
}

// NewTextField creates a text field with an initial value.
func NewTextField(label, value string) *TextField {
	return &TextField{label: label, value: value}
}

func (f *TextField) Label() string { return f.label }

func (f *TextField) Value() string { return f.value }

// SetValue replaces the value. Editing a field by hand clears the
// auto-detected marker.
func (f *TextField) SetValue(v string) {
	f.value = v
	f.AutoDetected = false
}

func (f *TextField) DisplayValue() string {
	if f.value == "" {
		return ""
	}
	if f.AutoDetected {
		return f.value + " (auto-detected)"
	}
	return f.value
}

// ChoiceField cycles through a fixed, non-empty option list.
type ChoiceField struct {
	label   string
	choices []string
	index   int
}

// NewChoiceField creates a choice field. The choice list must be non-empty;
// an out-of-range default index is clamped.
func NewChoiceField(label string, choices []string, defaultIndex int) *ChoiceField {
	if len(choices) == 0 {
		panic("config: choice field requires at least one choice")
	}
	if defaultIndex < 0 {
		defaultIndex = 0
	}
	if defaultIndex >= len(choices) {
		defaultIndex = len(choices) - 1
	}
	return &ChoiceField{label: label, choices: append([]string(nil), choices...), index: defaultIndex}
}

func (f *ChoiceField) Label() string { return f.label }

func (f *ChoiceField) Value() string { return f.choices[f.index] }

func (f *ChoiceField) DisplayValue() string { return f.Value() }

// Cycle advances to the next choice, wrapping around.
func (f *ChoiceField) Cycle() {
	f.index = (f.index + 1) % len(f.choices)
}

// ToggleField is a boolean flag.
type ToggleField struct {
	label string
	value bool
}

// NewToggleField creates a toggle field.
func NewToggleField(label string, value bool) *ToggleField {
	return &ToggleField{label: label, value: value}
}

func (f *ToggleField) Label() string { return f.label }

func (f *ToggleField) Value() bool { return f.value }

func (f *ToggleField) DisplayValue() string {
	if f.value {
		return "✅ ON"
	}
	return "❌ OFF"
}

// Toggle flips the value.
func (f *ToggleField) Toggle() {
	f.value = !f.value
}
