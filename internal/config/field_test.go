package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoiceFieldCycleIsCyclic(t *testing.T) {
	tests := []struct {
		name    string
		choices []string
	}{
		{"single choice", []string{"only"}},
		{"two choices", []string{"a", "b"}},
		{"https modes", []string{"off", "local", "on"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewChoiceField("test", tt.choices, 0)
			start := f.Value()
			for i := 0; i < len(tt.choices); i++ {
				f.Cycle()
			}
			assert.Equal(t, start, f.Value(), "cycling len(choices) times should return to start")
		})
	}
}

func TestChoiceFieldClampsDefaultIndex(t *testing.T) {
	f := NewChoiceField("test", []string{"a", "b"}, 10)
	assert.Equal(t, "b", f.Value())

	f = NewChoiceField("test", []string{"a", "b"}, -1)
	assert.Equal(t, "a", f.Value())
}

func TestChoiceFieldPanicsOnEmptyChoices(t *testing.T) {
	assert.Panics(t, func() { NewChoiceField("test", nil, 0) })
}

func TestToggleFieldIsItsOwnInverse(t *testing.T) {
	for _, start := range []bool{true, false} {
		f := NewToggleField("test", start)
		f.Toggle()
		f.Toggle()
		assert.Equal(t, start, f.Value())
	}
}

func TestTextFieldDisplayValue(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := NewTextField("Docroot", "")
		assert.Equal(t, "", f.DisplayValue())
	})

	t.Run("auto-detected marker", func(t *testing.T) {
		f := NewTextField("Docroot", "public")
		f.AutoDetected = true
		assert.Equal(t, "public (auto-detected)", f.DisplayValue())
	})

	t.Run("manual edit clears auto-detected marker", func(t *testing.T) {
		f := NewTextField("Docroot", "public")
		f.AutoDetected = true
		f.SetValue("web")
		assert.Equal(t, "web", f.DisplayValue())
	})
}
