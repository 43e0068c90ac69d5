package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayoutNarrow(t *testing.T) {
	l := ComputeLayout(40, 30, 13, 5, false)

	assert.False(t, l.ShowActions)
	assert.Equal(t, 0, l.ActionsWidth)
	assert.Equal(t, 36, l.ContentWidth, "panels use full width minus margin")
}

func TestComputeLayoutActionsWidthClamped(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"small terminal clamps to minimum", 60, 25},
		{"quarter width in range", 120, 30},
		{"wide terminal clamps to maximum", 300, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(tt.width, 40, 13, 5, false)
			assert.True(t, l.ShowActions)
			assert.Equal(t, tt.want, l.ActionsWidth)
			assert.Equal(t, tt.width-tt.want-5, l.ContentWidth)
			assert.Equal(t, tt.width-tt.want-2, l.ActionsX)
		})
	}
}

func TestComputeLayoutProjectHeight(t *testing.T) {
	t.Run("tall terminal caps adaptive height", func(t *testing.T) {
		l := ComputeLayout(120, 60, 13, 30, false)
		assert.Equal(t, 12, l.ProjectHeight)
	})

	t.Run("adaptive height tracks content when small", func(t *testing.T) {
		l := ComputeLayout(120, 60, 13, 4, false)
		assert.Equal(t, 6, l.ProjectHeight)
	})

	t.Run("short terminal uses content-derived height", func(t *testing.T) {
		l := ComputeLayout(120, 18, 13, 4, false)
		assert.Equal(t, 7, l.ProjectHeight)
	})
}

func TestComputeLayoutPreviewThresholds(t *testing.T) {
	// ConfigY = 2 + projectHeight + 1, config minimum = 13+5 = 18,
	// PreviewY = ConfigY + configHeight + 1. Remaining = height-PreviewY-1.
	base := func(height int) Layout {
		return ComputeLayout(120, height, 13, 4, false)
	}

	t.Run("omitted below three rows", func(t *testing.T) {
		l := base(29)
		assert.Less(t, l.Height-l.PreviewY-1, 3)
		assert.Equal(t, 0, l.PreviewHeight)
	})

	t.Run("compact between three and five rows", func(t *testing.T) {
		l := base(32)
		remaining := l.Height - l.PreviewY - 1
		assert.GreaterOrEqual(t, remaining, 3)
		assert.Less(t, remaining, 5)
		assert.Equal(t, 3, l.PreviewHeight)
		assert.False(t, l.PreviewExpanded)
	})

	t.Run("expanded at five rows or more", func(t *testing.T) {
		l := base(45)
		assert.GreaterOrEqual(t, l.Height-l.PreviewY-1, 5)
		assert.Equal(t, 5, l.PreviewHeight)
		assert.True(t, l.PreviewExpanded)
	})
}

func TestComputeLayoutIdempotent(t *testing.T) {
	a := ComputeLayout(100, 35, 13, 6, true)
	b := ComputeLayout(100, 35, 13, 6, true)
	assert.Equal(t, a, b)
}

func TestFieldRowRoundTrip(t *testing.T) {
	l := ComputeLayout(120, 50, 13, 5, false)

	for i := 0; i < 13; i++ {
		assert.Equal(t, i, l.FieldIndexAt(l.FieldRow(i), 13))
	}

	// Fields past the fourth sit one row lower, below the section header.
	assert.Equal(t, l.FieldRow(3)+2, l.FieldRow(4))
	assert.Equal(t, -1, l.FieldIndexAt(l.FieldRow(3)+1, 13))
	assert.Equal(t, -1, l.FieldIndexAt(0, 13))
}
