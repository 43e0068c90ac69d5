package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollablePanelClamping(t *testing.T) {
	var s ScrollablePanel
	s.SetContent(10, 4)

	s.ScrollBy(-5)
	assert.Equal(t, 0, s.Offset(), "never scrolls above the top")
	assert.False(t, s.CanScrollUp())
	assert.True(t, s.CanScrollDown())

	s.ScrollBy(100)
	assert.Equal(t, 6, s.Offset(), "never scrolls past the bottom")
	assert.True(t, s.CanScrollUp())
	assert.False(t, s.CanScrollDown())

	start, end := s.Window()
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)
}

func TestScrollablePanelDegenerateSizes(t *testing.T) {
	t.Run("content shorter than window", func(t *testing.T) {
		var s ScrollablePanel
		s.SetContent(2, 5)
		s.ScrollBy(3)
		assert.Equal(t, 0, s.Offset())
		assert.False(t, s.CanScrollUp())
		assert.False(t, s.CanScrollDown())
	})

	t.Run("zero heights", func(t *testing.T) {
		var s ScrollablePanel
		s.SetContent(0, 0)
		s.ScrollBy(1)
		s.ScrollBy(-1)
		assert.Equal(t, 0, s.Offset())
		start, end := s.Window()
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})
}

func TestScrollablePanelReclampsOnShrink(t *testing.T) {
	var s ScrollablePanel
	s.SetContent(20, 5)
	s.ScrollToBottom()
	assert.Equal(t, 15, s.Offset())

	s.SetContent(8, 5)
	assert.Equal(t, 3, s.Offset())

	s.ScrollToTop()
	assert.Equal(t, 0, s.Offset())
}
