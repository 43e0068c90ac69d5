package tui

// ScrollablePanel tracks a scroll offset over a list of content lines.
// The offset is clamped so the visible window never runs past either
// end of the content.
type ScrollablePanel struct {
	offset  int
	total   int
	visible int
}

// SetContent records the content length and visible window height,
// re-clamping the current offset.
func (s *ScrollablePanel) SetContent(total, visible int) {
	s.total = total
	s.visible = visible
	s.clampOffset()
}

func (s *ScrollablePanel) Offset() int { return s.offset }

func (s *ScrollablePanel) ScrollBy(delta int) {
	s.offset += delta
	s.clampOffset()
}

func (s *ScrollablePanel) ScrollToTop() {
	s.offset = 0
}

func (s *ScrollablePanel) ScrollToBottom() {
	s.offset = s.maxOffset()
}

// CanScrollUp reports whether content is hidden above the window.
func (s *ScrollablePanel) CanScrollUp() bool { return s.offset > 0 }

// CanScrollDown reports whether content is hidden below the window.
func (s *ScrollablePanel) CanScrollDown() bool { return s.offset < s.maxOffset() }

// Window returns the half-open line range [start, end) currently visible.
func (s *ScrollablePanel) Window() (start, end int) {
	start = s.offset
	end = min(s.offset+s.visible, s.total)
	return start, end
}

func (s *ScrollablePanel) maxOffset() int {
	return max(0, s.total-s.visible)
}

func (s *ScrollablePanel) clampOffset() {
	if s.offset > s.maxOffset() {
		s.offset = s.maxOffset()
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
