package tui

// ScrollArea tracks the vertical scroll window over the grid. The
// grid is the single scroll driver; follower panes (the time ruler)
// never scroll themselves, they render from Follow() so both panes
// shift in the same frame and row alignment cannot drift.
type ScrollArea struct {
	Offset     int // First visible line
	ViewHeight int // Lines visible at once
	Total      int // Total lines in the scrollable content
}

// Clamp pins the offset into the valid range for the current content
// and viewport sizes.
func (s *ScrollArea) Clamp() {
	max := s.Total - s.ViewHeight
	if max < 0 {
		max = 0
	}
	if s.Offset > max {
		s.Offset = max
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// ScrollBy shifts the window by delta lines, clamped.
func (s *ScrollArea) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// ScrollTo makes the given line the first visible one, clamped.
func (s *ScrollArea) ScrollTo(line int) {
	s.Offset = line
	s.Clamp()
}

// CenterOn positions the window so the given line sits mid-viewport.
// Negative lines leave the window untouched.
func (s *ScrollArea) CenterOn(line int) {
	if line < 0 {
		return
	}
	s.Offset = line - s.ViewHeight/2
	s.Clamp()
}

// EnsureVisible scrolls the minimum distance needed to bring a line
// into view.
func (s *ScrollArea) EnsureVisible(line int) {
	if line < s.Offset {
		s.Offset = line
	} else if line >= s.Offset+s.ViewHeight {
		s.Offset = line - s.ViewHeight + 1
	}
	s.Clamp()
}

// Visible reports whether a content line is inside the window.
func (s ScrollArea) Visible(line int) bool {
	return line >= s.Offset && line < s.Offset+s.ViewHeight
}

// Follow returns the offset follower panes must render with.
func (s ScrollArea) Follow() int {
	return s.Offset
}
