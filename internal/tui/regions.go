package tui

// ActionRegion is a clickable rectangle one row tall. Regions are
// rebuilt from scratch every frame by the renderer, so hit testing is
// always against exactly what is on screen.
type ActionRegion struct {
	// Key identifies the action this region triggers, e.g. "F5" or
	// "field:3". Name is the human label shown in hover feedback.
	Key  string
	Name string

	Row      int
	ColStart int
	ColEnd   int // inclusive
}

func (r ActionRegion) Contains(row, col int) bool {
	return row == r.Row && col >= r.ColStart && col <= r.ColEnd
}

// RegionRegistry collects the clickable regions of the current frame.
// When regions overlap, the first one registered wins.
type RegionRegistry struct {
	regions []ActionRegion
}

func (rr *RegionRegistry) Reset() {
	rr.regions = rr.regions[:0]
}

func (rr *RegionRegistry) Add(r ActionRegion) {
	rr.regions = append(rr.regions, r)
}

func (rr *RegionRegistry) Len() int {
	return len(rr.regions)
}

// HitTest returns the first region containing the given cell.
func (rr *RegionRegistry) HitTest(row, col int) (ActionRegion, bool) {
	for _, r := range rr.regions {
		if r.Contains(row, col) {
			return r, true
		}
	}
	return ActionRegion{}, false
}

// HoverName returns the label of the region under the pointer, or the
// empty string when the pointer is over nothing clickable.
func (rr *RegionRegistry) HoverName(row, col int) string {
	if r, ok := rr.HitTest(row, col); ok {
		return r.Name
	}
	return ""
}
