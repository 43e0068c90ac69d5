package tui

// Layout is the frame geometry for the main screen, computed from the
// terminal size before anything is rendered. Rendering and click dispatch
// both read from the same Layout so the two can never disagree.
type Layout struct {
	Width  int
	Height int

	// Actions panel on the right. ShowActions is false on narrow
	// terminals, in which case ActionsWidth and ActionsX are zero.
	ShowActions  bool
	ActionsWidth int
	ActionsX     int

	// ContentWidth is the width of the left-hand panels.
	ContentWidth int

	ProjectY      int
	ProjectHeight int

	ConfigY      int
	ConfigHeight int

	// PreviewHeight is zero when there is no room for the preview panel.
	PreviewY        int
	PreviewHeight   int
	PreviewExpanded bool
}

const narrowWidth = 60

// ComputeLayout derives panel geometry from the terminal dimensions.
// projectLines is the number of content lines the project panel wants;
// showInit widens the compact preview to fit the init hint.
func ComputeLayout(width, height, fieldCount, projectLines int, showInit bool) Layout {
	l := Layout{Width: width, Height: height, ProjectY: 2}

	if width < narrowWidth {
		l.ContentWidth = width - 4
	} else {
		l.ShowActions = true
		l.ActionsWidth = clamp(width/4, 25, 35)
		l.ActionsX = width - l.ActionsWidth - 2
		l.ContentWidth = width - l.ActionsWidth - 5
	}

	if height >= 20 {
		l.ProjectHeight = min(12, min(height/3, projectLines+2))
	} else {
		l.ProjectHeight = projectLines + 3
	}

	l.ConfigY = l.ProjectY + l.ProjectHeight + 1
	minConfig := fieldCount + 5
	available := height - l.ConfigY - 6
	l.ConfigHeight = max(minConfig, min(minConfig+3, available))

	l.PreviewY = l.ConfigY + l.ConfigHeight + 1
	remaining := height - l.PreviewY - 1
	switch {
	case remaining < 3:
		l.PreviewHeight = 0
	case remaining >= 5:
		l.PreviewHeight = min(5, remaining)
		l.PreviewExpanded = true
	default:
		compact := 3
		if showInit {
			compact = 4
		}
		l.PreviewHeight = min(remaining, compact)
	}
	return l
}

// FieldRow is the absolute screen row of configuration field i. Fields
// past the fourth sit one row lower, below the advanced-options header.
func (l Layout) FieldRow(i int) int {
	row := l.ConfigY + 2 + i
	if i >= 4 {
		row++
	}
	return row
}

// FieldIndexAt inverts FieldRow: the field index at an absolute screen
// row, or -1 when the row holds no field.
func (l Layout) FieldIndexAt(row, fieldCount int) int {
	for i := 0; i < fieldCount; i++ {
		if l.FieldRow(i) == row {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
