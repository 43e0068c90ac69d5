package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/phpup/phpup-tui/internal/launcher"
	"github.com/phpup/phpup-tui/internal/project"
)

const fieldLabelWidth = 20

var fieldIcons = map[string]string{
	"Host":           "🌐",
	"Port":           "🔌",
	"Domain":         "🌍",
	"Docroot":        "📁",
	"PHP Threads":    "🐘",
	"HTTPS Mode":     "🔒",
	"Worker Mode":    "⚙",
	"Watch Mode":     "👁",
	"Verbose":        "📝",
	"Open Browser":   "🌍",
	"Compression":    "📦",
	"Watch Patterns": "🔍",
	"Extra Args":     "⚡",
}

// actionItem is one entry of the actions panel. A nil entry renders a
// separator line.
type actionItem struct {
	key    string
	name   string
	icon   string
	danger bool
}

func actionItems(showInit bool) []*actionItem {
	items := []*actionItem{
		{key: "F5", name: "Run", icon: "▶ "},
		{key: "F6", name: "Test", icon: "🧪"},
		nil,
	}
	if showInit {
		items = append(items, &actionItem{key: "F2", name: "Init", icon: "🎯"})
	}
	items = append(items,
		&actionItem{key: "F4", name: "Processes", icon: "📋"},
		&actionItem{key: "F7", name: "Stats", icon: "📊"},
		&actionItem{key: "F3", name: "Stop All", icon: "🛑", danger: true},
		nil,
		&actionItem{key: "Q", name: "Quit", icon: "🚪", danger: true},
	)
	return items
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenProcs:
		return m.procs.View()
	case screenOutput:
		return m.output.View()
	case screenSuccess:
		return m.success.View()
	case screenMessage:
		return m.styles.Error.Render(truncate.String(m.message, uint(max(1, m.width-1)))) +
			"\n\n" + m.styles.Status.Render("Press any key to return")
	}
	return m.mainView()
}

// mainView renders the whole main screen and, as a side effect, rebuilds
// the frame's layout and clickable regions for mouse dispatch.
func (m Model) mainView() string {
	info := m.scanner.Info()
	showInit := m.showInit()

	projLines := m.projectLines(info)
	layout := ComputeLayout(m.width, m.height, m.fieldCount(), len(projLines), showInit)
	m.fs.layout = layout
	m.fs.regions.Reset()

	rows := make([]string, m.height)
	m.renderHeader(rows, showInit)

	left := m.leftColumn(layout, projLines, showInit)
	for i, line := range left {
		if r := layout.ProjectY + i; r < m.height-1 {
			rows[r] = " " + line
		}
	}

	if layout.ShowActions {
		m.renderActions(rows, layout, showInit)
	}

	m.renderStatusLine(rows, layout, showInit)

	if m.edit.active && m.height >= 5 {
		rows[m.height-4] = " " + m.styles.Label.Render(fmt.Sprintf("Enter %s: ", m.edit.field.Label()))
		rows[m.height-3] = "  " + m.edit.input.View()
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderHeader(rows []string, showInit bool) {
	if m.height < 3 {
		return
	}
	st := m.styles
	pulse := pulseFrame(m.frame)
	title := fmt.Sprintf("  %s 🐘 phpup %s", pulse, pulse)
	tagline := " — FrankenPHP Development Server"

	status := "✓ Ready"
	statusStyle := st.Success
	if showInit {
		status = spinnerFrame(m.frame) + " Config Required"
		statusStyle = st.Warning
	}

	line := st.Title.Render(title) + st.Value.Render(tagline)
	pad := m.width - ansi.StringWidth(line) - ansi.StringWidth(status) - 2
	if pad > 0 {
		line += strings.Repeat(" ", pad) + statusStyle.Render(status)
	}
	rows[0] = line

	if m.width > 3 {
		rows[1] = st.Border.Render("╾" + strings.Repeat("━", m.width-3) + "╼")
	}
}

// projectLines builds the project panel's content, already styled.
func (m Model) projectLines(info project.Info) []string {
	st := m.styles
	w := max(10, m.width/2)

	var lines []string
	lines = append(lines, "  "+st.Title.Render("📁 "+info.Name))

	path := info.Path
	if len(path) > w-10 {
		path = "..." + path[len(path)-(w-13):]
	}
	lines = append(lines, "  "+st.Value.Render("📂 "+path))

	for _, f := range info.ProjectFiles {
		lines = append(lines, "    "+st.Value.Render(f))
	}
	if len(info.WebDirs) > 0 {
		lines = append(lines, "  "+st.Value.Render("🌐 Web: "+strings.Join(info.WebDirs, ", ")))
	}
	if info.PHPFiles > 0 {
		lines = append(lines, "  "+st.Value.Render(fmt.Sprintf("🐘 PHP files: %d", info.PHPFiles)))
	}
	if info.RecommendedDocroot != "" && info.RecommendedDocroot != "." {
		lines = append(lines, "  "+st.Success.Render("🎯 Suggested docroot: "+info.RecommendedDocroot))
	}
	if len(info.Configs) > 0 {
		n := min(3, len(info.Configs))
		lines = append(lines, "  "+st.Value.Render("⚙️  Configs: "+strings.Join(info.Configs[:n], ", ")))
	}
	lines = append(lines, "  "+st.Status.Render(fmt.Sprintf("📊 %s files, %s", info.FileCount, info.Size)))
	return lines
}

// leftColumn stacks the project, config, and preview panels into one slice
// of lines starting at ProjectY.
func (m Model) leftColumn(layout Layout, projLines []string, showInit bool) []string {
	var out []string

	m.projScroll.SetContent(len(projLines), layout.ProjectHeight-2)
	start, end := m.projScroll.Window()
	proj := renderPanel(m.styles, "Project Info", layout.ContentWidth, layout.ProjectHeight, projLines[start:end])
	if m.projScroll.CanScrollUp() {
		proj[0] = spliceIndicator(m.styles, proj[0], layout.ContentWidth, "▲")
	}
	if m.projScroll.CanScrollDown() {
		proj[len(proj)-1] = spliceIndicator(m.styles, proj[len(proj)-1], layout.ContentWidth, "▼")
	}
	out = append(out, proj...)
	out = append(out, "")

	out = append(out, renderPanel(m.styles, "Configuration", layout.ContentWidth, layout.ConfigHeight, m.configLines())...)

	if layout.PreviewHeight > 0 {
		out = append(out, "")
		out = append(out, m.previewPanel(layout, showInit)...)
	}
	return out
}

// configLines lays out the field rows so that field i lands exactly on
// Layout.FieldRow(i).
func (m Model) configLines() []string {
	st := m.styles
	fields := m.cfg.Fields()

	lines := make([]string, 0, len(fields)+2)
	lines = append(lines, " "+st.Section.Render("── Basic Settings ──"))
	for i, f := range fields {
		if i == 4 {
			lines = append(lines, " "+st.Section.Render("── Advanced Options ──"))
		}
		lines = append(lines, m.fieldLine(f.Label(), f.DisplayValue(), i == m.selected))
	}
	return lines
}

func (m Model) fieldLine(label, value string, selected bool) string {
	st := m.styles
	indicator := "  "
	labelStyle, valueStyle := st.Label, st.Value
	if selected {
		indicator = "▶ "
		labelStyle, valueStyle = st.SelectedLabel, st.SelectedValue
	}
	if value == "" {
		value = "─"
	}
	icon := fieldIcons[label]
	return " " + indicator + icon + " " + labelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, label)) +
		" " + valueStyle.Render(value)
}

func (m Model) previewPanel(layout Layout, showInit bool) []string {
	st := m.styles
	var lines []string

	run := "▶  " + launcher.DisplayCommand(m.cfg.BuildRunArgs(false))
	lines = append(lines, "  "+st.Command.Render(run))

	if showInit && layout.PreviewHeight >= 4 {
		init := "🎯 " + launcher.DisplayCommand(m.cfg.BuildInitArgs())
		lines = append(lines, "  "+st.Warning.Render(init))
	}
	return renderPanel(st, "Command Preview", layout.ContentWidth, layout.PreviewHeight, lines)
}

// renderActions draws the actions panel on the right and registers one
// clickable region per button.
func (m Model) renderActions(rows []string, layout Layout, showInit bool) {
	st := m.styles
	items := actionItems(showInit)
	height := len(items) + 2

	var content []string
	for _, item := range items {
		row := layout.ProjectY + 1 + len(content)
		if item == nil {
			content = append(content, " "+st.Border.Render(strings.Repeat("─", max(0, layout.ActionsWidth-6))))
			continue
		}

		label := fmt.Sprintf("%s  %-3s - %s", item.icon, item.key, item.name)
		style, hoverStyle := st.Button, st.ButtonHovered
		if item.danger {
			style, hoverStyle = st.Danger, st.DangerHovered
		}

		// Button text starts one cell inside the padding; the region is a
		// cell wider on each side so the hover markers stay clickable.
		buttonCol := layout.ActionsX + 3
		width := ansi.StringWidth(label)
		m.fs.regions.Add(ActionRegion{
			Key:      item.key,
			Name:     item.name,
			Row:      row,
			ColStart: buttonCol - 1,
			ColEnd:   buttonCol + width + 1,
		})

		if m.hovered == item.name {
			content = append(content, hoverStyle.Render("▶ "+label+" ◀"))
		} else {
			content = append(content, " "+style.Render(label)+" ")
		}
	}

	panel := renderPanel(st, "Actions", layout.ActionsWidth, height, content)
	for i, line := range panel {
		r := layout.ProjectY + i
		if r >= m.height-1 {
			break
		}
		rows[r] = padTo(rows[r], layout.ActionsX) + line
	}
}

func (m Model) renderStatusLine(rows []string, layout Layout, showInit bool) {
	if m.height < 1 {
		return
	}
	status := "F5:Run F6:Test F4:Processes F7:Stats F3:Stop Q:Quit"
	if showInit {
		status = "F2:Init " + status
	}
	if !layout.ShowActions {
		status += " | ↑↓:Navigate Enter:Edit"
	}
	if ansi.StringWidth(status) < m.width-2 {
		rows[m.height-1] = " " + m.styles.Status.Render(status)
	}
}

// renderPanel draws a bordered box of exactly height lines and width
// columns, with the title spliced into the top border. Content lines are
// pre-styled; they are truncated to fit and padded to the full width.
func renderPanel(st *Styles, title string, width, height int, lines []string) []string {
	if width < 4 || height < 2 {
		return make([]string, max(0, height))
	}
	out := make([]string, 0, height)

	titleText := " ✦ " + title + " ✦ "
	rem := width - 3 - ansi.StringWidth(titleText)
	if rem >= 0 {
		out = append(out, st.Border.Render("╭─")+st.Section.Render(titleText)+st.Border.Render(strings.Repeat("─", rem)+"╮"))
	} else {
		out = append(out, st.Border.Render("╭"+strings.Repeat("─", width-2)+"╮"))
	}

	inner := width - 2
	for i := 1; i < height-1; i++ {
		var line string
		if i-1 < len(lines) {
			line = truncate.String(lines[i-1], uint(inner))
		}
		out = append(out, st.Border.Render("│")+padTo(line, inner)+st.Border.Render("│"))
	}

	out = append(out, st.Border.Render("╰"+strings.Repeat("─", width-2)+"╯"))
	return out
}

// spliceIndicator overlays a scroll indicator near the right edge of a
// border line.
func spliceIndicator(st *Styles, line string, width int, marker string) string {
	plain := ansi.Strip(line)
	runes := []rune(plain)
	if width-3 < 0 || width-3 >= len(runes) {
		return line
	}
	runes[width-3] = []rune(marker)[0]
	return st.Border.Render(string(runes[:width-3])) + st.Status.Render(marker) + st.Border.Render(string(runes[width-2:]))
}

// padTo pads a styled string with spaces to the given display width.
func padTo(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
