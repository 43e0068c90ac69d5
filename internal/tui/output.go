package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/phpup/phpup-tui/internal/launcher"
)

// launchServer runs the launcher with the current configuration. A clean
// non-dry run whose output yields a host and port gets the enriched success
// view; everything else falls back to the paginated log.
func (m *Model) launchServer(dryRun bool) {
	args := m.cfg.BuildRunArgs(dryRun)
	res, ok := m.invoke(args)
	if !ok {
		return
	}

	info := launcher.ParseServerInfo(res.Lines)
	if !dryRun && res.ExitCode == 0 && info.Host != "" && info.Port != "" {
		m.success = newSuccessView(m.styles, info, m.scanner.Info().Name, m.width, m.height)
		m.screen = screenSuccess
		return
	}
	m.showOutput("Running: "+launcher.DisplayCommand(args), res)
}

// runCommand runs a pass-through launcher command (init, stop) and shows
// its output in the log view.
func (m *Model) runCommand(args []string) {
	res, ok := m.invoke(args)
	if !ok {
		return
	}
	m.showOutput("Running: "+launcher.DisplayCommand(args), res)
}

// showStats renders `phpup --stats` in the log view, filtering blank lines
// and the tool's own banner.
func (m *Model) showStats() {
	res, ok := m.invoke(m.cfg.BuildStatsArgs())
	if !ok {
		return
	}
	if res.ExitCode != 0 {
		m.message = "❌ Failed to get process statistics"
		m.screen = screenMessage
		return
	}

	var lines []string
	for _, l := range res.Lines {
		if strings.TrimSpace(l) == "" || strings.HasPrefix(l, "📊") {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		lines = []string{"No FrankenPHP processes found for current user."}
	}
	m.output = newOutputView(m.styles, "📊 FrankenPHP Process Statistics", lines, m.width, m.height)
	m.screen = screenOutput
}

func (m *Model) showOutput(title string, res *launcher.Result) {
	lines := append([]string(nil), res.Lines...)
	if res.Truncated {
		lines = append(lines, fmt.Sprintf("(output truncated at %d lines)", launcher.MaxOutputLines))
	}
	lines = append(lines, fmt.Sprintf("Process exited with status %d", res.ExitCode))
	m.output = newOutputView(m.styles, title, lines, m.width, m.height)
	m.screen = screenOutput
}

// outputView is the paginated log view over captured launcher output.
// Page keys move through the log; any other key returns to the main screen.
type outputView struct {
	styles *Styles
	title  string
	vp     viewport.Model
	width  int
	height int
}

const outputChrome = 3 // title, separator, footer

func newOutputView(st *Styles, title string, lines []string, width, height int) *outputView {
	o := &outputView{styles: st, title: title, width: width, height: height}
	o.vp = viewport.New(width, max(1, height-outputChrome))
	o.vp.SetContent(strings.Join(lines, "\n"))
	return o
}

func (o *outputView) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.vp.Width = width
	o.vp.Height = max(1, height-outputChrome)
}

// HandleKey pages through the output. Returns true when the view is done.
func (o *outputView) HandleKey(key string) bool {
	switch key {
	case "pgdown", "j":
		o.vp.ViewDown()
		return false
	case "pgup", "k":
		o.vp.ViewUp()
		return false
	}
	return true
}

func (o *outputView) View() string {
	title := truncate.String(o.title, uint(max(0, o.width-1)))
	sep := strings.Repeat("─", max(0, o.width-1))
	footer := "PgUp/PgDn navigate output, any other key to return"
	return lipgloss.JoinVertical(lipgloss.Left,
		o.styles.Title.Render(title),
		o.styles.Border.Render(sep),
		o.vp.View(),
		o.styles.Status.Render(footer),
	)
}

// successAction is what the success view asks the root model to do next.
type successAction int

const (
	successStay successAction = iota
	successReturn
	successProcesses
)

// successView is the enriched "server started" screen with a clickable URL
// and quick actions.
type successView struct {
	styles  *Styles
	info    launcher.ServerInfo
	project string
	regions RegionRegistry
	width   int
	height  int

	// notice replaces the footer after a browser attempt; the next key
	// returns to the main screen.
	notice string
}

func newSuccessView(st *Styles, info launcher.ServerInfo, projectName string, width, height int) *successView {
	return &successView{styles: st, info: info, project: projectName, width: width, height: height}
}

func (s *successView) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *successView) HandleKey(key string) successAction {
	if s.notice != "" {
		return successReturn
	}
	switch key {
	case "o", "O":
		s.openURL()
		return successStay
	case "l", "L":
		return successProcesses
	}
	return successReturn
}

func (s *successView) HandleMouse(msg tea.MouseMsg) successAction {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return successStay
	}
	region, ok := s.regions.HitTest(msg.Y, msg.X)
	if !ok {
		return successStay
	}
	switch region.Key {
	case "url", "browser":
		s.openURL()
		return successStay
	case "processes":
		return successProcesses
	}
	return successStay
}

func (s *successView) openURL() {
	url := s.info.URL()
	openBrowser(url)
	s.notice = fmt.Sprintf("Opening %s in browser... Press any key to return", url)
}

func (s *successView) View() string {
	s.regions.Reset()
	st := s.styles

	rows := make([]string, 0, 16)
	rows = append(rows,
		st.Success.Render(fmt.Sprintf("🚀 FrankenPHP Server Started Successfully for %s!", s.project)),
		"",
	)

	url := "[" + s.info.URL() + "]"
	urlLabel := "  🌐 Server URL: "
	s.regions.Add(ActionRegion{
		Key: "url", Name: "Open URL",
		Row:      len(rows),
		ColStart: lipgloss.Width(urlLabel),
		ColEnd:   lipgloss.Width(urlLabel) + lipgloss.Width(url) - 1,
	})
	rows = append(rows, st.Label.Render(urlLabel)+st.URL.Render(url))

	if s.info.Mode != "" {
		rows = append(rows, st.Value.Render("  ⚙️  Mode: "+s.info.Mode))
	}
	if s.info.Docroot != "" {
		docroot := s.info.Docroot
		if len(docroot) > 50 {
			docroot = "..." + docroot[len(docroot)-47:]
		}
		rows = append(rows, st.Value.Render("  📁 Document root: "+docroot))
	}
	rows = append(rows,
		st.Success.Render("  ✅ Status: Running"),
		st.Status.Render("  💡 Tip: Server will run in background until stopped"),
		"",
		st.Label.Render("  Quick actions:"),
	)

	browser := "[🌍 Open in Browser]"
	s.regions.Add(ActionRegion{
		Key: "browser", Name: "Open in Browser",
		Row: len(rows), ColStart: 4, ColEnd: 4 + lipgloss.Width(browser) - 1,
	})
	rows = append(rows, "    "+st.URL.Render(browser))

	procs := "[📋 List Processes]"
	s.regions.Add(ActionRegion{
		Key: "processes", Name: "List Processes",
		Row: len(rows), ColStart: 4, ColEnd: 4 + lipgloss.Width(procs) - 1,
	})
	rows = append(rows, "    "+st.URL.Render(procs))

	footer := "Click URL/buttons or press 'o' (browser), 'l' (processes), any other key to return"
	if s.notice != "" {
		footer = s.notice
	}
	for len(rows) < s.height-2 {
		rows = append(rows, "")
	}
	rows = append(rows, st.Warning.Render(truncate.String(footer, uint(max(1, s.width-1)))))

	return strings.Join(rows, "\n")
}
