package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/phpup/phpup-tui/internal/launcher"
	"github.com/phpup/phpup-tui/internal/logging"
)

type pmState int

const (
	pmView pmState = iota
	pmKill
	pmReport    // batch result shown, next key refreshes the list
	pmAllKilled // refreshed list is empty after a kill, next key exits
	pmEmpty     // no processes at entry, next key exits
)

// processRowStart is the first screen row of the process table body.
const processRowStart = 4

// processLister fetches the live process list. Satisfied by *launcher.Launcher.
type processLister interface {
	ListProcesses(ctx context.Context) ([]launcher.ProcessRecord, error)
}

// processManager is the nested list/kill sub-application over the live
// process list.
type processManager struct {
	styles *Styles
	launch processLister
	killer launcher.ProcessKiller

	records  []launcher.ProcessRecord
	selected []bool
	cursor   int
	state    pmState

	// report and reportRecords persist the batch result and the rows it
	// was computed from, for the acknowledgment screen.
	report        *launcher.KillReport
	reportRecords []launcher.ProcessRecord

	width  int
	height int
}

func newProcessManager(st *Styles, l processLister, killer launcher.ProcessKiller, width, height int) *processManager {
	return &processManager{styles: st, launch: l, killer: killer, width: width, height: height}
}

func (pm *processManager) SetSize(width, height int) {
	pm.width = width
	pm.height = height
}

// Enter fetches the initial process list.
func (pm *processManager) Enter(ctx context.Context) {
	records, err := pm.launch.ListProcesses(ctx)
	if err != nil {
		logging.Warn("failed to list processes", "error", err)
	}
	pm.setRecords(records)
	if len(pm.records) == 0 {
		pm.state = pmEmpty
	}
}

// setRecords replaces the list, resets the selection vector, and clamps the
// cursor into the new bounds.
func (pm *processManager) setRecords(records []launcher.ProcessRecord) {
	pm.records = records
	pm.selected = make([]bool, len(records))
	if pm.cursor >= len(records) {
		pm.cursor = max(0, len(records)-1)
	}
}

func (pm *processManager) refresh(ctx context.Context) {
	records, err := pm.launch.ListProcesses(ctx)
	if err != nil {
		logging.Warn("failed to refresh process list", "error", err)
	}
	pm.setRecords(records)
}

// HandleKey processes one key press. Returns true when the sub-application
// is done and control goes back to the main screen.
func (pm *processManager) HandleKey(ctx context.Context, key string) bool {
	switch pm.state {
	case pmEmpty, pmAllKilled:
		return true

	case pmReport:
		pm.report = nil
		pm.reportRecords = nil
		pm.refresh(ctx)
		if len(pm.records) == 0 {
			pm.state = pmAllKilled
			return false
		}
		pm.cursor = 0
		pm.state = pmView
		return false
	}

	switch key {
	case "up":
		if pm.cursor > 0 {
			pm.cursor--
		}
	case "down":
		if pm.cursor < len(pm.records)-1 {
			pm.cursor++
		}
	case " ", "space":
		if pm.state == pmKill {
			pm.selected[pm.cursor] = !pm.selected[pm.cursor]
		}
	case "k", "K":
		if pm.state == pmView {
			pm.state = pmKill
			pm.selected = make([]bool, len(pm.records))
		}
	case "r", "R":
		pm.refresh(ctx)
		if len(pm.records) == 0 {
			return true
		}
	case "enter":
		if pm.state == pmKill {
			pm.killSelected(ctx)
		}
	case "esc":
		if pm.state == pmKill {
			pm.state = pmView
			pm.selected = make([]bool, len(pm.records))
		} else {
			return true
		}
	}
	return false
}

// HandleMouse moves the cursor to the clicked row, toggling its selection
// in kill mode.
func (pm *processManager) HandleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if pm.state != pmView && pm.state != pmKill {
		return
	}
	idx := msg.Y - processRowStart
	if idx < 0 || idx >= len(pm.records) {
		return
	}
	pm.cursor = idx
	if pm.state == pmKill {
		pm.selected[idx] = !pm.selected[idx]
	}
}

func (pm *processManager) killSelected(ctx context.Context) {
	var pids []string
	var rows []launcher.ProcessRecord
	for i, sel := range pm.selected {
		if sel {
			pids = append(pids, pm.records[i].PID)
			rows = append(rows, pm.records[i])
		}
	}
	if len(pids) == 0 {
		return
	}
	report := launcher.BatchTerminate(ctx, pm.killer, pids)
	pm.report = &report
	pm.reportRecords = rows
	pm.state = pmReport
}

func (pm *processManager) View() string {
	switch pm.state {
	case pmEmpty:
		return pm.styles.Title.Render("📋 No FrankenPHP processes found for current user.") +
			"\n\n" + pm.styles.Status.Render("Press any key to return")
	case pmAllKilled:
		return pm.styles.Success.Render("✅ All processes killed. Press any key to return")
	case pmReport:
		return pm.reportView()
	}
	return pm.listView()
}

func (pm *processManager) reportView() string {
	st := pm.styles
	rows := []string{
		st.Warning.Render(fmt.Sprintf("🛑 Killing %d selected process(es)...", pm.report.Attempted())),
		"",
	}
	byPID := make(map[string]launcher.ProcessRecord, len(pm.reportRecords))
	for _, r := range pm.reportRecords {
		byPID[r.PID] = r
	}
	for _, o := range pm.report.Outcomes {
		if r, ok := byPID[o.PID]; ok {
			rows = append(rows, st.Value.Render(fmt.Sprintf("  PID %s: %s (%s) - Started from: %s", r.PID, r.Listen, r.Mode, r.StartedFrom)))
		} else {
			rows = append(rows, st.Value.Render("  PID "+o.PID))
		}
	}
	rows = append(rows, "")
	for _, o := range pm.report.Outcomes {
		if o.Err == nil {
			rows = append(rows, st.Success.Render("  ✅ Killed PID "+o.PID))
		} else {
			rows = append(rows, st.Error.Render("  ❌ Failed to kill PID "+o.PID+": "+o.Err.Error()))
		}
	}
	rows = append(rows, "",
		st.Status.Render(fmt.Sprintf("Killed %d/%d process(es). Press any key to return",
			pm.report.Succeeded(), pm.report.Attempted())))
	return strings.Join(rows, "\n")
}

func (pm *processManager) listView() string {
	st := pm.styles
	kill := pm.state == pmKill

	rows := make([]string, 0, len(pm.records)+6)
	if kill {
		rows = append(rows,
			st.Error.Render(fmt.Sprintf("🛑 Process Manager - KILL MODE (%d found)", len(pm.records))),
			st.Warning.Render("Select processes to kill: ↑/↓ navigate, SPACE/click toggle, ENTER kill, ESC exit kill mode"),
		)
	} else {
		rows = append(rows,
			st.Title.Render(fmt.Sprintf("📋 Process Manager (%d found)", len(pm.records))),
			st.Status.Render("View running processes: ↑/↓ navigate, 'k' for kill mode, ESC to return"),
		)
	}
	rows = append(rows, "")

	header := fmt.Sprintf("%7s %-20s %-8s %-30s %s", "PID", "LISTEN", "MODE", "STARTED FROM", "CONFIG")
	if kill {
		header = "    " + header
	}
	rows = append(rows, st.Label.Render(pm.fit(header)))

	for i, r := range pm.records {
		if processRowStart+i >= pm.height-2 {
			break
		}
		line := fmt.Sprintf("%7s %-20s %-8s %-30s %s", r.PID, r.Listen, r.Mode, r.StartedFrom, r.Config)
		if kill {
			checkbox := "☐"
			if pm.selected[i] {
				checkbox = "☑"
			}
			line = checkbox + "   " + line
		}
		style := st.Value
		if i == pm.cursor {
			style = st.SelectedValue
		}
		rows = append(rows, style.Render(pm.fit(line)))
	}

	footer := "Press 'k' to enter kill mode, 'r' to refresh, or ESC to return to main menu"
	style := st.Status
	if kill {
		if n := pm.selectedCount(); n > 0 {
			footer = fmt.Sprintf("Selected: %d process(es) - ENTER to kill, ESC to exit kill mode", n)
			style = st.Warning
		} else {
			footer = "Select processes with SPACE/click, ENTER to kill, ESC to exit kill mode"
		}
	}
	for len(rows) < pm.height-1 {
		rows = append(rows, "")
	}
	rows = append(rows, style.Render(pm.fit(footer)))
	return strings.Join(rows, "\n")
}

func (pm *processManager) selectedCount() int {
	n := 0
	for _, sel := range pm.selected {
		if sel {
			n++
		}
	}
	return n
}

func (pm *processManager) fit(line string) string {
	return truncate.String(line, uint(max(1, pm.width-1)))
}
