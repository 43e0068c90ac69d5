package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phpup/phpup-tui/internal/config"
	"github.com/phpup/phpup-tui/internal/launcher"
	"github.com/phpup/phpup-tui/internal/logging"
	"github.com/phpup/phpup-tui/internal/signal"
)

// action is the resolved input action, independent of whether it came from a
// key press or a mouse click. Both translators feed the same transition
// handler so the state machine has one source of truth.
type action int

const (
	actionNone action = iota
	actionRun
	actionDryRun
	actionInit
	actionProcesses
	actionStats
	actionStopAll
	actionQuit
	actionEdit
)

// keyAction translates a main-screen key press into an action.
func keyAction(key string, showInit bool) action {
	switch key {
	case "f5":
		return actionRun
	case "f6":
		return actionDryRun
	case "f2":
		if showInit {
			return actionInit
		}
	case "f4":
		return actionProcesses
	case "f7":
		return actionStats
	case "f3":
		return actionStopAll
	case "enter":
		return actionEdit
	case "q", "Q", "ctrl+c":
		return actionQuit
	}
	return actionNone
}

// regionAction translates a clicked region key into an action.
func regionAction(key string, showInit bool) action {
	switch key {
	case "F5":
		return actionRun
	case "F6":
		return actionDryRun
	case "F2":
		if showInit {
			return actionInit
		}
	case "F4":
		return actionProcesses
	case "F7":
		return actionStats
	case "F3":
		return actionStopAll
	case "Q":
		return actionQuit
	}
	return actionNone
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.output != nil {
			m.output.SetSize(msg.Width, msg.Height)
		}
		if m.procs != nil {
			m.procs.SetSize(msg.Width, msg.Height)
		}
		if m.success != nil {
			m.success.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		m.frame++
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.frame++
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenProcs:
		if m.procs.HandleKey(m.ctx, msg.String()) {
			m.procs = nil
			m.screen = screenMain
		}
		return m, nil

	case screenOutput:
		if m.output.HandleKey(msg.String()) {
			m.output = nil
			m.screen = screenMain
		}
		return m, nil

	case screenSuccess:
		switch m.success.HandleKey(msg.String()) {
		case successReturn:
			m.success = nil
			m.screen = screenMain
		case successProcesses:
			m.success = nil
			m.openProcessManager()
		}
		return m, nil

	case screenMessage:
		m.message = ""
		m.screen = screenMain
		return m, nil
	}

	if m.edit.active {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		m.selected = (m.selected - 1 + m.fieldCount()) % m.fieldCount()
		return m, nil
	case "down", "j":
		m.selected = (m.selected + 1) % m.fieldCount()
		return m, nil
	case "r", "R":
		m.scanner.Refresh()
		return m, nil
	}
	return m.dispatch(keyAction(msg.String(), m.showInit()))
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.finishEdit(true)
		return m, nil
	case "esc", "ctrl+c":
		m.finishEdit(false)
		return m, nil
	}
	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenProcs:
		m.procs.HandleMouse(msg)
		return m, nil

	case screenSuccess:
		switch m.success.HandleMouse(msg) {
		case successReturn:
			m.success = nil
			m.screen = screenMain
		case successProcesses:
			m.success = nil
			m.openProcessManager()
		}
		return m, nil

	case screenOutput, screenMessage:
		return m, nil
	}

	if m.edit.active {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.hovered = m.fs.regions.HoverName(msg.Y, msg.X)
		return m, nil

	case msg.Button == tea.MouseButtonWheelUp:
		if m.overProjectPanel(msg.Y) {
			m.projScroll.ScrollBy(-1)
		}
		return m, nil

	case msg.Button == tea.MouseButtonWheelDown:
		if m.overProjectPanel(msg.Y) {
			m.projScroll.ScrollBy(1)
		}
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if region, ok := m.fs.regions.HitTest(msg.Y, msg.X); ok {
			return m.dispatch(regionAction(region.Key, m.showInit()))
		}
		// A click on a field row selects it and immediately activates it,
		// same as Enter on the selected field.
		if idx := m.fs.layout.FieldIndexAt(msg.Y, m.fieldCount()); idx >= 0 {
			if msg.X >= 2 && msg.X <= m.fs.layout.ContentWidth {
				m.selected = idx
				m.activateField(idx)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) overProjectPanel(row int) bool {
	return row >= m.fs.layout.ProjectY && row < m.fs.layout.ProjectY+m.fs.layout.ProjectHeight
}

// activateField performs the field's activation interaction: text fields
// open the edit session, choices cycle, toggles flip.
func (m *Model) activateField(idx int) {
	switch f := m.cfg.Fields()[idx].(type) {
	case *config.TextField:
		m.startEdit(f)
	case *config.ChoiceField:
		f.Cycle()
	case *config.ToggleField:
		f.Toggle()
	}
}

// dispatch is the single transition handler for resolved actions.
func (m Model) dispatch(act action) (tea.Model, tea.Cmd) {
	switch act {
	case actionQuit:
		m.quitting = true
		return m, tea.Quit
	case actionEdit:
		m.activateField(m.selected)
	case actionRun:
		m.launchServer(false)
	case actionDryRun:
		m.launchServer(true)
	case actionInit:
		m.runCommand(m.cfg.BuildInitArgs())
	case actionStopAll:
		m.runCommand(m.cfg.BuildStopArgs())
	case actionStats:
		m.showStats()
	case actionProcesses:
		m.openProcessManager()
	}
	return m, nil
}

func (m *Model) openProcessManager() {
	m.procs = newProcessManager(m.styles, m.launch, m.killer, m.width, m.height)
	m.procs.Enter(m.ctx)
	m.screen = screenProcs
}

// invoke runs the launcher synchronously. The UI blocks until the process
// exits and its output is drained; signals are held for the duration so a
// stray Ctrl+C cannot tear the context down mid-run.
func (m *Model) invoke(args []string) (*launcher.Result, bool) {
	signal.Hold()
	defer signal.Release()

	res, err := m.launch.Run(m.ctx, args)
	if err != nil {
		if errors.Is(err, launcher.ErrNotFound) {
			m.message = "❌ phpup script not found. Expected at: " + m.launch.Path
		} else {
			m.message = "❌ " + err.Error()
		}
		m.screen = screenMessage
		logging.Error("launcher invocation failed", "args", args, "error", err)
		return nil, false
	}
	return res, true
}
