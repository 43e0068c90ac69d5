// Package tui implements the interactive front-end: a single-screen
// bubbletea application over the launch configuration, with a nested
// process-manager sub-view and output presentation for launcher runs.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phpup/phpup-tui/internal/config"
	"github.com/phpup/phpup-tui/internal/launcher"
	"github.com/phpup/phpup-tui/internal/project"
)

type screen int

const (
	screenMain screen = iota
	screenOutput
	screenSuccess
	screenProcs
	screenMessage
)

// frameState is rebuilt by View on every frame and read back by Update when
// dispatching mouse events, so hit testing always matches what is on screen.
type frameState struct {
	layout  Layout
	regions RegionRegistry
}

// editSession is the modal text-entry state for a TextField. While active,
// all key input goes to the textinput; Esc or empty input leaves the field
// untouched.
type editSession struct {
	active bool
	field  *config.TextField
	input  textinput.Model
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	launch  *launcher.Launcher
	scanner *project.Scanner
	killer  launcher.ProcessKiller
	styles  *Styles
	workDir string

	width    int
	height   int
	selected int
	frame    int
	hovered  string

	fs         *frameState
	projScroll *ScrollablePanel

	screen  screen
	edit    editSession
	output  *outputView
	success *successView
	procs   *processManager
	message string

	quitting bool
}

// Options configures the TUI.
type Options struct {
	Launcher *launcher.Launcher
	WorkDir  string
	Mouse    bool
}

// NewModel builds the root model with a fresh Config seeded from docroot
// auto-detection in the working directory.
func NewModel(ctx context.Context, opts Options) Model {
	return Model{
		ctx:        ctx,
		cfg:        config.New(project.DetectDocroot(opts.WorkDir)),
		launch:     opts.Launcher,
		scanner:    project.NewScanner(opts.WorkDir),
		killer:     launcher.DefaultKiller,
		styles:     NewStyles(),
		workDir:    opts.WorkDir,
		width:      80,
		height:     24,
		fs:         &frameState{},
		projScroll: &ScrollablePanel{},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the bubbletea program in the alternate screen, with mouse
// tracking unless disabled.
func Run(ctx context.Context, opts Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(NewModel(ctx, opts), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}

func (m *Model) showInit() bool {
	return project.InitAvailable(m.workDir)
}

func (m *Model) fieldCount() int {
	return len(m.cfg.Fields())
}

// startEdit opens the modal edit session for a text field, seeded with the
// current value.
func (m *Model) startEdit(f *config.TextField) {
	in := textinput.New()
	in.Prompt = ""
	in.SetValue(f.Value())
	in.CursorEnd()
	in.Focus()
	m.edit = editSession{active: true, field: f, input: in}
}

// finishEdit closes the session. When confirmed with a non-empty trimmed
// value the field is replaced; every other exit path leaves it untouched.
func (m *Model) finishEdit(confirm bool) {
	if confirm {
		if v := strings.TrimSpace(m.edit.input.Value()); v != "" {
			m.edit.field.SetValue(v)
		}
	}
	m.edit = editSession{}
}
