package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/five82/templog/internal/chart"
	"github.com/five82/templog/internal/config"
	"github.com/five82/templog/internal/prefs"
	"github.com/five82/templog/internal/reading"
	"github.com/five82/templog/internal/state"
	"github.com/five82/templog/internal/zoom"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    config.Config
	File      string // loaded on start when set
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	config    config.Config
	prefsPath string
	initial   string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal

	// Data state
	snapshot state.Snapshot
	loading  bool
	zoom     zoom.Controller

	// Chart state
	cursor int // position in the displayed readings
	hover  int // chart.NoPosition when the mouse is not over the plot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		store:     store,
		config:    opts.Config,
		prefsPath: prefsPath,
		initial:   opts.File,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		hover:     chart.NoPosition,
		loading:   opts.File != "",
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.initial == "" {
		return nil
	}
	return tea.Batch(m.spinner.Tick, loadCmd(m.store, m.initial, m.config))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modal != nil {
			return m.updateModal(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.modal != nil || m.showHelp {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case openFileMsg:
		return m.startLoad(msg.path)

	case loadedMsg:
		return m.handleLoaded(msg), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.modal != nil {
		return m.updateModal(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderCommandBar(),
		m.renderChart(),
		m.renderStatusBar(),
		m.renderFooter(),
	)
}

func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd, done := m.modal.Update(msg, m.keys)
	if done {
		m.modal = nil
	} else {
		m.modal = modal
	}
	return m, cmd
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.spinner.Style = styles.WarningText
}

// startLoad reads path in the background; the result arrives as a loadedMsg.
// Only one load runs at a time.
func (m Model) startLoad(path string) (tea.Model, tea.Cmd) {
	if m.loading {
		log.Debug().Str("path", path).Msg("load already in progress; ignoring")
		return m, nil
	}
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, loadCmd(m.store, path, m.config))
}

func (m Model) handleLoaded(msg loadedMsg) Model {
	m.loading = false
	prev := m.snapshot
	m.snapshot = msg.snapshot

	if msg.err != nil && msg.snapshot.Loaded && prev.SessionID == msg.snapshot.SessionID {
		// Failed refresh: keep the current view of the old data.
		return m
	}

	m.zoom = zoom.New(msg.snapshot.Readings)
	m.cursor = 0
	m.hover = chart.NoPosition

	if msg.err == nil {
		m.savePrefs()
	}
	return m
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, LastFile: m.snapshot.Path}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Warn().Err(err).Str("path", m.prefsPath).Msg("save preferences")
	}
}

// Messages

type loadedMsg struct {
	snapshot state.Snapshot
	err      error
}

// Commands

func loadCmd(store *state.Store, path string, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		snap, err := store.LoadFile(path, cfg.TailLines, cfg.Location)
		log.Debug().Str("path", path).Dur("took", time.Since(start)).Msg("load finished")
		return loadedMsg{snapshot: snap, err: err}
	}
}

// displayed returns the readings currently drawn.
func (m Model) displayed() []reading.Reading {
	return m.zoom.Displayed()
}

// Run starts the Bubble Tea program and blocks until it exits. Cancelling
// opts.Context stops the program without an error.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
