package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carousel/internal/config"
	"github.com/five82/carousel/internal/prefs"
	"github.com/five82/carousel/internal/preview"
	"github.com/five82/carousel/internal/scene"
	"github.com/five82/carousel/internal/slider"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Slides  []slider.Slide
	Config  *config.Config

	ThemeName      string
	PrefsPath      string
	HideThumbnails bool

	// Picker overrides the random source; nil uses Config.Seed when set.
	Picker slider.Picker
}

// Model is the root application state for Bubble Tea. The engine, scene,
// and scheduler are shared pointers; every mutation happens inside Update.
type Model struct {
	// Configuration
	ctx       context.Context
	prefsPath string

	// Slider
	engine   *slider.Engine
	tree     *scene.Tree
	sched    *teaScheduler
	previews *preview.Cache

	// UI state
	theme      Theme
	keys       keyMap
	help       help.Model
	width      int
	height     int
	ready      bool
	showHelp   bool
	showThumbs bool

	// err is the invariant violation that stopped the program.
	err error
}

// New creates a new Bubble Tea model with slide 0 on display. Autoplay
// starts immediately when the config asks for it.
func New(opts Options) (Model, error) {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	picker := opts.Picker
	if picker == nil && cfg.Seed != 0 {
		picker = slider.NewSeededPicker(cfg.Seed)
	}

	tree := scene.New(len(opts.Slides))
	sched := newTeaScheduler()
	engine, err := slider.NewEngine(opts.Slides, tree, sched, slider.Options{
		SwapDelay:   cfg.SwapDelay,
		SettleDelay: cfg.SettleDelay,
		Interval:    cfg.AutoplayInterval,
		Picker:      picker,
		Observer:    logStage,
	})
	if err != nil {
		return Model{}, fmt.Errorf("start slider: %w", err)
	}
	if cfg.Autoplay {
		engine.Autoplay().Start()
	}

	m := Model{
		ctx:        ctx,
		prefsPath:  prefsPath,
		engine:     engine,
		tree:       tree,
		sched:      sched,
		previews:   preview.NewCache(),
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		showThumbs: !opts.HideThumbnails,
	}
	m.applyHelpStyles()
	return m, nil
}

// logStage records the swap and settle steps; the engine logs the start.
func logStage(t slider.Transition) {
	if t.Stage == slider.StageOutgoing {
		return
	}
	log.Printf("ui: %s", t)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.sched.drain()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case timerMsg:
		m.sched.fire(msg)
	}

	return m.finish(cmd)
}

// finish hands queued timers to Bubble Tea, or quits once the engine has
// recorded an invariant violation.
func (m Model) finish(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if err := m.engine.Err(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain renders the header, slide frame, controls, thumbnail strip, and
// footer top to bottom.
func (m Model) renderMain() string {
	l := m.layout()

	parts := []string{m.renderHeader(l.width)}
	if l.frame.h > 0 {
		parts = append(parts, m.renderFrame(l.frame))
	}
	if len(l.controls) > 0 {
		parts = append(parts, m.renderControls(l))
	}
	if len(l.thumbs) > 0 {
		parts = append(parts, m.renderThumbnails(l))
	}
	if l.footer.h > 0 {
		parts = append(parts, m.renderFooter(l.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) layout() layout {
	selected, err := m.engine.SelectedThumbnail()
	if err != nil {
		selected = m.engine.Index()
	}
	return computeLayout(m.width, m.height, m.engine.Len(), selected, m.showThumbs, m.playAffordance())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Arrow and space bindings go through the router. A routed key is
	// consumed here, which also covers PreventDefault for space.
	if code := m.keys.keyCode(msg); code != "" {
		if cmd, routed := slider.RouteKey(code); routed.OK {
			m.apply(cmd)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Random):
		m.apply(slider.Random())

	case key.Matches(msg, m.keys.First):
		m.apply(slider.JumpTo(0))

	case key.Matches(msg, m.keys.Last):
		m.apply(slider.JumpTo(m.engine.Len() - 1))

	case key.Matches(msg, m.keys.Jump):
		if n, err := strconv.Atoi(msg.String()); err == nil && n <= m.engine.Len() {
			m.apply(slider.JumpTo(n - 1))
		}

	case key.Matches(msg, m.keys.ToggleThumbnails):
		m.showThumbs = !m.showThumbs
		m.savePrefs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyHelpStyles()
		m.savePrefs()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

// handleMouse routes left clicks on controls and thumbnails.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	if m.showHelp {
		m.showHelp = false
		return m
	}

	target, ok := m.layout().hitTest(msg.X, msg.Y)
	if !ok {
		return m
	}
	if cmd, ok := slider.RouteClick(target, m.engine.Index()); ok {
		m.apply(cmd)
	}
	return m
}

// apply runs a command. Invariant violations are picked up by finish;
// anything else is only logged.
func (m Model) apply(cmd slider.Command) {
	if _, _, err := m.engine.Apply(cmd); err != nil && m.engine.Err() == nil {
		log.Printf("ui: %v", err)
	}
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, HideThumbnails: !m.showThumbs}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("ui: save prefs: %v", err)
	}
}

func (m *Model) applyHelpStyles() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.Ellipsis = styles.FaintText
}

// Err returns the invariant violation that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program. It returns the engine's error when an
// invariant violation ended the session.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
