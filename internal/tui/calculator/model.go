package calculator

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sumcalc/internal/clipboard"
	"github.com/alexisbeaulieu97/sumcalc/internal/components"
	"github.com/alexisbeaulieu97/sumcalc/internal/deck"
	"github.com/alexisbeaulieu97/sumcalc/internal/logger"
	"github.com/alexisbeaulieu97/sumcalc/internal/session"
	"github.com/alexisbeaulieu97/sumcalc/internal/theme"
)

// ThemeSaver persists the active theme.
type ThemeSaver interface {
	Save(theme.Theme) error
}

// Options configures a Model. Zero values are usable: a fresh session, the
// light theme, no persistence, the system clipboard and a no-op logger.
type Options struct {
	Session   *session.Session
	Theme     theme.Theme
	Store     ThemeSaver
	Clipboard clipboard.Writer
	Logger    *logger.Logger
}

// Model is the calculator screen
type Model struct {
	// Core data
	session   *session.Session
	theme     theme.Theme
	store     ThemeSaver
	clipboard clipboard.Writer
	log       *logger.Logger

	// UI state
	keys      KeyMap
	help      help.Model
	padCursor int
	notice    string

	// Dimensions
	width  int
	height int
}

// NewModel creates a new calculator model
func NewModel(opts Options) Model {
	sess := opts.Session
	if sess == nil {
		sess = session.New(nil)
	}

	active := opts.Theme
	if !active.Valid() {
		active = theme.Light
	}

	writer := opts.Clipboard
	if writer == nil {
		writer = clipboard.NewSystem()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	components.SetTheme(components.ThemeFor(active.String()))

	return Model{
		session:   sess,
		theme:     active,
		store:     opts.Store,
		clipboard: writer,
		log:       log,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the underlying calculator state.
func (m Model) Session() *session.Session {
	return m.session
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme
}

// PadCursor returns the index of the highlighted tile.
func (m Model) PadCursor() int {
	return m.padCursor
}

// Notice returns the transient status line, if any.
func (m Model) Notice() string {
	return m.notice
}

// movePadCursor moves the highlight with wrapping.
func (m *Model) movePadCursor(delta int) {
	m.padCursor = (m.padCursor + delta + deck.Size) % deck.Size
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	components.SetTheme(components.ThemeFor(t.String()))
}
