package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/colonyops/postbrowser/internal/core/browser"
	"github.com/colonyops/postbrowser/internal/core/config"
	"github.com/colonyops/postbrowser/internal/core/post"
	"github.com/colonyops/postbrowser/internal/core/styles"
)

// promptMode selects what the bottom text input is collecting.
type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptJump
	promptPageSize
)

// Deps contains the dependencies of the browser model.
type Deps struct {
	Source post.Source
	Config *config.Config
	Logger zerolog.Logger
}

// Model is the bubbletea model of the post browser.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	state  browser.State
	source post.Source
	log    zerolog.Logger

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	prompt     textinput.Model
	promptMode promptMode
	promptPrev string

	edit   *EditPanel
	detail *DetailModal
	flash  *FlashTimer

	width  int
	height int
	closed bool
}

// New creates a browser model. The model owns a context derived from ctx
// that is cancelled by Close or when the user quits.
func New(ctx context.Context, deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}

	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusLoadingStyle

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.PromptStyle = styles.SearchActiveStyle
	ti.CharLimit = 120

	return Model{
		ctx:     ctx,
		cancel:  cancel,
		state:   browser.New(cfg.BrowserOptions()),
		source:  deps.Source,
		log:     deps.Logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		prompt:  ti,
		detail:  NewDetailModal(deps.Logger),
		flash:   NewFlashTimer(cfg.MessageTTL),
	}
}

// State returns the current browser state.
func (m Model) State() browser.State { return m.state }

// Init starts the spinner and the one read of the collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchPosts(m.ctx, m.source, m.log),
	)
}

// Close cancels the pending read and flash expiry. It is safe to call more
// than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.flash.Stop()
	m.cancel()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.edit != nil {
			m.edit.SetWidth(msg.Width)
		}
		return m, nil

	case postsLoadedMsg:
		if m.closed {
			return m, nil
		}
		return m, m.dispatch(browser.Loaded{Posts: msg.posts})

	case postsFailedMsg:
		if m.closed {
			return m, nil
		}
		return m, m.dispatch(browser.LoadFailed{Err: msg.err})

	case flashExpiredMsg:
		if m.closed {
			return m, nil
		}
		if msg.seq == m.state.Flash.Seq {
			m.flash.Stop()
		}
		return m, m.dispatch(browser.ClearMessage{Seq: msg.seq})

	case spinner.TickMsg:
		if m.state.Status != browser.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.edit != nil {
		return m.updateEdit(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case m.state.ModalOpen:
		return m.handleModalKey(keyMsg)
	case m.promptMode != promptNone:
		return m.handlePromptKey(keyMsg)
	default:
		return m.handleNormalKey(keyMsg)
	}
}

// dispatch folds ev into the state and schedules the flash expiry when a
// new flash was raised.
func (m *Model) dispatch(ev browser.Event) tea.Cmd {
	prev := m.state.Flash.Seq
	m.state = browser.Reduce(m.state, ev)

	if m.state.Flash.Seq != prev && m.state.Flash.Active() {
		return m.flash.Schedule(m.ctx, m.state.Flash.Seq)
	}
	return nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		return m, m.dispatch(browser.CloseModal{})
	case "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Up):
		return m, m.dispatch(browser.MoveCursor{Delta: -1})
	case key.Matches(msg, m.keys.Down):
		return m, m.dispatch(browser.MoveCursor{Delta: 1})
	case key.Matches(msg, m.keys.PrevPage):
		return m, m.dispatch(browser.PagePrev{})
	case key.Matches(msg, m.keys.NextPage):
		return m, m.dispatch(browser.PageNext{})
	case key.Matches(msg, m.keys.First):
		return m, m.dispatch(browser.PageJump{Page: 1})
	case key.Matches(msg, m.keys.Last):
		return m, m.dispatch(browser.PageJump{Page: m.state.PageCount()})
	case key.Matches(msg, m.keys.Grow):
		return m, m.dispatch(browser.SetPageSize{Size: m.state.PageSize + 1})
	case key.Matches(msg, m.keys.Shrink):
		return m, m.dispatch(browser.SetPageSize{Size: m.state.PageSize - 1})
	case key.Matches(msg, m.keys.Clear):
		return m, m.dispatch(browser.Search{Query: ""})
	case key.Matches(msg, m.keys.Search):
		return m.openPrompt(promptSearch, "/ ", m.state.Query)
	case key.Matches(msg, m.keys.Jump):
		return m.openPrompt(promptJump, "page: ", "")
	case key.Matches(msg, m.keys.PageSize):
		return m.openPrompt(promptPageSize, "items per page: ", strconv.Itoa(m.state.PageSize))
	}

	cur, ok := m.state.Current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m, m.dispatch(browser.ToggleExpand{ID: cur.ID})
	case key.Matches(msg, m.keys.View):
		return m, m.dispatch(browser.View{ID: cur.ID})
	case key.Matches(msg, m.keys.Delete):
		m.log.Debug().Int("id", cur.ID).Msg("delete post")
		return m, m.dispatch(browser.Delete{ID: cur.ID})
	case key.Matches(msg, m.keys.Edit):
		return m.openEdit(cur.ID)
	}

	return m, nil
}

func (m Model) openPrompt(mode promptMode, prompt, value string) (tea.Model, tea.Cmd) {
	m.promptMode = mode
	m.promptPrev = m.state.Query
	m.prompt.Prompt = prompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	return m, m.prompt.Focus()
}

func (m Model) closePrompt() Model {
	m.promptMode = promptNone
	m.prompt.Blur()
	m.prompt.SetValue("")
	return m
}

// handlePromptKey edits the active prompt. Search applies on every
// keystroke; page jump and page size apply on enter.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		mode := m.promptMode
		m = m.closePrompt()
		if mode == promptSearch {
			return m, m.dispatch(browser.Search{Query: m.promptPrev})
		}
		return m, nil
	case "enter":
		mode, value := m.promptMode, strings.TrimSpace(m.prompt.Value())
		m = m.closePrompt()
		return m, m.applyPrompt(mode, value)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.promptMode == promptSearch {
		return m, tea.Batch(cmd, m.dispatch(browser.Search{Query: m.prompt.Value()}))
	}
	return m, cmd
}

func (m *Model) applyPrompt(mode promptMode, value string) tea.Cmd {
	switch mode {
	case promptSearch:
		return m.dispatch(browser.Search{Query: value})
	case promptJump:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil
		}
		return m.dispatch(browser.PageJump{Page: n})
	case promptPageSize:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil
		}
		return m.dispatch(browser.SetPageSize{Size: n})
	}
	return nil
}

func (m Model) openEdit(id int) (tea.Model, tea.Cmd) {
	m.dispatch(browser.BeginEdit{ID: id})
	if !m.state.EditOpen || m.state.Selected == nil {
		return m, nil
	}
	m.edit = NewEditPanel(*m.state.Selected, m.width)
	return m, m.edit.Init()
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		return m.quit()
	}
	cmd := m.edit.Update(msg)
	m, finalCmd, done := m.finishEdit()
	if done {
		return m, finalCmd
	}
	return m, cmd
}

// finishEdit closes the panel once its form has completed or been aborted.
// done is false while the form is still open.
func (m Model) finishEdit() (Model, tea.Cmd, bool) {
	if m.edit == nil {
		return m, nil, false
	}

	switch m.edit.State() {
	case huh.StateCompleted:
		patch, err := m.edit.Patch()
		m.edit = nil
		if err != nil {
			m.log.Warn().Err(err).Msg("discard edit")
			return m, m.dispatch(browser.EditCancel{}), true
		}
		m.log.Debug().Int("id", patch.ID).Msg("edit post")
		return m, m.dispatch(browser.EditCommit{Post: patch}), true
	case huh.StateAborted:
		m.edit = nil
		return m, m.dispatch(browser.EditCancel{}), true
	}
	return m, nil, false
}
