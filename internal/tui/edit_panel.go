package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/postbrowser/internal/core/post"
	"github.com/colonyops/postbrowser/internal/core/styles"
)

// EditPanel is the form used to edit one post. Field values are bound to
// the panel, so it must be used through a pointer.
type EditPanel struct {
	form   *huh.Form
	postID int

	userID string
	title  string
	body   string
}

// NewEditPanel creates a panel prefilled from p.
func NewEditPanel(p post.Post, width int) *EditPanel {
	e := &EditPanel{
		postID: p.ID,
		userID: strconv.Itoa(p.UserID),
		title:  p.Title,
		body:   p.Body,
	}

	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))

	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("userId").
				Title("User ID").
				Validate(validateUserID).
				Value(&e.userID),
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&e.title),
			huh.NewText().
				Key("body").
				Title("Body").
				Lines(5).
				Value(&e.body),
		),
	).
		WithTheme(styles.FormTheme()).
		WithKeyMap(km).
		WithShowHelp(true).
		WithWidth(panelWidth(width))

	return e
}

// Init focuses the first field.
func (e *EditPanel) Init() tea.Cmd {
	return e.form.Init()
}

// Update forwards msg to the form.
func (e *EditPanel) Update(msg tea.Msg) tea.Cmd {
	m, cmd := e.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		e.form = f
	}
	return cmd
}

// State reports whether the form is still open, completed or aborted.
func (e *EditPanel) State() huh.FormState {
	return e.form.State
}

// SetWidth resizes the form.
func (e *EditPanel) SetWidth(width int) {
	e.form = e.form.WithWidth(panelWidth(width))
}

// PostID returns the id of the post being edited.
func (e *EditPanel) PostID() int { return e.postID }

// Patch returns the edited post.
func (e *EditPanel) Patch() (post.Post, error) {
	uid, err := strconv.Atoi(strings.TrimSpace(e.userID))
	if err != nil {
		return post.Post{}, fmt.Errorf("user id: %w", err)
	}
	return post.Post{
		ID:     e.postID,
		UserID: uid,
		Title:  e.title,
		Body:   e.body,
	}, nil
}

// View renders the panel.
func (e *EditPanel) View() string {
	return styles.PanelStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		styles.PanelTitleStyle.Render(fmt.Sprintf("Edit Post ID: %d", e.postID)),
		e.form.View(),
	))
}

func validateUserID(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("user id must be a whole number")
	}
	return nil
}

func panelWidth(screen int) int {
	if screen <= 0 {
		screen = defaultWidth
	}
	return max(min(screen-4, 80), 30)
}
