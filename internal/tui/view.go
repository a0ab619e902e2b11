package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/postbrowser/internal/core/browser"
	"github.com/colonyops/postbrowser/internal/core/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.state.ModalOpen && m.state.Selected != nil {
		return m.detail.Overlay(m.mainView(), m.state.Selected, m.width, m.height)
	}
	return m.mainView()
}

func (m Model) mainView() string {
	sections := []string{
		m.titleLine(),
		m.searchLine(),
		renderTable(m.state, m.width),
	}

	if m.state.Status == browser.StatusReady {
		sections = append(sections, "", renderPager(m.state))
	}

	if m.state.Flash.Active() {
		sections = append(sections, styles.FlashStyle.Render(m.state.Flash.Text))
	}

	if m.edit != nil {
		sections = append(sections, "", m.edit.View())
	} else {
		sections = append(sections, "", m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) titleLine() string {
	title := styles.TitleStyle.Render("Posts")
	if m.state.Status == browser.StatusLoading {
		return title + " " + m.spinner.View()
	}
	return title
}

func (m Model) searchLine() string {
	if m.promptMode != promptNone {
		return m.prompt.View()
	}
	if m.state.Query == "" {
		return styles.SearchPromptStyle.Render("/ Search by title")
	}
	var b strings.Builder
	b.WriteString(styles.SearchPromptStyle.Render("/ "))
	b.WriteString(styles.SearchActiveStyle.Render(m.state.Query))
	return b.String()
}
