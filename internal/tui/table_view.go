package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/colonyops/postbrowser/internal/core/browser"
	"github.com/colonyops/postbrowser/internal/core/post"
	"github.com/colonyops/postbrowser/internal/core/styles"
)

const (
	defaultWidth  = 100
	cursorWidth   = 2
	userIDWidth   = 8
	idWidth       = 6
	minTitleWidth = 12
	minBodyWidth  = 24
	cursorMarker  = "› "
)

// columns holds the computed cell widths of a table row.
type columns struct {
	title, body int
}

func layoutColumns(width int) columns {
	if width <= 0 {
		width = defaultWidth
	}
	rest := width - cursorWidth - userIDWidth - idWidth
	title := max(rest*2/5, minTitleWidth)
	body := max(rest-title, minBodyWidth)
	return columns{title: title, body: body}
}

// renderTable renders the header and the rows of the current page.
func renderTable(s browser.State, width int) string {
	cols := layoutColumns(width)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("", cursorWidth),
		styles.TableHeaderStyle.Render(cell("UserId", userIDWidth)),
		styles.TableHeaderStyle.Render(cell("Id", idWidth)),
		styles.TableHeaderStyle.Render(cell("Title", cols.title)),
		styles.TableHeaderStyle.Render(cell("Body", cols.body)),
	)

	items := s.PageItems()
	if len(items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, emptyTableLine(s))
	}

	rows := make([]string, 0, len(items)+1)
	rows = append(rows, header)
	for i, p := range items {
		rows = append(rows, renderRow(s, p, cols, i == s.Cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderRow(s browser.State, p post.Post, cols columns, selected bool) string {
	style := styles.TableCellStyle
	marker := ""
	if selected {
		style = styles.TableCursorStyle
		marker = cursorMarker
	}

	text, toggle := s.Body(p)
	body := browser.SingleLine(text)
	if toggle {
		body += " " + styles.TableToggleStyle.Render("["+browser.ToggleLabel(s.IsExpanded(p.ID))+"]")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Render(cell(marker, cursorWidth)),
		style.Render(cell(strconv.Itoa(p.UserID), userIDWidth)),
		style.Render(cell(strconv.Itoa(p.ID), idWidth)),
		style.Render(cell(p.Title, cols.title)),
		style.Width(cols.body).Render(body),
	)
}

// cell fits s into exactly w columns, truncating with an ellipsis.
func cell(s string, w int) string {
	s = browser.SingleLine(s)
	if runewidth.StringWidth(s) > w-1 {
		s = runewidth.Truncate(s, w-1, "…")
	}
	return runewidth.FillRight(s, w)
}

func emptyTableLine(s browser.State) string {
	switch s.Status {
	case browser.StatusLoading:
		return styles.StatusLoadingStyle.Render("Loading posts...")
	case browser.StatusFailed:
		return styles.TableEmptyStyle.Render("No posts")
	}
	if s.Query != "" {
		return styles.TableEmptyStyle.Render(fmt.Sprintf("No posts match %q", s.Query))
	}
	return styles.TableEmptyStyle.Render("No posts")
}

// renderPager renders prev/next arrows around the visible page numbers,
// followed by the page size.
func renderPager(s browser.State) string {
	p := s.Paginator()

	var parts []string
	if p.HasPrev(s.Page) {
		parts = append(parts, styles.PageArrowStyle.Render("<<"))
	}
	for _, n := range p.Window(s.Page) {
		label := strconv.Itoa(n)
		if n == s.Page {
			parts = append(parts, styles.PageActiveStyle.Render(label))
			continue
		}
		parts = append(parts, styles.PageNumberStyle.Render(label))
	}
	if p.HasNext(s.Page) {
		parts = append(parts, styles.PageArrowStyle.Render(">>"))
	}

	summary := styles.TextMutedStyle.Render(fmt.Sprintf(
		"  page %d of %d · %d posts · Items Per Page: %d",
		s.Page, max(p.Count(), 1), p.Total, s.PageSize,
	))

	return lipgloss.JoinHorizontal(lipgloss.Center, append(parts, summary)...)
}
