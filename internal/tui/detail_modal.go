package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/colonyops/postbrowser/internal/core/post"
	"github.com/colonyops/postbrowser/internal/core/styles"
	"github.com/colonyops/postbrowser/pkg/kv"
)

const (
	modalMaxWidth  = 72
	modalMinWidth  = 30
	rendererCacheN = 8

	// left margin glamour gives code blocks
	codeBlockIndent = 2
)

// DetailModal renders the read-only overlay of one post. Renderers are
// cached per wrap width.
type DetailModal struct {
	renderers *kv.Store[int, *glamour.TermRenderer]
	log       zerolog.Logger
}

// NewDetailModal creates a detail modal.
func NewDetailModal(logger zerolog.Logger) *DetailModal {
	return &DetailModal{
		renderers: kv.New[int, *glamour.TermRenderer](rendererCacheN),
		log:       logger,
	}
}

// Content renders the modal box for p. It returns "" when p is nil.
func (d *DetailModal) Content(p *post.Post, width int) string {
	if p == nil {
		return ""
	}

	inner := modalInnerWidth(width)

	field := func(label, value string) string {
		return styles.ModalLabelStyle.Render(label+": ") + value
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(fmt.Sprintf("Details for Post ID: %d", p.ID)),
		"",
		field("UserId", strconv.Itoa(p.UserID)),
		field("Id", strconv.Itoa(p.ID)),
		lipgloss.NewStyle().Width(inner).Render(field("Title", p.Title)),
		styles.ModalLabelStyle.Render("Body:"),
		d.renderBody(p.Body, inner),
		styles.ModalHelpStyle.Render("esc close"),
	)

	return styles.ModalStyle.Width(inner + 4).Render(content)
}

// Overlay centers the modal for p over the screen. The background is
// replaced while the modal is open. With no post selected the background is
// returned unchanged.
func (d *DetailModal) Overlay(background string, p *post.Post, width, height int) string {
	box := d.Content(p, width)
	if box == "" {
		return background
	}
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = 24
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderBody shows body verbatim. It is wrapped to width and fenced as a
// code block so glamour styles it without reading markdown out of it.
func (d *DetailModal) renderBody(body string, width int) string {
	wrapped := ansi.Wordwrap(body, max(width-codeBlockIndent, 1), "")

	r, err := d.renderer(width)
	if err == nil {
		var out string
		out, err = r.Render(fenced(wrapped))
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}
	d.log.Warn().Err(err).Msg("render post body")
	return lipgloss.NewStyle().Width(width).Render(wrapped)
}

// fenced wraps s in a code fence longer than any backtick run inside it.
func fenced(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	fence := strings.Repeat("`", max(3, longest+1))
	return fence + "\n" + s + "\n" + fence + "\n"
}

func (d *DetailModal) renderer(width int) (*glamour.TermRenderer, error) {
	return d.renderers.GetOrSet(width, func() (*glamour.TermRenderer, error) {
		return glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(width),
		)
	})
}

func modalInnerWidth(screen int) int {
	if screen <= 0 {
		screen = defaultWidth
	}
	return max(min(screen-8, modalMaxWidth), modalMinWidth)
}
