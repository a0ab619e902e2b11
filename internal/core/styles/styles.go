// Package styles provides shared lipgloss styles for the CLI and TUI.
package styles

import (
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

var (
	TitleStyle     lipgloss.Style
	TextMutedStyle lipgloss.Style
	ErrorStyle     lipgloss.Style

	// Table.
	TableHeaderStyle   lipgloss.Style
	TableCellStyle     lipgloss.Style
	TableCursorStyle   lipgloss.Style
	TableToggleStyle   lipgloss.Style
	TableEmptyStyle    lipgloss.Style
	SearchPromptStyle  lipgloss.Style
	SearchActiveStyle  lipgloss.Style
	PageNumberStyle    lipgloss.Style
	PageActiveStyle    lipgloss.Style
	PageArrowStyle     lipgloss.Style
	FlashStyle         lipgloss.Style
	StatusLoadingStyle lipgloss.Style

	// Modal.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalLabelStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	// Edit panel.
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TableCellStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	TableCursorStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground)
	TableToggleStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	TableEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	SearchPromptStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	SearchActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	PageNumberStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	PageActiveStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true).
		Padding(0, 1)
	PageArrowStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Padding(0, 1)
	FlashStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Foreground(ColorSuccess).
		Padding(0, 1)
	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalLabelStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	PanelTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorPtr(ColorForeground)
	primary := colorPtr(ColorPrimary)
	secondary := colorPtr(ColorSecondary)
	muted := colorPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Document.Margin = nil
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	// Post bodies render as plain code blocks: no syntax guessing.
	cfg.CodeBlock.Color = fg
	cfg.CodeBlock.Chroma = nil

	return cfg
}
