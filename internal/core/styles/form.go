package styles

import "github.com/charmbracelet/huh"

// FormTheme returns a huh theme derived from the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorSecondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ColorMuted)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(ColorForeground)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorSurface)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted).Bold(false)

	return t
}
