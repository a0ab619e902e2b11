package browser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxy" // 25 characters

	tests := []struct {
		name       string
		body       string
		expanded   bool
		wantText   string
		wantToggle bool
	}{
		{name: "short body", body: "short", wantText: "short", wantToggle: false},
		{name: "exactly at limit", body: long[:20], wantText: long[:20], wantToggle: false},
		{name: "long collapsed", body: long, wantText: long[:20] + " ...", wantToggle: true},
		{name: "long expanded", body: long, expanded: true, wantText: long, wantToggle: true},
		{name: "short expanded", body: "short", expanded: true, wantText: "short", wantToggle: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, toggle := Truncate(tt.body, DefaultTruncateAt, tt.expanded)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantToggle, toggle)
		})
	}
}

func TestTruncate_countsCharacters(t *testing.T) {
	body := strings.Repeat("é", 21)

	text, toggle := Truncate(body, DefaultTruncateAt, false)

	assert.True(t, toggle)
	assert.Equal(t, strings.Repeat("é", 20)+Ellipsis, text)
}

func TestToggleLabel(t *testing.T) {
	assert.Equal(t, "View More", ToggleLabel(false))
	assert.Equal(t, "View Less", ToggleLabel(true))
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "quia et suscipit suscipit", SingleLine("quia et suscipit\nsuscipit"))
	assert.Equal(t, "a b c", SingleLine("a\r\nb\rc"))
	assert.Equal(t, "unchanged", SingleLine("unchanged"))

	text, _ := Truncate("quia et suscipit\nsuscipit recusandae", DefaultTruncateAt, false)
	assert.Equal(t, "quia et suscipit sus ...", SingleLine(text))
}
