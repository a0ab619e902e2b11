package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the browser table.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	First    key.Binding
	Last     key.Binding
	Jump     key.Binding
	Search   key.Binding
	Clear    key.Binding
	PageSize key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Toggle   key.Binding
	View     key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		Jump:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to page")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		PageSize: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "items per page")),
		Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more per page")),
		Shrink:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer per page")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "view more/less")),
		View:     key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "view")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.View, k.Edit, k.Delete, k.Toggle, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.View, k.Edit, k.Delete},
		{k.PrevPage, k.NextPage, k.First, k.Last, k.Jump},
		{k.Search, k.Clear, k.PageSize, k.Grow, k.Shrink},
		{k.Help, k.Quit},
	}
}

// all returns every binding, used to check for conflicts.
func (k KeyMap) all() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.PrevPage, k.NextPage, k.First, k.Last, k.Jump,
		k.Search, k.Clear, k.PageSize, k.Grow, k.Shrink,
		k.Toggle, k.View, k.Edit, k.Delete, k.Help, k.Quit,
	}
}
