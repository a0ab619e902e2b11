// Package browser holds the state of the post browser and the single
// transition function that folds events into it.
package browser

import (
	"github.com/colonyops/postbrowser/internal/core/post"
)

// DefaultPageSize is the number of rows on a page unless configured.
const DefaultPageSize = 10

// DeletedMessage is flashed after a post is removed.
const DeletedMessage = "Post is deleted"

// LoadStatus tracks the initial read of the collection.
type LoadStatus int

const (
	StatusLoading LoadStatus = iota
	StatusReady
	StatusFailed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Flash is a transient message. Seq identifies the message so a stale
// expiry cannot clear a newer one.
type Flash struct {
	Text string
	Seq  int
}

// Active reports whether the flash should be shown.
func (f Flash) Active() bool { return f.Text != "" }

// Options configures a new State.
type Options struct {
	PageSize   int
	TruncateAt int
}

// State is the complete state of the browser. Values are treated as
// immutable: Reduce returns a new State and never writes through the slices
// or maps of its input.
type State struct {
	Posts []post.Post

	Page       int
	PageSize   int
	Cursor     int // row index within the current page
	Query      string
	Expanded   map[int]bool
	TruncateAt int

	Selected  *post.Post
	ModalOpen bool
	EditOpen  bool

	Flash   Flash
	Status  LoadStatus
	LoadErr string
}

// New returns the pre-fetch state: no posts, page 1, loading.
func New(opts Options) State {
	size := opts.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	truncateAt := opts.TruncateAt
	if truncateAt < 1 {
		truncateAt = DefaultTruncateAt
	}
	return State{
		Page:       1,
		PageSize:   size,
		TruncateAt: truncateAt,
		Expanded:   map[int]bool{},
		Status:     StatusLoading,
	}
}

// Visible returns the posts that pass the search filter, before paging.
func (s State) Visible() []post.Post {
	return Filter(s.Posts, s.Query)
}

// Paginator returns the paginator over the visible set.
func (s State) Paginator() Paginator {
	return Paginator{Total: len(s.Visible()), Size: s.PageSize}
}

// PageCount returns the number of pages of the visible set.
func (s State) PageCount() int {
	return s.Paginator().Count()
}

// PageItems returns the visible posts on the current page.
func (s State) PageItems() []post.Post {
	visible := s.Visible()
	p := Paginator{Total: len(visible), Size: s.PageSize}
	start, end := p.Bounds(s.Page)
	return visible[start:end]
}

// Current returns the post under the cursor.
func (s State) Current() (post.Post, bool) {
	items := s.PageItems()
	if s.Cursor < 0 || s.Cursor >= len(items) {
		return post.Post{}, false
	}
	return items[s.Cursor], true
}

// IsExpanded reports whether the body of id is shown in full.
func (s State) IsExpanded(id int) bool {
	return s.Expanded[id]
}

// Body returns the display text of p's body and whether it can be toggled.
func (s State) Body(p post.Post) (string, bool) {
	return Truncate(p.Body, s.TruncateAt, s.IsExpanded(p.ID))
}
