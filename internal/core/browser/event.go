package browser

import "github.com/colonyops/postbrowser/internal/core/post"

// Event is an input to Reduce.
type Event interface {
	event()
}

type (
	// Loaded replaces the post collection after a successful read.
	Loaded struct{ Posts []post.Post }
	// LoadFailed records a failed read. The collection stays as it was.
	LoadFailed struct{ Err error }
	// Search sets the title query.
	Search struct{ Query string }
	// PageJump moves to Page if it exists.
	PageJump struct{ Page int }
	// PageNext moves forward one page if possible.
	PageNext struct{}
	// PagePrev moves back one page if possible.
	PagePrev struct{}
	// SetPageSize changes the number of rows per page. Sizes below 1 are
	// ignored.
	SetPageSize struct{ Size int }
	// MoveCursor moves the row cursor by Delta within the current page.
	MoveCursor struct{ Delta int }
	// ToggleExpand flips the expanded state of a post body.
	ToggleExpand struct{ ID int }
	// View opens the detail modal for a post.
	View struct{ ID int }
	// CloseModal dismisses the detail modal.
	CloseModal struct{}
	// BeginEdit opens the edit panel for a post.
	BeginEdit struct{ ID int }
	// EditCommit replaces the post being edited with Post. The id of the
	// edited post is kept.
	EditCommit struct{ Post post.Post }
	// EditCancel closes the edit panel without changes.
	EditCancel struct{}
	// Delete removes a post and flashes a confirmation.
	Delete struct{ ID int }
	// ClearMessage clears the flash if it is still message Seq.
	ClearMessage struct{ Seq int }
)

func (Loaded) event()       {}
func (LoadFailed) event()   {}
func (Search) event()       {}
func (PageJump) event()     {}
func (PageNext) event()     {}
func (PagePrev) event()     {}
func (SetPageSize) event()  {}
func (MoveCursor) event()   {}
func (ToggleExpand) event() {}
func (View) event()         {}
func (CloseModal) event()   {}
func (BeginEdit) event()    {}
func (EditCommit) event()   {}
func (EditCancel) event()   {}
func (Delete) event()       {}
func (ClearMessage) event() {}
