package browser

import (
	"github.com/colonyops/postbrowser/internal/core/post"
)

// Reduce applies ev to s and returns the resulting state. Page and cursor
// bounds are re-established after every event.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case Loaded:
		s.Posts = ev.Posts
		s.Status = StatusReady
		s.LoadErr = ""

	case LoadFailed:
		s.Status = StatusFailed
		if ev.Err != nil {
			s.LoadErr = ev.Err.Error()
		}

	case Search:
		if ev.Query != s.Query {
			s.Query = ev.Query
			s.Page = 1
			s.Cursor = 0
		}

	case PageJump:
		if s.Paginator().Valid(ev.Page) && ev.Page != s.Page {
			s.Page = ev.Page
			s.Cursor = 0
		}

	case PageNext:
		if s.Paginator().HasNext(s.Page) {
			s.Page++
			s.Cursor = 0
		}

	case PagePrev:
		if s.Paginator().HasPrev(s.Page) {
			s.Page--
			s.Cursor = 0
		}

	case SetPageSize:
		if ev.Size >= 1 {
			s.PageSize = ev.Size
		}

	case MoveCursor:
		s.Cursor += ev.Delta

	case ToggleExpand:
		expanded := cloneSet(s.Expanded)
		if expanded[ev.ID] {
			delete(expanded, ev.ID)
		} else {
			expanded[ev.ID] = true
		}
		s.Expanded = expanded

	case View:
		if p, ok := post.Find(s.Posts, ev.ID); ok {
			s.Selected = &p
			s.ModalOpen = true
		}

	case CloseModal:
		s.ModalOpen = false

	case BeginEdit:
		if p, ok := post.Find(s.Posts, ev.ID); ok {
			s.Selected = &p
			s.EditOpen = true
			s.ModalOpen = false
		}

	case EditCommit:
		if !s.EditOpen || s.Selected == nil {
			break
		}
		patch := ev.Post
		patch.ID = s.Selected.ID
		s.Posts = post.Replace(s.Posts, patch)
		s.EditOpen = false
		s.Selected = nil

	case EditCancel:
		s.EditOpen = false
		s.Selected = nil

	case Delete:
		s.Posts = post.Without(s.Posts, ev.ID)
		if s.Expanded[ev.ID] {
			expanded := cloneSet(s.Expanded)
			delete(expanded, ev.ID)
			s.Expanded = expanded
		}
		if s.Selected != nil && s.Selected.ID == ev.ID {
			s.Selected = nil
			s.ModalOpen = false
			s.EditOpen = false
		}
		s.Flash = Flash{Text: DeletedMessage, Seq: s.Flash.Seq + 1}

	case ClearMessage:
		if ev.Seq == s.Flash.Seq {
			s.Flash.Text = ""
		}
	}

	return clamp(s)
}

// Replay folds events into s in order.
func Replay(s State, events ...Event) State {
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	return s
}

func clamp(s State) State {
	s.Page = s.Paginator().Clamp(s.Page)

	rows := len(s.PageItems())
	switch {
	case rows == 0 || s.Cursor < 0:
		s.Cursor = 0
	case s.Cursor >= rows:
		s.Cursor = rows - 1
	}
	return s
}

func cloneSet(m map[int]bool) map[int]bool {
	out := make(map[int]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
