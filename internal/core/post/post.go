// Package post defines the post record and the sources it is read from.
package post

// Post is a single record from the remote collection. Fields are decoded
// verbatim; nothing is validated or normalized.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Complete reports whether the post has both a title and a body. Incomplete
// posts are never displayed.
func (p Post) Complete() bool {
	return p.Title != "" && p.Body != ""
}

// IndexOf returns the position of the post with the given id, or -1.
func IndexOf(posts []Post, id int) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the post with the given id.
func Find(posts []Post, id int) (Post, bool) {
	i := IndexOf(posts, id)
	if i < 0 {
		return Post{}, false
	}
	return posts[i], true
}

// Without returns a copy of posts with every entry matching id removed.
// The input slice is not modified.
func Without(posts []Post, id int) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

// Replace returns a copy of posts with the entry matching patch.ID swapped
// for patch. Order is preserved. The input slice is not modified.
func Replace(posts []Post, patch Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		if p.ID == patch.ID {
			out[i] = patch
			continue
		}
		out[i] = p
	}
	return out
}
