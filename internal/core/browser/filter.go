package browser

import (
	"strings"

	"github.com/colonyops/postbrowser/internal/core/post"
)

// Filter returns the posts eligible for display under query. Incomplete
// posts are always excluded. A non-empty query keeps only posts whose title
// contains it, ignoring case. Order is preserved.
func Filter(posts []post.Post, query string) []post.Post {
	needle := strings.ToLower(query)
	out := make([]post.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Complete() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
