package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/postbrowser/internal/core/post"
)

// postsLoadedMsg carries the result of a successful read.
type postsLoadedMsg struct {
	posts []post.Post
}

// postsFailedMsg carries a failed read. The source logs the error.
type postsFailedMsg struct {
	err error
}

// flashExpiredMsg is delivered when the flash with sequence seq times out.
type flashExpiredMsg struct {
	seq int
}

// fetchPosts reads the collection once. A read abandoned because ctx was
// cancelled produces no message.
func fetchPosts(ctx context.Context, src post.Source, logger zerolog.Logger) tea.Cmd {
	return func() tea.Msg {
		posts, err := src.List(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Debug().Msg("fetch abandoned")
				return nil
			}
			return postsFailedMsg{err: err}
		}
		logger.Info().Int("count", len(posts)).Msg("posts loaded")
		return postsLoadedMsg{posts: posts}
	}
}
