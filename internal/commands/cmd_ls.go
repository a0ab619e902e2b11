package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/postbrowser/internal/core/browser"
	"github.com/colonyops/postbrowser/internal/core/post"
	"github.com/colonyops/postbrowser/pkg/iojson"
)

// fixed width of the USERID and ID columns plus tabwriter padding
const lsFixedWidth = 20

type LsCmd struct {
	flags *Flags

	// source overrides the configured HTTP source
	source post.Source

	// flags
	query      string
	page       int
	pageSize   int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "Print one page of posts",
		UsageText: "postbrowser ls [--query text] [--page n] [--page-size n] [--json]",
		Description: `Fetches the posts once, applies the title search and prints the requested
page. Bodies are shortened the same way as collapsed rows in the browser.

Use --json for one JSON object per post with the full body.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "case-insensitive title search",
				Destination: &cmd.query,
			},
			&cli.IntFlag{
				Name:        "page",
				Aliases:     []string{"p"},
				Usage:       "page to print (1-based)",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.IntFlag{
				Name:        "page-size",
				Usage:       "posts per page (defaults to the configured page_size)",
				Destination: &cmd.pageSize,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	errOut := c.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}

	src := cmd.source
	if src == nil {
		src = newSource(cmd.flags.Config)
	}

	posts, err := src.List(ctx)
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(out, "fetch posts", map[string]any{"error": err.Error()})
		}
		return fmt.Errorf("fetch posts: %w", err)
	}

	s, err := cmd.pageState(posts)
	if err != nil {
		return err
	}

	items := s.PageItems()
	if len(items) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintln(errOut, "No posts found")
		}
		return nil
	}

	if cmd.jsonOutput {
		for _, p := range items {
			if err := iojson.WriteLine(out, p); err != nil {
				return fmt.Errorf("encode post: %w", err)
			}
		}
		return nil
	}

	titleWidth := titleColumnWidth(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "USERID\tID\tTITLE\tBODY")
	for _, p := range items {
		body, _ := s.Body(p)
		body = browser.SingleLine(body)
		title := browser.SingleLine(p.Title)
		if titleWidth > 0 {
			title = runewidth.Truncate(title, titleWidth, "…")
		}
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", p.UserID, p.ID, title, body)
	}
	_ = w.Flush()

	pg := s.Paginator()
	fmt.Fprintf(errOut, "page %d of %d · %d posts\n", s.Page, pg.Count(), pg.Total)

	return nil
}

// pageState runs the browser pipeline for the requested query and page.
func (cmd *LsCmd) pageState(posts []post.Post) (browser.State, error) {
	opts := cmd.flags.Config.BrowserOptions()
	if cmd.pageSize != 0 {
		if cmd.pageSize < 1 {
			return browser.State{}, fmt.Errorf("--page-size must be at least 1, got %d", cmd.pageSize)
		}
		opts.PageSize = cmd.pageSize
	}

	s := browser.Replay(browser.New(opts),
		browser.Loaded{Posts: posts},
		browser.Search{Query: cmd.query},
	)

	count := s.PageCount()
	if count == 0 && cmd.page == 1 {
		return s, nil
	}
	if !s.Paginator().Valid(cmd.page) {
		return browser.State{}, fmt.Errorf("page %d out of range (1-%d)", cmd.page, max(count, 1))
	}

	return browser.Reduce(s, browser.PageJump{Page: cmd.page}), nil
}

// titleColumnWidth returns the title width that keeps a row on one line of
// the terminal, or 0 when out is not a terminal.
func titleColumnWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	// title gets half of what the fixed columns leave; the body is already short
	return max((width-lsFixedWidth)/2, 10)
}
