package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/postbrowser/internal/core/config"
	"github.com/colonyops/postbrowser/internal/core/post"
)

func testPosts(n int) []post.Post {
	posts := make([]post.Post, 0, n)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("sunt aut facere %d", i)
		if i%2 == 0 {
			title = fmt.Sprintf("qui est esse %d", i)
		}
		posts = append(posts, post.Post{
			ID:     i,
			UserID: (i-1)/10 + 1,
			Title:  title,
			Body:   fmt.Sprintf("quia et suscipit suscipit recusandae %d", i),
		})
	}
	return posts
}

func postsServer(t *testing.T, posts []post.Post) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(posts)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// runApp runs the root command with isolated config and log paths.
func runApp(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	if configPath == "" {
		configPath = filepath.Join(dir, "missing.yaml")
	}

	var stdout, stderr bytes.Buffer
	app := NewApp(&Flags{}, "test")
	app.Writer = &stdout
	app.ErrWriter = &stderr

	argv := append([]string{
		"postbrowser",
		"--log-file", filepath.Join(dir, "postbrowser.log"),
		"--config", configPath,
	}, args...)

	err := app.Run(context.Background(), argv)
	return stdout.String(), stderr.String(), err
}

func TestLs_Table(t *testing.T) {
	srv := postsServer(t, testPosts(25))

	out, errOut, err := runApp(t, "", "--endpoint", srv.URL, "ls", "--page", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Contains(t, lines[0], "USERID")
	assert.Contains(t, lines[1], "sunt aut facere 11")
	assert.Contains(t, lines[1], "quia et suscipit sus ...")
	assert.NotContains(t, out, "facere 1 ")
	assert.Contains(t, errOut, "page 2 of 3 · 25 posts")
}

func TestLs_JSON(t *testing.T) {
	srv := postsServer(t, testPosts(25))

	out, _, err := runApp(t, "", "--endpoint", srv.URL, "ls", "--json", "--query", "QUI", "--page-size", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)

	var first post.Post
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 2, first.ID)
	assert.Equal(t, "quia et suscipit suscipit recusandae 2", first.Body, "json keeps the full body")
}

func TestLs_Errors(t *testing.T) {
	srv := postsServer(t, testPosts(25))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "page past end", args: []string{"ls", "--page", "4"}, want: "page 4 out of range (1-3)"},
		{name: "page zero", args: []string{"ls", "--page=0"}, want: "out of range"},
		{name: "bad page size", args: []string{"ls", "--page-size=-2"}, want: "--page-size must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--endpoint", srv.URL}, tt.args...)
			_, _, err := runApp(t, "", args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLs_NoMatches(t *testing.T) {
	srv := postsServer(t, testPosts(3))

	out, errOut, err := runApp(t, "", "--endpoint", srv.URL, "ls", "--query", "nothing")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "No posts found")
}

func TestLs_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	out, _, err := runApp(t, "", "--endpoint", srv.URL, "ls", "--json")
	require.Error(t, err)

	var se *post.StatusError
	assert.ErrorAs(t, err, &se)
	assert.Contains(t, out, `"message":"fetch posts"`)
}

func TestConfigValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 25\ntheme: gruvbox\n"), 0o644))

	out, _, err := runApp(t, path, "config", "validate")
	require.NoError(t, err)

	assert.Contains(t, out, "config ok: "+path)
	assert.Contains(t, out, "page_size: 25")
	assert.Contains(t, out, "theme: gruvbox")
	assert.Contains(t, out, "timeout: 10s")
}

func TestConfigValidate_Defaults(t *testing.T) {
	out, _, err := runApp(t, "", "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "not found, using defaults")
	assert.Contains(t, out, "endpoint: "+post.DefaultEndpoint)
}

func TestConfigValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nope\npage_size: -1\n"), 0o644))

	_, _, err := runApp(t, path, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme")
	assert.Contains(t, err.Error(), "page_size")
}

func TestEndpointOverride_Invalid(t *testing.T) {
	_, _, err := runApp(t, "", "--endpoint", "ftp://example.com", "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --endpoint")
}

func TestApp_UnknownCommand(t *testing.T) {
	_, _, err := runApp(t, "", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "bogus"`)
}

func TestLs_MultilineBody(t *testing.T) {
	srv := postsServer(t, []post.Post{
		{ID: 1, UserID: 1, Title: "sunt aut facere", Body: "quia et suscipit\nsuscipit recusandae consequuntur\nexpedita"},
	})

	out, _, err := runApp(t, "", "--endpoint", srv.URL, "ls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "header plus one row")
	assert.Contains(t, lines[1], "quia et suscipit sus ...")
}

func TestNewSource_LogsAsDatasource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	cfg := config.DefaultConfig()
	cfg.Endpoint = srv.URL

	_, err := newSource(&cfg).List(context.Background())
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"cmp":"datasource"`)
	assert.Contains(t, out, `"level":"error"`)
}
