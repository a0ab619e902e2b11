package post

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.URL.RawQuery)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"userId": 1, "id": 1, "title": "Hello World", "body": "short"},
			{"userId": 2, "id": 2, "title": "no body"}
		]`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, time.Second, zerolog.Nop())
	posts, err := src.List(context.Background())
	require.NoError(t, err)

	require.Len(t, posts, 2)
	assert.Equal(t, Post{ID: 1, UserID: 1, Title: "Hello World", Body: "short"}, posts[0])
	assert.Equal(t, "", posts[1].Body)
	assert.False(t, posts[1].Complete())
}

func TestHTTPSource_List_status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, time.Second, zerolog.Nop())
	_, err := src.List(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPSource_List_malformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, time.Second, zerolog.Nop())
	_, err := src.List(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode posts")
}

func TestHTTPSource_List_cancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewHTTPSource(srv.URL, 0, zerolog.Nop())
	_, err := src.List(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSource_List_logsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	src := NewHTTPSource(srv.URL, time.Second, zerolog.New(&buf))
	_, err := src.List(context.Background())
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, srv.URL, entry["endpoint"])
	assert.Contains(t, entry["error"], "500")
}

func TestHTTPSource_List_cancelledLogsDebug(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	src := NewHTTPSource("http://127.0.0.1:1/posts", 0, zerolog.New(&buf).Level(zerolog.InfoLevel))
	_, err := src.List(ctx)

	require.Error(t, err)
	assert.Empty(t, buf.String(), "an abandoned read is not an error")
}
