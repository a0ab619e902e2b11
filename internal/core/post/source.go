package post

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultEndpoint is the collection read when no endpoint is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// Source reads the full post collection.
type Source interface {
	List(ctx context.Context) ([]Post, error)
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.Endpoint, e.Code, http.StatusText(e.Code))
}

// HTTPSource reads posts with a single unauthenticated GET.
type HTTPSource struct {
	endpoint string
	client   *http.Client
	log      zerolog.Logger
}

// NewHTTPSource creates a source for endpoint. A zero timeout means the
// request is bounded only by the caller's context.
func NewHTTPSource(endpoint string, timeout time.Duration, logger zerolog.Logger) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      logger,
	}
}

// Endpoint returns the URL the source reads from.
func (s *HTTPSource) Endpoint() string { return s.endpoint }

// List fetches and decodes the collection. Failures are logged before they
// are returned.
func (s *HTTPSource) List(ctx context.Context) ([]Post, error) {
	posts, err := s.list(ctx)
	if err != nil {
		lvl := zerolog.ErrorLevel
		if ctx.Err() != nil {
			lvl = zerolog.DebugLevel
		}
		s.log.WithLevel(lvl).Err(err).Str("endpoint", s.endpoint).Msg("fetch posts")
		return nil, err
	}
	return posts, nil
}

func (s *HTTPSource) list(ctx context.Context) ([]Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", s.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Endpoint: s.endpoint, Code: resp.StatusCode}
	}

	var posts []Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	s.log.Debug().
		Str("endpoint", s.endpoint).
		Int("count", len(posts)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched posts")

	return posts, nil
}
