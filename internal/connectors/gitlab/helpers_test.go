package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// sleepRecorder records backoff waits instead of sleeping.
type sleepRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
	err   error
}

func (s *sleepRecorder) Sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waits = append(s.waits, d)
	return s.err
}

func (s *sleepRecorder) Waits() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.waits...)
}

// newTestClient starts a server with handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), "test-token", server.URL, opts...)
	require.NoError(t, err)
	return client, server
}

// makeProjects returns n projects with sequential IDs starting at first.
func makeProjects(first, n int) []domain.Project {
	projects := make([]domain.Project, 0, n)
	for i := 0; i < n; i++ {
		id := int64(first + i)
		projects = append(projects, domain.Project{
			ID:                id,
			Name:              fmt.Sprintf("project-%d", id),
			PathWithNamespace: fmt.Sprintf("group/project-%d", id),
			HTTPURLToRepo:     fmt.Sprintf("https://gitlab.example.com/group/project-%d.git", id),
			Path:              fmt.Sprintf("project-%d", id),
		})
	}
	return projects
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
