// Package mcp exposes the cross-project code search to MCP clients.
//
// The server offers one tool, search_projects, and two resources:
// the report of the last search and the list of output formats.
// It is served over stdio or streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

// Version is reported to clients during initialisation.
const Version = "0.1.0"

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server answers search_projects calls with the configured search service
// and keeps the report of the last successful search for the runs/last resource.
type Server struct {
	ports *Ports
	sdk   *mcp.Server

	mu   sync.RWMutex
	last *domain.SearchReport
}

// NewServer registers the search tool and resources.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		sdk: mcp.NewServer(&mcp.Implementation{
			Name:    "gitlab-xsearch",
			Title:   "GitLab cross-project code search",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// ServeStdio serves a single client on stdin and stdout until ctx ends
// or the client disconnects.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.serve(ctx, &mcp.StdioTransport{})
}

func (s *Server) serve(ctx context.Context, t mcp.Transport) error {
	return s.sdk.Run(ctx, t)
}

// Handler returns the streamable HTTP handler. Every session shares this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.sdk
	}, nil)
}

// ListenAndServe serves Handler on addr until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves Handler on ln. When ctx ends, in-flight requests get
// shutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Debug("MCP server listening on %s", ln.Addr())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

// remember stores the report served by the runs/last resource.
func (s *Server) remember(report *domain.SearchReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = report
}

// LastReport returns the report of the most recent successful search, or nil.
func (s *Server) LastReport() *domain.SearchReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}
