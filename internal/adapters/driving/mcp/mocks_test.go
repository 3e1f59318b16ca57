package mcp

import (
	"context"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	report *domain.SearchReport
	err    error
	req    domain.SearchRequest
}

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchReport, error) {
	m.req = req
	return m.report, m.err
}
