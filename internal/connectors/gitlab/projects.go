package gitlab

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

const (
	// PerPage is the page size requested from listing endpoints.
	PerPage = 100

	// HeaderNextPage carries the next page number; empty on the last page.
	HeaderNextPage = "X-Next-Page"
)

// ListProjects returns every project in scope, in the order the pages
// arrived. Without a group it lists the projects the token is a member of;
// with a group it lists that group and its subgroups.
func (c *Client) ListProjects(ctx context.Context, scope domain.Scope) ([]domain.Project, error) {
	path := "/projects"
	if scope.IsGroup() {
		path = "/groups/" + groupPathSegment(scope.GroupID) + "/projects"
	}

	var allProjects []domain.Project
	page := 1

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		query := url.Values{}
		query.Set("per_page", strconv.Itoa(PerPage))
		query.Set("page", strconv.Itoa(page))
		if scope.IsGroup() {
			query.Set("include_subgroups", "true")
		} else {
			query.Set("membership", "true")
		}

		logger.Debug("Fetching projects page %d", page)

		resp, err := c.get(ctx, path, query)
		if err != nil {
			return nil, wrapError(err, "list projects")
		}
		if !resp.ok() {
			return nil, &APIError{
				Operation:  "list projects",
				StatusCode: resp.StatusCode,
				URL:        resp.URL,
				Message:    errorMessage(resp.Body),
			}
		}

		// The header must be read before the body is consumed.
		nextPage := strings.TrimSpace(resp.Header.Get(HeaderNextPage))

		var projects []domain.Project
		if err := json.Unmarshal(resp.Body, &projects); err != nil {
			return nil, &ParseError{Operation: "projects", BaseURL: c.baseURL, Err: err}
		}

		// An empty page ends the walk even if a next page was announced.
		if len(projects) == 0 {
			break
		}
		allProjects = append(allProjects, projects...)

		if nextPage == "" {
			break
		}
		next, err := strconv.Atoi(nextPage)
		if err != nil {
			next = page + 1
		}
		page = next
	}

	logger.Debug("Listed %d projects in %s", len(allProjects), scope)
	return allProjects, nil
}

// groupPathSegment escapes a group ID or full path for use as one path
// segment. Paths that arrive already URL-encoded are decoded first so
// "a%2Fb" and "a/b" address the same group.
func groupPathSegment(id string) string {
	if decoded, err := url.PathUnescape(id); err == nil {
		id = decoded
	}
	return url.PathEscape(id)
}
