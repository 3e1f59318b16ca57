package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

// SearchBlobs runs the blob search of one project.
//
// Rate limited responses are retried up to MaxRetries times; every other
// failure is returned immediately. The retry counter lives only for the
// duration of this call.
func (c *Client) SearchBlobs(ctx context.Context, projectID int64, query string) ([]domain.Match, error) {
	path := fmt.Sprintf("/projects/%d/search", projectID)
	params := url.Values{}
	params.Set("scope", "blobs")
	params.Set("search", query)

	retries := 0
	for {
		resp, err := c.get(ctx, path, params)
		if err != nil {
			return nil, wrapError(err, fmt.Sprintf("search project %d", projectID))
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if retries >= MaxRetries {
				return nil, fmt.Errorf("%w for project %d: 429 Too Many Requests",
					ErrMaxRetriesExceeded, projectID)
			}

			wait := RetryDelay(resp.Header, retries)
			logger.Warn("[429] Rate limited on project %d. Retrying in %s...", projectID, wait)

			if err := c.sleep(ctx, wait); err != nil {
				return nil, fmt.Errorf("search project %d: %w", projectID, err)
			}
			retries++
			continue
		}

		if !resp.ok() {
			return nil, &APIError{
				Operation:  "search",
				ProjectID:  projectID,
				StatusCode: resp.StatusCode,
				URL:        resp.URL,
				Message:    errorMessage(resp.Body),
			}
		}

		var matches []domain.Match
		if err := json.Unmarshal(resp.Body, &matches); err != nil {
			return nil, &ParseError{
				Operation: fmt.Sprintf("search results for project %d", projectID),
				BaseURL:   c.baseURL,
				Err:       err,
			}
		}

		if retries > 0 {
			logger.Debug("Project %d recovered after %d retries", projectID, retries)
		}
		return matches, nil
	}
}
