// Package gitlab implements the GitLab REST API client used by the search
// orchestrator.
//
// The client covers the two endpoints a transversal search needs and nothing
// else:
//
//   - Projects listing: GET /projects (membership=true) or
//     GET /groups/{id}/projects (include_subgroups=true)
//   - Blob search: GET /projects/{id}/search?scope=blobs
//
// # Transport
//
// A single [Client] is created per run. It carries the access token as a
// bearer credential through an oauth2 static token source and targets a
// normalised base URL that always ends with /api/v4. The client holds no
// mutable state after construction and is safe for concurrent use.
//
// # Pagination
//
// Listing walks pages of 100 projects following the X-Next-Page header. An
// empty page or a missing header ends the walk. Listing failures are fatal
// and never retried.
//
// # Rate Limiting
//
// Blob search reacts to HTTP 429 responses with a bounded retry loop:
//
//  1. Wait for the Retry-After duration when the header is present.
//  2. Otherwise back off exponentially: 2^attempt seconds.
//  3. Give up with [ErrMaxRetriesExceeded] after [MaxRetries] retries.
//
// An optional proactive token bucket ([WithRateLimit]) spaces requests out
// before they are sent. It is disabled by default.
//
// # Error Handling
//
//   - Non-success statuses: [*APIError], never retried
//   - Undecodable bodies: [*ParseError], which names the configured base URL
//   - Invalid credentials at construction: [ErrInvalidToken]
package gitlab
