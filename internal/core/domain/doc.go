// Package domain defines the core business entities for gitlab-xsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Project: A GitLab project returned by the projects listing
//   - Match: One blob search hit inside a project
//   - ResultRow: The flat, renderer-ready form of a match
//   - SearchRequest / SearchReport: The input and output of one run
//   - Settings: Persisted defaults such as the token and output format
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
