// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ProjectLister: Enumerates the projects in scope (GitLab connector)
//   - BlobSearcher: Runs the blob search of one project (GitLab connector)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ProgressReporter: Receives per-project completion events.
//   - Renderer: Writes result rows in a user selected format.
//   - ConfigStore: Persisted application configuration.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
