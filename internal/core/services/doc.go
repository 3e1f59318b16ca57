// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The search orchestrator is the only part of the application with
// concurrency: it fans blob searches out over a bounded pool and isolates
// per-project failures.
package services
