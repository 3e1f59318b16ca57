// Package memory provides in-memory implementations of driven ports.
// They are used by tests and by callers that must not touch the filesystem.
package memory
