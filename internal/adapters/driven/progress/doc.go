// Package progress reports search progress on stderr.
//
// Bar draws a progress bar when the output is a terminal. Log writes
// one line per completed project through the logger and is used when
// output is redirected. Nop discards everything.
package progress
