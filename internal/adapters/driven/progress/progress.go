package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

// Verify interface compliance.
var (
	_ driven.ProgressReporter = (*Bar)(nil)
	_ driven.ProgressReporter = (*Log)(nil)
	_ driven.ProgressReporter = Nop{}
)

// DefaultBarWidth is the width of the bar in cells.
const DefaultBarWidth = 40

// New picks a reporter for f: a Bar when f is a terminal, Log otherwise.
func New(f *os.File, query string) driven.ProgressReporter {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		return NewBar(f, query)
	}
	return NewLog(f, query)
}

// announce writes the status line printed before searching begins.
func announce(w io.Writer, total int, query string) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Found %d projects. Starting search for '%s'...\n", total, query)
}

// limited writes the truncation note.
func limited(w io.Writer, searched, listed int) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Note: Limited to first %d of %d projects\n", searched, listed)
}

// Bar renders a bubbles progress bar, redrawn in place with \r.
type Bar struct {
	w      io.Writer
	query  string
	model  progress.Model
	total  int
	done   int
	failed int
}

// NewBar creates a progress bar writing to w.
func NewBar(w io.Writer, query string) *Bar {
	return &Bar{
		w:     w,
		query: query,
		model: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(DefaultBarWidth),
		),
	}
}

// Limited prints the truncation note.
func (b *Bar) Limited(searched, listed int) {
	limited(b.w, searched, listed)
}

// Start prints the status line and an empty bar.
func (b *Bar) Start(total int) {
	b.total = total
	b.done = 0
	b.failed = 0
	announce(b.w, total, b.query)
	b.draw()
}

// Advance moves the bar one project forward.
func (b *Bar) Advance(_ domain.Project, err error) {
	b.done++
	if err != nil {
		b.failed++
	}
	b.draw()
}

// Finish ends the bar line.
func (b *Bar) Finish() {
	_, _ = fmt.Fprintln(b.w)
}

// Percent returns the completed fraction in [0, 1].
func (b *Bar) Percent() float64 {
	if b.total <= 0 {
		return 1
	}
	return float64(b.done) / float64(b.total)
}

func (b *Bar) draw() {
	line := fmt.Sprintf("\r%s %d/%d", b.model.ViewAs(b.Percent()), b.done, b.total)
	if b.failed > 0 {
		line += fmt.Sprintf(" (%d failed)", b.failed)
	}
	_, _ = io.WriteString(b.w, line)
}

// Log reports progress as log lines.
type Log struct {
	w     io.Writer
	query string
	total int
	done  int
}

// NewLog creates a line based reporter. The status line goes to w;
// per-project lines go through the logger and only show when verbose.
func NewLog(w io.Writer, query string) *Log {
	return &Log{w: w, query: query}
}

// Limited prints the truncation note.
func (l *Log) Limited(searched, listed int) {
	limited(l.w, searched, listed)
}

// Start prints the status line.
func (l *Log) Start(total int) {
	l.total = total
	l.done = 0
	announce(l.w, total, l.query)
}

// Advance logs the completed project.
func (l *Log) Advance(project domain.Project, err error) {
	l.done++
	status := "ok"
	if err != nil {
		status = "failed"
	}
	logger.Info("[%d/%d] %s %s", l.done, l.total, project.PathWithNamespace, status)
}

// Finish logs completion.
func (l *Log) Finish() {
	logger.Info("Searched %d/%d projects", l.done, l.total)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Limited(int, int)              {}
func (Nop) Start(int)                     {}
func (Nop) Advance(domain.Project, error) {}
func (Nop) Finish()                       {}
