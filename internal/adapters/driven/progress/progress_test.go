package progress

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

func project(id int64) domain.Project {
	return domain.Project{ID: id, Name: "api", PathWithNamespace: "acme/api"}
}

func TestNew_NonTerminalUsesLog(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	_, ok := New(f, "q").(*Log)
	assert.True(t, ok)
}

func TestNew_NilFileUsesLog(t *testing.T) {
	_, ok := New(nil, "q").(*Log)
	assert.True(t, ok)
}

func TestBar_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf, "needle")

	b.Start(4)
	assert.Contains(t, buf.String(), "Found 4 projects. Starting search for 'needle'...\n")
	assert.InDelta(t, 0.0, b.Percent(), 1e-9)

	b.Advance(project(1), nil)
	b.Advance(project(2), errors.New("boom"))
	assert.InDelta(t, 0.5, b.Percent(), 1e-9)

	out := buf.String()
	assert.Contains(t, out, "\r")
	assert.Contains(t, out, "2/4")
	assert.Contains(t, out, "(1 failed)")

	b.Advance(project(3), nil)
	b.Advance(project(4), nil)
	b.Finish()
	assert.InDelta(t, 1.0, b.Percent(), 1e-9)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "4/4")
}

func TestBar_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf, "q")
	b.Start(0)
	b.Finish()
	assert.InDelta(t, 1.0, b.Percent(), 1e-9)
	assert.Contains(t, buf.String(), "0/0")
}

func TestLog_Lifecycle(t *testing.T) {
	var status, logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	l := NewLog(&status, "needle")
	l.Start(2)
	l.Advance(project(1), nil)
	l.Advance(project(2), errors.New("boom"))
	l.Finish()

	assert.Equal(t, "Found 2 projects. Starting search for 'needle'...\n", status.String())
	assert.Contains(t, logs.String(), "[INFO] [1/2] acme/api ok")
	assert.Contains(t, logs.String(), "[INFO] [2/2] acme/api failed")
	assert.Contains(t, logs.String(), "Searched 2/2 projects")
}

func TestLog_QuietWhenNotVerbose(t *testing.T) {
	var status, logs bytes.Buffer
	logger.SetOutput(&logs)
	logger.SetVerbose(false)
	defer logger.SetOutput(os.Stderr)

	l := NewLog(&status, "q")
	l.Start(1)
	l.Advance(project(1), nil)
	l.Finish()

	assert.NotEmpty(t, status.String())
	assert.Empty(t, logs.String())
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		var n Nop
		n.Start(3)
		n.Advance(project(1), nil)
		n.Finish()
	})
}

func TestLimited_PrintsBeforeStart(t *testing.T) {
	var barOut, logOut bytes.Buffer
	reporters := map[string]interface {
		Limited(int, int)
		Start(int)
	}{
		"bar": NewBar(&barOut, "q"),
		"log": NewLog(&logOut, "q"),
	}
	outputs := map[string]*bytes.Buffer{"bar": &barOut, "log": &logOut}

	for name, r := range reporters {
		t.Run(name, func(t *testing.T) {
			r.Limited(5, 12)
			r.Start(5)

			out := outputs[name].String()
			assert.True(t, strings.HasPrefix(out,
				"Note: Limited to first 5 of 12 projects\nFound 5 projects."), out)
		})
	}
}
