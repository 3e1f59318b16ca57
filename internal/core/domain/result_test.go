package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProject() Project {
	return Project{
		ID:                123,
		Name:              "Test Project",
		PathWithNamespace: "my-group/subgroup/test-project",
		WebURL:            "https://gitlab.com/my-group/subgroup/test-project",
		HTTPURLToRepo:     "https://gitlab.com/my-group/subgroup/test-project.git",
		Path:              "test-project",
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestNewResultRow(t *testing.T) {
	match := Match{
		Filename:  "src/main.rs",
		StartLine: int64Ptr(10),
		ProjectID: 123,
		Data:      "fn main() {}",
	}

	row := NewResultRow(testProject(), match)

	assert.Equal(t, "my-group", row.Group)
	assert.Equal(t, "Test Project", row.ProjectName)
	assert.Equal(t, int64(123), row.ProjectID)
	assert.Equal(t, "src/main.rs", row.FileName)
	assert.Equal(t, int64(10), row.LineNumber)
	assert.Equal(t, "fn main() {}", row.Snippet)
	assert.Equal(t, "https://gitlab.com/my-group/subgroup/test-project.git", row.CloneURL)
	assert.Equal(t, "test-project", row.Folder)
}

func TestNewResultRow_MissingStartLine(t *testing.T) {
	row := NewResultRow(testProject(), Match{Filename: "README.md", Data: "hello"})

	assert.Equal(t, int64(0), row.LineNumber)
}

func TestNewResultRow_Idempotent(t *testing.T) {
	project := testProject()
	match := Match{Filename: "a.go", StartLine: int64Ptr(3), Data: "x"}

	assert.Equal(t, NewResultRow(project, match), NewResultRow(project, match))
}

func TestNewResultRow_GroupWithoutSlash(t *testing.T) {
	project := Project{PathWithNamespace: "standalone"}

	row := NewResultRow(project, Match{})

	assert.Equal(t, "standalone", row.Group)
}

func TestResultRows(t *testing.T) {
	t.Run("preserves match order", func(t *testing.T) {
		matches := []Match{
			{Filename: "b.go"},
			{Filename: "a.go"},
			{Filename: "c.go"},
		}

		rows := ResultRows(testProject(), matches)

		require.Len(t, rows, 3)
		assert.Equal(t, "b.go", rows[0].FileName)
		assert.Equal(t, "a.go", rows[1].FileName)
		assert.Equal(t, "c.go", rows[2].FileName)
	})

	t.Run("no matches yields no rows", func(t *testing.T) {
		assert.Nil(t, ResultRows(testProject(), nil))
		assert.Nil(t, ResultRows(testProject(), []Match{}))
	})
}

func TestProject_Unmarshal(t *testing.T) {
	data := `{
		"id": 1,
		"name": "Project 1",
		"path_with_namespace": "group/project-1",
		"web_url": "https://gitlab.com/group/project-1",
		"http_url_to_repo": "https://gitlab.com/group/project-1.git",
		"path": "project-1",
		"star_count": 4
	}`

	var p Project
	require.NoError(t, json.Unmarshal([]byte(data), &p))

	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "project-1", p.Path)
	assert.Equal(t, "group", p.TopLevelGroup())
}

func TestMatch_Unmarshal(t *testing.T) {
	t.Run("with startline", func(t *testing.T) {
		var m Match
		require.NoError(t, json.Unmarshal([]byte(`{"filename":"x.go","startline":7,"project_id":2,"data":"d"}`), &m))
		assert.Equal(t, int64(7), m.Line())
	})

	t.Run("null startline", func(t *testing.T) {
		var m Match
		require.NoError(t, json.Unmarshal([]byte(`{"filename":"x.go","startline":null,"project_id":2,"data":"d"}`), &m))
		assert.Nil(t, m.StartLine)
		assert.Equal(t, int64(0), m.Line())
	})
}
