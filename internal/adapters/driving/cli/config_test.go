package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(configCmd.Commands()))
	for _, c := range configCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "get", "set", "path"}, names)
}

func TestConfigPath(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "config", "path", "--config-dir", dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml")+"\n", stdout)
}

func TestConfigSetGet(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "config", "set", "url", "https://gitlab.example.com", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved url")

	stdout, _, err = executeCommand(t, "config", "get", "url", "--config-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "https://gitlab.example.com\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://gitlab.example.com")
}

func TestConfigSet_NormalisesFormat(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "config", "set", "format", "md", "--config-dir", dir)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "config", "get", "format", "--config-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "markdown\n", stdout)
}

func TestConfigSet_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "config", "set", "colour", "blue", "--config-dir", dir)
	assert.ErrorIs(t, err, domain.ErrUnknownConfigKey)

	_, _, err = executeCommand(t, "config", "set", "max_projects", "many", "--config-dir", dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = executeCommand(t, "config", "set", "url", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value is required")
}

func TestConfigSet_TokenFromStdin(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetIn(strings.NewReader("glpat-from-stdin\n"))

	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"config", "set", "token", "--config-dir", dir})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	require.NoError(t, rootCmd.Execute())

	stdout, _, err := executeCommand(t, "config", "get", "token", "--config-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "glpat-from-stdin\n", stdout)
}

func TestConfigSet_EmptyClears(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "config", "set", "token", "abc", "--config-dir", dir)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "config", "set", "token", "", "--config-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cleared token")

	_, _, err = executeCommand(t, "config", "get", "token", "--config-dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigShow_MasksToken(t *testing.T) {
	dir := t.TempDir()

	_, _, err := executeCommand(t, "config", "set", "token", "glpat-supersecret", "--config-dir", dir)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, "config", "show", "--config-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Config file: "+filepath.Join(dir, "config.toml"))
	assert.Contains(t, stdout, "glpa********")
	assert.NotContains(t, stdout, "supersecret")
	assert.Contains(t, stdout, "(not set)")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	_, _, err := executeCommand(t, "config", "get", "colour", "--config-dir", t.TempDir())
	assert.ErrorIs(t, err, domain.ErrUnknownConfigKey)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("abc"))
	assert.Equal(t, "****", maskToken("abcd"))
	assert.Equal(t, "abcd********", maskToken("abcdefgh"))
}
