package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driven/progress"
	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

// parsedCommand returns the global command with args parsed.
func parsedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	cmd, rest, err := rootCmd.Find(append([]string{"global"}, args...))
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(rest))
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cmd := parsedCommand(t)

	cfg, err := resolveConfig(cmd, memory.NewConfigStore(domain.Settings{}))

	require.NoError(t, err)
	assert.Equal(t, runConfig{Format: domain.OutputTable}, cfg)
}

func TestResolveConfig_StoredSettings(t *testing.T) {
	cmd := parsedCommand(t)
	store := memory.NewConfigStore(domain.Settings{
		Token:       "stored",
		URL:         "https://stored.example",
		Format:      "csv",
		RateLimit:   2,
		MaxProjects: 9,
	})

	cfg, err := resolveConfig(cmd, store)

	require.NoError(t, err)
	assert.Equal(t, runConfig{
		Token:       "stored",
		BaseURL:     "https://stored.example",
		Format:      domain.OutputCSV,
		RateLimit:   2,
		MaxProjects: 9,
	}, cfg)
}

func TestResolveConfig_EnvOverridesStore(t *testing.T) {
	t.Setenv(EnvToken, "from-env")
	t.Setenv(EnvURL, "https://env.example")
	cmd := parsedCommand(t)
	store := memory.NewConfigStore(domain.Settings{Token: "stored", URL: "https://stored.example"})

	cfg, err := resolveConfig(cmd, store)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "https://env.example", cfg.BaseURL)
}

func TestResolveConfig_EmptyEnvIgnored(t *testing.T) {
	t.Setenv(EnvToken, "")
	cmd := parsedCommand(t)

	cfg, err := resolveConfig(cmd, memory.NewConfigStore(domain.Settings{Token: "stored"}))

	require.NoError(t, err)
	assert.Equal(t, "stored", cfg.Token)
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv(EnvToken, "from-env")
	t.Setenv(EnvURL, "https://env.example")
	cmd := parsedCommand(t,
		"--token", "from-flag",
		"--url", "https://flag.example",
		"--format", "json",
		"--rate-limit", "1.5",
	)
	store := memory.NewConfigStore(domain.Settings{Format: "csv", RateLimit: 9})

	cfg, err := resolveConfig(cmd, store)

	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Token)
	assert.Equal(t, "https://flag.example", cfg.BaseURL)
	assert.Equal(t, domain.OutputJSON, cfg.Format)
	assert.InDelta(t, 1.5, cfg.RateLimit, 1e-9)
}

// writeEnvFile writes a dotenv file into a temporary directory.
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveConfig_EnvFile(t *testing.T) {
	path := writeEnvFile(t, "GITLAB_TOKEN=from-dotenv\nGITLAB_URL=https://dotenv.example\nOTHER=ignored\n")
	cmd := parsedCommand(t, "--env-file", path)
	store := memory.NewConfigStore(domain.Settings{Token: "stored", URL: "https://stored.example"})

	cfg, err := resolveConfig(cmd, store)

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Token)
	assert.Equal(t, "https://dotenv.example", cfg.BaseURL)
}

func TestResolveConfig_EnvOverridesEnvFile(t *testing.T) {
	t.Setenv(EnvToken, "from-env")
	path := writeEnvFile(t, "GITLAB_TOKEN=from-dotenv\nGITLAB_URL=https://dotenv.example\n")
	cmd := parsedCommand(t, "--env-file", path)

	cfg, err := resolveConfig(cmd, memory.NewConfigStore(domain.Settings{}))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "https://dotenv.example", cfg.BaseURL)
}

func TestResolveConfig_EmptyEnvFileValueIgnored(t *testing.T) {
	path := writeEnvFile(t, "GITLAB_TOKEN=\n")
	cmd := parsedCommand(t, "--env-file", path)

	cfg, err := resolveConfig(cmd, memory.NewConfigStore(domain.Settings{Token: "stored"}))

	require.NoError(t, err)
	assert.Equal(t, "stored", cfg.Token)
}

func TestResolveConfig_MissingEnvFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	cmd := parsedCommand(t, "--env-file", missing)
	_, err := resolveConfig(cmd, memory.NewConfigStore(domain.Settings{}))
	assert.Error(t, err)

	// the default path is optional
	cmd = parsedCommand(t)
	_, err = resolveConfig(cmd, memory.NewConfigStore(domain.Settings{}))
	assert.NoError(t, err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, domain.KeyToken, envKey("GITLAB_TOKEN"))
	assert.Equal(t, domain.KeyURL, envKey("GITLAB_URL"))
	assert.Equal(t, domain.KeyURL, envKey("URL"))
	assert.Empty(t, envKey("GITLAB_FORMAT"))
	assert.Empty(t, envKey("HOME"))
}

func TestResolveConfig_Invalid(t *testing.T) {
	cmd := parsedCommand(t, "--rate-limit=-1")
	_, err := resolveConfig(cmd, memory.NewConfigStore(domain.Settings{}))
	require.Error(t, err)

	cmd = parsedCommand(t, "--format", "pdf")
	_, err = resolveConfig(cmd, memory.NewConfigStore(domain.Settings{}))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestNewSearchService(t *testing.T) {
	ctx := context.Background()

	_, err := newSearchService(ctx, runConfig{}, progress.Nop{})
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = newSearchService(ctx, runConfig{Token: "t", BaseURL: "ftp://bad"}, progress.Nop{})
	assert.Error(t, err)

	svc, err := newSearchService(ctx, runConfig{Token: "t"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
