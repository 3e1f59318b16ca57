package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driven/progress"
	"github.com/custodia-labs/gitlab-xsearch/internal/connectors/gitlab"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driving"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/services"
)

// Environment variables consulted after flags.
const (
	EnvToken = "GITLAB_TOKEN"
	EnvURL   = "GITLAB_URL"

	envPrefix = "GITLAB_"
)

// ErrMissingToken is returned when no token is configured anywhere.
var ErrMissingToken = errors.New(
	"GitLab token not provided: use --token, set " + EnvToken + ", or run 'gitlab-xsearch config set token'")

// runConfig is the effective configuration of one command.
type runConfig struct {
	Token       string
	BaseURL     string
	Format      domain.OutputFormat
	RateLimit   float64
	MaxProjects int
}

// openConfigStore opens the TOML store in --config-dir.
func openConfigStore() (*file.ConfigStore, error) {
	return file.NewConfigStore(configDirFlag)
}

// resolveConfig merges stored settings, the .env file, the environment and flags.
//
// Precedence (highest to lowest):
//  1. Flags set on the command line
//  2. GITLAB_TOKEN and GITLAB_URL in the environment
//  3. The same variables in the .env file (--env-file)
//  4. The config file
//
// Empty values never override a lower layer.
func resolveConfig(cmd *cobra.Command, store driven.ConfigStore) (runConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(storedValues(store.Settings()), "."), nil); err != nil {
		return runConfig{}, fmt.Errorf("loading stored settings: %w", err)
	}

	if err := loadEnvFile(k, envFileFlag, cmd.Flags().Changed("env-file")); err != nil {
		return runConfig{}, err
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(name, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return envKey(name), value
	}), nil); err != nil {
		return runConfig{}, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, flagKey), nil); err != nil {
		return runConfig{}, fmt.Errorf("loading flags: %w", err)
	}

	cfg := runConfig{
		Token:       k.String(domain.KeyToken),
		BaseURL:     k.String(domain.KeyURL),
		RateLimit:   k.Float64(domain.KeyRateLimit),
		MaxProjects: k.Int(domain.KeyMaxProjects),
		Format:      domain.OutputTable,
	}
	if cfg.RateLimit < 0 {
		return cfg, errors.New("--rate-limit must not be negative")
	}
	if format := k.String(domain.KeyFormat); format != "" {
		f, err := domain.ParseOutputFormat(format)
		if err != nil {
			return cfg, err
		}
		cfg.Format = f
	}

	return cfg, nil
}

// storedValues flattens the set keys of s into a koanf map.
func storedValues(s domain.Settings) map[string]interface{} {
	values := make(map[string]interface{})
	for _, key := range domain.ConfigKeys() {
		if v, ok := s.Get(key); ok {
			values[key] = v
		}
	}
	return values
}

// loadEnvFile merges GITLAB_* entries of a dotenv file into k.
// A missing file is ignored unless it was named explicitly.
func loadEnvFile(k *koanf.Koanf, path string, explicit bool) error {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("reading env file: %w", err)
	}

	dk := koanf.New(".")
	if err := dk.Load(rawbytes.Provider(b), dotenv.ParserEnv(envPrefix, ".", envKey)); err != nil {
		return fmt.Errorf("parsing env file %s: %w", path, err)
	}
	for _, key := range dk.Keys() {
		if dk.String(key) == "" {
			dk.Delete(key)
		}
	}
	return k.Merge(dk)
}

// envKey maps GITLAB_TOKEN and GITLAB_URL to their config keys.
// Any other variable maps to "" and is skipped.
func envKey(name string) string {
	switch strings.TrimPrefix(name, envPrefix) {
	case "TOKEN":
		return domain.KeyToken
	case "URL":
		return domain.KeyURL
	default:
		return ""
	}
}

// flagKey maps changed flags to their config keys.
func flagKey(f *pflag.Flag) (string, interface{}) {
	if !f.Changed {
		return "", nil
	}
	switch f.Name {
	case "token":
		return domain.KeyToken, f.Value.String()
	case "url":
		return domain.KeyURL, f.Value.String()
	case "format":
		return domain.KeyFormat, f.Value.String()
	case "rate-limit":
		return domain.KeyRateLimit, f.Value.String()
	default:
		return "", nil
	}
}

// newSearchService builds the GitLab client and the orchestrator around it.
func newSearchService(
	ctx context.Context, cfg runConfig, reporter driven.ProgressReporter,
) (driving.SearchService, error) {
	if cfg.Token == "" {
		return nil, ErrMissingToken
	}

	client, err := gitlab.NewClient(ctx, cfg.Token, cfg.BaseURL, gitlab.WithRateLimit(cfg.RateLimit))
	if err != nil {
		return nil, err
	}

	svc := services.NewSearchOrchestrator(client, client)
	svc.SetProgress(reporter)
	return svc, nil
}

// newProgress draws a bar when w is a terminal and prints lines otherwise.
func newProgress(w io.Writer, query string) driven.ProgressReporter {
	if f, ok := w.(*os.File); ok {
		return progress.New(f, query)
	}
	return progress.NewLog(w, query)
}
