// Package cli implements the gitlab-xsearch command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

// version is set at build time.
var version = "dev"

var (
	tokenFlag     string
	urlFlag       string
	formatFlag    string
	outputFlag    string
	verboseFlag   bool
	rateLimitFlag float64
	configDirFlag string
	envFileFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "gitlab-xsearch",
	Short: "Search code across GitLab projects",
	Long: `gitlab-xsearch runs a blob search in every project you can access,
or in every project of a group and its subgroups, and prints one row per match.

The token is read from --token, then GITLAB_TOKEN, then the .env file,
then the config file. The instance is read the same way from --url and
GITLAB_URL, and defaults to https://gitlab.com.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&tokenFlag, "token", "", "GitLab personal access token")
	flags.StringVar(&urlFlag, "url", "", "GitLab instance URL (default https://gitlab.com)")
	flags.StringVar(&formatFlag, "format", "", "output format: table, markdown, csv, json or excel (default table)")
	flags.StringVarP(&outputFlag, "output", "o", "", "write results to a file instead of stdout")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug output")
	flags.Float64Var(&rateLimitFlag, "rate-limit", 0, "maximum API requests per second (0 = unlimited)")
	flags.StringVar(&configDirFlag, "config-dir", "", "config directory (default ~/.gitlab-xsearch)")
	flags.StringVar(&envFileFlag, "env-file", ".env", "dotenv file read for GITLAB_TOKEN and GITLAB_URL")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
