package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driven/render"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Search all accessible projects",
	Long: `Search every project the token is a member of.

Examples:
  gitlab-xsearch global -q "TODO" --max 20
  gitlab-xsearch global -q "password" --format csv -o results.csv
  gitlab-xsearch global -q "password" --format excel -o results.xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSearch(cmd, domain.Scope{})
	},
}

var groupCmd = &cobra.Command{
	Use:   "group <GROUP_ID>",
	Short: "Search a group and its subgroups",
	Long: `Search every project of a group, including projects of its subgroups.
GROUP_ID is the numeric group ID or the full group path.

Examples:
  gitlab-xsearch group 1234 -q "deprecated"
  gitlab-xsearch group acme/platform -q "FROM alpine" --format markdown`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(cmd, domain.Scope{GroupID: args[0]})
	},
}

func init() {
	for _, c := range []*cobra.Command{globalCmd, groupCmd} {
		c.Flags().StringP("query", "q", "", "text to search for (required)")
		_ = c.MarkFlagRequired("query")
		c.Flags().Int("max", 0, "search only the first N projects (0 = no limit)")
		rootCmd.AddCommand(c)
	}
}

func runSearch(cmd *cobra.Command, scope domain.Scope) error {
	query, err := cmd.Flags().GetString("query")
	if err != nil {
		return fmt.Errorf("getting query flag: %w", err)
	}
	maxProjects, err := cmd.Flags().GetInt("max")
	if err != nil {
		return fmt.Errorf("getting max flag: %w", err)
	}

	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg, err := resolveConfig(cmd, store)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("max") {
		maxProjects = cfg.MaxProjects
	}

	renderer, err := render.New(cfg.Format)
	if err != nil {
		return err
	}
	if cfg.Format.IsBinary() && outputFlag == "" {
		return fmt.Errorf("%w: %s", domain.ErrOutputFileRequired, cfg.Format)
	}

	status := cmd.ErrOrStderr()
	svc, err := newSearchService(cmd.Context(), cfg, newProgress(status, query))
	if err != nil {
		return err
	}

	fmt.Fprintln(status, "Fetching projects...")

	report, err := svc.Search(cmd.Context(), domain.SearchRequest{
		Query:       query,
		Scope:       scope,
		MaxProjects: maxProjects,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if n := len(report.Skipped); n > 0 {
		fmt.Fprintf(status, "%d projects skipped due to errors\n", n)
	}
	fmt.Fprintf(status, "Found %d matches.\n", report.MatchCount())

	if report.MatchCount() == 0 {
		return nil
	}

	if outputFlag == "" {
		return renderer.Render(cmd.OutOrStdout(), report.Rows)
	}
	if err := writeFile(outputFlag, func(w io.Writer) error {
		return renderer.Render(w, report.Rows)
	}); err != nil {
		return err
	}
	fmt.Fprintf(status, "Results written to %s\n", outputFlag)
	return nil
}

// writeFile creates path and closes it after fn returns.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return fn(f)
}
