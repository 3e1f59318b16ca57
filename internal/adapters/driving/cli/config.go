package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored defaults",
	Long: `View and change the defaults stored in the config file.

Keys:
  token         GitLab personal access token
  url           GitLab instance URL
  format        default output format (table, markdown, csv, json, excel)
  rate_limit    maximum API requests per second (0 = unlimited)
  max_projects  default project limit (0 = no limit)`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one stored setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store a setting",
	Long: `Store a setting in the config file. An empty value clears the key.

When the value of token is omitted it is read from the terminal without echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmd.Printf("Config file: %s\n\n", store.Path())
	for _, key := range domain.ConfigKeys() {
		value, ok := store.Get(key)
		switch {
		case !ok:
			value = "(not set)"
		case key == domain.KeyToken:
			value = maskToken(value)
		}
		cmd.Printf("  %-13s %s\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !domain.IsConfigKey(key) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownConfigKey, key)
	}

	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	value, ok := store.Get(key)
	if !ok {
		return fmt.Errorf("%s is not set", key)
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !domain.IsConfigKey(key) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownConfigKey, key)
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if key != domain.KeyToken {
			return fmt.Errorf("a value is required for %s", key)
		}
		v, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "GitLab token: ")
		if err != nil {
			return err
		}
		value = v
	}

	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := store.Set(key, value); err != nil {
		return err
	}

	if strings.TrimSpace(value) == "" {
		cmd.Printf("Cleared %s\n", key)
	} else {
		cmd.Printf("Saved %s to %s\n", key, store.Path())
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cmd.Println(store.Path())
	return nil
}

// readSecret reads a line without echo when in is a terminal.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	fmt.Fprint(prompt, label)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// maskToken keeps the first four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return token[:4] + strings.Repeat("*", 8)
}
