// Command gitlab-xsearch searches code across GitLab projects.
package main

import (
	"os"

	"github.com/custodia-labs/gitlab-xsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/gitlab-xsearch/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
