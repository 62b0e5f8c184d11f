package commands

import "github.com/devx-cli/devx/cmd/devx/commands/site"

func init() {
	rootCmd.AddCommand(site.Cmd)
}
