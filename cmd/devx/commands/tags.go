package commands

import "github.com/devx-cli/devx/cmd/devx/commands/tags"

func init() {
	rootCmd.AddCommand(tags.Cmd)
}
