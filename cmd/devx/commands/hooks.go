package commands

import "github.com/devx-cli/devx/cmd/devx/commands/hooks"

func init() {
	rootCmd.AddCommand(hooks.Cmd)
}
