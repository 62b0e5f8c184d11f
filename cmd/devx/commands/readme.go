package commands

import "github.com/devx-cli/devx/cmd/devx/commands/readme"

func init() {
	rootCmd.AddCommand(readme.Cmd)
}
