package commands

import "github.com/devx-cli/devx/cmd/devx/commands/manifest"

func init() {
	rootCmd.AddCommand(manifest.Cmd)
}
