package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellmark/internal/infra/logx"
	"shellmark/internal/shell"
)

func newPlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plug",
		Short: "Print the shell-integration hook",
		Long: `Print the function that wires shellmark into your shell, for example:

  eval "$(shellmark plug --out posix)"     # bash, zsh, sh
  shellmark plug --out fish | source       # fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script := shell.PlugScript(outType)
			if script == "" {
				logx.Warnf("no integration hook for --out %s; pick posix, fish or powershell", outType)
				return nil
			}
			fmt.Print(script)
			return nil
		},
	}
}
