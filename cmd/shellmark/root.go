package main

import (
	"os"

	"github.com/spf13/cobra"

	"shellmark/internal/infra/logx"
	"shellmark/internal/shell"
)

var (
	outFlag string
	outType shell.OutputType
)

// NewRootCmd creates the root command. Running shellmark without a
// subcommand opens the interactive browser.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shellmark",
		Short: "Cross-platform bookmarks for your shell",
		Long: `Shellmark keeps a list of named directory and file bookmarks and lets you
fuzzy-find them interactively. Selecting a bookmark prints a shell command
(cd or $EDITOR) for the integration hook to evaluate.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			outType, err = shell.ParseOutputType(outFlag)
			if err != nil {
				return err
			}
			logx.SetOutput(os.Stderr)
			logx.SetMinLevel(logx.LevelInfo)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(outType)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outFlag, "out", "o", shell.Plain.String(),
		"output selection as plain data or as an evalable command (plain, posix, fish, powershell)")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newPlugCmd())
	rootCmd.AddCommand(newDiagCmd())

	return rootCmd
}
