package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"shellmark/internal/bookmarks"
	"shellmark/internal/browse"
	"shellmark/internal/config"
	"shellmark/internal/search"
	"shellmark/internal/shell"
	"shellmark/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Interactively find and select bookmarks (the default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(outType)
		},
	}
}

func runBrowse(out shell.OutputType) error {
	// Keep debug logs off the alternate screen.
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("shellmark-debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	store, err := bookmarks.DefaultStore()
	if err != nil {
		return err
	}
	list, err := store.Load()
	if err != nil {
		return err
	}

	engine := &browse.Engine{
		Store:     store,
		Scorer:    search.FuzzyScorer{},
		Stat:      browse.OSStat,
		EditorSet: cfg.EditorSet,
	}

	// The UI paints to stderr so stdout stays clean for the evalable
	// command the integration hook captures.
	program := tea.NewProgram(
		ui.NewModel(engine, list, cfg.RefreshRate()),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		return err
	}
	m, ok := final.(ui.Model)
	if !ok {
		return fmt.Errorf("unexpected final model %T", final)
	}
	if m.Err() != nil {
		return m.Err()
	}

	if text := shell.Render(m.Action(), out, cfg.EditorSet()); text != "" {
		fmt.Print(text)
	}
	return nil
}
