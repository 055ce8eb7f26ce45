package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shellmark/internal/bookmarks"
	"shellmark/internal/storage"
)

func newDiagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diag",
		Short: "Show where shellmark keeps its data",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := storage.EnsureDataDir()
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
			fmt.Printf("Data directory: %s\n", dir)
			fmt.Printf("Bookmark count: %d\n", len(list))
			return nil
		},
	}
}
