package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shellmark/internal/bookmarks"
	"shellmark/internal/infra/logx"
	"shellmark/internal/storage"
)

func newAddCmd() *cobra.Command {
	var (
		name  string
		force bool
	)

	addCmd := &cobra.Command{
		Use:     "add [dest]",
		Aliases: []string{"a"},
		Short:   "Add a bookmark",
		Long: `Add a bookmark pointing at dest (default: the current directory). The
bookmark name defaults to the destination's base name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := ""
			if len(args) > 0 {
				dest = args[0]
			}
			return runAdd(dest, name, force)
		},
	}

	addCmd.Flags().StringVarP(&name, "name", "n", "", "name of the bookmark (default: base name of dest)")
	addCmd.Flags().BoolVarP(&force, "force", "f", false, "replace the destination when a bookmark with the same name exists")

	return addCmd
}

func runAdd(dest, name string, force bool) error {
	dest, err := canonicalize(dest)
	if err != nil {
		return err
	}
	if name == "" {
		name = bookmarks.DefaultName(dest)
	}

	store, err := bookmarks.DefaultStore()
	if err != nil {
		return err
	}
	list, err := store.Load()
	if err != nil {
		return err
	}

	next, changed := bookmarks.Add(list, bookmarks.Bookmark{Name: name, Dest: dest}, force)
	if !changed {
		logx.Warnf("a bookmark named %q already exists; use --force to replace it or --name to pick another name", name)
		return nil
	}
	if err := store.Save(next); err != nil {
		return err
	}
	logx.Infof("added bookmark %q pointing at %s", name, storage.FriendlyPath(dest))
	return nil
}

// canonicalize resolves dest to an absolute, symlink-free path. An empty
// dest means the current directory.
func canonicalize(dest string) (string, error) {
	if dest == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
