// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"qbsview/cli/internal/explorer"
	"qbsview/cli/internal/project"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	treeDepth    int
	treeProducts bool
)

type staticProject struct{ p *project.Project }

func (s staticProject) Project() *project.Project { return s.p }

// treeCmd renders a saved project-data document.
var treeCmd = &cobra.Command{
	Use:   "tree <project-file>",
	Short: "Render a resolved project as a tree",
	Long: `The tree command loads project data saved from a qbs session (JSON, JSON with
comments, or YAML) and prints its projects, products, groups and files.

With --products it prints the names of all products the project depends on, in
the order qbs would build them: the project's own products first, then those of
each sub-project.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.LoadFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if treeProducts {
			names, err := explorer.NewProjectNode(p, true).DependentProductNames()
			if err != nil {
				return err
			}
			for _, n := range names {
				pterm.Fprintln(out, n)
			}
			return nil
		}

		depth := cfg.MaxDepth
		if cmd.Flags().Changed("depth") {
			depth = treeDepth
		}
		cache, err := explorer.NewCache(explorer.NewProvider(staticProject{p: p}), cfg.CacheSize)
		if err != nil {
			return err
		}
		return printProjectTree(out, cache, depth)
	},
}

func init() {
	treeCmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum tree depth, 0 for unlimited")
	treeCmd.Flags().BoolVar(&treeProducts, "products", false, "Print dependent product names instead of the tree")
	rootCmd.AddCommand(treeCmd)
}
