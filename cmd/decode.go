// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"os"

	"qbsview/cli/internal/bridge"
	"qbsview/cli/internal/explorer"
	"qbsview/cli/internal/project"
	"qbsview/cli/internal/render"
	"qbsview/cli/internal/session"
	"qbsview/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	decodeFormat string
	decodeQuiet  bool
	decodeTree   bool
	decodeDepth  int
)

// decodeCmd replays a recorded build session.
var decodeCmd = &cobra.Command{
	Use:   "decode [transcript]",
	Short: "Decode and display a qbs session transcript",
	Long: `The decode command reads messages exchanged with a qbs session and prints them
as they would appear during a build: command lines, process output, task progress,
warnings and errors. Messages that cannot be decoded are logged and skipped.

The transcript is read from the named file, or from standard input when no file
or "-" is given. Use --format jsonl for one JSON object per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, closeIn, err := openInput(args)
		if err != nil {
			return err
		}
		defer closeIn()

		format := cfg.TranscriptFormat
		if cmd.Flags().Changed("format") {
			format = decodeFormat
		}
		f, err := bridge.ParseFormat(format)
		if err != nil {
			return err
		}
		src, err := bridge.New(in, f)
		if err != nil {
			return err
		}

		sess := session.New(logger)
		provider := explorer.NewProvider(sess)
		cache, err := explorer.NewCache(provider, cfg.CacheSize)
		if err != nil {
			return err
		}
		sess.OnProjectResolved(func(*project.Project) { provider.Refresh() })

		out := cmd.OutOrStdout()
		printer := render.NewPrinter(out, decodeQuiet)
		err = sess.Run(cmd.Context(), src, func(ev session.Event) {
			printer.Print(ev, sess.Progress().Snapshot())
		})
		printer.Close()
		if err != nil {
			return err
		}

		if decodeTree {
			depth := cfg.MaxDepth
			if cmd.Flags().Changed("depth") {
				depth = decodeDepth
			}
			if err := printProjectTree(out, cache, depth); err != nil {
				return err
			}
		}

		if n := sess.Skipped(); n > 0 {
			pterm.Warning.WithWriter(out).Printfln("%d messages could not be decoded", n)
		}
		if n := len(sess.Failures()); n > 0 {
			return fmt.Errorf("session reported %d failures", n)
		}
		return nil
	},
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// printProjectTree renders the provider's root through the cache and logs
// every branch that could not be expanded.
func printProjectTree(w io.Writer, cache *explorer.Cache, depth int) error {
	roots := cache.Roots()
	if len(roots) == 0 {
		pterm.Info.WithWriter(w).Println("no project was resolved")
		return nil
	}
	tree := explorer.ExpandWith(roots[0], depth, cache.Children)
	text, err := render.Tree(tree, terminal.Width(w))
	if err != nil {
		return err
	}
	pterm.Fprint(w, text)
	logger.Debug("tree rendered", logger.Args("cached_nodes", cache.Len()))
	for _, e := range tree.Errors() {
		logger.Warn("branch not expanded", logger.Args("error", e.Error()))
	}
	return nil
}

func init() {
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "qbsmsg", "Transcript format: qbsmsg or jsonl")
	decodeCmd.Flags().BoolVarP(&decodeQuiet, "quiet", "q", false, "Only show warnings, errors and failed processes")
	decodeCmd.Flags().BoolVar(&decodeTree, "tree", false, "Print the resolved project tree at the end")
	decodeCmd.Flags().IntVar(&decodeDepth, "depth", 0, "Maximum tree depth, 0 for unlimited")
	rootCmd.AddCommand(decodeCmd)
}
