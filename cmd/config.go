// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"qbsview/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change qbsview settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the effective configuration, after environment variable overrides
(QBSVIEW_LOG_LEVEL, QBSVIEW_LOG_FORMAT, QBSVIEW_CACHE_SIZE, QBSVIEW_TRANSCRIPT_FORMAT,
QBSVIEW_MAX_DEPTH) are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if p, err := config.Path(); err == nil {
			pterm.Fprintln(out, pterm.FgGray.Sprint("# "+p))
		}
		for _, k := range config.Keys() {
			v, err := cfg.Get(k)
			if err != nil {
				return err
			}
			pterm.Fprintln(out, k+" = "+v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile()
		if err != nil {
			return err
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(c); err != nil {
			return err
		}
		pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("%s set to %s", args[0], args[1])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
