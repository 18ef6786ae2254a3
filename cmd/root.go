// Copyright (c) 2025 qbsview
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for qbsview.
// It implements subcommands for replaying qbs build session transcripts, browsing
// resolved project trees and managing configuration using the Cobra CLI framework.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"qbsview/cli/internal/config"
	qerrors "qbsview/cli/internal/errors"
	"qbsview/cli/internal/logging"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
	logLevel    string
	logFormat   string

	// cfg and logger are set by the root command before any subcommand runs.
	cfg    config.Config
	logger *pterm.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "qbsview",
	Short:         "Inspect qbs build sessions and project trees",
	Long:          `qbsview decodes qbs build-tool session transcripts and renders the resolved project structure as a tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			c.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			c.LogFormat = logFormat
		}
		l, err := logging.New(c.LogLevel, c.LogFormat, os.Stderr)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("qbsview %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if _, ok := qerrors.As(err); ok {
			logging.PresentDecodeError(err)
		} else {
			fmt.Fprintln(os.Stderr, logging.PresentError("qbsview", err))
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or off")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
}
