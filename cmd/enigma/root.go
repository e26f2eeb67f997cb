package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	cmd := &cobra.Command{
		Use:   "enigma",
		Short: "Rotor cipher machine simulator",
		Long: `enigma configures a rotor machine from a description file and converts
message streams with it. CONFIG is a path to a text (.conf) or YAML (.yaml)
description, or "default" for the built-in naval inventory.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(rf.logLevel)
			if err != nil {
				return err
			}
			return logging.Init(level, rf.logFormat, cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&rf.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newInventoryCmd())
	cmd.AddCommand(newBatchCmd())

	return cmd
}
