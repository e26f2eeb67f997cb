package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/internal/format"
)

func newInventoryCmd() *cobra.Command {
	var (
		markdown bool
		export   string
	)
	cmd := &cobra.Command{
		Use:   "inventory CONFIG",
		Short: "List the rotors a configuration provides",
		Long: `Print the alphabet, the slot and pawl counts and one row per rotor.

--export conf or --export yaml prints the configuration in that format
instead, which converts between the two file formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromPath(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch strings.ToLower(export) {
			case "":
			case "conf", "text":
				return config.WriteText(out, cfg)
			case "yaml", "yml":
				doc, err := config.ToYAML(cfg)
				if err != nil {
					return err
				}
				_, err = out.Write(doc)
				return err
			default:
				return fmt.Errorf("unknown export format %q (want conf or yaml)", export)
			}

			mode := format.ASCII
			if markdown {
				mode = format.Markdown
			}
			fmt.Fprintf(out, "alphabet: %s\nslots: %d\npawls: %d\n\n", cfg.Alphabet.Letters(), cfg.NumRotors, cfg.Pawls)
			tb := format.NewTable(mode)
			tb.Header("#", "Name", "Kind", "Notches", "Cycles")
			tb.AlignRight(1)
			for i, r := range cfg.Inventory.Rotors() {
				tb.Row(i+1, r.Name(), r.Kind().String(), r.Notches(), r.Permutation().Notation())
			}
			_, err = tb.WriteTo(out)

			return err
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the table as Markdown")
	cmd.Flags().StringVar(&export, "export", "", "print the configuration as conf or yaml")

	return cmd
}
