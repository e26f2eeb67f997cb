package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/session"
)

func newRunCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "run CONFIG [INPUT [OUTPUT]]",
		Short: "Convert one message stream",
		Long: `Convert the messages in INPUT (standard input when absent or "-") and
write the result to OUTPUT (standard output when absent).

With --verbose every converted symbol is traced to standard error as the
rotor settings followed by the signal path.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromPath(args[0])
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) > 1 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var out io.Writer = cmd.OutOrStdout()
			var outFile *os.File
			if len(args) > 2 {
				outFile, err = os.Create(args[2])
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				out = outFile
			}

			opts := []session.Option{session.WithLogger(logging.New("session"))}
			if verbose {
				opts = append(opts, session.WithTrace(cmd.ErrOrStderr()))
			}
			p, err := session.NewProcessor(cfg, opts...)
			if err == nil {
				err = p.Process(cmd.Context(), in, out)
			}
			if outFile != nil {
				if cerr := outFile.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("close output: %w", cerr)
				}
			}

			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace every symbol to standard error")

	return cmd
}
