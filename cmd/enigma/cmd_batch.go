package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/enigma/config"
	"github.com/katalvlaran/enigma/internal/logging"
	"github.com/katalvlaran/enigma/session"
)

func newBatchCmd() *cobra.Command {
	var (
		outDir   string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "batch CONFIG INPUT...",
		Short: "Convert many message streams concurrently",
		Long: `Convert every INPUT independently, each with its own machine, writing
NAME.out into --out-dir for an input NAME.in (or NAME).`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromPath(args[0])
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create out dir: %w", err)
			}

			var (
				jobs  []session.Job
				files []*os.File
			)
			defer func() {
				for _, f := range files {
					f.Close()
				}
			}()
			for _, path := range args[1:] {
				in, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				files = append(files, in)
				out, err := os.Create(outputPath(outDir, path))
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				files = append(files, out)
				jobs = append(jobs, session.Job{Name: path, In: in, Out: out})
			}

			log := logging.New("batch")
			log.Info("batch started", "jobs", len(jobs), "parallel", parallel)
			err = session.RunBatch(cmd.Context(), cfg, jobs, parallel, session.WithLogger(logging.New("session")))
			for _, f := range files {
				err = errors.Join(err, f.Close())
			}
			files = nil
			if err == nil {
				log.Info("batch finished", "jobs", len(jobs))
			}

			return err
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory for output files")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", runtime.NumCPU(), "streams converted at once (0 = unbounded)")

	return cmd
}

// outputPath maps dir and an input path to the output file name.
func outputPath(dir, in string) string {
	base := filepath.Base(in)
	if ext := filepath.Ext(base); ext == ".in" || ext == ".txt" {
		base = strings.TrimSuffix(base, ext)
	}

	return filepath.Join(dir, base+".out")
}
