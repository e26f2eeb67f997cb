package session

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/enigma/config"
)

// Job is one independent message stream.
type Job struct {
	Name string
	In   io.Reader
	Out  io.Writer
}

// RunBatch processes jobs concurrently, at most parallel at a time
// (unbounded when parallel <= 0). Each job gets its own Processor, so no
// rotor is shared between streams. The first failure cancels the jobs that
// have not finished and is returned prefixed with the job name.
func RunBatch(ctx context.Context, c *config.Config, jobs []Job, parallel int, opts ...Option) error {
	g, gctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for _, job := range jobs {
		g.Go(func() error {
			p, err := NewProcessor(c, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			if err := p.Process(gctx, job.In, job.Out); err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
