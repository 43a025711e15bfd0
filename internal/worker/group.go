package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Runner is a named unit of work run by a Group.
type Runner struct {
	Name string
	Run  func(ctx context.Context) error
}

// Group runs runners concurrently.
type Group struct {
	Logger *zap.Logger
}

// Run starts every runner and waits for all of them. Failures are combined;
// one runner failing does not stop the others.
func (g Group) Run(ctx context.Context, runners []Runner) error {
	if len(runners) == 0 {
		return errors.New("no runners")
	}
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, runner := range runners {
		r := runner
		wg.Add(1)
		go func() {
			defer wg.Done()
			log := logger.With(zap.String("runner", r.Name))
			log.Debug("starting runner")
			if err := r.Run(ctx); err != nil {
				log.Error("runner failed", zap.Error(err))
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.Name, err))
				mu.Unlock()
				return
			}
			log.Debug("runner finished")
		}()
	}
	wg.Wait()
	return errs
}
