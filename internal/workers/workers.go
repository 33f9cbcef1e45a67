package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers builds the workers enabled by cfg.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if len(cfg.PregenerateTeams) > 0 {
		w.workers = append(w.workers, NewArtifactPregenerationWorker(
			services.ArtifactService,
			cfg.PregenerateTeams,
			cfg.PregenerateConcurrency,
			logger,
		))
	}

	return w
}

// Run runs every worker in order. A failing worker does not stop the ones
// after it; all failures are returned joined.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			if w.logger != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed")
			}
			errs = append(errs, fmt.Errorf("%s: %w", worker.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Len reports the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
