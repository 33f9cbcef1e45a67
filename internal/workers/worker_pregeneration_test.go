package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/mock"
	"github.com/Enigma-IIITS/dev-null/models"
)

func TestArtifactPregenerationWorker_GeneratesEveryTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactService(ctrl)

	var (
		mu   sync.Mutex
		seen []string
	)
	artifacts.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, team string) (models.Artifact, error) {
			mu.Lock()
			seen = append(seen, team)
			mu.Unlock()
			return models.Artifact{TeamID: team}, nil
		},
	).Times(3)

	w := NewArtifactPregenerationWorker(artifacts, []string{"a", "b", "c"}, 2, logger.Nop())
	require.NoError(t, w.Run(context.Background()))

	assert.ElementsMatch(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, "artifact-pregeneration", w.Name())
}

func TestArtifactPregenerationWorker_BoundsConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactService(ctrl)

	var inFlight, peak atomic.Int32
	artifacts.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, team string) (models.Artifact, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return models.Artifact{TeamID: team}, nil
		},
	).Times(6)

	w := NewArtifactPregenerationWorker(artifacts, []string{"1", "2", "3", "4", "5", "6"}, 2, logger.Nop())
	require.NoError(t, w.Run(context.Background()))

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestArtifactPregenerationWorker_ReturnsFirstError(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactService(ctrl)

	boom := errors.New("disk full")
	artifacts.EXPECT().Generate(gomock.Any(), "bad").Return(models.Artifact{}, boom)

	w := NewArtifactPregenerationWorker(artifacts, []string{"bad"}, 1, logger.Nop())
	err := w.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "team bad")
}

func TestArtifactPregenerationWorker_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewArtifactPregenerationWorker(artifacts, []string{"a", "b"}, 1, logger.Nop())
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}

func TestNewArtifactPregenerationWorker_DefaultConcurrency(t *testing.T) {
	w := NewArtifactPregenerationWorker(nil, nil, 0, logger.Nop())

	assert.Equal(t, defaultPregenerateConcurrency, w.concurrency)
}
