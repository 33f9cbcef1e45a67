// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	name     string
	runCount int
	err      error
}

func (m *mockWorker) Name() string { return m.name }

func (m *mockWorker) Run(context.Context) error {
	m.runCount++
	return m.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{name: "a"}
	w2 := &mockWorker{name: "b"}
	w3 := &mockWorker{name: "c"}

	ws := &Workers{workers: []Worker{w1, w2, w3}, logger: logger.Nop()}
	require.NoError(t, ws.Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
	assert.Zero(t, ws.Len())
}

func TestWorkers_Run_FailureDoesNotStopOthers(t *testing.T) {
	boom := errors.New("boom")
	failing := &mockWorker{name: "failing", err: boom}
	after := &mockWorker{name: "after"}

	ws := &Workers{workers: []Worker{failing, after}, logger: logger.Nop()}
	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
	assert.Equal(t, 1, after.runCount)
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{}

	ws := NewWorkers(services, config.Workers{}, logger.Nop())
	assert.Zero(t, ws.Len())

	ws = NewWorkers(services, config.Workers{PregenerateTeams: []string{"team-1"}}, logger.Nop())
	assert.Equal(t, 1, ws.Len())
}
