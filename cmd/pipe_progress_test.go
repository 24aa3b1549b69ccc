package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/pistactl/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cpuPipeWait() application.PipeWait {
	return application.PipeWait{Slot: "cpu", Pipe: "/tmp/slots/1-cpu/out", Timeout: 5 * time.Second}
}

func progressAt(elapsed time.Duration) pipeProgressModel {
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	m := newPipeProgressModel(cpuPipeWait(), nil)
	m.started = started
	m.now = func() time.Time { return started.Add(elapsed) }
	return m
}

func TestPipeProgressViewShowsPipeAndElapsedTime(t *testing.T) {
	view := progressAt(1500 * time.Millisecond).View()

	assert.Contains(t, view, "slot cpu")
	assert.Contains(t, view, "waiting on /tmp/slots/1-cpu/out")
	assert.Contains(t, view, "[===---------]")
	assert.Contains(t, view, "1.5s/5s")
}

func TestPipeProgressViewCapsAtTimeout(t *testing.T) {
	view := progressAt(7 * time.Second).View()

	assert.Contains(t, view, "[============]")
	assert.Contains(t, view, "5s/5s")
}

func TestPipeProgressViewEmptyOnceRead(t *testing.T) {
	m, _ := progressAt(time.Second).Update(pipeReadDoneMsg{})
	assert.Empty(t, m.View())
}

func TestPipeProgressReturnsReadError(t *testing.T) {
	output := &bytes.Buffer{}
	readErr := errors.New("pipe closed")

	err := pipeProgress(output)(context.Background(), cpuPipeWait(), func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		return readErr
	})

	require.ErrorIs(t, err, readErr)
	assert.Contains(t, output.String(), "waiting on /tmp/slots/1-cpu/out")
}
