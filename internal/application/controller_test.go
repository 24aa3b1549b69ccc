package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/pistactl/internal/adapters/slotfs"
	"github.com/bnema/pistactl/internal/domain"
	"github.com/bnema/pistactl/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeFilesystem struct {
	*slotfs.Filesystem
	readFirstLine func(ctx context.Context, path string, timeout time.Duration) (string, bool, error)
	reads         []string
}

func (f *fakeFilesystem) ReadFirstLine(ctx context.Context, path string, timeout time.Duration) (string, bool, error) {
	f.reads = append(f.reads, path)
	if f.readFirstLine == nil {
		return "", false, errors.New("unexpected read")
	}
	return f.readFirstLine(ctx, path, timeout)
}

type controllerFixture struct {
	ctrl    *Controller
	session *mocks.MockSession
	procs   *mocks.MockProcessLister
	fs      *fakeFilesystem
	logs    *bytes.Buffer
	cfg     domain.Config
}

func newControllerFixture(t *testing.T, slots ...domain.SlotConfig) *controllerFixture {
	t.Helper()

	cfg := domain.Config{
		SocketName:       "pistactl",
		SessionName:      "pistactl",
		SlotsDir:         filepath.Join(t.TempDir(), "slots"),
		DiscoveryTimeout: time.Second,
		Notifications:    domain.DefaultNotificationPolicy(),
		Renderer:         domain.Renderer{Command: "pista"},
		Slots:            slots,
	}

	session := mocks.NewMockSession(t)
	session.EXPECT().SocketName().Return("pistactl").Maybe()
	session.EXPECT().SessionName().Return("pistactl").Maybe()

	procs := mocks.NewMockProcessLister(t)
	fs := &fakeFilesystem{Filesystem: slotfs.New()}
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &controllerFixture{
		ctrl:    NewController(cfg, session, procs, fs, logger),
		session: session,
		procs:   procs,
		fs:      fs,
		logs:    logs,
		cfg:     cfg,
	}
}

func slotTerminal(window int) domain.Terminal {
	return domain.Terminal{Session: "pistactl", Window: window}
}

func intPtr(v int) *int {
	return &v
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func (f *controllerFixture) expectRun(term domain.Terminal) []*mock.Call {
	return []*mock.Call{
		f.session.EXPECT().SendText(mockAnyContext(), term, "./run").Return(nil).Once(),
		f.session.EXPECT().SendEnter(mockAnyContext(), term).Return(nil).Once(),
	}
}

func (f *controllerFixture) expectRenderer() []*mock.Call {
	calls := []*mock.Call{
		f.session.EXPECT().AllocateRendererTerminal(mockAnyContext(), "pista").Return(slotTerminal(0), nil).Once(),
	}
	return append(calls, f.expectRun(slotTerminal(0))...)
}

func TestControllerStartWithDeclaredLengthDoesNotRestartFeed(t *testing.T) {
	f := newControllerFixture(t, domain.SlotConfig{Position: 1, Name: "cpu", Command: "echo cpu", DeclaredLength: intPtr(3), TTL: 10})
	slotDir := filepath.Join(f.cfg.SlotsDir, "1-cpu")

	calls := []*mock.Call{
		f.session.EXPECT().CreateSession(mockAnyContext(), f.cfg.SlotsDir).Return(nil).Once(),
		f.session.EXPECT().AllocateTerminal(mockAnyContext(), slotDir, "cpu").Return(slotTerminal(1), nil).Once(),
	}
	calls = append(calls, f.expectRun(slotTerminal(1))...)
	calls = append(calls, f.expectRenderer()...)
	mock.InOrder(calls...)

	require.NoError(t, f.ctrl.Start(context.Background()))

	assert.Empty(t, f.fs.reads)
	f.session.AssertNotCalled(t, "SendInterrupt", mock.Anything, mock.Anything)

	info, err := os.Stat(filepath.Join(slotDir, "out"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeNamedPipe)
	assert.Equal(t, "#!/bin/sh\necho cpu\n", readFile(t, filepath.Join(slotDir, "cmd")))
	assert.Contains(t, readFile(t, filepath.Join(slotDir, "run")), "./cmd > ./out 2>> ./err;")

	rendererRun := readFile(t, filepath.Join(f.cfg.SlotsDir, "run"))
	assert.Contains(t, rendererRun, fmt.Sprintf("'pista' '%s' '3' '10'", filepath.Join(slotDir, "out")))
	assert.Contains(t, f.logs.String(), "using declared slot length")
}

func TestControllerStartDiscoversLengthAndRestartsFeed(t *testing.T) {
	f := newControllerFixture(t, domain.SlotConfig{Position: 1, Name: "cpu", Command: "echo cpu", TTL: -1})
	slotDir := filepath.Join(f.cfg.SlotsDir, "1-cpu")
	f.fs.readFirstLine = func(_ context.Context, path string, timeout time.Duration) (string, bool, error) {
		assert.Equal(t, time.Second, timeout)
		return "cpu 42%", true, nil
	}

	calls := []*mock.Call{
		f.session.EXPECT().CreateSession(mockAnyContext(), f.cfg.SlotsDir).Return(nil).Once(),
		f.session.EXPECT().AllocateTerminal(mockAnyContext(), slotDir, "cpu").Return(slotTerminal(1), nil).Once(),
	}
	calls = append(calls, f.expectRun(slotTerminal(1))...)
	calls = append(calls, f.session.EXPECT().SendInterrupt(mockAnyContext(), slotTerminal(1)).Return(nil).Once())
	calls = append(calls, f.expectRun(slotTerminal(1))...)
	calls = append(calls, f.expectRenderer()...)
	mock.InOrder(calls...)

	require.NoError(t, f.ctrl.Start(context.Background()))

	assert.Equal(t, []string{filepath.Join(slotDir, "out")}, f.fs.reads)
	assert.Contains(t, readFile(t, filepath.Join(f.cfg.SlotsDir, "run")), "'7' '-1'")
}

func TestControllerStartFallsBackToZeroLength(t *testing.T) {
	tests := []struct {
		name    string
		read    func(context.Context, string, time.Duration) (string, bool, error)
		wantLog string
	}{
		{
			name: "timeout",
			read: func(_ context.Context, path string, timeout time.Duration) (string, bool, error) {
				return "", false, fmt.Errorf("%w after %s: %s", domain.ErrPipeReadTimeout, timeout, path)
			},
			wantLog: "level=ERROR msg=\"no output from slot before timeout",
		},
		{
			name: "end of stream",
			read: func(context.Context, string, time.Duration) (string, bool, error) {
				return "", false, nil
			},
			wantLog: "level=WARN msg=\"slot feed ended before producing a line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newControllerFixture(t, domain.SlotConfig{Position: 1, Command: "sleep 60", TTL: 5})
			slotDir := filepath.Join(f.cfg.SlotsDir, "1-1")
			f.fs.readFirstLine = tt.read

			calls := []*mock.Call{
				f.session.EXPECT().CreateSession(mockAnyContext(), f.cfg.SlotsDir).Return(nil).Once(),
				f.session.EXPECT().AllocateTerminal(mockAnyContext(), slotDir, "1").Return(slotTerminal(1), nil).Once(),
			}
			calls = append(calls, f.expectRun(slotTerminal(1))...)
			calls = append(calls, f.session.EXPECT().SendInterrupt(mockAnyContext(), slotTerminal(1)).Return(nil).Once())
			calls = append(calls, f.expectRun(slotTerminal(1))...)
			calls = append(calls, f.expectRenderer()...)
			mock.InOrder(calls...)

			require.NoError(t, f.ctrl.Start(context.Background()))

			assert.Contains(t, readFile(t, filepath.Join(f.cfg.SlotsDir, "run")), "'0' '5'")
			assert.Contains(t, f.logs.String(), tt.wantLog)
		})
	}
}

func TestControllerStartFailsOnPipeReadError(t *testing.T) {
	f := newControllerFixture(t, domain.SlotConfig{Position: 1, Name: "cpu", Command: "echo cpu", TTL: 10})
	slotDir := filepath.Join(f.cfg.SlotsDir, "1-cpu")
	readErr := errors.New("input/output error")
	f.fs.readFirstLine = func(context.Context, string, time.Duration) (string, bool, error) {
		return "", false, readErr
	}

	f.session.EXPECT().CreateSession(mockAnyContext(), f.cfg.SlotsDir).Return(nil).Once()
	f.session.EXPECT().AllocateTerminal(mockAnyContext(), slotDir, "cpu").Return(slotTerminal(1), nil).Once()
	f.expectRun(slotTerminal(1))

	err := f.ctrl.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "slot 1 (cpu)")
	assert.Contains(t, err.Error(), "run stop")
	f.session.AssertNotCalled(t, "SendInterrupt", mock.Anything, mock.Anything)
	f.session.AssertNotCalled(t, "AllocateRendererTerminal", mock.Anything, mock.Anything)
}

func TestControllerStartStopsAtFirstFailedSlot(t *testing.T) {
	f := newControllerFixture(t,
		domain.SlotConfig{Position: 1, Name: "cpu", Command: "echo cpu", DeclaredLength: intPtr(3), TTL: 10},
		domain.SlotConfig{Position: 2, Name: "mem", Command: "echo mem", DeclaredLength: intPtr(3), TTL: 10},
	)
	cmdErr := &domain.CommandError{Command: []string{"tmux", "new-window"}, Code: "1", Stderr: "no server"}

	f.session.EXPECT().CreateSession(mockAnyContext(), f.cfg.SlotsDir).Return(nil).Once()
	f.session.EXPECT().AllocateTerminal(mockAnyContext(), filepath.Join(f.cfg.SlotsDir, "1-cpu"), "cpu").Return(domain.Terminal{}, cmdErr).Once()

	err := f.ctrl.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalCommandFailed)
	f.session.AssertNotCalled(t, "AllocateTerminal", mock.Anything, filepath.Join(f.cfg.SlotsDir, "2-mem"), "mem")
	f.session.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything)
}

func TestControllerStartUsesWaitFunc(t *testing.T) {
	f := newControllerFixture(t, domain.SlotConfig{Position: 1, Name: "cpu", Command: "echo cpu", TTL: 10})
	f.fs.readFirstLine = func(context.Context, string, time.Duration) (string, bool, error) {
		return "ab", true, nil
	}
	var waits []PipeWait
	f.ctrl = NewController(f.cfg, f.session, f.procs, f.fs, nil, WithWaitFunc(func(ctx context.Context, pending PipeWait, wait func(context.Context) error) error {
		waits = append(waits, pending)
		return wait(ctx)
	}))

	f.session.EXPECT().CreateSession(mockAnyContext(), mock.Anything).Return(nil).Once()
	f.session.EXPECT().AllocateTerminal(mockAnyContext(), mock.Anything, "cpu").Return(slotTerminal(1), nil).Once()
	f.session.EXPECT().SendText(mockAnyContext(), mock.Anything, "./run").Return(nil)
	f.session.EXPECT().SendEnter(mockAnyContext(), mock.Anything).Return(nil)
	f.session.EXPECT().SendInterrupt(mockAnyContext(), slotTerminal(1)).Return(nil).Once()
	f.session.EXPECT().AllocateRendererTerminal(mockAnyContext(), "pista").Return(slotTerminal(0), nil).Once()

	require.NoError(t, f.ctrl.Start(context.Background()))
	assert.Equal(t, []PipeWait{{
		Slot:    "cpu",
		Pipe:    filepath.Join(f.cfg.SlotsDir, "1-cpu", "out"),
		Timeout: time.Second,
	}}, waits)
}

func TestControllerStopIsBestEffort(t *testing.T) {
	f := newControllerFixture(t)
	f.session.EXPECT().KillSession(mockAnyContext()).Return(&domain.CommandError{
		Command: []string{"tmux", "-L", "pistactl", "kill-session", "-t", "pistactl"},
		Code:    "1",
		Stderr:  "no server running",
	}).Twice()

	require.NoError(t, f.ctrl.Stop(context.Background()))
	require.NoError(t, f.ctrl.Stop(context.Background()))

	logs := f.logs.String()
	assert.Equal(t, 2, strings.Count(logs, "failure in kill session"))
	assert.Equal(t, 2, strings.Count(logs, "failure in removal of slot directory"))
}

func TestControllerStopRemovesSlotsDir(t *testing.T) {
	f := newControllerFixture(t)
	require.NoError(t, os.MkdirAll(filepath.Join(f.cfg.SlotsDir, "1-cpu"), 0o700))
	f.session.EXPECT().KillSession(mockAnyContext()).Return(nil).Once()

	require.NoError(t, f.ctrl.Stop(context.Background()))

	_, err := os.Stat(f.cfg.SlotsDir)
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, f.logs.String(), "level=ERROR")
}

func TestControllerRestartStopsThenStarts(t *testing.T) {
	f := newControllerFixture(t)
	calls := []*mock.Call{
		f.session.EXPECT().KillSession(mockAnyContext()).Return(nil).Once(),
		f.session.EXPECT().CreateSession(mockAnyContext(), f.cfg.SlotsDir).Return(nil).Once(),
	}
	calls = append(calls, f.expectRenderer()...)
	mock.InOrder(calls...)

	require.NoError(t, f.ctrl.Restart(context.Background()))
	assert.Contains(t, readFile(t, filepath.Join(f.cfg.SlotsDir, "run")), "'pista' >> ./out 2>> ./err;")
}

func TestControllerAttachWrapsError(t *testing.T) {
	f := newControllerFixture(t)
	f.session.EXPECT().Attach(mockAnyContext()).Return(errors.New("boom")).Once()

	err := f.ctrl.Attach(context.Background())
	require.EqualError(t, err, "attach: boom")
}

func mockAnyContext() interface{} {
	return mock.Anything
}
