package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnema/pistactl/internal/domain"
	"github.com/bnema/pistactl/internal/ports"
)

// PipeWait describes a pending first-line read during length discovery.
type PipeWait struct {
	Slot    string
	Pipe    string
	Timeout time.Duration
}

// WaitFunc runs a blocking pipe read on behalf of the controller, typically
// to decorate it with progress output.
type WaitFunc func(ctx context.Context, pending PipeWait, wait func(context.Context) error) error

func directWait(ctx context.Context, _ PipeWait, wait func(context.Context) error) error {
	return wait(ctx)
}

// Controller owns one pistactl session: its tmux windows and the slots
// directory tree. It assumes it is the only controller for that session.
type Controller struct {
	cfg     domain.Config
	session ports.Session
	procs   ports.ProcessLister
	fs      ports.SlotFilesystem
	logger  *slog.Logger
	wait    WaitFunc
}

type Option func(*Controller)

func WithWaitFunc(wait WaitFunc) Option {
	return func(c *Controller) {
		if wait != nil {
			c.wait = wait
		}
	}
}

func NewController(cfg domain.Config, session ports.Session, procs ports.ProcessLister, fs ports.SlotFilesystem, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		cfg:     cfg,
		session: session,
		procs:   procs,
		fs:      fs,
		logger:  logger,
		wait:    directWait,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start creates the session, boots every slot in declaration order and then
// launches the renderer in window 0. It stops at the first error and leaves
// whatever was already created in place.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.start(ctx); err != nil {
		return fmt.Errorf("start: %w (run stop to clean up partial state)", err)
	}
	return nil
}

func (c *Controller) start(ctx context.Context) error {
	dir := c.cfg.SlotsDir
	if err := c.fs.CreateDir(dir); err != nil {
		return err
	}
	if err := c.session.CreateSession(ctx, dir); err != nil {
		return err
	}
	c.logger.Info("session created", "socket", c.session.SocketName(), "session", c.session.SessionName(), "dir", dir)

	specs := make([]domain.SlotSpec, 0, len(c.cfg.Slots))
	for _, slot := range c.cfg.Slots {
		spec, err := c.materializeSlot(ctx, slot)
		if err != nil {
			return fmt.Errorf("slot %d (%s): %w", slot.Position, slot.DisplayName(), err)
		}
		specs = append(specs, spec)
	}

	return c.startRenderer(ctx, specs)
}

// Stop tears the session and the slots directory down independently. Both
// failures are logged and neither fails the call.
func (c *Controller) Stop(ctx context.Context) error {
	if err := c.session.KillSession(ctx); err != nil {
		c.logger.Error("failure in kill session", "session", c.session.SessionName(), "error", err)
	}
	if err := c.fs.RemoveTree(c.cfg.SlotsDir); err != nil {
		c.logger.Error("failure in removal of slot directory", "dir", c.cfg.SlotsDir, "error", err)
	}
	return nil
}

func (c *Controller) Restart(ctx context.Context) error {
	_ = c.Stop(ctx)
	return c.Start(ctx)
}

func (c *Controller) Attach(ctx context.Context) error {
	if err := c.session.Attach(ctx); err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	return nil
}
