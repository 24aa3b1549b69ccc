package application

import (
	"context"
	"errors"

	"github.com/bnema/pistactl/internal/domain"
)

// discoverLength takes the byte length of the feed's first line as the slot
// width. The feed is restarted afterwards so the renderer sees it from its
// first line. Timeouts and an early end of stream fall back to zero.
func (c *Controller) discoverLength(ctx context.Context, name string, rt domain.SlotRuntime) (int, error) {
	c.logger.Warn("slot length not declared, reading first line of the feed", "slot", name, "pipe", rt.Pipe, "timeout", c.cfg.DiscoveryTimeout)

	var (
		line string
		ok   bool
	)
	pending := PipeWait{Slot: name, Pipe: rt.Pipe, Timeout: c.cfg.DiscoveryTimeout}
	err := c.wait(ctx, pending, func(ctx context.Context) error {
		var readErr error
		line, ok, readErr = c.fs.ReadFirstLine(ctx, rt.Pipe, c.cfg.DiscoveryTimeout)
		return readErr
	})

	length := 0
	switch {
	case errors.Is(err, domain.ErrPipeReadTimeout):
		c.logger.Error("no output from slot before timeout, assuming length 0", "slot", name, "timeout", c.cfg.DiscoveryTimeout)
	case err != nil:
		return 0, err
	case !ok:
		c.logger.Warn("slot feed ended before producing a line, assuming length 0", "slot", name)
	default:
		length = len(line)
		c.logger.Info("discovered slot length", "slot", name, "length", length)
	}

	if err := c.restartFeed(ctx, rt.Terminal); err != nil {
		return 0, err
	}
	return length, nil
}

func (c *Controller) restartFeed(ctx context.Context, term domain.Terminal) error {
	if err := c.session.SendInterrupt(ctx, term); err != nil {
		return err
	}
	return c.run(ctx, term)
}
