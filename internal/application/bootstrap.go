package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/pistactl/internal/domain"
)

const runCommand = "./" + domain.RunFile

// materializeSlot lays out one slot directory, starts its feed in a fresh
// terminal and settles the slot's output width.
func (c *Controller) materializeSlot(ctx context.Context, slot domain.SlotConfig) (domain.SlotSpec, error) {
	name := slot.DisplayName()
	rt := domain.SlotRuntime{Dir: filepath.Join(c.cfg.SlotsDir, slot.DirName())}
	rt.Pipe = filepath.Join(rt.Dir, domain.PipeFile)

	if err := c.fs.CreateDir(rt.Dir); err != nil {
		return domain.SlotSpec{}, err
	}
	if err := c.fs.CreatePipe(rt.Pipe); err != nil {
		return domain.SlotSpec{}, err
	}
	if err := c.fs.WriteExecutable(filepath.Join(rt.Dir, domain.CommandFile), domain.CommandScript(slot.Interpreter, slot.Command)); err != nil {
		return domain.SlotSpec{}, err
	}
	if err := c.fs.WriteExecutable(filepath.Join(rt.Dir, domain.RunFile), domain.SlotRunScript(rt.Dir, name, c.cfg.Notifications)); err != nil {
		return domain.SlotSpec{}, err
	}

	term, err := c.session.AllocateTerminal(ctx, rt.Dir, name)
	if err != nil {
		return domain.SlotSpec{}, err
	}
	rt.Terminal = term
	if err := c.run(ctx, term); err != nil {
		return domain.SlotSpec{}, err
	}
	c.logger.Debug("slot started", "slot", name, "terminal", term.String(), "dir", rt.Dir)

	if slot.DeclaredLength != nil {
		rt.Length = *slot.DeclaredLength
		c.logger.Info("using declared slot length", "slot", name, "length", rt.Length)
		return rt.Spec(slot.TTL), nil
	}

	length, err := c.discoverLength(ctx, name, rt)
	if err != nil {
		return domain.SlotSpec{}, err
	}
	rt.Length = length

	return rt.Spec(slot.TTL), nil
}

func (c *Controller) startRenderer(ctx context.Context, specs []domain.SlotSpec) error {
	argv := c.cfg.Renderer.Argv(specs)
	script := domain.RendererRunScript(c.cfg.SlotsDir, argv, c.cfg.Notifications)
	if err := c.fs.WriteExecutable(filepath.Join(c.cfg.SlotsDir, domain.RunFile), script); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	term, err := c.session.AllocateRendererTerminal(ctx, c.cfg.Renderer.Name())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	if err := c.run(ctx, term); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	c.logger.Info("renderer started", "terminal", term.String(), "slots", domain.FormatSlotSpecs(specs))

	return nil
}

// run types ./run into term and submits it.
func (c *Controller) run(ctx context.Context, term domain.Terminal) error {
	if err := c.session.SendText(ctx, term, runCommand); err != nil {
		return err
	}
	return c.session.SendEnter(ctx, term)
}
