package application

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bnema/pistactl/internal/domain"
)

type SlotStatus struct {
	// Position is the tmux window index; 0 is the renderer.
	Position int
	Name     string
	Running  bool
	LogLines int
}

type StatusReport struct {
	Socket   string
	Session  string
	SlotsDir string
	Slots    []SlotStatus
}

// Status joins the session's panes with the process table. A pane counts as
// running when a foreground run wrapper owns its tty.
func (c *Controller) Status(ctx context.Context) (StatusReport, error) {
	panes, err := c.session.ListPanes(ctx)
	if err != nil {
		return StatusReport{}, fmt.Errorf("list panes: %w", err)
	}
	procs, err := c.procs.ListProcesses(ctx)
	if err != nil {
		return StatusReport{}, fmt.Errorf("list processes: %w", err)
	}

	running := make(map[string]struct{})
	for _, proc := range procs {
		if proc.Foreground && proc.Command == domain.RunFile && proc.TTY != "" {
			running[proc.TTY] = struct{}{}
		}
	}

	sort.SliceStable(panes, func(i, j int) bool {
		return panes[i].WindowID < panes[j].WindowID
	})

	report := StatusReport{
		Socket:   c.session.SocketName(),
		Session:  c.session.SessionName(),
		SlotsDir: c.cfg.SlotsDir,
		Slots:    make([]SlotStatus, 0, len(panes)),
	}
	for _, pane := range panes {
		if pane.WindowID == 0 && pane.WindowName != c.cfg.Renderer.Name() {
			c.logger.Warn("window 0 is not named after the renderer", "window_name", pane.WindowName, "renderer", c.cfg.Renderer.Name())
		}

		_, isRunning := running[pane.TTY]
		report.Slots = append(report.Slots, SlotStatus{
			Position: pane.WindowID,
			Name:     pane.WindowName,
			Running:  isRunning,
			LogLines: c.logLines(pane),
		})
	}

	return report, nil
}

func (c *Controller) logLines(pane domain.PaneInfo) int {
	path := c.errLogPath(pane)
	lines, err := c.fs.CountLines(path)
	if err != nil {
		c.logger.Error("failure in reading slot log", "window", pane.WindowID, "path", path, "error", err)
		return 0
	}
	return lines
}

func (c *Controller) errLogPath(pane domain.PaneInfo) string {
	if pane.WindowID == 0 {
		return filepath.Join(c.cfg.SlotsDir, domain.ErrFile)
	}
	return filepath.Join(c.cfg.SlotsDir, domain.SlotDirName(pane.WindowID, pane.WindowName), domain.ErrFile)
}

