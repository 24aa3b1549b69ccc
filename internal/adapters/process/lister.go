package process

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bnema/pistactl/internal/domain"
	"github.com/bnema/pistactl/internal/ports"
)

// Lister reads the OS process table through ps(1).
type Lister struct {
	runner ports.CommandRunner
}

var _ ports.ProcessLister = (*Lister)(nil)

func NewLister(runner ports.CommandRunner) *Lister {
	return &Lister{runner: runner}
}

func (l *Lister) ListProcesses(ctx context.Context) ([]domain.ProcessInfo, error) {
	out, err := l.runner.Run(ctx, "ps", "-e", "-o", "stat=", "-o", "tty=", "-o", "comm=")
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	return parseProcessTable(out)
}

// parseProcessTable reads "STAT TTY COMM" rows. A '+' in STAT marks a member
// of its terminal's foreground process group.
func parseProcessTable(out []byte) ([]domain.ProcessInfo, error) {
	var procs []domain.ProcessInfo

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("parse process table row %q: expected stat, tty and command", line)
		}

		procs = append(procs, domain.ProcessInfo{
			Command:    strings.Join(fields[2:], " "),
			Foreground: strings.Contains(fields[0], "+"),
			TTY:        ttyPath(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read process table: %w", err)
	}

	return procs, nil
}

func ttyPath(tty string) string {
	if tty == "?" || tty == "-" || tty == "" {
		return ""
	}
	if strings.HasPrefix(tty, "/dev/") {
		return tty
	}
	return "/dev/" + tty
}
