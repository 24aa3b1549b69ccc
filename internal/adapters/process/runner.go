package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/pistactl/internal/domain"
	"github.com/bnema/pistactl/internal/ports"
)

// Runner is the only place external programs are spawned from.
type Runner struct {
	logger *slog.Logger
}

var _ ports.CommandRunner = (*Runner)(nil)

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.logger.Debug("running command", "cmd", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), commandError(name, args, err, stderr.String())
	}

	return stdout.Bytes(), nil
}

func (r *Runner) RunAttached(ctx context.Context, name string, args ...string) error {
	r.logger.Debug("running attached command", "cmd", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return commandError(name, args, err, stderr.String())
	}

	return nil
}

func commandError(name string, args []string, err error, stderr string) error {
	commandLine := append([]string{name}, args...)

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("spawn %q: %w", strings.Join(commandLine, " "), err)
	}

	code := "none"
	if exitCode := exitErr.ExitCode(); exitCode >= 0 {
		code = strconv.Itoa(exitCode)
	}

	return &domain.CommandError{
		Command: commandLine,
		Code:    code,
		Stderr:  stderr,
		Err:     err,
	}
}
