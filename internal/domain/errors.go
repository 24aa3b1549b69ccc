package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExternalCommandFailed = errors.New("external command failed")
	ErrAddressParse          = errors.New("malformed tmux listing")
	ErrInvalidConfig         = errors.New("invalid configuration")
	ErrPipeReadTimeout       = errors.New("timed out waiting for first line")
)

// CommandError reports a spawned command that exited unsuccessfully.
type CommandError struct {
	Command []string
	// Code is the exit code, or "none" when the process was killed by a signal.
	Code   string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to run %q: code %s: stderr %q", strings.Join(e.Command, " "), e.Code, e.Stderr)
}

func (e *CommandError) Is(target error) bool {
	return target == ErrExternalCommandFailed
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

type AddressParseError struct {
	Line   string
	Reason string
}

func (e *AddressParseError) Error() string {
	return fmt.Sprintf("parse tmux listing row %q: %s", e.Line, e.Reason)
}

func (e *AddressParseError) Is(target error) bool {
	return target == ErrAddressParse
}
