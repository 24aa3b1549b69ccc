package ports

import "context"

type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
	// RunAttached connects the command to the caller's terminal.
	RunAttached(ctx context.Context, name string, args ...string) error
}
