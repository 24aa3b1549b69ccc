package ports

import (
	"context"
	"time"
)

type SlotFilesystem interface {
	CreateDir(path string) error
	CreatePipe(path string) error
	// WriteExecutable writes an owner-only executable file and syncs it.
	WriteExecutable(path string, content []byte) error
	RemoveTree(path string) error
	CountLines(path string) (int, error)
	// ReadFirstLine waits at most timeout for the first line of a pipe. ok is
	// false when the stream ended without a line.
	ReadFirstLine(ctx context.Context, path string, timeout time.Duration) (line string, ok bool, err error)
}
