package slotfs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/pistactl/internal/domain"
	"github.com/bnema/pistactl/internal/ports"
	"golang.org/x/sys/unix"
)

const (
	dirMode  = 0o700
	pipeMode = 0o600
	execMode = 0o700
)

type Filesystem struct{}

var _ ports.SlotFilesystem = (*Filesystem)(nil)

func New() *Filesystem {
	return &Filesystem{}
}

func (f *Filesystem) CreateDir(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

func (f *Filesystem) CreatePipe(path string) error {
	if err := unix.Mkfifo(path, pipeMode); err != nil {
		return fmt.Errorf("create pipe %s: %w", path, &os.PathError{Op: "mkfifo", Path: path, Err: err})
	}
	return nil
}

func (f *Filesystem) WriteExecutable(path string, content []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, execMode)
	if err != nil {
		return fmt.Errorf("create file %s: %w", path, err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("write file %s: %w", path, err)
	}

	// OpenFile's mode is subject to umask and ignored for existing files.
	if err := file.Chmod(execMode); err != nil {
		_ = file.Close()
		return fmt.Errorf("chmod file %s: %w", path, err)
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("sync file %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close file %s: %w", path, err)
	}

	return nil
}

// RemoveTree removes path recursively. Unlike os.RemoveAll it reports a
// missing path as an error.
func (f *Filesystem) RemoveTree(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("remove directory %s: %w", path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove directory %s: %w", path, err)
	}
	return nil
}

// CountLines counts newline-terminated lines plus a trailing unterminated one.
func (f *Filesystem) CountLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open log %s: %w", path, err)
	}
	defer file.Close()

	count := 0
	pending := false
	buf := make([]byte, 32*1024)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			count += bytes.Count(chunk, []byte{'\n'})
			pending = chunk[n-1] != '\n'
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read log %s: %w", path, err)
		}
	}
	if pending {
		count++
	}

	return count, nil
}

type headResult struct {
	line string
	ok   bool
	err  error
}

// ReadFirstLine opens and reads the pipe on its own goroutine since both block
// until a writer shows up. On timeout the goroutine is left behind; it ends
// once the writer side produces a line or closes.
func (f *Filesystem) ReadFirstLine(ctx context.Context, path string, timeout time.Duration) (string, bool, error) {
	done := make(chan headResult, 1)
	go func() {
		done <- readHead(path)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res.line, res.ok, res.err
	case <-timer.C:
		return "", false, fmt.Errorf("%w after %s: %s", domain.ErrPipeReadTimeout, timeout, path)
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

func readHead(path string) headResult {
	file, err := os.Open(path)
	if err != nil {
		return headResult{err: fmt.Errorf("open pipe %s: %w", path, err)}
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return headResult{err: fmt.Errorf("read pipe %s: %w", path, err)}
	}
	if line == "" {
		return headResult{}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return headResult{line: line, ok: true}
}
