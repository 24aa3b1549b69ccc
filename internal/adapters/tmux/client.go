package tmux

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bnema/pistactl/internal/domain"
	"github.com/bnema/pistactl/internal/ports"
)

const (
	rendererWindow = 0
	firstWindow    = 1

	// Indexes are per session, unlike #{window_id} and #{pane_id} which are
	// numbered across the whole server. The tags keep rows self-describing.
	paneListFormat = "@#{window_index} #{window_name} #{pane_tty} %#{pane_index}"
)

// Client drives one tmux session on a dedicated server socket. Window 0 is
// created with the session and reserved for the renderer; slot windows are
// allocated densely from 1 in call order.
type Client struct {
	runner  ports.CommandRunner
	socket  string
	session string

	mu         sync.Mutex
	nextWindow int
}

var _ ports.Session = (*Client)(nil)

func NewClient(runner ports.CommandRunner, socket, session string) *Client {
	return &Client{
		runner:     runner,
		socket:     socket,
		session:    session,
		nextWindow: firstWindow,
	}
}

func (c *Client) SocketName() string {
	return c.socket
}

func (c *Client) SessionName() string {
	return c.session
}

// CreateSession starts the detached session rooted at workDir. Index
// options are reset in the same invocation, before the session exists, so a
// user's tmux.conf cannot shift window 0 or pane 0. Automatic renaming is
// switched off since windows are identified by name.
func (c *Client) CreateSession(ctx context.Context, workDir string) error {
	args := sequence(
		[]string{"start-server"},
		[]string{"set-option", "-g", "base-index", "0"},
		[]string{"set-option", "-g", "-w", "pane-base-index", "0"},
		[]string{"new-session", "-d", "-s", c.session, "-c", workDir},
	)
	if _, err := c.runner.Run(ctx, "tmux", c.args(args...)...); err != nil {
		return fmt.Errorf("tmux new-session: %w", err)
	}
	if err := c.run(ctx, "set-option", "-g", "-w", "automatic-rename", "off"); err != nil {
		return err
	}
	return c.run(ctx, "set-option", "-g", "allow-rename", "off")
}

func (c *Client) AllocateTerminal(ctx context.Context, workDir string, name string) (domain.Terminal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	window := c.nextWindow
	target := fmt.Sprintf("%s:%d", c.session, window)
	if err := c.run(ctx, "new-window", "-d", "-t", target, "-c", workDir, "-n", name); err != nil {
		return domain.Terminal{}, err
	}
	c.nextWindow++

	return c.terminal(window), nil
}

func (c *Client) AllocateRendererTerminal(ctx context.Context, name string) (domain.Terminal, error) {
	term := c.terminal(rendererWindow)
	target := fmt.Sprintf("%s:%d", c.session, rendererWindow)
	if err := c.run(ctx, "rename-window", "-t", target, name); err != nil {
		return domain.Terminal{}, err
	}
	return term, nil
}

// SendText types text literally; -l disables key name lookup.
func (c *Client) SendText(ctx context.Context, term domain.Terminal, text string) error {
	return c.run(ctx, "send-keys", "-t", term.String(), "-l", text)
}

func (c *Client) SendEnter(ctx context.Context, term domain.Terminal) error {
	return c.run(ctx, "send-keys", "-t", term.String(), "Enter")
}

func (c *Client) SendInterrupt(ctx context.Context, term domain.Terminal) error {
	return c.run(ctx, "send-keys", "-t", term.String(), "C-c")
}

func (c *Client) KillSession(ctx context.Context) error {
	return c.run(ctx, "kill-session", "-t", c.session)
}

func (c *Client) Attach(ctx context.Context) error {
	return c.runner.RunAttached(ctx, "tmux", c.args("attach", "-t", c.session)...)
}

func (c *Client) ListPanes(ctx context.Context) ([]domain.PaneInfo, error) {
	out, err := c.runner.Run(ctx, "tmux", c.args("list-panes", "-s", "-t", c.session, "-F", paneListFormat)...)
	if err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w", err)
	}
	return ParsePanes(out)
}

// ParsePanes decodes list-panes output produced with paneListFormat. Rows
// that do not match are errors rather than skipped.
func ParsePanes(out []byte) ([]domain.PaneInfo, error) {
	var panes []domain.PaneInfo

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		pane, err := parsePane(line)
		if err != nil {
			return nil, err
		}
		panes = append(panes, pane)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tmux listing: %w", err)
	}

	return panes, nil
}

func parsePane(line string) (domain.PaneInfo, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return domain.PaneInfo{}, &domain.AddressParseError{
			Line:   line,
			Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
		}
	}

	windowID, err := parseTaggedID(line, fields[0], "@")
	if err != nil {
		return domain.PaneInfo{}, err
	}
	paneID, err := parseTaggedID(line, fields[3], "%")
	if err != nil {
		return domain.PaneInfo{}, err
	}

	return domain.PaneInfo{
		WindowID:   windowID,
		WindowName: fields[1],
		TTY:        fields[2],
		PaneID:     paneID,
	}, nil
}

func parseTaggedID(line, field, tag string) (int, error) {
	raw, ok := strings.CutPrefix(field, tag)
	if !ok {
		return 0, &domain.AddressParseError{
			Line:   line,
			Reason: fmt.Sprintf("id %q lacks %q prefix", field, tag),
		}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.AddressParseError{
			Line:   line,
			Reason: fmt.Sprintf("id %q is not an integer", field),
		}
	}
	return id, nil
}

func (c *Client) terminal(window int) domain.Terminal {
	return domain.Terminal{Session: c.session, Window: window, Pane: 0}
}

// sequence joins tmux commands with ";" so they run in one client call.
func sequence(cmds ...[]string) []string {
	var args []string
	for i, cmd := range cmds {
		if i > 0 {
			args = append(args, ";")
		}
		args = append(args, cmd...)
	}
	return args
}

func (c *Client) args(args ...string) []string {
	return append([]string{"-L", c.socket}, args...)
}

func (c *Client) run(ctx context.Context, args ...string) error {
	if _, err := c.runner.Run(ctx, "tmux", c.args(args...)...); err != nil {
		return fmt.Errorf("tmux %s: %w", args[0], err)
	}
	return nil
}
