package domain

import "fmt"

// Terminal addresses one pane inside the tmux session. It is rendered into
// its string form on every use since tmux owns the live identifiers.
type Terminal struct {
	Session string
	Window  int
	Pane    int
}

func (t Terminal) String() string {
	return fmt.Sprintf("%s:%d.%d", t.Session, t.Window, t.Pane)
}

// PaneInfo is one row of the pane listing. WindowID and PaneID are the
// session-local indexes, the same numbers Terminal addresses.
type PaneInfo struct {
	WindowID   int
	WindowName string
	TTY        string
	PaneID     int
}

type ProcessInfo struct {
	Command    string
	Foreground bool
	// TTY is the controlling terminal path, empty when the process has none.
	TTY string
}
