package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultRendererCommand = "pista"

type RendererLogLevel string

const (
	RendererLogNothing RendererLogLevel = "nothing"
	RendererLogError   RendererLogLevel = "error"
	RendererLogWarn    RendererLogLevel = "warn"
	RendererLogInfo    RendererLogLevel = "info"
	RendererLogDebug   RendererLogLevel = "debug"
)

var rendererLogLevels = map[RendererLogLevel]int{
	RendererLogNothing: 0,
	RendererLogError:   1,
	RendererLogWarn:    2,
	RendererLogInfo:    3,
	RendererLogDebug:   4,
}

// Renderer holds the global flags passed to the status line renderer. Unset
// pointers leave the renderer's own defaults in place.
type Renderer struct {
	Command         string
	LogLevel        RendererLogLevel
	X11             bool
	Interval        *float64
	ExpiryCharacter string
	PadLeft         *string
	PadRight        *string
	Separator       *string
}

func (r Renderer) Name() string {
	if r.Command == "" {
		return DefaultRendererCommand
	}
	return r.Command
}

func (r Renderer) Validate() error {
	// The command doubles as window 0's name in the whitespace-delimited pane listing.
	if strings.ContainsAny(r.Name(), " \t\r\n") {
		return fmt.Errorf("pista command %q must not contain whitespace", r.Name())
	}
	if r.LogLevel != "" {
		if _, ok := rendererLogLevels[r.LogLevel]; !ok {
			return fmt.Errorf("pista log_level %q is not one of nothing, error, warn, info, debug", r.LogLevel)
		}
	}
	if len([]rune(r.ExpiryCharacter)) > 1 {
		return fmt.Errorf("pista expiry_character %q must be a single character", r.ExpiryCharacter)
	}
	return nil
}

// Args renders the flag part of the renderer's argv.
func (r Renderer) Args() []string {
	var args []string
	if r.Interval != nil {
		args = append(args, "-i", strconv.FormatFloat(*r.Interval, 'f', -1, 64))
	}
	if r.PadLeft != nil {
		args = append(args, "-f", *r.PadLeft)
	}
	if r.Separator != nil {
		args = append(args, "-s", *r.Separator)
	}
	if r.PadRight != nil {
		args = append(args, "-r", *r.PadRight)
	}
	if r.X11 {
		args = append(args, "-x")
	}
	if r.ExpiryCharacter != "" {
		args = append(args, "-e", r.ExpiryCharacter)
	}
	if level, ok := rendererLogLevels[r.LogLevel]; ok {
		args = append(args, "-l", strconv.Itoa(level))
	}
	return args
}

// Argv is the full renderer invocation: command, flags, then slot triples.
func (r Renderer) Argv(specs []SlotSpec) []string {
	argv := append([]string{r.Name()}, r.Args()...)
	for _, spec := range specs {
		argv = append(argv, spec.Args()...)
	}
	return argv
}
