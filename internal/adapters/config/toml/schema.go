package toml

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/pistactl/internal/domain"
)

type fileSchema struct {
	Debug          *bool               `toml:"debug,omitempty"`
	LogJSON        *bool               `toml:"log_json,omitempty"`
	SockName       string              `toml:"sock_name,omitempty"`
	Session        string              `toml:"session,omitempty"`
	SlotsFifosDir  string              `toml:"slots_fifos_dir,omitempty"`
	SlotLenTimeout string              `toml:"slot_len_timeout,omitempty"`
	Notifications  notificationsSchema `toml:"notifications,omitempty"`
	Pista          pistaSchema         `toml:"pista"`
}

type notificationsSchema struct {
	LogLinesLimit *int    `toml:"log_lines_limit,omitempty"`
	Indent        *string `toml:"indent,omitempty"`
	WidthLimit    *int    `toml:"width_limit,omitempty"`
}

type pistaSchema struct {
	Command         string       `toml:"command,omitempty"`
	LogLevel        string       `toml:"log_level,omitempty"`
	X11             bool         `toml:"x11,omitempty"`
	Interval        *float64     `toml:"interval,omitempty"`
	ExpiryCharacter string       `toml:"expiry_character,omitempty"`
	PadLeft         *string      `toml:"pad_left,omitempty"`
	PadRight        *string      `toml:"pad_right,omitempty"`
	Separator       *string      `toml:"separator,omitempty"`
	Slots           []slotSchema `toml:"slots"`
}

type slotSchema struct {
	Name        string `toml:"name,omitempty"`
	Cmd         string `toml:"cmd"`
	Interpreter string `toml:"interpreter,omitempty"`
	Len         *int   `toml:"len,omitempty"`
	TTL         *int   `toml:"ttl"`
}

func (s notificationsSchema) toDomain() domain.NotificationPolicy {
	policy := domain.DefaultNotificationPolicy()
	if s.LogLinesLimit != nil {
		policy.TailLines = *s.LogLinesLimit
	}
	if s.Indent != nil {
		policy.Indent = *s.Indent
	}
	if s.WidthLimit != nil {
		policy.WidthLimit = *s.WidthLimit
	}
	return policy
}

func (s pistaSchema) toDomain() domain.Renderer {
	return domain.Renderer{
		Command:         s.Command,
		LogLevel:        domain.RendererLogLevel(strings.ToLower(s.LogLevel)),
		X11:             s.X11,
		Interval:        s.Interval,
		ExpiryCharacter: s.ExpiryCharacter,
		PadLeft:         s.PadLeft,
		PadRight:        s.PadRight,
		Separator:       s.Separator,
	}
}

func (s pistaSchema) slotsToDomain() ([]domain.SlotConfig, error) {
	slots := make([]domain.SlotConfig, 0, len(s.Slots))
	for i, entry := range s.Slots {
		if entry.TTL == nil {
			return nil, fmt.Errorf("slot %d: ttl is required", i+1)
		}
		slots = append(slots, domain.SlotConfig{
			Position:       i + 1,
			Name:           entry.Name,
			Command:        entry.Cmd,
			Interpreter:    entry.Interpreter,
			DeclaredLength: entry.Len,
			TTL:            *entry.TTL,
		})
	}
	return slots, nil
}

func toSchema(cfg domain.Config) fileSchema {
	debug := cfg.Debug
	logJSON := cfg.LogJSON
	policy := cfg.Notifications

	slots := make([]slotSchema, 0, len(cfg.Slots))
	for _, slot := range cfg.Slots {
		ttl := slot.TTL
		slots = append(slots, slotSchema{
			Name:        slot.Name,
			Cmd:         slot.Command,
			Interpreter: slot.Interpreter,
			Len:         slot.DeclaredLength,
			TTL:         &ttl,
		})
	}

	return fileSchema{
		Debug:          &debug,
		LogJSON:        &logJSON,
		SockName:       cfg.SocketName,
		Session:        cfg.SessionName,
		SlotsFifosDir:  cfg.SlotsDir,
		SlotLenTimeout: cfg.DiscoveryTimeout.String(),
		Notifications: notificationsSchema{
			LogLinesLimit: &policy.TailLines,
			Indent:        &policy.Indent,
			WidthLimit:    &policy.WidthLimit,
		},
		Pista: pistaSchema{
			Command:         cfg.Renderer.Name(),
			LogLevel:        string(cfg.Renderer.LogLevel),
			X11:             cfg.Renderer.X11,
			Interval:        cfg.Renderer.Interval,
			ExpiryCharacter: cfg.Renderer.ExpiryCharacter,
			PadLeft:         cfg.Renderer.PadLeft,
			PadRight:        cfg.Renderer.PadRight,
			Separator:       cfg.Renderer.Separator,
			Slots:           slots,
		},
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("slot_len_timeout: %w", err)
	}
	return timeout, nil
}
