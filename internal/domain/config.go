package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultSocketName       = "pistactl"
	DefaultSessionName      = "pistactl"
	DefaultDiscoveryTimeout = 5 * time.Second
)

type Config struct {
	Debug            bool
	LogJSON          bool
	SocketName       string
	SessionName      string
	SlotsDir         string
	DiscoveryTimeout time.Duration
	Notifications    NotificationPolicy
	Renderer         Renderer
	Slots            []SlotConfig
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.SocketName) == "" {
		errs = append(errs, errors.New("sock_name is required"))
	}
	if strings.TrimSpace(c.SessionName) == "" {
		errs = append(errs, errors.New("session is required"))
	}
	if strings.ContainsAny(c.SessionName, ":.") {
		errs = append(errs, fmt.Errorf("session %q must not contain ':' or '.'", c.SessionName))
	}
	if strings.TrimSpace(c.SlotsDir) == "" {
		errs = append(errs, errors.New("slots_fifos_dir is required"))
	}
	if c.DiscoveryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("slot_len_timeout must be positive, got %s", c.DiscoveryTimeout))
	}
	if c.Notifications.TailLines < 0 || c.Notifications.WidthLimit < 0 {
		errs = append(errs, errors.New("notifications limits must not be negative"))
	}
	if err := c.Renderer.Validate(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]int, len(c.Slots))
	for _, slot := range c.Slots {
		if err := slot.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := seen[slot.DisplayName()]; ok {
			errs = append(errs, fmt.Errorf("slot %d: name %q already used by slot %d", slot.Position, slot.DisplayName(), prev))
			continue
		}
		seen[slot.DisplayName()] = slot.Position
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
