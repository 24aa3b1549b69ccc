package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultInterpreter = "/bin/sh"

type SlotConfig struct {
	// Position is 1-based, in declaration order.
	Position       int
	Name           string
	Command        string
	Interpreter    string
	DeclaredLength *int
	TTL            int
}

// DisplayName is the slot's window name, falling back to its position.
func (s SlotConfig) DisplayName() string {
	if strings.TrimSpace(s.Name) == "" {
		return strconv.Itoa(s.Position)
	}
	return s.Name
}

// DirName is the name of the slot's working directory under the slots dir.
func (s SlotConfig) DirName() string {
	return SlotDirName(s.Position, s.DisplayName())
}

func (s SlotConfig) Validate() error {
	if s.Position < 1 {
		return fmt.Errorf("slot position must be positive, got %d", s.Position)
	}
	if strings.TrimSpace(s.Command) == "" {
		return fmt.Errorf("slot %d: cmd is required", s.Position)
	}
	if s.Name != "" {
		if err := validateSlotName(s.Name); err != nil {
			return fmt.Errorf("slot %d: %w", s.Position, err)
		}
	}
	if s.DeclaredLength != nil && *s.DeclaredLength < 0 {
		return fmt.Errorf("slot %d: len must not be negative", s.Position)
	}
	return nil
}

func validateSlotName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if strings.ContainsAny(name, " \t\r\n:./") {
		return fmt.Errorf("name %q must not contain whitespace, ':', '.' or '/'", name)
	}
	return nil
}

func SlotDirName(position int, name string) string {
	return fmt.Sprintf("%d-%s", position, name)
}

type SlotRuntime struct {
	Dir      string
	Pipe     string
	Length   int
	Terminal Terminal
}

func (r SlotRuntime) Spec(ttl int) SlotSpec {
	return SlotSpec{Pipe: r.Pipe, Length: r.Length, TTL: ttl}
}

// SlotSpec is one positional slot argument triple of the renderer.
type SlotSpec struct {
	Pipe   string
	Length int
	TTL    int
}

func (s SlotSpec) Args() []string {
	return []string{s.Pipe, strconv.Itoa(s.Length), strconv.Itoa(s.TTL)}
}

func (s SlotSpec) String() string {
	return strings.Join(s.Args(), " ")
}

// FormatSlotSpecs renders specs for log lines. Pipe paths are not quoted;
// the renderer receives them through Renderer.Argv.
func FormatSlotSpecs(specs []SlotSpec) string {
	parts := make([]string, 0, len(specs))
	for _, spec := range specs {
		parts = append(parts, spec.String())
	}
	return strings.Join(parts, " ")
}
