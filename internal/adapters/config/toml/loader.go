package toml

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pistactl/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	KeyDebug          = "debug"
	KeyLogJSON        = "log_json"
	KeySocketName     = "sock_name"
	KeySessionName    = "session"
	KeySlotsDir       = "slots_fifos_dir"
	KeySlotLenTimeout = "slot_len_timeout"

	EnvPrefix         = "PISTACTL"
	DefaultConfigFile = "~/.pistactl.toml"
	defaultSlotsDir   = "~/.pistactl/slots"
	configType        = "toml"
)

// NewViper returns a viper instance holding the scalar defaults and reading
// PISTACTL_* environment overrides. Callers bind their flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeySocketName, domain.DefaultSocketName)
	v.SetDefault(KeySessionName, domain.DefaultSessionName)
	v.SetDefault(KeySlotsDir, defaultSlotsDir)
	v.SetDefault(KeySlotLenTimeout, domain.DefaultDiscoveryTimeout.String())

	return v
}

// Load reads the TOML file at path and layers it between the defaults and the
// environment and flag overrides already registered on v. The [notifications]
// and [pista] sections are decoded strictly: unknown keys are rejected.
func Load(v *viper.Viper, path string) (domain.Config, error) {
	if v == nil {
		v = NewViper()
	}

	path, err := ExpandHome(path)
	if err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("read config file: %w", err)
	}

	file, err := decode(data)
	if err != nil {
		return domain.Config{}, fmt.Errorf("%w: decode %s: %w", domain.ErrInvalidConfig, path, err)
	}

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return domain.Config{}, fmt.Errorf("read config file: %w", err)
	}

	slotsDir, err := ExpandHome(v.GetString(KeySlotsDir))
	if err != nil {
		return domain.Config{}, err
	}
	timeout, err := parseTimeout(v.GetString(KeySlotLenTimeout))
	if err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	slots, err := file.Pista.slotsToDomain()
	if err != nil {
		return domain.Config{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	cfg := domain.Config{
		Debug:            v.GetBool(KeyDebug),
		LogJSON:          v.GetBool(KeyLogJSON),
		SocketName:       v.GetString(KeySocketName),
		SessionName:      v.GetString(KeySessionName),
		SlotsDir:         slotsDir,
		DiscoveryTimeout: timeout,
		Notifications:    file.Notifications.toDomain(),
		Renderer:         file.Pista.toDomain(),
		Slots:            slots,
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}

	return cfg, nil
}

// Encode renders cfg back into the configuration file format.
func Encode(cfg domain.Config) ([]byte, error) {
	data, err := toml.Marshal(toSchema(cfg))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

func decode(data []byte) (fileSchema, error) {
	var file fileSchema
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return fileSchema{}, fmt.Errorf("unknown keys:\n%s", strictErr.String())
		}
		return fileSchema{}, err
	}
	return file, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
