package toml

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/pistactl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
debug = true
sock_name = "bar"
session = "status"
slots_fifos_dir = "/tmp/pistactl-slots"
slot_len_timeout = "2s"

[notifications]
log_lines_limit = 3
indent = "> "
width_limit = 0

[pista]
log_level = "Info"
x11 = true
interval = 0.5
expiry_character = "_"
pad_left = " "
pad_right = " "
separator = " | "

[[pista.slots]]
name = "cpu"
cmd = "pista-feed-cpu"
len = 4
ttl = 2

[[pista.slots]]
cmd = "date +%H:%M"
interpreter = "/bin/bash"
ttl = -1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pistactl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load(NewViper(), writeConfig(t, fullConfig))
	require.NoError(t, err)

	interval := 0.5
	pad := " "
	separator := " | "
	length := 4
	assert.Equal(t, domain.Config{
		Debug:            true,
		SocketName:       "bar",
		SessionName:      "status",
		SlotsDir:         "/tmp/pistactl-slots",
		DiscoveryTimeout: 2 * time.Second,
		Notifications:    domain.NotificationPolicy{TailLines: 3, Indent: "> ", WidthLimit: 0},
		Renderer: domain.Renderer{
			LogLevel:        domain.RendererLogInfo,
			X11:             true,
			Interval:        &interval,
			ExpiryCharacter: "_",
			PadLeft:         &pad,
			PadRight:        &pad,
			Separator:       &separator,
		},
		Slots: []domain.SlotConfig{
			{Position: 1, Name: "cpu", Command: "pista-feed-cpu", DeclaredLength: &length, TTL: 2},
			{Position: 2, Command: "date +%H:%M", Interpreter: "/bin/bash", TTL: -1},
		},
	}, cfg)
	assert.Equal(t, []string{"-i", "0.5", "-f", " ", "-s", " | ", "-r", " ", "-x", "-e", "_", "-l", "3"}, cfg.Renderer.Args())
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(NewViper(), writeConfig(t, "[pista]\nslots = []\n"))
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, "pistactl", cfg.SocketName)
	assert.Equal(t, "pistactl", cfg.SessionName)
	assert.Equal(t, filepath.Join(homeDir, ".pistactl", "slots"), cfg.SlotsDir)
	assert.Equal(t, 5*time.Second, cfg.DiscoveryTimeout)
	assert.Equal(t, domain.DefaultNotificationPolicy(), cfg.Notifications)
	assert.Equal(t, "pista", cfg.Renderer.Name())
	assert.Empty(t, cfg.Renderer.Args())
	assert.Empty(t, cfg.Slots)
}

func TestLoadOverridesFileWithViperValues(t *testing.T) {
	t.Parallel()

	v := NewViper()
	v.Set(KeySocketName, "from-flag")
	v.Set(KeySlotsDir, "~/elsewhere")

	cfg, err := Load(v, writeConfig(t, fullConfig))
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.SocketName)
	assert.Equal(t, "status", cfg.SessionName)
	assert.Equal(t, filepath.Join(homeDir, "elsewhere"), cfg.SlotsDir)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PISTACTL_SESSION", "from-env")
	t.Setenv("PISTACTL_SLOT_LEN_TIMEOUT", "250ms")

	cfg, err := Load(NewViper(), writeConfig(t, fullConfig))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SessionName)
	assert.Equal(t, 250*time.Millisecond, cfg.DiscoveryTimeout)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "unknown key",
			content: "[pista]\ncolour = \"red\"\n",
			wantMsg: "colour",
		},
		{
			name:    "missing ttl",
			content: "[[pista.slots]]\ncmd = \"date\"\n",
			wantMsg: "slot 1: ttl is required",
		},
		{
			name:    "missing cmd",
			content: "[[pista.slots]]\nttl = 1\n",
			wantMsg: "slot 1: cmd is required",
		},
		{
			name:    "name with dot",
			content: "[[pista.slots]]\nname = \"a.b\"\ncmd = \"date\"\nttl = 1\n",
			wantMsg: "must not contain whitespace",
		},
		{
			name:    "duplicate names",
			content: "[[pista.slots]]\nname = \"a\"\ncmd = \"date\"\nttl = 1\n[[pista.slots]]\nname = \"a\"\ncmd = \"date\"\nttl = 1\n",
			wantMsg: "already used by slot 1",
		},
		{
			name:    "log level",
			content: "[pista]\nlog_level = \"loud\"\n",
			wantMsg: "log_level \"loud\"",
		},
		{
			name:    "renderer command with space",
			content: "[pista]\ncommand = \"my pista\"\n",
			wantMsg: "pista command \"my pista\" must not contain whitespace",
		},
		{
			name:    "timeout",
			content: "slot_len_timeout = \"soon\"\n",
			wantMsg: "slot_len_timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(NewViper(), writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncodeLoadsBack(t *testing.T) {
	t.Parallel()

	cfg, err := Load(NewViper(), writeConfig(t, fullConfig))
	require.NoError(t, err)

	data, err := Encode(cfg)
	require.NoError(t, err)

	reloaded, err := Load(NewViper(), writeConfig(t, string(data)))
	require.NoError(t, err)
	cfg.Renderer.Command = "pista"
	assert.Equal(t, cfg, reloaded)
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	for input, want := range map[string]string{
		"~":             homeDir,
		"~/.pistactl":   filepath.Join(homeDir, ".pistactl"),
		"/abs/path":     "/abs/path",
		"relative/path": "relative/path",
		"~user/path":    "~user/path",
	} {
		got, err := ExpandHome(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
}
