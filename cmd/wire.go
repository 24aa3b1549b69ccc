package cmd

import (
	"fmt"
	"io"
	"os"

	tomlconfig "github.com/bnema/pistactl/internal/adapters/config/toml"
	"github.com/bnema/pistactl/internal/adapters/process"
	statusadapter "github.com/bnema/pistactl/internal/adapters/render/status"
	"github.com/bnema/pistactl/internal/adapters/slotfs"
	"github.com/bnema/pistactl/internal/adapters/tmux"
	"github.com/bnema/pistactl/internal/application"
	"github.com/bnema/pistactl/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	viper          *viper.Viper
	configPath     string
	statusRenderer func(application.StatusReport, statusadapter.RenderOptions) (string, error)
	isTerminal     func(w io.Writer) bool
}

func newApp(v *viper.Viper) *app {
	return &app{
		viper:          v,
		statusRenderer: statusadapter.Render,
		isTerminal:     isTerminal,
	}
}

type wiredApp struct {
	cfg        domain.Config
	controller *application.Controller
}

// wire loads the configuration and assembles the controller. It runs after
// flag parsing so command line overrides are visible to viper.
func (a *app) wire(cmd *cobra.Command) (*wiredApp, error) {
	cfg, err := tomlconfig.Load(a.viper, a.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	logger := newLogger(stderr, cfg.Debug, cfg.LogJSON)
	logger.Debug("configuration loaded", "path", a.configPath, "slots", len(cfg.Slots), "socket", cfg.SocketName, "session", cfg.SessionName)

	runner := process.NewRunner(logger)
	var opts []application.Option
	if a.isTerminal(stderr) && !cfg.LogJSON {
		opts = append(opts, application.WithWaitFunc(pipeProgress(stderr)))
	}

	controller := application.NewController(
		cfg,
		tmux.NewClient(runner, cfg.SocketName, cfg.SessionName),
		process.NewLister(runner),
		slotfs.New(),
		logger,
		opts...,
	)

	return &wiredApp{cfg: cfg, controller: controller}, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
