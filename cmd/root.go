package cmd

import (
	"fmt"

	tomlconfig "github.com/bnema/pistactl/internal/adapters/config/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := newApp(tomlconfig.NewViper())

	rootCmd := &cobra.Command{
		Use:           "pistactl",
		Short:         "Run pista status line feeds in a dedicated tmux session",
		Long:          "pistactl starts every feed declared in its configuration in its own tmux window, measures its output width when undeclared, and launches pista with one slot per feed.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.configPath, "config", "c", tomlconfig.DefaultConfigFile, "Path to configuration file")
	flags.Bool("debug", false, "Enable debug logging")
	flags.Bool("log-json", false, "Log as JSON instead of text")
	flags.String("sock", "", "tmux socket name (default \"pistactl\")")
	flags.String("session", "", "tmux session name (default \"pistactl\")")
	flags.String("slots-dir", "", "Directory holding slot pipes and scripts (default \"~/.pistactl/slots\")")
	flags.String("slot-len-timeout", "", "How long to wait for a feed's first line (default \"5s\")")

	if err := bindFlags(app.viper, flags); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newStatusCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newRestartCmd(app),
		newAttachCmd(app),
	)

	return rootCmd
}

var flagKeys = map[string]string{
	"debug":            tomlconfig.KeyDebug,
	"log-json":         tomlconfig.KeyLogJSON,
	"sock":             tomlconfig.KeySocketName,
	"session":          tomlconfig.KeySessionName,
	"slots-dir":        tomlconfig.KeySlotsDir,
	"slot-len-timeout": tomlconfig.KeySlotLenTimeout,
}

// bindFlags layers the persistent flags over the config file. Viper only
// prefers a flag once it has been set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
