package cmd

import (
	"fmt"

	tomlconfig "github.com/bnema/pistactl/internal/adapters/config/toml"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration after defaults, environment and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := app.wire(cmd)
			if err != nil {
				return err
			}

			data, err := tomlconfig.Encode(wired.cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
