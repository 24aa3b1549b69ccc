package cmd

import (
	"github.com/spf13/cobra"
)

func newStartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start every configured feed and the pista renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := app.wire(cmd)
			if err != nil {
				return err
			}
			return wired.controller.Start(cmd.Context())
		},
	}
}

func newStopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Kill the session and remove the slots directory",
		Long:  "stop kills the tmux session and removes the slots directory. Failures are logged and never fail the command, so stop also cleans up after a partial start.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := app.wire(cmd)
			if err != nil {
				return err
			}
			return wired.controller.Stop(cmd.Context())
		},
	}
}

func newRestartCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Stop, then start again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := app.wire(cmd)
			if err != nil {
				return err
			}
			return wired.controller.Restart(cmd.Context())
		},
	}
}

func newAttachCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attach",
		Short: "Attach the terminal to the pistactl session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := app.wire(cmd)
			if err != nil {
				return err
			}
			return wired.controller.Attach(cmd.Context())
		},
	}
}
