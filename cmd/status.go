package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/pistactl/internal/adapters/render/status"
	"github.com/bnema/pistactl/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which slots are running and how much they logged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := app.wire(cmd)
			if err != nil {
				return err
			}

			report, err := wired.controller.Status(cmd.Context())
			if err != nil {
				return err
			}

			return writeStatusOutput(cmd, app, report, asJSON, plain || !app.isTerminal(cmd.OutOrStdout()))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Render the bare table without styling (default when stdout is not a terminal)")

	return cmd
}

func writeStatusOutput(cmd *cobra.Command, app *app, report application.StatusReport, asJSON, plain bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	rendered, err := app.statusRenderer(report, statusadapter.RenderOptions{Plain: plain})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
