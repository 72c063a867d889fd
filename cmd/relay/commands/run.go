package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/relay/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the workflow for an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			event, _ := cmd.Flags().GetString("event")
			ref, _ := cmd.Flags().GetString("ref")
			parallelism, _ := cmd.Flags().GetInt("parallelism")

			return c.app.Run(cmd.Context(), app.RunOptions{
				File:        file,
				Event:       event,
				Ref:         ref,
				Parallelism: parallelism,
			})
		},
	}
	cmd.Flags().StringP("file", "f", "", "Workflow file (default relay.yaml)")
	cmd.Flags().StringP("event", "e", "push", "Event kind: push or pull_request")
	cmd.Flags().StringP("ref", "r", "", "Branch the event concerns")
	cmd.Flags().IntP("parallelism", "p", 0, "Maximum concurrent job instances (0 = number of CPUs)")
	return cmd
}
