package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the expanded job instances without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")

			instances, err := c.app.Plan(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, inst := range instances {
				_, _ = fmt.Fprintf(out, "%s\t[%s]\n", inst.ID(), inst.RunsOn)
			}
			_, _ = fmt.Fprintf(out, "%d job instance(s)\n", len(instances))
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Workflow file (default relay.yaml)")
	return cmd
}
