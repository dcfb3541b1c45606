package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"planweave/internal/workflow"
)

// scenariosCmd lists the available workflows and their phases.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the available planning workflows",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		for _, id := range workflow.ScenarioIDs() {
			scenario, err := workflow.LookupScenario(id)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s  %s\n", titleStyle.Render(scenario.ID), mutedStyle.Render(scenario.Name))
			for i, phase := range scenario.Phases {
				fmt.Fprintf(out, "  %d. %-24s %s\n", i+1, phase.Name, agentStyle.Render(phase.Agent))
			}
			fmt.Fprintln(out)
		}

		return nil
	},
}
