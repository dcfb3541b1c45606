package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd shows the resolved configuration a run would use.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show resolved provider, model, and output settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, cfgPath, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config:     %s\n", cfgPath)
		fmt.Fprintf(out, "Provider:   %s\n", cfg.LLM.Provider)
		fmt.Fprintf(out, "Model:      %s\n", cfg.LLM.Model)
		fmt.Fprintf(out, "Timeout:    %s\n", cfg.GetLLMTimeout())
		fmt.Fprintf(out, "Max tokens: %d\n", cfg.LLM.MaxTokens)
		fmt.Fprintf(out, "Output dir: %s\n", cfg.Output.Dir)

		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(out, errorStyle.Render("Status:     not ready - "+err.Error()))
			return err
		}
		fmt.Fprintln(out, successStyle.Render("Status:     ready"))
		return nil
	},
}
