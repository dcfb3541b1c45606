package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"planweave/internal/llm"
	"planweave/internal/logging"
	"planweave/internal/transcript"
	"planweave/internal/workflow"
)

// runCmd executes one planning workflow end to end.
var runCmd = &cobra.Command{
	Use:   "run [scenario] [topic...]",
	Short: "Run a planning workflow",
	Long: `Runs a scenario's phases in order against the configured completion
provider and writes the full transcript to the output directory.

With a scenario argument the id must be one of: conference, marketing,
research, architecture (case-insensitive); anything else is an error.
Without arguments an interactive menu is shown, and an invalid menu
selection falls back to the conference scenario.

Examples:
  planweave run marketing "Smart Home Assistant"
  planweave run`,
	RunE: runWorkflow,
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}
	if err := logging.Initialize(cwd, cfgPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	defer logging.Close()

	out := cmd.OutOrStdout()

	// Scenario selection: argument-supplied ids are strict, the
	// interactive menu falls back to the default scenario.
	var scenario workflow.Scenario
	var topic string
	if len(args) > 0 {
		scenario, err = workflow.LookupScenario(args[0])
		if err != nil {
			return err
		}
		topic = strings.TrimSpace(strings.Join(args[1:], " "))
	} else {
		scenario, topic = selectScenario(cmd.InOrStdin(), out)
	}

	logger.Info("starting workflow",
		zap.String("scenario", scenario.ID),
		zap.String("topic", topic),
		zap.String("model", cfg.LLM.Model),
	)

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider:    llm.Provider(cfg.LLM.Provider),
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.GetLLMTimeout(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printBanner(out, scenario, topic, client.GetModel())

	runner := workflow.NewRunner(client)
	runner.SetObserver(&consoleObserver{out: out})

	result, err := runner.Run(ctx, scenario, topic)
	if err != nil {
		logger.Error("workflow failed", zap.Error(err))
		return err
	}

	printSummary(out, result)

	writer := transcript.NewWriter(cfg.Output.Dir)
	path, err := writer.Write(result)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", successStyle.Render("Full results saved to: "+path))
	fmt.Fprintf(out, "\nEnd Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, renderRule())

	return nil
}

// consoleObserver echoes each phase's progress and output as the run
// advances. Display only; it never influences the chain.
type consoleObserver struct {
	out io.Writer
}

func (o *consoleObserver) PhaseStarted(index int, phase workflow.Phase) {
	fmt.Fprintln(o.out, "\n"+renderRule())
	fmt.Fprintln(o.out, titleStyle.Render(fmt.Sprintf("PHASE %d: %s", index, strings.ToUpper(phase.Name))))
	fmt.Fprintln(o.out, renderRule())
	fmt.Fprintln(o.out, mutedStyle.Render(fmt.Sprintf("[%s is working...]", phase.Agent)))
}

func (o *consoleObserver) PhaseCompleted(index int, phase workflow.Phase, output string) {
	fmt.Fprintln(o.out, "\n"+agentStyle.Render(fmt.Sprintf("[%s Output]", phase.Agent)))
	fmt.Fprintln(o.out, output)
}

func printBanner(out io.Writer, scenario workflow.Scenario, topic, model string) {
	fmt.Fprintln(out, "\n"+renderRule())
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("PLANWEAVE %s WORKFLOW", strings.ToUpper(scenario.Name))))
	fmt.Fprintln(out, renderRule())
	if topic != "" {
		fmt.Fprintf(out, "Topic: %s\n", topic)
	}
	fmt.Fprintf(out, "Start Time: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Model: %s\n", model)
}

func printSummary(out io.Writer, result *workflow.Result) {
	fmt.Fprintln(out, "\n"+renderRule())
	fmt.Fprintln(out, titleStyle.Render("FINAL SUMMARY"))
	fmt.Fprintln(out, renderRule())

	fmt.Fprintf(out, "\nThis workflow ran a %d-agent collaboration for %s:\n\n", len(result.Summary), result.ScenarioName)
	for _, ref := range result.Summary {
		fmt.Fprintf(out, "%d. %s - %s\n", ref.Index, agentStyle.Render(ref.Agent), ref.Name)
	}
	fmt.Fprintln(out, mutedStyle.Render("\nEach agent received the accumulated output of every previous agent."))
}

// selectScenario runs the interactive numbered menu. An unrecognized
// selection falls back to the default scenario instead of erroring.
func selectScenario(in io.Reader, out io.Writer) (workflow.Scenario, string) {
	fmt.Fprintln(out, "\n"+renderRule())
	fmt.Fprintln(out, titleStyle.Render("PLANWEAVE - PLANNING WORKFLOWS"))
	fmt.Fprintln(out, renderRule())
	fmt.Fprintln(out, "\nAvailable Scenarios:")
	fmt.Fprintln(out, "1. conference   - Plan a 3-day conference agenda")
	fmt.Fprintln(out, "2. marketing    - Design a marketing strategy for a product")
	fmt.Fprintln(out, "3. research     - Create a research paper outline")
	fmt.Fprintln(out, "4. architecture - Plan a software architecture")
	fmt.Fprintln(out)

	reader := bufio.NewReader(in)

	fmt.Fprint(out, "Select scenario (1-4) or name: ")
	choice := strings.ToLower(strings.TrimSpace(readLine(reader)))

	id, ok := menuChoice(choice)
	if !ok {
		fmt.Fprintln(out, errorStyle.Render("Invalid choice. Using default: "+workflow.DefaultScenarioID))
		return workflow.DefaultScenario(), ""
	}

	scenario, err := workflow.LookupScenario(id)
	if err != nil {
		// Unreachable for menu ids; kept as a guard.
		return workflow.DefaultScenario(), ""
	}

	prompt := "Enter topic"
	if hint := workflow.TopicHint(id); hint != "" {
		prompt = fmt.Sprintf("Enter topic (e.g., '%s')", hint)
	}
	fmt.Fprintf(out, "%s: ", prompt)
	topic := strings.TrimSpace(readLine(reader))

	return scenario, topic
}

// menuChoice maps a menu entry (number or scenario name) to a scenario id.
func menuChoice(choice string) (string, bool) {
	numbered := map[string]string{
		"1": "conference",
		"2": "marketing",
		"3": "research",
		"4": "architecture",
	}
	if id, ok := numbered[choice]; ok {
		return id, true
	}
	for _, id := range workflow.ScenarioIDs() {
		if choice == id {
			return id, true
		}
	}
	return "", false
}

func readLine(reader *bufio.Reader) string {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
