// Package transcript renders a completed run as a human-readable report
// and persists it to a uniquely named file. Output sink only: nothing
// here is ever read back by the runner.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"planweave/internal/logging"
	"planweave/internal/workflow"
)

const (
	headerRule  = "================================================================================"
	sectionRule = "--------------------------------------------------------------------------------"
)

// Writer persists run transcripts under a fixed directory.
type Writer struct {
	dir string
}

// NewWriter creates a Writer that writes into dir, creating it on the
// first write if needed.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write renders the result and writes it to a fresh file. The filename
// combines scenario id, timestamp, and a short random id, so two runs
// never overwrite each other. Returns the written path.
func (w *Writer) Write(result *workflow.Result) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := Filename(result.ScenarioID, time.Now())
	path := filepath.Join(w.dir, name)

	if err := os.WriteFile(path, []byte(Render(result)), 0644); err != nil {
		logging.TranscriptError("write failed: %s: %v", path, err)
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	logging.Transcript("wrote transcript: %s (%d phases)", path, len(result.Summary))
	return path, nil
}

// Filename builds the unique per-run transcript filename.
func Filename(scenarioID string, now time.Time) string {
	shortID := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s_%s.txt", scenarioID, now.Format("20060102_150405"), shortID)
}

// Render produces the full transcript text: header with run metadata,
// then every phase's output in scenario order.
func Render(result *workflow.Result) string {
	var sb strings.Builder

	sb.WriteString(headerRule + "\n")
	sb.WriteString(fmt.Sprintf("PLANWEAVE %s - FULL RESULTS\n", strings.ToUpper(result.ScenarioName)))
	sb.WriteString(headerRule + "\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", result.FinishedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Model: %s\n", result.Model))
	if result.Topic != "" {
		sb.WriteString(fmt.Sprintf("Topic: %s\n", result.Topic))
	}
	sb.WriteString("\n")

	for _, ref := range result.Summary {
		sb.WriteString("\n" + sectionRule + "\n")
		sb.WriteString(fmt.Sprintf("PHASE %d: %s\n", ref.Index, strings.ToUpper(ref.Name)))
		sb.WriteString(sectionRule + "\n")
		sb.WriteString(result.Output(ref.Name) + "\n")
	}

	return sb.String()
}
