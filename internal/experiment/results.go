package experiment

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/benzoXdev/pyveil/internal/evaluate"
)

// ExampleResult is the full scoring of one example under one arm.
type ExampleResult struct {
	TaskID      string                 `json:"task_id"`
	Arm         string                 `json:"arm"`
	Privacy     evaluate.PrivacyScores `json:"privacy"`
	Utility     evaluate.UtilityScores `json:"utility"`
	MappingSize int                    `json:"mapping_size"`
}

// ArmSummary aggregates one arm across the dataset.
type ArmSummary struct {
	Arm                string           `json:"arm"`
	Privacy            evaluate.Summary `json:"privacy"`
	Utility            evaluate.Summary `json:"utility"`
	CompletionFailures int              `json:"completion_failures"`
}

// Results is everything one run produced.
type Results struct {
	RunID       string          `json:"run_id"`
	Model       string          `json:"model,omitempty"`
	Metric      string          `json:"metric"`
	StartedAt   time.Time       `json:"started_at"`
	Duration    time.Duration   `json:"duration_ns"`
	NumExamples int             `json:"num_examples"`
	Summaries   []ArmSummary    `json:"summaries"`
	Examples    []ExampleResult `json:"examples"`
}

// WriteJSON stores the results as run-<id>.json under dir, creating dir as
// needed, and returns the file path.
func (r *Results) WriteJSON(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results dir: %w", err)
	}
	path := filepath.Join(dir, "run-"+r.RunID+".json")
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}
	return path, nil
}

// PrintSummary renders the per-arm trade-off table.
func (r *Results) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "run %s  (%d examples, utility metric %s)\n", r.RunID, r.NumExamples, r.Metric)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Arm", "Privacy Mean", "Privacy Std", "Utility Mean", "Utility Std", "Failures"})
	for _, s := range r.Summaries {
		table.Append([]string{
			s.Arm,
			fmt.Sprintf("%.3f", s.Privacy.Mean),
			fmt.Sprintf("%.3f", s.Privacy.Std),
			fmt.Sprintf("%.3f", s.Utility.Mean),
			fmt.Sprintf("%.3f", s.Utility.Std),
			fmt.Sprintf("%d", s.CompletionFailures),
		})
	}
	table.Render()
}
