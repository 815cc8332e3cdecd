package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benzoXdev/pyveil/internal/completion"
	"github.com/benzoXdev/pyveil/internal/experiment"
)

func newExperimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Sweep privacy levels over a benchmark and score the trade-off",
		Long: `Runs the none/low/high sweep: each benchmark prompt is obfuscated per arm,
completed by the configured model, and scored for privacy (distance from the
original prompt) and utility (similarity to the canonical solution). Results
are printed as a table and written as JSON.`,
		Example: `  pyveil experiment --dataset humaneval.jsonl.gz -n 20 --completer echo
  PYVEIL_EXPERIMENT_API_KEY=sk-... pyveil experiment --dataset humaneval.jsonl --model my-model --base-url https://api.example.com`,
		RunE: runExperiment,
	}
	cmd.Flags().String("dataset", "", "benchmark JSONL file, optionally gzipped (required)")
	cmd.Flags().IntP("num-examples", "n", 0, "number of examples to run (0 = all)")
	cmd.Flags().String("completer", "http", "completion backend: http or echo")
	cmd.Flags().String("model", "", "model name for the completion endpoint")
	cmd.Flags().String("base-url", "", "completion endpoint base URL")
	cmd.Flags().String("metric", "", "utility metric: rouge1, rouge2, rougeL, bleu, exact")
	cmd.Flags().Int("max-tokens", 0, "completion token budget")
	cmd.Flags().Int("timeout-seconds", 0, "per-completion timeout")
	cmd.Flags().String("output-dir", "", "directory for run-<id>.json results")
	_ = cmd.MarkFlagRequired("dataset")

	bindFlagToConfig(cmd.Flags().Lookup("model"), "experiment.model")
	bindFlagToConfig(cmd.Flags().Lookup("base-url"), "experiment.base-url")
	bindFlagToConfig(cmd.Flags().Lookup("metric"), "experiment.metric")
	bindFlagToConfig(cmd.Flags().Lookup("max-tokens"), "experiment.max-tokens")
	bindFlagToConfig(cmd.Flags().Lookup("timeout-seconds"), "experiment.timeout-seconds")
	bindFlagToConfig(cmd.Flags().Lookup("output-dir"), "experiment.output-dir")
	return cmd
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	datasetPath, _ := cmd.Flags().GetString("dataset")
	numExamples, _ := cmd.Flags().GetInt("num-examples")
	backend, _ := cmd.Flags().GetString("completer")
	quiet, _ := cmd.Flags().GetBool("quiet")

	log := newLogger(cmd)
	defer func() { _ = log.Sync() }()

	timeout := time.Duration(viper.GetInt("experiment.timeout-seconds")) * time.Second
	model := viper.GetString("experiment.model")

	var completer completion.Completer
	switch backend {
	case "echo":
		completer = &completion.Echo{}
	case "http":
		completer = completion.NewHTTP(completion.HTTPConfig{
			BaseURL:   viper.GetString("experiment.base-url"),
			APIKey:    viper.GetString("experiment.api-key"),
			Model:     model,
			MaxTokens: viper.GetInt("experiment.max-tokens"),
			Timeout:   timeout,
			Logger:    log,
		})
	default:
		return fmt.Errorf("unknown completer %q (expected http or echo)", backend)
	}

	runner := experiment.NewRunner(experiment.Config{
		DatasetPath: datasetPath,
		NumExamples: numExamples,
		Metric:      viper.GetString("experiment.metric"),
		Model:       model,
		Completer:   completer,
		Timeout:     timeout,
		Logger:      log,
	})
	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	path, err := res.WriteJSON(viper.GetString("experiment.output-dir"))
	if err != nil {
		return err
	}
	if !quiet {
		res.PrintSummary(cmd.OutOrStdout())
		fmt.Fprintf(os.Stderr, "%sResults written to %s%s\n", Gray, path, Reset)
	}
	return nil
}
