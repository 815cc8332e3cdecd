// Package experiment sweeps privacy levels over a completion benchmark and
// scores the privacy/utility trade-off of each arm.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benzoXdev/pyveil/internal/completion"
	"github.com/benzoXdev/pyveil/internal/dataset"
	"github.com/benzoXdev/pyveil/internal/engine"
	"github.com/benzoXdev/pyveil/internal/evaluate"
)

// Config controls one experiment run.
type Config struct {
	DatasetPath string
	NumExamples int    // <= 0 means all
	Metric      string // utility metric for the summary column
	Model       string // recorded in results only
	Completer   completion.Completer
	Timeout     time.Duration // per completion call
	Logger      *zap.Logger
}

// Arm pairs a label with the obfuscator the sweep applies before prompting.
type Arm struct {
	Name       string
	Obfuscator Obfuscator
}

// Runner executes the none/low/high sweep.
type Runner struct {
	cfg  Config
	arms []Arm
	log  *zap.Logger
}

// NewRunner builds a runner with the standard three arms.
func NewRunner(cfg Config) *Runner {
	if cfg.Metric == "" {
		cfg.Metric = "rougeL"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Completer == nil {
		cfg.Completer = &completion.Echo{}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		cfg: cfg,
		arms: []Arm{
			{Name: "none", Obfuscator: Identity{}},
			{Name: "low", Obfuscator: engine.NewLow(engine.DefaultLowOptions())},
			{Name: "high", Obfuscator: engine.NewHigh(engine.DefaultHighOptions())},
		},
		log: log,
	}
}

// Run loads the dataset and sweeps every arm over every example. Completion
// failures are isolated: the example scores zero utility for that arm and
// the run continues. Run stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context) (*Results, error) {
	examples, err := dataset.Load(r.cfg.DatasetPath, r.cfg.NumExamples)
	if err != nil {
		return nil, err
	}
	if len(examples) == 0 {
		return nil, fmt.Errorf("dataset %s holds no examples", r.cfg.DatasetPath)
	}

	res := &Results{
		RunID:       uuid.NewString(),
		Model:       r.cfg.Model,
		Metric:      r.cfg.Metric,
		StartedAt:   time.Now().UTC(),
		NumExamples: len(examples),
	}
	r.log.Info("experiment started",
		zap.String("run_id", res.RunID),
		zap.Int("examples", len(examples)),
		zap.Int("arms", len(r.arms)))

	for _, arm := range r.arms {
		summary, err := r.runArm(ctx, arm, examples, res)
		if err != nil {
			return nil, err
		}
		res.Summaries = append(res.Summaries, summary)
	}
	res.Duration = time.Since(res.StartedAt)
	r.log.Info("experiment finished",
		zap.String("run_id", res.RunID),
		zap.Duration("elapsed", res.Duration))
	return res, nil
}

func (r *Runner) runArm(ctx context.Context, arm Arm, examples []dataset.Example, res *Results) (ArmSummary, error) {
	privacy := make([]float64, 0, len(examples))
	utility := make([]float64, 0, len(examples))
	failures := 0

	for _, ex := range examples {
		if err := ctx.Err(); err != nil {
			return ArmSummary{}, fmt.Errorf("arm %s: %w", arm.Name, err)
		}

		obfuscated := arm.Obfuscator.Obfuscate(ex.Prompt)
		p := evaluate.ScorePrivacy(ex.Prompt, obfuscated)

		generated, err := r.complete(ctx, obfuscated)
		if err != nil {
			failures++
			r.log.Warn("completion failed",
				zap.String("arm", arm.Name),
				zap.String("task", ex.TaskID),
				zap.Error(err))
			generated = ""
		}
		u := evaluate.ScoreUtility(generated, ex.CanonicalSolution)
		uScore, err := u.Metric(r.cfg.Metric)
		if err != nil {
			return ArmSummary{}, err
		}

		privacy = append(privacy, p.EditDistance)
		utility = append(utility, uScore)
		res.Examples = append(res.Examples, ExampleResult{
			TaskID:      ex.TaskID,
			Arm:         arm.Name,
			Privacy:     p,
			Utility:     u,
			MappingSize: len(arm.Obfuscator.Mapping()),
		})
	}

	return ArmSummary{
		Arm:                arm.Name,
		Privacy:            evaluate.Aggregate(privacy),
		Utility:            evaluate.Aggregate(utility),
		CompletionFailures: failures,
	}, nil
}

func (r *Runner) complete(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()
	return r.cfg.Completer.Complete(callCtx, prompt)
}
