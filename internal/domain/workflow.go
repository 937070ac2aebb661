package domain

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mouse-blink/stdinfuzz/internal/adapter"
	"github.com/mouse-blink/stdinfuzz/internal/controller"
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// EstimateArgs holds the inputs needed to build the mutation sequence.
type EstimateArgs struct {
	Seed     string
	RandSeed uint64
	MaxTests int
}

// TestArgs holds the inputs of a full fuzzing run.
type TestArgs struct {
	EstimateArgs
	Target  m.Target
	Reports m.Path // empty disables report persistence
}

// RunArgs drives an already materialized mutation sequence.
type RunArgs struct {
	Target    m.Target
	Mutations []m.Mutation
	MaxTests  int
}

// ViewArgs points at a reports directory.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for fuzzing operations.
type Workflow interface {
	Estimate(args EstimateArgs) error
	Test(ctx context.Context, args TestArgs) (m.Report, error)
	Run(ctx context.Context, args RunArgs) (m.Report, error)
	View(args ViewArgs) error
}

type workflow struct {
	reports adapter.ReportStore
	ui      controller.UI
	orch    Orchestrator
	mutagen Mutagen
	logger  zerolog.Logger
	now     func() time.Time
	newID   func() string
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	reports adapter.ReportStore,
	ui controller.UI,
	orch Orchestrator,
	mutagen Mutagen,
	logger zerolog.Logger,
) Workflow {
	return &workflow{
		reports: reports,
		ui:      ui,
		orch:    orch,
		mutagen: mutagen,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// NewRand returns the generator pools are drawn from for a given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Estimate shows the candidate pools and how many tests a run would execute.
func (w *workflow) Estimate(args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}
	defer w.ui.Close()

	pools := w.mutagen.BuildPools(NewRand(args.RandSeed))
	estimation := w.mutagen.Estimate(args.Seed, pools)
	estimation.Planned = min(estimation.Total, maxTestsOrDefault(args.MaxTests))

	return w.ui.DisplayEstimation(estimation, nil)
}

// Test builds the mutation sequence for the seed, runs it against the target
// and stores the resulting report.
func (w *workflow) Test(ctx context.Context, args TestArgs) (m.Report, error) {
	if err := w.ui.Start(controller.WithTestMode()); err != nil {
		return m.Report{}, fmt.Errorf("failed to start ui: %w", err)
	}
	defer w.ui.Close()

	pools := w.mutagen.BuildPools(NewRand(args.RandSeed))
	mutations := w.mutagen.Expand(args.Seed, pools)
	maxTests := maxTestsOrDefault(args.MaxTests)

	w.logger.Info().
		Str("command", args.Target.Command).
		Str("dir", string(args.Target.Dir)).
		Uint64("rand_seed", args.RandSeed).
		Int("mutations", len(mutations)).
		Int("max_tests", maxTests).
		Msg("starting fuzz run")

	w.ui.DisplayTargetInfo(args.Target, args.Seed, args.RandSeed)
	w.ui.DisplayUpcomingTestsInfo(min(len(mutations), maxTests))

	report, runErr := w.Run(ctx, RunArgs{
		Target:    args.Target,
		Mutations: mutations,
		MaxTests:  maxTests,
	})
	report.Seed = args.Seed
	report.RandSeed = args.RandSeed

	w.saveReport(args.Reports, report)

	if err := w.ui.DisplayReport(report); err != nil {
		w.logger.Warn().Err(err).Msg("failed to display report")
	}

	return report, runErr
}

// Run feeds mutations to the target in order until maxTests tests have run,
// a test fails or the harness breaks. A failing test is reported through the
// Report, not as an error; a harness failure returns both.
func (w *workflow) Run(ctx context.Context, args RunArgs) (m.Report, error) {
	maxTests := maxTestsOrDefault(args.MaxTests)

	report := m.Report{
		ID:        w.newID(),
		Command:   args.Target.Command,
		Dir:       args.Target.Dir,
		MaxTests:  maxTests,
		Total:     len(args.Mutations),
		Verdict:   m.VerdictPassed,
		StartedAt: w.now(),
	}

	for _, mutation := range args.Mutations {
		if report.Executed >= maxTests {
			break
		}

		number := report.Executed + 1
		report.Executed = number

		w.ui.DisplayStartingTestInfo(number, mutation)

		result, err := w.orch.TestMutation(ctx, args.Target, number, mutation)
		if err != nil {
			w.logger.Error().Err(err).Int("test", number).Msg("harness failure, aborting run")

			report.Verdict = m.VerdictError
			report.Error = err.Error()
			report.Failure = &m.Result{Number: number, Mutation: mutation, Status: m.Failed}
			report.FinishedAt = w.now()

			return report, err
		}

		w.ui.DisplayCompletedTestInfo(result)

		if result.Status == m.Failed {
			w.logger.Info().
				Int("test", number).
				Int("exit_code", result.Outcome.ExitCode).
				Msg("non-zero exit status, stopping run")

			report.Verdict = m.VerdictFailed
			report.Failure = &result
			report.FinishedAt = w.now()

			return report, nil
		}
	}

	report.FinishedAt = w.now()

	return report, nil
}

// View renders the latest stored report.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.reports.LoadLatest(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}
	defer w.ui.Close()

	return w.ui.DisplayReport(report)
}

func (w *workflow) saveReport(dir m.Path, report m.Report) {
	if dir == "" || w.reports == nil {
		return
	}

	path, err := w.reports.SaveReport(dir, report)
	if err != nil {
		w.logger.Warn().Err(err).Str("dir", string(dir)).Msg("failed to save report")
		return
	}

	w.logger.Debug().Str("path", string(path)).Msg("report saved")
}

func maxTestsOrDefault(maxTests int) int {
	if maxTests <= 0 {
		return m.DefaultMaxTests
	}

	return maxTests
}
