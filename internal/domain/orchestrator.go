package domain

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mouse-blink/stdinfuzz/internal/adapter"
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// Orchestrator feeds one mutated input to the target and decides whether
// the test passed or failed.
type Orchestrator interface {
	TestMutation(ctx context.Context, target m.Target, number int, mutation m.Mutation) (m.Result, error)
}

type orchestrator struct {
	runner adapter.TargetRunnerAdapter
	logger zerolog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided runner.
func NewOrchestrator(runner adapter.TargetRunnerAdapter, logger zerolog.Logger) Orchestrator {
	return &orchestrator{
		runner: runner,
		logger: logger,
	}
}

// TestMutation returns a Failed result for a non-zero exit status. An error
// means the harness itself failed and the run must stop.
func (o *orchestrator) TestMutation(ctx context.Context, target m.Target, number int, mutation m.Mutation) (m.Result, error) {
	if target.Command == "" {
		return m.Result{}, fmt.Errorf("target command is empty")
	}

	outcome, err := o.runner.Run(ctx, target, mutation.Input)
	if err != nil {
		return m.Result{}, fmt.Errorf("failed to run test %d: %w", number, err)
	}

	result := m.Result{
		Number:   number,
		Mutation: mutation,
		Outcome:  outcome,
		Status:   statusFor(outcome.ExitCode),
	}

	o.logger.Debug().
		Int("test", number).
		Int("position", mutation.Position).
		Str("category", string(mutation.Category)).
		Int("exit_code", outcome.ExitCode).
		Stringer("status", result.Status).
		Msg("test finished")

	return result, nil
}

func statusFor(exitCode int) m.TestStatus {
	if exitCode == 0 {
		return m.Passed
	}

	return m.Failed
}
