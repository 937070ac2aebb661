package domain_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/stdinfuzz/internal/adapter"
	adaptermocks "github.com/mouse-blink/stdinfuzz/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/stdinfuzz/internal/controller/mocks"
	"github.com/mouse-blink/stdinfuzz/internal/domain"
	domainmocks "github.com/mouse-blink/stdinfuzz/internal/domain/mocks"
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type workflowMocks struct {
	reports *adaptermocks.MockReportStore
	ui      *controllermocks.MockUI
	orch    *domainmocks.MockOrchestrator
	mutagen *domainmocks.MockMutagen
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		reports: adaptermocks.NewMockReportStore(t),
		ui:      controllermocks.NewMockUI(t),
		orch:    domainmocks.NewMockOrchestrator(t),
		mutagen: domainmocks.NewMockMutagen(t),
	}

	wf := domain.NewWorkflow(mocks.reports, mocks.ui, mocks.orch, mocks.mutagen, zerolog.Nop())
	wf = domain.WithClock(wf, func() time.Time { return fixedNow }, func() string { return "run-1" })

	return wf, mocks
}

func makeMutations(n int) []m.Mutation {
	mutations := make([]m.Mutation, 0, n)
	for i := range n {
		mutations = append(mutations, m.Mutation{
			ID:        i + 1,
			Position:  i,
			Category:  m.CategoryAlphabetic,
			Candidate: "x",
			Input:     fmt.Sprintf("input-%d", i+1),
		})
	}

	return mutations
}

func passed(number int, mutation m.Mutation) m.Result {
	return m.Result{
		Number:   number,
		Mutation: mutation,
		Outcome:  m.Outcome{Input: mutation.Input},
		Status:   m.Passed,
	}
}

func expectProgress(ui *controllermocks.MockUI) {
	ui.EXPECT().DisplayStartingTestInfo(mock.Anything, mock.Anything).Maybe()
	ui.EXPECT().DisplayCompletedTestInfo(mock.Anything).Maybe()
}

func TestWorkflow_Run_AllPass(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	target := m.Target{Command: "./parse", Dir: "."}
	mutations := makeMutations(3)

	for i, mutation := range mutations {
		mocks.ui.EXPECT().DisplayStartingTestInfo(i+1, mutation).Once()
		mocks.orch.EXPECT().TestMutation(mock.Anything, target, i+1, mutation).Return(passed(i+1, mutation), nil).Once()
		mocks.ui.EXPECT().DisplayCompletedTestInfo(passed(i+1, mutation)).Once()
	}

	report, err := wf.Run(context.Background(), domain.RunArgs{Target: target, Mutations: mutations, MaxTests: 10})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictPassed, report.Verdict)
	assert.Equal(t, 3, report.Executed)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 10, report.MaxTests)
	assert.Nil(t, report.Failure)
	assert.Equal(t, "run-1", report.ID)
	assert.Equal(t, "./parse", report.Command)
	assert.Equal(t, fixedNow, report.StartedAt)
	assert.Equal(t, fixedNow, report.FinishedAt)
	assert.Equal(t, 0, report.ExitCode())
}

func TestWorkflow_Run_StopsAtMaxTests(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mutations := makeMutations(5)
	expectProgress(mocks.ui)

	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Target, number int, mutation m.Mutation) (m.Result, error) {
			return passed(number, mutation), nil
		}).Times(2)

	report, err := wf.Run(context.Background(), domain.RunArgs{Target: m.Target{Command: "cat"}, Mutations: mutations, MaxTests: 2})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictPassed, report.Verdict)
	assert.Equal(t, 2, report.Executed)
	assert.Equal(t, 5, report.Total)
}

func TestWorkflow_Run_DefaultMaxTests(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mutations := makeMutations(m.DefaultMaxTests + 20)
	expectProgress(mocks.ui)

	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Target, number int, mutation m.Mutation) (m.Result, error) {
			return passed(number, mutation), nil
		}).Times(m.DefaultMaxTests)

	report, err := wf.Run(context.Background(), domain.RunArgs{Target: m.Target{Command: "cat"}, Mutations: mutations})
	require.NoError(t, err)

	assert.Equal(t, m.DefaultMaxTests, report.Executed)
	assert.Equal(t, m.DefaultMaxTests, report.MaxTests)
}

func TestWorkflow_Run_StopsOnFirstFailure(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mutations := makeMutations(4)
	expectProgress(mocks.ui)

	failure := m.Result{
		Number:   2,
		Mutation: mutations[1],
		Outcome:  m.Outcome{Input: mutations[1].Input, Stderr: "boom\n", Output: "boom\n", ExitCode: 3},
		Status:   m.Failed,
	}

	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, 1, mutations[0]).Return(passed(1, mutations[0]), nil).Once()
	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, 2, mutations[1]).Return(failure, nil).Once()

	report, err := wf.Run(context.Background(), domain.RunArgs{Target: m.Target{Command: "cat"}, Mutations: mutations, MaxTests: 10})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictFailed, report.Verdict)
	assert.Equal(t, 2, report.Executed)
	require.NotNil(t, report.Failure)
	assert.Equal(t, failure, *report.Failure)
	assert.Equal(t, 3, report.ExitCode())

	mocks.orch.AssertNumberOfCalls(t, "TestMutation", 2)
}

func TestWorkflow_Run_HarnessErrorAborts(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mutations := makeMutations(3)

	harnessErr := &adapter.HarnessError{Input: mutations[0].Input, Kind: adapter.ErrInterrupted, Err: context.Canceled}

	mocks.ui.EXPECT().DisplayStartingTestInfo(1, mutations[0]).Once()
	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, 1, mutations[0]).Return(m.Result{}, harnessErr).Once()

	report, err := wf.Run(context.Background(), domain.RunArgs{Target: m.Target{Command: "cat"}, Mutations: mutations, MaxTests: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInterrupted)

	assert.Equal(t, m.VerdictError, report.Verdict)
	assert.Equal(t, 1, report.Executed)
	assert.NotEmpty(t, report.Error)
	require.NotNil(t, report.Failure)
	assert.Equal(t, mutations[0], report.Failure.Mutation)
	assert.Equal(t, 1, report.ExitCode())

	mocks.ui.AssertNotCalled(t, "DisplayCompletedTestInfo", mock.Anything)
}

func TestWorkflow_Run_NoMutations(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	report, err := wf.Run(context.Background(), domain.RunArgs{Target: m.Target{Command: "cat"}, MaxTests: 10})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictPassed, report.Verdict)
	assert.Zero(t, report.Executed)
}

func TestWorkflow_Test_Success(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	target := m.Target{Command: "./parse", Dir: "/work"}
	pools := []m.Pool{{Candidates: []string{"x"}}}
	mutations := makeMutations(2)
	expectProgress(mocks.ui)

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().Close().Once()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(pools).Once()
	mocks.mutagen.EXPECT().Expand("ab", pools).Return(mutations).Once()
	mocks.ui.EXPECT().DisplayTargetInfo(target, "ab", uint64(42)).Once()
	mocks.ui.EXPECT().DisplayUpcomingTestsInfo(2).Once()
	mocks.orch.EXPECT().TestMutation(mock.Anything, target, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Target, number int, mutation m.Mutation) (m.Result, error) {
			return passed(number, mutation), nil
		}).Times(2)

	var saved m.Report
	mocks.reports.EXPECT().SaveReport(m.Path("reports"), mock.Anything).
		RunAndReturn(func(_ m.Path, report m.Report) (m.Path, error) {
			saved = report
			return "reports/latest.yaml", nil
		}).Once()
	mocks.ui.EXPECT().DisplayReport(mock.Anything).Return(nil).Once()

	report, err := wf.Test(context.Background(), domain.TestArgs{
		EstimateArgs: domain.EstimateArgs{Seed: "ab", RandSeed: 42, MaxTests: 10},
		Target:       target,
		Reports:      "reports",
	})
	require.NoError(t, err)

	assert.Equal(t, m.VerdictPassed, report.Verdict)
	assert.Equal(t, "ab", report.Seed)
	assert.Equal(t, uint64(42), report.RandSeed)
	assert.Equal(t, 2, report.Executed)
	assert.Equal(t, report, saved)
}

func TestWorkflow_Test_UpcomingIsCapped(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mutations := makeMutations(8)
	expectProgress(mocks.ui)

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(nil)
	mocks.mutagen.EXPECT().Expand(mock.Anything, mock.Anything).Return(mutations)
	mocks.ui.EXPECT().DisplayTargetInfo(mock.Anything, mock.Anything, mock.Anything)
	mocks.ui.EXPECT().DisplayUpcomingTestsInfo(3).Once()
	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Target, number int, mutation m.Mutation) (m.Result, error) {
			return passed(number, mutation), nil
		}).Times(3)
	mocks.ui.EXPECT().DisplayReport(mock.Anything).Return(nil)

	report, err := wf.Test(context.Background(), domain.TestArgs{
		EstimateArgs: domain.EstimateArgs{Seed: "abcdefgh", MaxTests: 3},
		Target:       m.Target{Command: "cat"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Executed)
}

func TestWorkflow_Test_WithoutReportsDirSkipsSave(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(nil)
	mocks.mutagen.EXPECT().Expand(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayTargetInfo(mock.Anything, mock.Anything, mock.Anything)
	mocks.ui.EXPECT().DisplayUpcomingTestsInfo(0)
	mocks.ui.EXPECT().DisplayReport(mock.Anything).Return(nil)

	_, err := wf.Test(context.Background(), domain.TestArgs{Target: m.Target{Command: "cat"}})
	require.NoError(t, err)

	mocks.reports.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything)
}

func TestWorkflow_Test_SaveFailureIsNotFatal(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(nil)
	mocks.mutagen.EXPECT().Expand(mock.Anything, mock.Anything).Return(nil)
	mocks.ui.EXPECT().DisplayTargetInfo(mock.Anything, mock.Anything, mock.Anything)
	mocks.ui.EXPECT().DisplayUpcomingTestsInfo(0)
	mocks.reports.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(m.Path(""), errors.New("disk full"))
	mocks.ui.EXPECT().DisplayReport(mock.Anything).Return(nil)

	report, err := wf.Test(context.Background(), domain.TestArgs{Target: m.Target{Command: "cat"}, Reports: "reports"})
	require.NoError(t, err)
	assert.Equal(t, m.VerdictPassed, report.Verdict)
}

func TestWorkflow_Test_HarnessErrorStillReports(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	mutations := makeMutations(2)
	expectProgress(mocks.ui)

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(nil)
	mocks.mutagen.EXPECT().Expand(mock.Anything, mock.Anything).Return(mutations)
	mocks.ui.EXPECT().DisplayTargetInfo(mock.Anything, mock.Anything, mock.Anything)
	mocks.ui.EXPECT().DisplayUpcomingTestsInfo(2)
	mocks.orch.EXPECT().TestMutation(mock.Anything, mock.Anything, 1, mock.Anything).
		Return(m.Result{}, &adapter.HarnessError{Kind: adapter.ErrIOFailure, Err: errors.New("spawn")})
	mocks.reports.EXPECT().SaveReport(mock.Anything, mock.MatchedBy(func(r m.Report) bool {
		return r.Verdict == m.VerdictError
	})).Return(m.Path("reports/latest.yaml"), nil)
	mocks.ui.EXPECT().DisplayReport(mock.Anything).Return(nil)

	report, err := wf.Test(context.Background(), domain.TestArgs{Target: m.Target{Command: "cat"}, Reports: "reports"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrIOFailure)
	assert.Equal(t, m.VerdictError, report.Verdict)
}

func TestWorkflow_Test_StartError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.ui.EXPECT().Start(mock.Anything).Return(errors.New("no tty"))

	_, err := wf.Test(context.Background(), domain.TestArgs{Target: m.Target{Command: "cat"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}

func TestWorkflow_Estimate(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	pools := []m.Pool{{Candidates: []string{"a"}}, {Candidates: []string{"1"}}}
	estimation := m.Estimation{Seed: "abc", Pools: pools, PerPool: []int{3, 3}, Total: 6}

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(pools)
	mocks.mutagen.EXPECT().Estimate("abc", pools).Return(estimation)

	want := estimation
	want.Planned = 4
	mocks.ui.EXPECT().DisplayEstimation(want, nil).Return(nil).Once()

	err := wf.Estimate(domain.EstimateArgs{Seed: "abc", MaxTests: 4})
	require.NoError(t, err)
}

func TestWorkflow_Estimate_PlannedNeverExceedsTotal(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	estimation := m.Estimation{Seed: "abc", Total: 6}

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.ui.EXPECT().Close()
	mocks.mutagen.EXPECT().BuildPools(mock.Anything).Return(nil)
	mocks.mutagen.EXPECT().Estimate("abc", mock.Anything).Return(estimation)
	mocks.ui.EXPECT().DisplayEstimation(mock.MatchedBy(func(e m.Estimation) bool {
		return e.Planned == 6
	}), nil).Return(nil).Once()

	require.NoError(t, wf.Estimate(domain.EstimateArgs{Seed: "abc"}))
}

func TestWorkflow_View(t *testing.T) {
	t.Run("renders the latest report", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		report := m.Report{ID: "r1", Verdict: m.VerdictFailed}

		mocks.reports.EXPECT().LoadLatest(m.Path("reports")).Return(report, nil)
		mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
		mocks.ui.EXPECT().Close()
		mocks.ui.EXPECT().DisplayReport(report).Return(nil).Once()

		require.NoError(t, wf.View(domain.ViewArgs{Reports: "reports"}))
	})

	t.Run("load error", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)

		mocks.reports.EXPECT().LoadLatest(m.Path("reports")).Return(m.Report{}, adapter.ErrNoReports)

		err := wf.View(domain.ViewArgs{Reports: "reports"})
		require.Error(t, err)
		assert.ErrorIs(t, err, adapter.ErrNoReports)
	})
}

func TestWorkflow_EndToEnd_StopsOnDigit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close()
	ui.EXPECT().DisplayTargetInfo(mock.Anything, mock.Anything, mock.Anything)
	ui.EXPECT().DisplayUpcomingTestsInfo(20)
	expectProgress(ui)
	ui.EXPECT().DisplayReport(mock.Anything).Return(nil)

	runner := adapter.NewLocalTargetRunnerAdapter(zerolog.Nop(), 10*time.Second)
	wf := domain.NewWorkflow(nil, ui, domain.NewOrchestrator(runner, zerolog.Nop()), domain.NewMutagen(), zerolog.Nop())

	report, err := wf.Test(context.Background(), domain.TestArgs{
		EstimateArgs: domain.EstimateArgs{Seed: "abcd", RandSeed: 7, MaxTests: 20},
		Target:       m.Target{Command: "! grep -q '[0-9]'", Dir: m.Path(t.TempDir())},
	})
	require.NoError(t, err)

	// Position 0: the alphabetic candidate passes, the numeric one fails.
	assert.Equal(t, m.VerdictFailed, report.Verdict)
	assert.Equal(t, 2, report.Executed)
	require.NotNil(t, report.Failure)
	assert.Equal(t, m.CategoryNumeric, report.Failure.Mutation.Category)
	assert.Equal(t, 1, report.Failure.Outcome.ExitCode)
	assert.Equal(t, 1, report.ExitCode())
}

func TestWorkflow_EndToEnd_FailsOnThirdInvocation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	dir := t.TempDir()

	var completed []int

	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayStartingTestInfo(mock.Anything, mock.Anything).Times(3)
	ui.EXPECT().DisplayCompletedTestInfo(mock.Anything).
		Run(func(result m.Result) { completed = append(completed, result.Number) }).
		Times(3)

	runner := adapter.NewLocalTargetRunnerAdapter(zerolog.Nop(), 10*time.Second)
	wf := domain.NewWorkflow(nil, ui, domain.NewOrchestrator(runner, zerolog.Nop()), domain.NewMutagen(), zerolog.Nop())

	// Counts its invocations in a file and exits 7 on the third one.
	command := `n=$(cat count 2>/dev/null || echo 0); n=$((n+1)); echo "$n" > count; cat >/dev/null; [ "$n" -ne 3 ] || exit 7`

	report, err := wf.Run(context.Background(), domain.RunArgs{
		Target:    m.Target{Command: command, Dir: m.Path(dir)},
		Mutations: makeMutations(10),
		MaxTests:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, completed)
	assert.Equal(t, m.VerdictFailed, report.Verdict)
	assert.Equal(t, 3, report.Executed)
	require.NotNil(t, report.Failure)
	assert.Equal(t, 3, report.Failure.Number)
	assert.Equal(t, "input-3", report.Failure.Outcome.Input)
	assert.Equal(t, 7, report.Failure.Outcome.ExitCode)
	assert.Equal(t, 7, report.ExitCode())

	count, err := os.ReadFile(filepath.Join(dir, "count"))
	require.NoError(t, err)
	assert.Equal(t, "3", strings.TrimSpace(string(count)))
}
