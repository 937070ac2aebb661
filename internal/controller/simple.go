package controller

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

var (
	passStyle = color.New(color.FgGreen, color.Bold)
	failStyle = color.New(color.FgRed, color.Bold)
	dimStyle  = color.New(color.Faint)
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output has nothing to wait for.
func (s *SimpleUI) Wait() {
}

// DisplayEstimation prints the candidate pools and the mutation counts.
func (s *SimpleUI) DisplayEstimation(estimation m.Estimation, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Pool", "Category", "Length", "Candidates", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, pool := range estimation.Pools {
		mutations := 0
		if i < len(estimation.PerPool) {
			mutations = estimation.PerPool[i]
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			string(pool.Spec.Charset.Category),
			strconv.Itoa(pool.Spec.Length),
			candidatesPreview(pool.Candidates, candidatePreviewWidth),
			strconv.Itoa(mutations),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Seed %d bytes", len(estimation.Seed)),
		"",
		fmt.Sprintf("Planned %d", estimation.Planned),
		strconv.Itoa(estimation.Total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTargetInfo prints the command under test and the run parameters.
func (s *SimpleUI) DisplayTargetInfo(target m.Target, seed string, randSeed uint64) {
	s.printf("Command: %s\n", target.Command)
	s.printf("%s\n", dimStyle.Sprintf("Directory: %s  Seed: %s  Random seed: %d", target.Dir, strconv.Quote(seed), randSeed))
}

// DisplayUpcomingTestsInfo prints how many tests are about to run.
func (s *SimpleUI) DisplayUpcomingTestsInfo(count int) {
	s.printf("Running %d tests\n\n", count)
}

// DisplayStartingTestInfo prints the header of one test.
func (s *SimpleUI) DisplayStartingTestInfo(number int, _ m.Mutation) {
	s.printf("Test %d:\n", number)
}

// DisplayCompletedTestInfo prints the input, the captured streams and the
// exit code of one test.
func (s *SimpleUI) DisplayCompletedTestInfo(result m.Result) {
	outcome := result.Outcome

	s.printf("Input: %s\nOutput: %s\nError: %s\n", outcome.Input, trimNewline(outcome.Stdout), trimNewline(outcome.Stderr))

	code := strconv.Itoa(outcome.ExitCode)
	if result.Status == m.Failed {
		code = failStyle.Sprint(code)
	}

	s.printf("Exit code: %s\n\n", code)
}

// DisplayReport prints the verdict of a run. Failures go to stderr.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	switch report.Verdict {
	case m.VerdictPassed:
		s.printf("%s\n", passStyle.Sprintf("All %d tests passed with exit code 0.", report.Executed))
	case m.VerdictFailed:
		writeReportFailure(s.cmd.ErrOrStderr(), report)
	default:
		input := ""
		if report.Failure != nil {
			input = report.Failure.Mutation.Input
		}

		_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s\n",
			failStyle.Sprintf("Error running command with input %s: %s", strconv.Quote(input), report.Error))
	}

	return nil
}

func writeReportFailure(w io.Writer, report m.Report) {
	failure := report.Failure
	if failure == nil {
		_, _ = fmt.Fprintf(w, "%s\n", failStyle.Sprint("Non-zero exit code detected."))
		return
	}

	_, _ = fmt.Fprintf(w, "%s\n", failStyle.Sprintf(
		"Non-zero exit code %d detected for input %s at test %d. Terminating run.",
		failure.Outcome.ExitCode, strconv.Quote(failure.Outcome.Input), failure.Number))
	_, _ = fmt.Fprintf(w, "Position: %d  Category: %s  Candidate: %s\n",
		failure.Mutation.Position, failure.Mutation.Category, strconv.Quote(failure.Mutation.Candidate))

	if failure.Outcome.Output != "" {
		_, _ = fmt.Fprintf(w, "Output:\n%s", failure.Outcome.Output)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
