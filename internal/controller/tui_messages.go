package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// Message types.
type tickMsg time.Time

type estimationMsg struct {
	estimation m.Estimation
	err        error
}

type targetMsg struct {
	command  string
	dir      string
	seed     string
	randSeed uint64
}

type upcomingMsg struct {
	count int
}

type startTestMsg struct {
	number    int
	position  int
	category  string
	candidate string
}

type completedTestMsg struct {
	number   int
	position int
	category string
	status   string
	exitCode int
	input    string
	output   string
}

type reportMsg struct {
	report m.Report
}

// List item types.
type poolItem struct {
	index      int
	category   string
	length     int
	mutations  int
	candidates []string
}

func (p poolItem) FilterValue() string {
	return fmt.Sprintf("%d %s", p.index, p.category)
}

func newCompletedTestMsg(result m.Result) completedTestMsg {
	return completedTestMsg{
		number:   result.Number,
		position: result.Mutation.Position,
		category: string(result.Mutation.Category),
		status:   result.Status.String(),
		exitCode: result.Outcome.ExitCode,
		input:    result.Outcome.Input,
		output:   result.Outcome.Output,
	}
}
