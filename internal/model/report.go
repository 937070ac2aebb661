package model

import "time"

// Outcome captures what a single target process did with one input.
type Outcome struct {
	Input    string `yaml:"input"`
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	Output   string `yaml:"output"` // stdout and stderr merged in observed order
	ExitCode int    `yaml:"exit_code"`
}

// TestStatus represents the verdict of a single executed test.
type TestStatus int

const (
	// Passed indicates the target exited with status zero.
	Passed TestStatus = iota
	// Failed indicates the target exited with a non-zero status.
	Failed
)

func (s TestStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is one executed test: the mutation, its outcome and the verdict.
type Result struct {
	Number   int        `yaml:"number"`
	Mutation Mutation   `yaml:"mutation"`
	Outcome  Outcome    `yaml:"outcome"`
	Status   TestStatus `yaml:"status"`
}

// Verdict is the terminal state of a whole run.
type Verdict string

const (
	// VerdictPassed means every executed input exited zero.
	VerdictPassed Verdict = "passed"
	// VerdictFailed means the run stopped on a non-zero exit status.
	VerdictFailed Verdict = "failed"
	// VerdictError means the harness could not run the target.
	VerdictError Verdict = "error"
)

// Report is the outcome of a run, as shown to the user and persisted.
type Report struct {
	ID         string    `yaml:"id"`
	Command    string    `yaml:"command"`
	Dir        Path      `yaml:"dir"`
	Seed       string    `yaml:"seed"`
	RandSeed   uint64    `yaml:"rand_seed"`
	MaxTests   int       `yaml:"max_tests"`
	Total      int       `yaml:"total"` // size of the mutation sequence
	Executed   int       `yaml:"executed"`
	Verdict    Verdict   `yaml:"verdict"`
	Failure    *Result   `yaml:"failure,omitempty"`
	Error      string    `yaml:"error,omitempty"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

// ExitCode returns the status the hosting process should exit with.
func (r Report) ExitCode() int {
	switch r.Verdict {
	case VerdictPassed:
		return 0
	case VerdictFailed:
		if r.Failure != nil && r.Failure.Outcome.ExitCode != 0 {
			return r.Failure.Outcome.ExitCode
		}

		return 1
	default:
		return 1
	}
}
