package controller

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

// TUIOption configures a TUI.
type TUIOption func(*TUI)

// WithInput enables keyboard input from r. Without it the program only
// renders and Close ends it right away.
func WithInput(r io.Reader) TUIOption {
	return func(t *TUI) {
		t.input = r
	}
}

// WithInterrupt registers fn to be called when the program exits, so a
// user quitting mid-run can stop the fuzzing loop.
func WithInterrupt(fn func()) TUIOption {
	return func(t *TUI) {
		t.interrupt = fn
	}
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output    io.Writer
	input     io.Reader
	interrupt func()

	mu        sync.Mutex
	program   *tea.Program
	started   bool
	done      chan struct{}
	closeOnce sync.Once
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...TUIOption) *TUI {
	t := &TUI{output: output}
	for _, opt := range options {
		opt(t)
	}

	return t
}

// Start launches the Bubble Tea program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	switch cfg.mode {
	case ModeEstimate:
		return t.startWithModel(newEstimateModel())
	default:
		return t.startWithModel(newTestExecutionModel())
	}
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithInput(t.input)}
	if t.input != nil {
		opts = append(opts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	program, done := t.program, t.done

	go func() {
		defer close(done)

		_, _ = program.Run()

		if t.interrupt != nil {
			t.interrupt()
		}
	}()

	if width, height, ok := t.size(); ok {
		program.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}

	return nil
}

// Close ends the session. With keyboard input it waits for the user to quit
// the results view; otherwise it stops the program.
func (t *TUI) Close() {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		program, started, interactive := t.program, t.started, t.input != nil
		t.mu.Unlock()

		if !started {
			return
		}

		if !interactive {
			program.Quit()
		}

		t.Wait()
	})
}

// Wait blocks until the program exits. It returns at once if the UI was
// never started.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayEstimation shows the candidate pools.
func (t *TUI) DisplayEstimation(estimation m.Estimation, err error) error {
	t.ensureStarted(WithEstimateMode())
	t.send(estimationMsg{estimation: estimation, err: err})

	return err
}

// DisplayTargetInfo shows the command under test.
func (t *TUI) DisplayTargetInfo(target m.Target, seed string, randSeed uint64) {
	t.ensureStarted(WithTestMode())
	t.send(targetMsg{command: target.Command, dir: string(target.Dir), seed: seed, randSeed: randSeed})
}

// DisplayUpcomingTestsInfo sets the length of the progress bar.
func (t *TUI) DisplayUpcomingTestsInfo(count int) {
	t.ensureStarted(WithTestMode())
	t.send(upcomingMsg{count: count})
}

// DisplayStartingTestInfo shows the test currently running.
func (t *TUI) DisplayStartingTestInfo(number int, mutation m.Mutation) {
	t.ensureStarted(WithTestMode())
	t.send(startTestMsg{
		number:    number,
		position:  mutation.Position,
		category:  string(mutation.Category),
		candidate: mutation.Candidate,
	})
}

// DisplayCompletedTestInfo adds a finished test to the results.
func (t *TUI) DisplayCompletedTestInfo(result m.Result) {
	t.ensureStarted(WithTestMode())
	t.send(newCompletedTestMsg(result))
}

// DisplayReport switches to the results view.
func (t *TUI) DisplayReport(report m.Report) error {
	t.ensureStarted(WithViewMode())
	t.send(reportMsg{report: report})

	return nil
}

func (t *TUI) ensureStarted(options ...StartOption) {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start(options...)
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

func (t *TUI) size() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
