package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

var (
	// ErrIOFailure marks a spawn, stdin write or output read failure.
	ErrIOFailure = errors.New("io failure")
	// ErrInterrupted marks a wait that ended without the target terminating
	// on its own (cancelled or timed out).
	ErrInterrupted = errors.New("interrupted")
)

// HarnessError reports that the harness could not run the target for Input.
// Kind is ErrIOFailure or ErrInterrupted, so callers can use errors.Is.
type HarnessError struct {
	Input string
	Kind  error
	Err   error
}

func (e *HarnessError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *HarnessError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// TargetRunnerAdapter runs the fuzzed command once per input.
type TargetRunnerAdapter interface {
	// Run starts target through the host shell, writes input to its stdin,
	// closes stdin, drains stdout and stderr and waits for it to exit.
	Run(ctx context.Context, target m.Target, input string) (m.Outcome, error)
}

// LocalTargetRunnerAdapter runs targets as local child processes.
type LocalTargetRunnerAdapter struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// NewLocalTargetRunnerAdapter constructs a LocalTargetRunnerAdapter. A zero
// timeout waits for the target indefinitely.
func NewLocalTargetRunnerAdapter(logger zerolog.Logger, timeout time.Duration) *LocalTargetRunnerAdapter {
	return &LocalTargetRunnerAdapter{
		logger:  logger.With().Str("component", "runner").Logger(),
		timeout: timeout,
	}
}

// ShellCommand returns the program and arguments that make the host shell
// interpret command.
func ShellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd.exe", []string{"/c", command}
	}

	return "sh", []string{"-c", command}
}

// Run implements TargetRunnerAdapter.
func (a *LocalTargetRunnerAdapter) Run(ctx context.Context, target m.Target, input string) (m.Outcome, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	name, args := ShellCommand(target.Command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = string(target.Dir)
	configureProcess(cmd)

	stdin, stdout, stderr, err := pipes(cmd)
	if err != nil {
		return m.Outcome{}, harnessError(input, ErrIOFailure, err)
	}

	if err := cmd.Start(); err != nil {
		kind := ErrIOFailure
		if ctx.Err() != nil {
			kind = ErrInterrupted
		}

		return m.Outcome{}, harnessError(input, kind, fmt.Errorf("failed to start %q: %w", target.Command, err))
	}

	a.logger.Debug().Int("pid", cmd.Process.Pid).Int("input_bytes", len(input)).Msg("target started")

	// Descendants outside the process group may still hold the pipes open.
	stopClosing := context.AfterFunc(ctx, func() {
		_ = stdin.Close()
		_ = stdout.Close()
		_ = stderr.Close()
	})

	capture := &outputCapture{}

	var group errgroup.Group

	group.Go(func() error { return writeInput(stdin, input) })
	group.Go(func() error { return capture.drain(stdout, &capture.stdout) })
	group.Go(func() error { return capture.drain(stderr, &capture.stderr) })

	ioErr := group.Wait()
	stopClosing()

	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		return m.Outcome{}, harnessError(input, ErrInterrupted, fmt.Errorf("waiting for %q: %w", target.Command, ctx.Err()))
	}

	if ioErr != nil {
		return m.Outcome{}, harnessError(input, ErrIOFailure, ioErr)
	}

	exitCode, err := exitCodeOf(waitErr)
	if err != nil {
		return m.Outcome{}, harnessError(input, ErrInterrupted, fmt.Errorf("waiting for %q: %w", target.Command, err))
	}

	outcome := capture.outcome(input, exitCode)

	a.logger.Debug().
		Int("exit_code", exitCode).
		Int("output_bytes", len(outcome.Output)).
		Msg("target exited")

	return outcome, nil
}

func pipes(cmd *exec.Cmd) (io.WriteCloser, io.ReadCloser, io.ReadCloser, error) {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open stdin: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open stdout: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open stderr: %w", err)
	}

	return stdin, stdout, stderr, nil
}

// writeInput writes the whole input and always closes stdin. A target that
// exits without reading its input is not an error.
func writeInput(stdin io.WriteCloser, input string) (err error) {
	defer func() {
		if closeErr := stdin.Close(); closeErr != nil && err == nil && !isClosedPipe(closeErr) {
			err = fmt.Errorf("failed to close stdin: %w", closeErr)
		}
	}()

	if _, err := io.WriteString(stdin, input); err != nil && !isClosedPipe(err) {
		return fmt.Errorf("failed to write stdin: %w", err)
	}

	return nil
}

func isClosedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed)
}

func exitCodeOf(waitErr error) (int, error) {
	if waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		// -1 when the shell itself was killed by a signal; still a failure.
		return exitErr.ExitCode(), nil
	}

	return 0, waitErr
}

// outputCapture collects both streams, separately and merged line by line
// in the order the lines were read.
type outputCapture struct {
	mu       sync.Mutex
	stdout   strings.Builder
	stderr   strings.Builder
	combined strings.Builder
}

func (c *outputCapture) drain(r io.Reader, own *strings.Builder) error {
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			c.append(own, normalizeLine(line))
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read output: %w", err)
		}
	}
}

func (c *outputCapture) append(own *strings.Builder, line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	own.WriteString(line)
	c.combined.WriteString(line)
}

func (c *outputCapture) outcome(input string, exitCode int) m.Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	return m.Outcome{
		Input:    input,
		Stdout:   c.stdout.String(),
		Stderr:   c.stderr.String(),
		Output:   c.combined.String(),
		ExitCode: exitCode,
	}
}

// normalizeLine terminates every line, including a trailing partial one,
// with a single "\n".
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line + "\n"
}

func harnessError(input string, kind, err error) *HarnessError {
	return &HarnessError{Input: input, Kind: kind, Err: err}
}
