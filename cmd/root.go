// Package cmd provides the root command and CLI setup for stdinfuzz.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/stdinfuzz/internal/adapter"
	"github.com/mouse-blink/stdinfuzz/internal/config"
	"github.com/mouse-blink/stdinfuzz/internal/controller"
	"github.com/mouse-blink/stdinfuzz/internal/domain"
	m "github.com/mouse-blink/stdinfuzz/internal/model"
)

var workspace adapter.WorkspaceAdapter
var reportStore adapter.ReportStore
var mutagen domain.Mutagen

// workflow replaces the configured workflow when set. Tests use it to
// inject mocks.
var workflow domain.Workflow

func init() {
	workspace = adapter.NewLocalWorkspaceAdapter()
	reportStore = adapter.NewReportStore()
	mutagen = domain.NewMutagen()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stdinfuzz [flags] <command>",
		Short: "Black-box stdin mutation fuzzer",
		Long: `stdinfuzz mutates a seed input one character position at a time and feeds
every variant to the standard input of a command. It stops at the first
variant the command exits non-zero on and exits with that same status.

The command runs through the shell in the --dir directory:
  stdinfuzz ./parser
  stdinfuzz -C testdata -n 50 -- ./parser --strict
  stdinfuzz --seed-file seed.html --rand-seed 42 "python3 parse.py"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFuzz,
	}
	config.RegisterFlags(cmd.PersistentFlags())

	return cmd
}

// ExitError asks the hosting process to exit with Code. The UI has already
// reported the cause, so Execute prints nothing for it.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("exit status %d: %v", e.Code, e.Err)
	}

	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Execute runs the root command and returns the status the process should
// exit with. It is called by main.main(), which is the only caller of os.Exit.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(rootCmd, rootCmd.ExecuteContext(ctx))
}

func exitCode(cmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return processStatus(exitErr.Code)
	}

	cmd.PrintErrln("Error:", err)

	return 1
}

// processStatus maps a target status onto one the host can exit with.
// Signal deaths report -1 and statuses above 255 would wrap.
func processStatus(code int) int {
	if code < 1 || code > 255 {
		return 1
	}

	return code
}

// session is everything a subcommand needs once flags are resolved.
type session struct {
	cfg    config.Config
	logger zerolog.Logger
}

func newSession(cmd *cobra.Command) (session, error) {
	cfg, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return session{}, err
	}

	logger, err := config.NewLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return session{}, err
	}

	return session{cfg: cfg, logger: logger}, nil
}

// workflowFor returns the injected workflow or builds one for cfg. The UI
// calls interrupt when the user quits it.
func (s session) workflowFor(cmd *cobra.Command, interrupt func()) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	useTTY := controller.IsTTY(cmd.OutOrStdout()) && !s.cfg.NoTUI

	logger := s.logger
	if useTTY && logger.GetLevel() < zerolog.WarnLevel {
		logger = logger.Level(zerolog.WarnLevel)
	}

	runner := adapter.NewLocalTargetRunnerAdapter(logger, s.cfg.Timeout)

	return domain.NewWorkflow(
		reportStore,
		controller.NewUI(cmd, useTTY, interrupt),
		domain.NewOrchestrator(runner, logger),
		mutagen,
		logger,
	)
}

func (s session) estimateArgs() (domain.EstimateArgs, error) {
	seed := s.cfg.Seed
	if s.cfg.SeedFile != "" {
		var err error

		seed, err = workspace.ReadSeed(m.Path(s.cfg.SeedFile))
		if err != nil {
			return domain.EstimateArgs{}, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
		}
	}

	randSeed := s.cfg.RandSeed
	if !s.cfg.RandSeedSet {
		randSeed = rand.Uint64()
	}

	return domain.EstimateArgs{Seed: seed, RandSeed: randSeed, MaxTests: s.cfg.MaxTests}, nil
}

func (s session) target(args []string) (m.Target, error) {
	command := strings.Join(args, " ")
	if command == "" {
		command = s.cfg.Command
	}

	if strings.TrimSpace(command) == "" {
		return m.Target{}, fmt.Errorf("%w: no target command given", config.ErrInvalidConfig)
	}

	target, err := workspace.ResolveTarget(m.Path(s.cfg.Dir), command)
	if err != nil {
		return m.Target{}, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	return target, nil
}

func runFuzz(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	target, err := s.target(args)
	if err != nil {
		return err
	}

	estimateArgs, err := s.estimateArgs()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	report, err := s.workflowFor(cmd, cancel).Test(ctx, domain.TestArgs{
		EstimateArgs: estimateArgs,
		Target:       target,
		Reports:      m.Path(s.cfg.Output),
	})
	if err != nil && report.Verdict == "" {
		return fmt.Errorf("failed to run: %w", err)
	}

	if code := report.ExitCode(); code != 0 {
		return &ExitError{Code: code, Err: err}
	}

	return err
}
