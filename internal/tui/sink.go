// Package tui implements the terminal side of resource operations: the
// message sink, the progress view for asynchronous operations and the
// confirm and spinner prompts used by commands.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/retry"
	"github.com/grigouze/gandi.cli/internal/services"

	"golang.org/x/term"
)

const (
	// progressInterval is the delay between two operation.info polls.
	progressInterval = time.Second

	// progressMaxPolls caps how long an operation is watched. At one poll
	// per second this gives an hour.
	progressMaxPolls = 3600
)

// ErrAborted is returned when the user cancels a prompt or a progress view.
var ErrAborted = errors.New("aborted by user")

// Sink writes operation messages to a terminal. It satisfies services.Sink.
type Sink struct {
	out         io.Writer
	interactive bool
	poll        retry.PollConfig
}

var _ services.Sink = (*Sink)(nil)

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithInteractive overrides terminal detection.
func WithInteractive(interactive bool) SinkOption {
	return func(s *Sink) {
		s.interactive = interactive
	}
}

// WithPollConfig sets how operations are polled while rendering progress.
func WithPollConfig(cfg retry.PollConfig) SinkOption {
	return func(s *Sink) {
		s.poll = cfg
	}
}

// NewSink returns a Sink writing to out. The sink is interactive when out
// is a terminal.
func NewSink(out io.Writer, opts ...SinkOption) *Sink {
	s := &Sink{
		out:         out,
		interactive: IsTerminal(out),
		poll: retry.PollConfig{
			Interval:    progressInterval,
			MaxAttempts: progressMaxPolls,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Echo writes msg followed by a newline.
func (s *Sink) Echo(msg string) {
	fmt.Fprintln(s.out, msg)
}

// IsInteractive reports whether the sink renders to a terminal.
func (s *Sink) IsInteractive() bool {
	return s.interactive
}

// Progress waits for op to finish. In a terminal the bubbletea progress view
// is shown; otherwise each step change is echoed.
func (s *Sink) Progress(ctx context.Context, op *domain.Operation, poll services.OperationFunc) error {
	if !op.Trackable() {
		if op != nil && op.Message != "" {
			s.Echo(op.Message)
		}
		return nil
	}

	if s.interactive {
		return runProgress(ctx, s.out, op, poll, s.poll)
	}
	return s.plainProgress(ctx, op, poll)
}

func (s *Sink) plainProgress(ctx context.Context, op *domain.Operation, poll services.OperationFunc) error {
	last := ""
	final, err := retry.Poll(ctx, s.poll,
		func(ctx context.Context) (*domain.Operation, error) {
			cur, err := poll(ctx, op.ID)
			if err != nil {
				return nil, err
			}
			if cur.Step != last {
				s.Echo(fmt.Sprintf("Operation %d: %s", op.ID, strings.ToLower(cur.Step)))
				last = cur.Step
			}
			return cur, nil
		},
		func(cur *domain.Operation) bool { return !cur.Done() },
	)
	if err != nil {
		return fmt.Errorf("operation %d: %w", op.ID, err)
	}
	return operationResult(final)
}

// operationResult maps a settled operation to an error when it failed.
func operationResult(op *domain.Operation) error {
	if op.Failed() {
		return fmt.Errorf("operation %d ended with step %s: %w", op.ID, op.Step, domain.ErrOperationFailed)
	}
	return nil
}

// stepPercent maps an operation step to a completion ratio.
func stepPercent(step string) float64 {
	switch step {
	case domain.StepBill:
		return 0.25
	case domain.StepWait:
		return 0.5
	case domain.StepRun:
		return 0.75
	case domain.StepDone, domain.StepError, domain.StepCancel:
		return 1
	default:
		return 0
	}
}
