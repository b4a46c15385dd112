package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/grigouze/gandi.cli/internal/domain"
	"github.com/grigouze/gandi.cli/internal/retry"
	"github.com/grigouze/gandi.cli/internal/services"
	"github.com/grigouze/gandi.cli/internal/tui/styles"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// opTickMsg tells the Update loop it is time to fire the next poll.
type opTickMsg struct{}

// opStateMsg carries the result of a single poll.
type opStateMsg struct {
	op *domain.Operation
}

// opErrorMsg carries an error from a failed poll.
type opErrorMsg struct {
	err error
}

// --- Progress model ---

// progressModel polls an operation until it reaches a terminal step and
// renders its progress as a bar.
type progressModel struct {
	ctx  context.Context
	poll services.OperationFunc
	cfg  retry.PollConfig

	op       *domain.Operation
	polls    int
	finished bool
	err      error

	bar     progress.Model
	spinner spinner.Model
}

func newProgressModel(ctx context.Context, op *domain.Operation, poll services.OperationFunc, cfg retry.PollConfig) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.AccentText

	return progressModel{
		ctx:     ctx,
		poll:    poll,
		cfg:     cfg,
		op:      op,
		bar:     progress.New(progress.WithGradient(string(styles.DimBlue), string(styles.Blue)), progress.WithWidth(40)),
		spinner: s,
	}
}

// runProgress shows the progress view on w until op settles.
func runProgress(ctx context.Context, w io.Writer, op *domain.Operation, poll services.OperationFunc, cfg retry.PollConfig) error {
	m := newProgressModel(ctx, op, poll, cfg)
	p := tea.NewProgram(m, tea.WithOutput(w), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("progress view: %w", err)
	}
	return final.(progressModel).result()
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pollCmd())
}

func (m progressModel) pollCmd() tea.Cmd {
	poll, ctx, id := m.poll, m.ctx, m.op.ID
	return func() tea.Msg {
		op, err := poll(ctx, id)
		if err != nil {
			return opErrorMsg{err: err}
		}
		return opStateMsg{op: op}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrAborted
			m.finished = true
			return m, tea.Quit
		}
		return m, nil

	case opStateMsg:
		m.op = msg.op
		m.polls++
		if m.op.Done() {
			m.finished = true
			return m, tea.Quit
		}
		if m.polls >= max(m.cfg.MaxAttempts, 1) {
			m.err = fmt.Errorf("operation %d: %w", m.op.ID, retry.ErrPollExhausted)
			m.finished = true
			return m, tea.Quit
		}
		return m, tea.Tick(m.cfg.Interval, func(time.Time) tea.Msg { return opTickMsg{} })

	case opTickMsg:
		return m, m.pollCmd()

	case opErrorMsg:
		m.err = msg.err
		m.finished = true
		return m, tea.Quit

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	step := m.op.Step
	if step == "" {
		step = "pending"
	}
	status := styles.StatusStyle(step).Render(strings.ToLower(step))

	if m.finished {
		return fmt.Sprintf("%s %s\n", m.bar.ViewAs(stepPercent(m.op.Step)), status)
	}
	return fmt.Sprintf("%s %s %s\n", m.spinner.View(), m.bar.ViewAs(stepPercent(m.op.Step)), status)
}

// result returns the outcome once the model has finished.
func (m progressModel) result() error {
	if m.err != nil {
		return m.err
	}
	if !m.finished {
		return errors.New("progress view exited before the operation settled")
	}
	return operationResult(m.op)
}
