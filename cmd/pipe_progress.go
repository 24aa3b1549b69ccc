package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/pistactl/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const timeoutBarWidth = 12

type pipeReadDoneMsg struct {
	err error
}

type pipeProgressStyles struct {
	slot     lipgloss.Style
	pipe     lipgloss.Style
	elapsed  lipgloss.Style
	barFill  lipgloss.Style
	barEmpty lipgloss.Style
}

// pipeProgressModel shows the pipe start is blocked on while a feed's first
// line is awaited, with the time spent against the discovery timeout.
type pipeProgressModel struct {
	pending  application.PipeWait
	spinner  spinner.Model
	styles   pipeProgressStyles
	started  time.Time
	now      func() time.Time
	read     tea.Cmd
	err      error
	finished bool
}

func newPipeProgressModel(pending application.PipeWait, read tea.Cmd) pipeProgressModel {
	return pipeProgressModel{
		pending: pending,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: pipeProgressStyles{
			slot:     lipgloss.NewStyle().Bold(true),
			pipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			elapsed:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			barFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			barEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		started: time.Now(),
		now:     time.Now,
		read:    read,
	}
}

func (m pipeProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.read)
}

func (m pipeProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pipeReadDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m pipeProgressModel) View() string {
	if m.finished {
		return ""
	}

	elapsed := min(m.now().Sub(m.started), m.pending.Timeout)
	return strings.Join([]string{
		m.spinner.View(),
		m.styles.slot.Render("slot " + m.pending.Slot),
		m.styles.pipe.Render("waiting on " + m.pending.Pipe),
		m.timeoutBar(elapsed),
		m.styles.elapsed.Render(fmt.Sprintf("%s/%s", elapsed.Truncate(100*time.Millisecond), m.pending.Timeout)),
	}, " ")
}

func (m pipeProgressModel) timeoutBar(elapsed time.Duration) string {
	filled := timeoutBarWidth
	if m.pending.Timeout > 0 {
		filled = int(int64(timeoutBarWidth) * int64(elapsed) / int64(m.pending.Timeout))
	}
	filled = max(0, min(filled, timeoutBarWidth))

	return "[" +
		m.styles.barFill.Render(strings.Repeat("=", filled)) +
		m.styles.barEmpty.Render(strings.Repeat("-", timeoutBarWidth-filled)) +
		"]"
}

// pipeProgress renders discovery progress on output while the read runs.
func pipeProgress(output io.Writer) application.WaitFunc {
	return func(ctx context.Context, pending application.PipeWait, read func(context.Context) error) error {
		readCmd := func() tea.Msg {
			return pipeReadDoneMsg{err: read(ctx)}
		}

		p := tea.NewProgram(
			newPipeProgressModel(pending, readCmd),
			tea.WithInput(nil),
			tea.WithOutput(output),
			tea.WithContext(ctx),
		)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		result, ok := finalModel.(pipeProgressModel)
		if !ok {
			return fmt.Errorf("unexpected final progress model type %T", finalModel)
		}

		return result.err
	}
}
