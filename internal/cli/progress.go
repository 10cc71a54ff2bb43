package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/visgraphio/visgraph/pkg/graph"
	"github.com/visgraphio/visgraph/pkg/pipeline"
)

// progressMsg carries one force-directed iteration update.
type progressMsg struct {
	iteration       int
	total           int
	maxDisplacement float64
}

// progressDoneMsg signals that the pipeline finished.
type progressDoneMsg struct{}

// progressModel is the bubbletea model showing a progress bar for the
// force-directed simulation.
type progressModel struct {
	label     string
	iteration int
	total     int
	maxDisp   float64
	width     int
}

func newProgressModel(label string, total int) progressModel {
	return progressModel{label: label, total: total, width: 40}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.iteration = msg.iteration
		m.total = msg.total
		m.maxDisp = msg.maxDisplacement
	case progressDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width - 30
		if m.width < 10 {
			m.width = 10
		}
		if m.width > 60 {
			m.width = 60
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = float64(m.iteration) / float64(m.total)
	}
	filled := int(frac * float64(m.width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", m.width-filled)

	var b strings.Builder
	b.WriteString(StyleDim.Render(m.label) + " ")
	b.WriteString(StyleHighlight.Render(bar))
	b.WriteString(StyleDim.Render(fmt.Sprintf(" %d/%d", m.iteration, m.total)))
	if m.maxDisp > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  Δ %.2f", m.maxDisp)))
	}
	b.WriteString("\n")
	return b.String()
}

// executeWithProgress runs the pipeline showing either an iteration progress
// bar (force-directed with a nonzero iteration budget) or a spinner.
func (c *CLI) executeWithProgress(ctx context.Context, runner *pipeline.Runner, g *graph.Graph, opts pipeline.Options) (*pipeline.Result, error) {
	if opts.Strategy != pipeline.DefaultStrategy || opts.Settings.Iterations == 0 {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Strategy))
		spinner.Start()
		result, err := runner.Execute(ctx, g, opts)
		if err != nil {
			spinner.StopWithError("Render failed")
			return nil, err
		}
		spinner.Stop()
		return result, nil
	}

	prog := tea.NewProgram(
		newProgressModel("Simulating", opts.Settings.Iterations),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)
	opts.Progress = func(iteration, total int, maxDisplacement float64) {
		prog.Send(progressMsg{iteration: iteration, total: total, maxDisplacement: maxDisplacement})
	}

	var (
		result *pipeline.Result
		runErr error
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		result, runErr = runner.Execute(ctx, g, opts)
		prog.Send(progressDoneMsg{})
	}()

	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		// Terminal setup failed; the pipeline still finishes below.
		c.Logger.Debugf("progress display unavailable: %v", err)
	}
	<-done
	return result, runErr
}
