package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"domain-finder/internal/domain"
	"domain-finder/internal/scanner"
	"domain-finder/internal/types"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	bannerStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2)
)

func showBanner() {
	title := infoStyle.Bold(true).Render("Domain Finder v" + Version)
	tagline := subtleStyle.Render("Concurrent domain availability scanner")
	fmt.Println(bannerStyle.Render(title + "\n" + tagline))
	fmt.Println()
}

func foundLine(name string) string {
	return fmt.Sprintf("%s Domain %s is AVAILABLE!", successStyle.Render("✓"), name)
}

func progressLine(p types.Progress) string {
	return fmt.Sprintf("[%d/%d] %.2f%% | %.1f domains/s | ETA %s",
		p.Processed, p.Total, p.Percent, p.Rate, formatETA(p.ETA))
}

func formatETA(eta time.Duration) string {
	if eta <= 0 {
		return "--"
	}
	return eta.Round(time.Second).String()
}

type foundMsg struct {
	domain string
}

type progressMsg struct {
	progress types.Progress
}

type doneMsg struct{}

type progressModel struct {
	spinner  spinner.Model
	progress progress.Model
	total    int
	latest   types.Progress
	found    int
	done     bool
	quitting bool
}

func newProgressModel(total int) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	p := progress.New(
		progress.WithSolidFill("240"),
		progress.WithoutPercentage(),
	)
	p.Width = 40

	return progressModel{
		spinner:  s,
		progress: p,
		total:    total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case foundMsg:
		m.found++
		return m, tea.Println(foundLine(msg.domain))

	case progressMsg:
		m.latest = msg.progress
		return m, nil

	case doneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString("\033[K")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")

	if m.total > 0 {
		b.WriteString(m.progress.ViewAs(m.latest.Percent / 100))
		b.WriteString(fmt.Sprintf("  %d/%d  ", m.latest.Processed, m.total))
	}

	b.WriteString(fmt.Sprintf("%s %d  ", successStyle.Render("✓"), m.found))

	if m.latest.Rate > 0 {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%.1f/s  ETA %s  ", m.latest.Rate, formatETA(m.latest.ETA))))
	}

	b.WriteString(subtleStyle.Render("(q: quit)"))

	return b.String()
}

// runWithProgress drives the engine under a live progress UI. Found
// domains print above the status line as they are confirmed.
func runWithProgress(ctx context.Context, checker domain.Checker, runCfg types.RunConfig, interval int, candidates []string) (*scanner.Report, error) {
	program := tea.NewProgram(newProgressModel(len(candidates)))

	events := scanner.Events{
		Found: func(v types.Verdict) {
			program.Send(foundMsg{domain: v.Domain})
		},
		Progress: func(p types.Progress) {
			program.Send(progressMsg{progress: p})
		},
	}

	eng, err := scanner.New(checker, runCfg, scanner.WithEvents(events), scanner.WithReportInterval(interval))
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var report *scanner.Report
	g := new(errgroup.Group)
	g.Go(func() error {
		defer program.Send(doneMsg{})
		r, runErr := eng.Run(runCtx, candidates)
		if runErr != nil {
			return runErr
		}
		report = r
		return nil
	})

	final, uiErr := program.Run()
	if m, ok := final.(progressModel); ok && m.quitting {
		cancel()
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if uiErr != nil {
		return nil, uiErr
	}
	return report, nil
}

// runPlain drives the engine without the UI, printing one line per
// event through a single writer goroutine.
func runPlain(ctx context.Context, out io.Writer, checker domain.Checker, runCfg types.RunConfig, interval int, candidates []string) (*scanner.Report, error) {
	status := make(chan string, 64)
	drained := make(chan struct{})

	go func() {
		defer close(drained)
		for line := range status {
			fmt.Fprintln(out, line)
		}
	}()

	events := scanner.Events{
		Found: func(v types.Verdict) {
			status <- foundLine(v.Domain)
		},
		Progress: func(p types.Progress) {
			status <- progressLine(p)
		},
	}

	eng, err := scanner.New(checker, runCfg, scanner.WithEvents(events), scanner.WithReportInterval(interval))
	if err != nil {
		close(status)
		<-drained
		return nil, err
	}

	report, err := eng.Run(ctx, candidates)
	close(status)
	<-drained

	return report, err
}
