package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/gqlfmt/gqlfmt"
	"go.jacobcolvin.com/gqlfmt/log"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Live-reformat a file as it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}
}

func runWatch(path string) error {
	pub := log.NewPublisher()
	handler := log.NewHandler(pub, log.LevelInfo, log.FormatLogfmt)
	logger := slog.New(handler)

	m := newWatchModel(path, pub, logger)

	p := tea.NewProgram(m)

	_, err := p.Run()

	return err
}

type watchTickMsg struct{}

type watchResultMsg struct {
	output  string
	err     error
	modTime time.Time
}

type watchLogMsg struct {
	line string
}

const watchPollInterval = 500 * time.Millisecond

type watchModel struct {
	path    string
	pub     *log.Publisher
	sub     *log.Subscription
	logger  *slog.Logger
	output  string
	errText string
	modTime time.Time
	logLines []string
	width   int
	height  int
}

func newWatchModel(path string, pub *log.Publisher, logger *slog.Logger) *watchModel {
	return &watchModel{
		path:   path,
		pub:    pub,
		sub:    pub.Subscribe(),
		logger: logger,
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.reformat(), m.waitForLog(), m.tick())
}

func (m *watchModel) tick() tea.Cmd {
	return tea.Tick(watchPollInterval, func(time.Time) tea.Msg {
		return watchTickMsg{}
	})
}

func (m *watchModel) waitForLog() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.sub.C()
		if !ok {
			return nil
		}

		return watchLogMsg{line: string(line)}
	}
}

func (m *watchModel) reformat() tea.Cmd {
	path := m.path

	return func() tea.Msg {
		info, err := os.Stat(path)
		if err != nil {
			return watchResultMsg{err: err}
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return watchResultMsg{err: err}
		}

		opts, err := loadOptions(filepath.Dir(path))
		if err != nil {
			return watchResultMsg{err: err, modTime: info.ModTime()}
		}

		out, err := gqlfmt.FormatText(string(src), opts)

		return watchResultMsg{output: out, err: err, modTime: info.ModTime()}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sub.Close()

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case watchTickMsg:
		info, err := os.Stat(m.path)
		if err == nil && info.ModTime().After(m.modTime) {
			m.logger.Info("file changed, reformatting", "path", m.path)

			return m, tea.Batch(m.reformat(), m.tick())
		}

		return m, m.tick()

	case watchResultMsg:
		m.modTime = msg.modTime
		if msg.err != nil {
			m.errText = msg.err.Error()
		} else {
			m.errText = ""
			m.output = msg.output
		}

	case watchLogMsg:
		m.logLines = append(m.logLines, msg.line)
		if len(m.logLines) > 8 {
			m.logLines = m.logLines[len(m.logLines)-8:]
		}

		return m, m.waitForLog()
	}

	return m, nil
}

var (
	watchHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	watchBodyStyle   = lipgloss.NewStyle().Padding(0, 1)
	watchErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Padding(0, 1)
	watchLogStyle    = lipgloss.NewStyle().Faint(true).Border(lipgloss.NormalBorder(), true, false, false, false)
)

func (m *watchModel) View() tea.View {
	var b strings.Builder

	b.WriteString(watchHeaderStyle.Render(fmt.Sprintf("watching %s (q to quit)", m.path)))
	b.WriteString("\n\n")

	if m.errText != "" {
		b.WriteString(watchErrorStyle.Render(m.errText))
	} else {
		b.WriteString(watchBodyStyle.Render(m.output))
	}

	if len(m.logLines) > 0 {
		b.WriteString("\n")
		b.WriteString(watchLogStyle.Render(strings.Join(m.logLines, "\n")))
	}

	v := tea.NewView(b.String())
	v.AltScreen = true

	return v
}
