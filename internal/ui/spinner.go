package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Status is a transient progress indicator. Start shows text while work is
// in flight; Succeed and Fail stop it and leave a final line. An empty text
// in Succeed or Fail reuses the last Start text; when there is none, nothing
// is printed.
type Status interface {
	Start(text string)
	Succeed(text string)
	Fail(text string)
}

// Spinner is the terminal Status. On a TTY it animates with a bubbletea
// program; elsewhere it prints plain lines.
type Spinner struct {
	out     io.Writer
	animate bool
	styles  styles

	mu   sync.Mutex
	text string
	prog *tea.Program
	done chan struct{}
}

// NewSpinner creates a Spinner writing to out.
func NewSpinner(out io.Writer) *Spinner {
	return &Spinner{
		out:     out,
		animate: IsTerminal(out),
		styles:  newStyles(lipgloss.NewRenderer(out)),
	}
}

// Start shows text next to the spinner, replacing any text already shown.
func (s *Spinner) Start(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	if !s.animate {
		fmt.Fprintf(s.out, "- %s\n", text)
		return
	}
	if s.prog != nil {
		s.prog.Send(textMsg(text))
		return
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(s.styles.primary))
	s.prog = tea.NewProgram(spinnerModel{spinner: sp, text: text},
		tea.WithOutput(s.out), tea.WithInput(nil))
	s.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(s.prog, s.done)
}

// Succeed stops the spinner and prints a check mark line.
func (s *Spinner) Succeed(text string) {
	s.finish("✔", s.styles.success, text)
}

// Fail stops the spinner and prints a cross line.
func (s *Spinner) Fail(text string) {
	s.finish("✖", s.styles.err, text)
}

func (s *Spinner) finish(symbol string, style lipgloss.Style, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.prog != nil {
		s.prog.Send(stopMsg{})
		<-s.done
		s.prog = nil
		s.done = nil
	}

	if text == "" {
		text = s.text
	}
	s.text = ""
	if text == "" {
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", style.Render(symbol), text)
}

type textMsg string

type stopMsg struct{}

type spinnerModel struct {
	spinner  spinner.Model
	text     string
	quitting bool
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case textMsg:
		m.text = string(msg)
		return m, nil
	case stopMsg:
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.spinner.View() + " " + m.text
}
