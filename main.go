package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iVamsi/snapnotify/internal/config"
	"github.com/iVamsi/snapnotify/internal/desktop"
	"github.com/iVamsi/snapnotify/internal/duration"
	"github.com/iVamsi/snapnotify/internal/notify"
	"github.com/iVamsi/snapnotify/internal/presenter"
	"github.com/iVamsi/snapnotify/internal/ui/render"
	"github.com/iVamsi/snapnotify/internal/ui/styles"
	"github.com/iVamsi/snapnotify/internal/ui/toastbar"
)

// renderErrMsg surfaces a presenter failure in the status line.
type renderErrMsg struct {
	err error
}

type model struct {
	cfg     *config.Config
	theme   *styles.Theme
	bar     toastbar.Model
	width   int
	height  int
	saved   int // demo undo counter
	lastErr string
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}
	theme := cfg.BuildTheme()
	notify.SetTheme(theme)

	return model{
		cfg:   cfg,
		theme: theme,
		bar:   toastbar.New(theme),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.SetWidth(msg.Width)
		return m, nil

	case renderErrMsg:
		m.lastErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		// The toast bar owns enter/esc while a toast is showing.
		if m.bar.Visible() && (msg.String() == "enter" || msg.String() == "esc") {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			notify.Success("Changes saved", notify.WithDuration(m.cfg.DefaultDuration()))
		case "e":
			notify.Error("Could not reach the server")
		case "w":
			notify.Warning("This action cannot be undone")
		case "i":
			notify.Info("New version available")
		case "a":
			m.saved++
			n := m.saved
			notify.Show(fmt.Sprintf("Item %d archived", n),
				notify.WithAction("Undo", func() {
					notify.Info(fmt.Sprintf("Item %d restored", n))
				}))
		case "c":
			notify.Show("Blink and you miss it", notify.WithDurationMillis(750))
		case "n":
			notify.Show("Sticks around until dismissed",
				notify.WithDuration(duration.FromStandard(duration.Indefinite)))
		case "x":
			notify.ClearAll()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	return m, cmd
}

func (m model) View() string {
	title := styles.ApplyGradient("snapnotify demo", m.theme.Accent, m.theme.Info)

	s := m.theme.S()
	var b strings.Builder
	b.WriteString(" " + title + "\n")
	b.WriteString(" " + render.Separator(max(m.width-2, 16)) + "\n\n")
	b.WriteString(" " + s.Muted.Render("s success  e error  w warning  i info") + "\n")
	b.WriteString(" " + s.Muted.Render("a action   c 750ms  n sticky   x clear  q quit") + "\n\n")

	depth := fmt.Sprintf("queued: %d", notify.Queue().Len())
	line := render.Row(" "+s.Base.Render(depth), m.statusRight(), max(m.width-1, 20))
	b.WriteString(line + "\n\n")

	if bar := m.bar.View(); bar != "" {
		b.WriteString(lipgloss.PlaceHorizontal(max(m.width, 1), lipgloss.Center, bar))
	}
	return b.String()
}

func (m model) statusRight() string {
	if m.lastErr == "" {
		return ""
	}
	return m.theme.S().Error.Render(render.Truncate("render: "+m.lastErr, 40)) + " "
}

func main() {
	m, err := initialModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapnotify: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Mount this process's presentation surface. Register guards
	// against a second surface double-displaying the same queue.
	if !notify.RegisterPresenter() {
		fmt.Fprintln(os.Stderr, "snapnotify: presenter already registered")
		os.Exit(1)
	}
	defer notify.UnregisterPresenter()

	var renderer presenter.Renderer
	if m.cfg.Desktop {
		renderer, err = desktop.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "snapnotify: %v\n", err)
			os.Exit(1)
		}
	} else {
		renderer = toastbar.NewRenderer(p.Send)
	}

	loop := presenter.NewLoop(notify.Queue(), renderer,
		presenter.WithErrorHook(func(err error) {
			p.Send(renderErrMsg{err: err})
		}))
	loop.Start()

	_, runErr := p.Run()
	loop.Stop()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "snapnotify: %v\n", runErr)
		os.Exit(1)
	}
}
