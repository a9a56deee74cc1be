package client

import (
	"context"
	"html"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jokebox/src/core/domain"
	"jokebox/src/core/ports"
)

// Texts shown in place of a joke.
const (
	MessageFetchFailed = "Our server has a slow brain, sorry."
	MessageNoJokes     = "our jokers are on holiday"
	MessageLoading     = "Fetching a joke..."
)

type viewState int

const (
	stateLoading viewState = iota
	stateError
	stateLoaded
	stateEmpty
)

func (s viewState) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case stateError:
		return "error"
	case stateLoaded:
		return "loaded"
	case stateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// jokeMsg carries a completed fetch. joke is nil when the server had none.
type jokeMsg struct {
	joke *domain.Joke
}

// fetchErrMsg carries a failed fetch.
type fetchErrMsg struct {
	err error
}

type keyMap struct {
	New    key.Binding
	Reveal key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New: key.NewBinding(
			key.WithKeys("n", " "),
			key.WithHelp("n/space", "new joke"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "show answer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

type styles struct {
	Box      lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Hidden   lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Key      lipgloss.Style
	Spinner  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f59e0b")).
			Padding(1, 2).
			Width(60),
		Question: lipgloss.NewStyle().Bold(true),
		Answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Hidden:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")).Faint(true),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true),
		Spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	}
}

// Model is the single joke view. It is in exactly one of the loading,
// error, loaded or empty states, and holds at most one request in flight.
type Model struct {
	source  ports.JokeSource
	state   viewState
	joke    *domain.Joke
	reveal  bool
	err     error
	spinner spinner.Model
	keys    keyMap
	styles  styles
}

// New creates a Model drawing jokes from source. It starts in the loading
// state; Init issues the first request.
func New(source ports.JokeSource) Model {
	st := defaultStyles()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Spinner

	return Model{
		source:  source,
		state:   stateLoading,
		spinner: sp,
		keys:    defaultKeyMap(),
		styles:  st,
	}
}

// Init starts the spinner and the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

// Update applies one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.New):
			if m.state == stateLoading {
				return m, nil
			}
			m.state = stateLoading
			m.reveal = false
			return m, tea.Batch(m.spinner.Tick, m.fetch())
		case key.Matches(msg, m.keys.Reveal):
			if m.state == stateLoaded {
				m.reveal = !m.reveal
			}
			return m, nil
		}

	case jokeMsg:
		m.err = nil
		m.reveal = false
		m.joke = msg.joke
		if msg.joke == nil {
			m.state = stateEmpty
		} else {
			m.state = stateLoaded
		}
		return m, nil

	case fetchErrMsg:
		m.err = msg.err
		m.joke = nil
		m.reveal = false
		m.state = stateError
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	var body strings.Builder

	switch m.state {
	case stateLoading:
		body.WriteString(m.spinner.View() + " " + MessageLoading)
	case stateError:
		body.WriteString(m.styles.Error.Render(MessageFetchFailed))
	case stateEmpty:
		body.WriteString(m.styles.Muted.Render(MessageNoJokes))
	case stateLoaded:
		body.WriteString(m.styles.Question.Render(html.UnescapeString(m.joke.Question)))
		body.WriteString("\n\n")
		if m.reveal {
			body.WriteString(m.styles.Answer.Render(html.UnescapeString(m.joke.Answer)))
		} else {
			body.WriteString(m.styles.Hidden.Render("(answer hidden)"))
		}
	}

	return m.styles.Box.Render(body.String()) + "\n" + m.helpView() + "\n"
}

func (m Model) helpView() string {
	hint := func(b key.Binding, enabled bool) string {
		h := b.Help()
		if !enabled {
			return m.styles.Muted.Render(h.Key + " " + h.Desc)
		}
		return m.styles.Key.Render(h.Key) + " " + h.Desc
	}

	parts := []string{hint(m.keys.New, m.state != stateLoading)}
	if m.state == stateLoaded {
		reveal := m.keys.Reveal
		if m.reveal {
			reveal.SetHelp("r/enter", "hide answer")
		}
		parts = append(parts, hint(reveal, true))
	}
	parts = append(parts, hint(m.keys.Quit, true))
	return strings.Join(parts, m.styles.Muted.Render(" • "))
}

// fetch returns a command that asks the source for one joke.
func (m Model) fetch() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		joke, err := source.Random(context.Background())
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return jokeMsg{joke: joke}
	}
}

// Run starts the interactive view and blocks until the user quits or ctx is
// cancelled. Cancellation is a normal exit.
func Run(ctx context.Context, source ports.JokeSource, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(source), opts...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
