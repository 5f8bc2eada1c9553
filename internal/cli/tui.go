package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jam-magsuci/github-search/pkg/cards"
	"github.com/jam-magsuci/github-search/pkg/github"
)

// searchState tracks which of the widget's screens is showing.
type searchState int

const (
	stateIdle    searchState = iota // nothing searched yet
	stateLoading                    // fetch in flight
	stateResults                    // cards (or the empty placeholder)
	stateError                      // failure with retry hint
)

// resultsMsg carries a completed lookup back into the model.
type resultsMsg struct {
	gen   int
	owner *github.Owner
	repos []github.Repo
}

// fetchErrMsg carries a failed lookup back into the model.
type fetchErrMsg struct {
	gen int
	err error
}

// spinnerTickMsg drives the loading animation.
type spinnerTickMsg struct{}

// triggerMsg fires the initial search when a username was passed on the
// command line.
type triggerMsg struct{}

// SearchModel is the bubbletea model for the interactive search widget:
// a username input, a trigger (enter), and a results area cycling through
// loading, error, empty, and card-grid states.
type SearchModel struct {
	source github.RepoSource

	input     string
	state     searchState
	lastQuery string

	// gen numbers each triggered fetch; completions carrying a stale gen
	// are discarded, so the latest trigger always wins.
	gen int

	owner *github.Owner
	repos []github.Repo
	err   error

	width  int
	height int
	frame  int
}

// NewSearchModel creates the widget. A non-empty initial username pre-fills
// the input and searches immediately.
func NewSearchModel(source github.RepoSource, initial string) SearchModel {
	return SearchModel{
		source: source,
		input:  strings.TrimSpace(initial),
		width:  100,
	}
}

func (m SearchModel) Init() tea.Cmd {
	if m.input != "" {
		return func() tea.Msg { return triggerMsg{} }
	}
	return nil
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case triggerMsg:
		return m.trigger()

	case resultsMsg:
		if msg.gen != m.gen {
			return m, nil // stale fetch, a newer trigger owns the screen
		}
		m.state = stateResults
		m.owner = msg.owner
		m.repos = msg.repos
		m.err = nil
		return m, nil

	case fetchErrMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.state = stateError
		m.err = msg.err
		return m, nil

	case spinnerTickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		m.frame++
		return m, spinnerTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SearchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	// The input is the only control; it is disabled while a fetch is in
	// flight so a second trigger can't race the first.
	if m.state == stateLoading {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		return m.trigger()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

// trigger starts a fetch for the current input. Blank or whitespace-only
// input is a no-op; the not-yet-searched placeholder stays visible.
func (m SearchModel) trigger() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.input)
	if query == "" {
		return m, nil
	}

	m.state = stateLoading
	m.lastQuery = query
	m.gen++
	m.frame = 0

	gen := m.gen
	source := m.source
	fetch := func() tea.Msg {
		owner, repos, err := github.Lookup(context.Background(), source, query)
		if err != nil {
			return fetchErrMsg{gen: gen, err: err}
		}
		return resultsMsg{gen: gen, owner: owner, repos: repos}
	}
	return m, tea.Batch(fetch, spinnerTick())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m SearchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("GitHub Repository Search"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("⏎ search  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.inputView())
	b.WriteString("\n\n")

	switch m.state {
	case stateIdle:
		b.WriteString(StyleDim.Render("Type a GitHub username and press enter to search."))
	case stateLoading:
		frame := spinnerFrames[m.frame%len(spinnerFrames)]
		b.WriteString(styleIconSpinner.Render(frame))
		b.WriteString(" ")
		b.WriteString(StyleDim.Render(fmt.Sprintf("Fetching repositories for %s...", m.lastQuery)))
	case stateError:
		b.WriteString(styleIconError.Render(iconError))
		b.WriteString(" ")
		b.WriteString(StyleError.Render(errorMessage(m.err, m.lastQuery)))
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("Press enter to retry."))
	case stateResults:
		b.WriteString(m.resultsView())
	}

	b.WriteString("\n")
	return b.String()
}

func (m SearchModel) inputView() string {
	prompt := StyleHighlight.Render("Username: ")
	if m.state == stateLoading {
		return prompt + StyleDim.Render(m.input)
	}
	return prompt + StyleValue.Render(m.input) + StyleHighlight.Render("█")
}

func (m SearchModel) resultsView() string {
	var b strings.Builder

	if header := cards.OwnerHeader(m.owner); header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}

	if len(m.repos) == 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("No public repositories found for %s.", m.lastQuery)))
		return b.String()
	}

	b.WriteString(cards.Grid(m.repos, m.width))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d repositories", len(m.repos))))
	return b.String()
}

// errorMessage maps a fetch failure to the user-facing reason.
func errorMessage(err error, username string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, github.ErrNotFound):
		return fmt.Sprintf("User %q not found.", username)
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out."
	case errors.Is(err, github.ErrNetwork):
		return fmt.Sprintf("Could not reach GitHub: %v", err)
	default:
		return err.Error()
	}
}
