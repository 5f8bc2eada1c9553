package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jam-magsuci/github-search/pkg/github"
)

// testSource is a RepoSource whose fetches never complete on their own;
// tests drive the model by delivering result/error messages directly.
type testSource struct{}

func (testSource) ListRepos(ctx context.Context, username string) ([]github.Repo, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (testSource) FetchOwner(ctx context.Context, username string) (*github.Owner, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

// update is a test helper unwrapping the tea.Model return.
func update(t *testing.T, m SearchModel, msg tea.Msg) (SearchModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SearchModel)
	if !ok {
		t.Fatalf("Update returned %T, want SearchModel", next)
	}
	return sm, cmd
}

func TestBlankTriggerIsNoop(t *testing.T) {
	m := NewSearchModel(testSource{}, "")

	for _, input := range []string{"", "   "} {
		m.input = input
		next, cmd := update(t, m, enterKey)
		if cmd != nil {
			t.Errorf("input %q: trigger should not start a fetch", input)
		}
		if next.state != stateIdle {
			t.Errorf("input %q: state = %v, want idle", input, next.state)
		}
		if !strings.Contains(next.View(), "Type a GitHub username") {
			t.Errorf("input %q: not-yet-searched placeholder missing", input)
		}
	}
}

func TestTyping(t *testing.T) {
	m := NewSearchModel(testSource{}, "")

	for _, r := range []string{"o", "c", "t", "o"} {
		m, _ = update(t, m, runeKey(r))
	}
	if m.input != "octo" {
		t.Errorf("input = %q, want %q", m.input, "octo")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input != "oct" {
		t.Errorf("after backspace input = %q, want %q", m.input, "oct")
	}
}

func TestTriggerStartsLoading(t *testing.T) {
	m := NewSearchModel(testSource{}, "")
	m.input = "octocat"

	m, cmd := update(t, m, enterKey)
	if cmd == nil {
		t.Fatal("trigger should return a fetch command")
	}
	if m.state != stateLoading {
		t.Errorf("state = %v, want loading", m.state)
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, want 1", m.gen)
	}
	if !strings.Contains(m.View(), "Fetching repositories for octocat") {
		t.Error("loading view missing spinner message")
	}
}

func TestInputDisabledWhileLoading(t *testing.T) {
	m := NewSearchModel(testSource{}, "")
	m.input = "octocat"
	m, _ = update(t, m, enterKey)

	// Typing and re-triggering are both ignored in flight.
	m, _ = update(t, m, runeKey("x"))
	if m.input != "octocat" {
		t.Errorf("input = %q, typing must be ignored while loading", m.input)
	}
	m, cmd := update(t, m, enterKey)
	if cmd != nil {
		t.Error("enter must not start a second fetch while loading")
	}
	if m.gen != 1 {
		t.Errorf("gen = %d, want 1", m.gen)
	}
}

func TestResultsRenderCards(t *testing.T) {
	m := NewSearchModel(testSource{}, "")
	m.input = "octocat"
	m, _ = update(t, m, enterKey)

	m, _ = update(t, m, resultsMsg{gen: 1, repos: []github.Repo{
		{ID: 1, Name: "alpha", Stars: 5},
		{ID: 2, Name: "beta", Stars: 0},
	}})

	view := m.View()
	if got := strings.Count(view, "╭"); got != 2 {
		t.Errorf("rendered %d cards, want 2:\n%s", got, view)
	}
	ia, ib := strings.Index(view, "alpha"), strings.Index(view, "beta")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("cards missing or out of order:\n%s", view)
	}
	if !strings.Contains(view, "2 repositories") {
		t.Error("result count missing")
	}
}

func TestEmptyResultsShowPlaceholder(t *testing.T) {
	m := NewSearchModel(testSource{}, "")
	m.input = "octocat"
	m, _ = update(t, m, enterKey)

	m, _ = update(t, m, resultsMsg{gen: 1, repos: []github.Repo{}})

	view := m.View()
	if !strings.Contains(view, "No public repositories found for octocat") {
		t.Errorf("empty placeholder missing:\n%s", view)
	}
	if strings.Contains(view, "╭") {
		t.Error("no cards should render for an empty result")
	}
}

func TestErrorShowsRetry(t *testing.T) {
	m := NewSearchModel(testSource{}, "")
	m.input = "octocat"
	m, _ = update(t, m, enterKey)

	m, _ = update(t, m, fetchErrMsg{gen: 1, err: github.ErrNetwork})

	view := m.View()
	if !strings.Contains(view, "Press enter to retry") {
		t.Errorf("retry hint missing:\n%s", view)
	}

	// Retry re-issues the same request.
	m, cmd := update(t, m, enterKey)
	if cmd == nil {
		t.Fatal("retry should start a fetch")
	}
	if m.state != stateLoading || m.lastQuery != "octocat" || m.gen != 2 {
		t.Errorf("retry state = %v query = %q gen = %d", m.state, m.lastQuery, m.gen)
	}
}

func TestStaleCompletionsAreDiscarded(t *testing.T) {
	m := NewSearchModel(testSource{}, "")
	m.input = "octocat"
	m, _ = update(t, m, enterKey) // gen 1
	m, _ = update(t, m, fetchErrMsg{gen: 1, err: github.ErrNetwork})
	m, _ = update(t, m, enterKey) // gen 2, loading

	// The gen-1 fetch completing late must not take over the screen.
	m, _ = update(t, m, resultsMsg{gen: 1, repos: []github.Repo{{ID: 9, Name: "stale"}}})
	if m.state != stateLoading {
		t.Fatalf("state = %v, stale result must be discarded", m.state)
	}
	m, _ = update(t, m, fetchErrMsg{gen: 1, err: errors.New("stale error")})
	if m.state != stateLoading {
		t.Fatalf("state = %v, stale error must be discarded", m.state)
	}

	m, _ = update(t, m, resultsMsg{gen: 2, repos: []github.Repo{{ID: 1, Name: "fresh"}}})
	if m.state != stateResults {
		t.Fatalf("state = %v, want results", m.state)
	}
	if !strings.Contains(m.View(), "fresh") {
		t.Error("fresh result should render")
	}
}

func TestInitialUsernameSearchesImmediately(t *testing.T) {
	m := NewSearchModel(testSource{}, "torvalds")

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should schedule the initial trigger")
	}
	msg := cmd()
	if _, ok := msg.(triggerMsg); !ok {
		t.Fatalf("Init msg = %T, want triggerMsg", msg)
	}

	next, fetchCmd := update(t, m, msg)
	if next.state != stateLoading || fetchCmd == nil {
		t.Error("initial trigger should start loading")
	}

	empty := NewSearchModel(testSource{}, "")
	if empty.Init() != nil {
		t.Error("no initial username, no initial trigger")
	}
}

func TestErrorMessageMapping(t *testing.T) {
	notFound := errorMessage(github.ErrNotFound, "ghost")
	if !strings.Contains(notFound, `"ghost"`) || !strings.Contains(notFound, "not found") {
		t.Errorf("not-found message = %q", notFound)
	}

	network := errorMessage(github.ErrNetwork, "octocat")
	if !strings.Contains(network, "Could not reach GitHub") {
		t.Errorf("network message = %q", network)
	}

	timeout := errorMessage(context.DeadlineExceeded, "octocat")
	if !strings.Contains(timeout, "timed out") {
		t.Errorf("timeout message = %q", timeout)
	}
}
