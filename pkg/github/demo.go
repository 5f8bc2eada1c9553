package github

import (
	"context"
	"strings"
	"time"
)

// demoDelay simulates network latency so the loading state is visible.
const demoDelay = 600 * time.Millisecond

// Demo is an offline RepoSource serving fixed placeholder repositories
// after a simulated delay. Any username returns the same fixture set, except
// "empty", which returns no repositories so the empty state can be
// exercised without network access.
type Demo struct {
	delay time.Duration
}

// NewDemo creates a demo source with the default simulated delay.
func NewDemo() *Demo {
	return &Demo{delay: demoDelay}
}

// ListRepos returns the placeholder repositories after the simulated delay.
// The delay is cut short if ctx is cancelled.
func (d *Demo) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := d.wait(ctx); err != nil {
		return nil, err
	}
	if username == "empty" {
		return []Repo{}, nil
	}

	repos := make([]Repo, len(demoRepos))
	copy(repos, demoRepos)
	for i := range repos {
		repos[i].FullName = username + "/" + repos[i].Name
		repos[i].Owner = RepoOwner{
			Login:     username,
			AvatarURL: "https://avatars.githubusercontent.com/u/0",
		}
		repos[i].HTMLURL = "https://github.com/" + repos[i].FullName
	}
	return repos, nil
}

// FetchOwner returns a placeholder profile for the given username.
func (d *Demo) FetchOwner(ctx context.Context, username string) (*Owner, error) {
	username = strings.TrimSpace(username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := d.wait(ctx); err != nil {
		return nil, err
	}

	n := len(demoRepos)
	if username == "empty" {
		n = 0
	}
	return &Owner{
		Login:       username,
		Name:        "Demo User",
		AvatarURL:   "https://avatars.githubusercontent.com/u/0",
		Bio:         "Placeholder profile served by the demo source.",
		PublicRepos: n,
		Followers:   42,
		HTMLURL:     "https://github.com/" + username,
	}, nil
}

func (d *Demo) wait(ctx context.Context) error {
	if d.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d.delay):
		return nil
	}
}

var demoRepos = []Repo{
	{
		ID:          1,
		Name:        "task-runner",
		Description: "A minimal task runner with file watching and parallel execution.",
		Language:    "Go",
		Stars:       1284,
		Forks:       97,
		UpdatedAt:   "2024-06-02T09:14:00Z",
		Topics:      []string{"cli", "automation", "build-tool", "watcher", "productivity"},
	},
	{
		ID:          2,
		Name:        "hexgrid",
		Description: "Hexagonal grid math for games: coordinates, pathfinding, field of view.",
		Language:    "TypeScript",
		Stars:       356,
		Forks:       24,
		UpdatedAt:   "2024-04-17T21:40:00Z",
		Topics:      []string{"gamedev", "geometry"},
	},
	{
		ID:          3,
		Name:        "chunked-upload",
		Description: "Resumable chunked file uploads with integrity checks.",
		Language:    "Python",
		Stars:       89,
		Forks:       11,
		UpdatedAt:   "2024-02-28T12:05:00Z",
		Topics:      []string{"http", "uploads", "storage", "resumable"},
	},
	{
		ID:        4,
		Name:      "dotfiles",
		Language:  "Shell",
		Stars:     7,
		Forks:     0,
		UpdatedAt: "2023-11-09T18:22:00Z",
	},
	{
		ID:          5,
		Name:        "ray-marcher",
		Description: "Tiny software ray marcher written over a weekend.",
		Language:    "Zig",
		Stars:       41,
		Forks:       3,
		Fork:        true,
		UpdatedAt:   "2023-08-30T07:45:00Z",
		Topics:      []string{"graphics"},
	},
	{
		ID:          6,
		Name:        "notes-api",
		Description: "Example REST API used in a blog series on testing strategies.",
		Language:    "Brainfuck",
		Stars:       12,
		Forks:       5,
		Archived:    true,
		UpdatedAt:   "2023-05-12T15:30:00Z",
		Topics:      []string{"tutorial", "rest-api", "testing"},
	},
}

var _ RepoSource = (*Demo)(nil)
