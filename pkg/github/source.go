package github

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RepoSource lists a user's public repositories. It is implemented by the
// live API [Client] and by the offline [Demo] source.
type RepoSource interface {
	// ListRepos returns the user's public repositories, most recently
	// updated first, capped at 100.
	ListRepos(ctx context.Context, username string) ([]Repo, error)

	// FetchOwner returns the user's profile.
	FetchOwner(ctx context.Context, username string) (*Owner, error)
}

// Lookup fetches a user's profile and repository list concurrently.
//
// The repository list is the primary result: its failure fails the lookup.
// The profile only feeds the header line, so its failure is swallowed and
// Lookup returns a nil Owner instead.
func Lookup(ctx context.Context, src RepoSource, username string) (*Owner, []Repo, error) {
	var (
		owner *Owner
		repos []Repo
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		repos, err = src.ListRepos(ctx, username)
		return err
	})
	g.Go(func() error {
		if o, err := src.FetchOwner(ctx, username); err == nil {
			owner = o
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return owner, repos, nil
}
