package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jam-magsuci/github-search/pkg/cards"
	"github.com/jam-magsuci/github-search/pkg/github"
)

// defaultListTimeout bounds the one-shot fetch.
const defaultListTimeout = 30 * time.Second

// listCommand creates the non-interactive one-shot command.
func (c *CLI) listCommand() *cobra.Command {
	var (
		jsonOut bool
		width   int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "Print a user's public repositories as cards",
		Long: `Fetch a user's public repositories once and print them as cards.

Examples:
  github-search list torvalds
  github-search list torvalds --json
  github-search list torvalds --width 200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), args[0], jsonOut, width, timeout)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print raw repository summaries as JSON")
	cmd.Flags().IntVar(&width, "width", 120, "layout width for the card grid")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultListTimeout, "timeout for the fetch")

	return cmd
}

func (c *CLI) runList(ctx context.Context, username string, jsonOut bool, width int, timeout time.Duration) error {
	if err := github.ValidateUsername(username); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	source := c.newSource()
	pg := newProgress(c.Logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Fetching repositories for %s...", username))
	spinner.Start()
	owner, repos, err := github.Lookup(ctx, source, username)
	if err != nil {
		spinner.StopWithError(errorMessage(err, username))
		return err
	}
	spinner.Stop()

	c.Logger.Debug("Fetch complete", "user", username, "repos", len(repos))

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(repos)
	}

	if header := cards.OwnerHeader(owner); header != "" {
		fmt.Println(header)
		fmt.Println()
	} else {
		// Lookup tolerates a failed profile fetch; the cards still print.
		printWarning("Profile for %s unavailable", username)
	}

	if len(repos) == 0 {
		printInfo("No public repositories found for %s", username)
		return nil
	}

	fmt.Println(cards.Grid(repos, width))
	pg.done(fmt.Sprintf("Fetched %d repositories", len(repos)))
	return nil
}
