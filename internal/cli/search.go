package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// searchCommand creates the interactive search command.
func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [username]",
		Short: "Interactively search a user's public repositories",
		Long: `Open the interactive search widget.

Type a GitHub username and press enter to fetch that user's public
repositories, rendered as cards with name, description, language, stars,
forks, topics, and last-updated date. Passing a username searches
immediately.

Examples:
  github-search search              # Start with an empty input
  github-search search torvalds     # Search right away
  github-search search --demo       # Placeholder data, no network`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}

			m := NewSearchModel(c.newSource(), initial)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
