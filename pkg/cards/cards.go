// Package cards renders repository summaries as terminal cards.
//
// Rendering is a pure mapping from a [github.Repo] to a styled string; the
// package holds no state. Cards are fixed-width so [Grid] can lay them out
// in as many columns as the terminal fits.
package cards

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jam-magsuci/github-search/pkg/github"
)

// CardWidth is the content width of one card, excluding the border.
const CardWidth = 40

// maxTopics is how many topic badges render before collapsing into "+N".
const maxTopics = 3

var (
	colorDim    = lipgloss.Color("240")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("255")
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorBlue   = lipgloss.Color("75")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(CardWidth)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	descStyle     = lipgloss.NewStyle().Foreground(colorGray)
	noDescStyle   = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	topicStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	overflowStyle = lipgloss.NewStyle().Foreground(colorDim)
	countStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	starStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	dateStyle     = lipgloss.NewStyle().Foreground(colorDim)

	forkTagStyle     = lipgloss.NewStyle().Foreground(colorDim)
	archivedTagStyle = lipgloss.NewStyle().Foreground(colorYellow)

	headerNameStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	headerDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// neutralColor is the fallback indicator color for unknown languages.
var neutralColor = colorGray

// languageColors maps primary languages to indicator colors, loosely
// following the linguist palette mapped onto ANSI 256.
var languageColors = map[string]lipgloss.Color{
	"Go":         lipgloss.Color("38"),
	"JavaScript": lipgloss.Color("221"),
	"TypeScript": lipgloss.Color("75"),
	"Python":     lipgloss.Color("68"),
	"Rust":       lipgloss.Color("180"),
	"Java":       lipgloss.Color("130"),
	"Ruby":       lipgloss.Color("124"),
	"C":          lipgloss.Color("240"),
	"C++":        lipgloss.Color("204"),
	"C#":         lipgloss.Color("34"),
	"PHP":        lipgloss.Color("103"),
	"Swift":      lipgloss.Color("208"),
	"Kotlin":     lipgloss.Color("135"),
	"Shell":      lipgloss.Color("113"),
	"HTML":       lipgloss.Color("166"),
	"CSS":        lipgloss.Color("97"),
	"Dart":       lipgloss.Color("45"),
	"Elixir":     lipgloss.Color("97"),
	"Haskell":    lipgloss.Color("61"),
	"Lua":        lipgloss.Color("26"),
	"Zig":        lipgloss.Color("214"),
}

// LanguageColor returns the indicator color for a primary language.
// Unknown or empty languages get a neutral gray.
func LanguageColor(language string) lipgloss.Color {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return neutralColor
}

// FormatUpdated renders an RFC 3339 timestamp as "Jan 2, 2006" in a fixed
// locale. Unparseable input is returned as-is rather than failing.
func FormatUpdated(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("Jan 2, 2006")
}

// FormatCount renders a non-negative count with comma grouping.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// Truncate shortens s to at most width runes, appending an ellipsis when
// anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// TopicBadges returns up to maxTopics "#topic" badges, followed by a "+N"
// overflow badge when more topics exist. Order is preserved.
func TopicBadges(topics []string) []string {
	if len(topics) == 0 {
		return nil
	}
	badges := make([]string, 0, maxTopics+1)
	for i, topic := range topics {
		if i == maxTopics {
			badges = append(badges, fmt.Sprintf("+%d", len(topics)-maxTopics))
			break
		}
		badges = append(badges, "#"+topic)
	}
	return badges
}

// Render maps one repository summary to a card.
func Render(r github.Repo) string {
	var b strings.Builder

	// Tags eat into the title's width so the line never wraps.
	var tags []string
	nameWidth := CardWidth - 2
	if r.Fork {
		tags = append(tags, forkTagStyle.Render("fork"))
		nameWidth -= len(" fork")
	}
	if r.Archived {
		tags = append(tags, archivedTagStyle.Render("archived"))
		nameWidth -= len(" archived")
	}
	b.WriteString(titleStyle.Render(Truncate(r.Name, nameWidth)))
	for _, tag := range tags {
		b.WriteString(" " + tag)
	}
	b.WriteString("\n")

	if desc := strings.TrimSpace(r.Description); desc != "" {
		b.WriteString(descStyle.Render(Truncate(desc, CardWidth-2)))
	} else {
		b.WriteString(noDescStyle.Render("No description provided"))
	}
	b.WriteString("\n")

	if badges := TopicBadges(r.Topics); badges != nil {
		parts := make([]string, len(badges))
		for i, badge := range badges {
			// Truncate before styling so the cut can't land inside an
			// escape sequence.
			badge = Truncate(badge, CardWidth-2)
			if strings.HasPrefix(badge, "+") {
				parts[i] = overflowStyle.Render(badge)
			} else {
				parts[i] = topicStyle.Render(badge)
			}
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	b.WriteString(statsLine(r))

	return cardStyle.Render(b.String())
}

// statsLine renders the language dot, star/fork counts, and updated date.
func statsLine(r github.Repo) string {
	var parts []string

	if r.Language != "" {
		dot := lipgloss.NewStyle().Foreground(LanguageColor(r.Language)).Render("●")
		parts = append(parts, dot+" "+countStyle.Render(r.Language))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(neutralColor).Render("●"))
	}

	parts = append(parts,
		starStyle.Render("★")+" "+countStyle.Render(FormatCount(r.Stars)),
		countStyle.Render("⑂ "+FormatCount(r.Forks)),
		dateStyle.Render(FormatUpdated(r.UpdatedAt)),
	)

	return strings.Join(parts, "  ")
}

// Grid lays cards out in as many columns as fit the given terminal width,
// preserving the input order row by row. A non-positive width renders a
// single column.
func Grid(repos []github.Repo, width int) string {
	if len(repos) == 0 {
		return ""
	}

	// Border adds 2 to each card, plus a 1-cell gap between columns.
	cols := max(1, (width+1)/(CardWidth+3))

	rendered := make([]string, len(repos))
	for i, r := range repos {
		rendered[i] = Render(r)
	}

	var rows []string
	for start := 0; start < len(rendered); start += cols {
		end := min(start+cols, len(rendered))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// OwnerHeader renders the searched user's profile line above the grid.
// A nil owner (profile fetch failed) renders nothing.
func OwnerHeader(o *github.Owner) string {
	if o == nil {
		return ""
	}

	name := o.Login
	if o.Name != "" && o.Name != o.Login {
		name = fmt.Sprintf("%s (%s)", o.Name, o.Login)
	}

	line := headerNameStyle.Render(name)
	details := fmt.Sprintf("%s repos · %s followers", FormatCount(o.PublicRepos), FormatCount(o.Followers))
	line += "  " + headerDimStyle.Render(details)

	if bio := strings.TrimSpace(o.Bio); bio != "" {
		line += "\n" + headerDimStyle.Render(Truncate(bio, 80))
	}
	return line
}
