package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"repodepot/internal/domain"
)

// RepositoryRenderer handles rendering of search result rows
type RepositoryRenderer struct {
	styles *Styles
}

// NewRepositoryRenderer creates a new repository renderer
func NewRepositoryRenderer(styles *Styles) *RepositoryRenderer {
	return &RepositoryRenderer{styles: styles}
}

// Row is one result as shown on the Results screen
type Row struct {
	Repo     domain.Repository
	Number   int  // 1-based position in the whole result sequence
	Cursor   bool // highlighted
	Selected bool // marked for cloning
	Local    bool // already has a checkout in the clone directory
}

// RenderRepository renders one result as a name line plus a detail line.
// compact drops the detail line when the terminal is short.
func (r *RepositoryRenderer) RenderRepository(row Row, searchQuery string, width int, compact bool) string {
	base := lipgloss.NewStyle()
	if row.Cursor {
		base = r.styles.HighlightBg
	}
	bg := base.GetBackground()

	var parts []string

	// Cursor and selection marker
	pointer := "  "
	if row.Cursor {
		pointer = "> "
	}
	parts = append(parts, base.Render(pointer))
	if row.Selected {
		parts = append(parts, r.styles.Marker.Background(bg).Render("*"))
	} else {
		parts = append(parts, base.Render(" "))
	}
	parts = append(parts, base.Render(fmt.Sprintf(" %d. ", row.Number)))

	nameStyle := base.Bold(row.Cursor)
	parts = append(parts, r.highlightMatch(row.Repo.DisplayName(), searchQuery,
		r.styles.Highlight.Background(bg), nameStyle))

	parts = append(parts, "  ",
		r.styles.Stars.Render(fmt.Sprintf("★ %d", row.Repo.Stars)), "  ",
		r.styles.Forks.Render(fmt.Sprintf("⑂ %d", row.Repo.Forks)))

	if row.Repo.Language != "" {
		lang := r.styles.Language.Foreground(lipgloss.Color(GetLanguageColor(row.Repo.Language)))
		parts = append(parts, "  ", lang.Render(row.Repo.Language))
	}
	if row.Local {
		parts = append(parts, r.styles.Dim.Render("  (cloned)"))
	}

	line := strings.Join(parts, "")
	if compact {
		return line
	}

	description := "No description"
	if row.Repo.HasDescription() {
		description = strings.Join(strings.Fields(row.Repo.Description), " ")
	}
	description = truncate(description, width-6)
	return line + "\n" + r.styles.Dim.Render("      "+description)
}

// highlightMatch highlights the first query term found in text
func (r *RepositoryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		index := strings.Index(lowerText, term)
		if index == -1 || len(lowerText) != len(text) {
			continue
		}

		before := text[:index]
		match := text[index : index+len(term)]
		after := text[index+len(term):]

		var result []string
		if before != "" {
			result = append(result, normalStyle.Render(before))
		}
		result = append(result, highlightStyle.Render(match))
		if after != "" {
			result = append(result, normalStyle.Render(after))
		}
		return strings.Join(result, "")
	}
	return normalStyle.Render(text)
}

// truncate shortens s to at most width cells, ending with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}

// tail keeps the last width cells of s, used for the query line
func tail(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	start := len(runes)
	used := 0
	for start > 0 {
		w := lipgloss.Width(string(runes[start-1]))
		if used+w > width-1 {
			break
		}
		used += w
		start--
	}
	return "…" + string(runes[start:])
}
