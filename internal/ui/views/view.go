package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"repodepot/internal/domain"
	"repodepot/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Screen        types.Screen
	Query         string
	LastQuery     string
	Searching     bool
	Visible       []domain.Repository // current page only
	Offset        int                 // index of Visible[0] in the whole sequence
	Selected      []bool              // parallel to Visible
	Local         []bool              // parallel to Visible, already cloned
	CursorIndex   int
	Page          int // zero based
	PageCount     int
	Total         int
	SelectedCount int
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	ShortHelp     []key.Binding
	FullHelp      [][]key.Binding
	CloneDir      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	repoRender *RepositoryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		repoRender: NewRepositoryRenderer(styles),
	}
}

// Render produces the complete view. It only reads the state.
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := r.renderTitle(state)
	var status string
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		status = style.Render(truncate(state.StatusMessage, contentWidth(state.Width)))
	}
	var helpText string
	if state.Screen != types.ScreenHelp {
		helpText = r.styles.Help.Render(state.HelpModel.ShortHelpView(state.ShortHelp))
	}

	content.WriteString(title)
	content.WriteString("\n")

	switch state.Screen {
	case types.ScreenResults:
		// Lines left for result rows once everything else is drawn
		budget := -1
		if state.Height > 0 {
			budget = state.Height - r.styles.Main.GetVerticalFrameSize() -
				lipgloss.Height(title) - resultsChromeLines
			if status != "" {
				budget -= lipgloss.Height(status)
			}
			if helpText != "" {
				budget -= lipgloss.Height(helpText)
			}
		}
		content.WriteString(r.renderResults(state, budget))
	case types.ScreenHelp:
		content.WriteString(r.renderHelpContent(state))
	default:
		content.WriteString(r.renderSearch(state))
	}

	if status != "" {
		content.WriteString("\n")
		content.WriteString(status)
	}

	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the logo with the selection count right aligned
func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("repo-depot")

	var indicators []string
	if state.Searching {
		indicators = append(indicators, r.styles.StatusLoading.Render("⟳ Searching"))
	}
	if state.SelectedCount > 0 {
		indicators = append(indicators, r.styles.Marker.Render(fmt.Sprintf("%d selected", state.SelectedCount)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	padding := contentWidth(state.Width) - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	// Keep the indicators on the logo line, above its margin
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", padding), right)
}

// renderSearch renders the query prompt
func (r *Renderer) renderSearch(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")
	query := tail(state.Query, contentWidth(state.Width)-lipgloss.Width(prompt)-1)

	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString(r.styles.Query.Render(query))
	if !state.Searching {
		b.WriteString(r.styles.Highlight.Render("█"))
	}
	b.WriteString("\n")
	if state.CloneDir != "" {
		b.WriteString(r.styles.Dim.Render("Selected repositories are cloned into " + state.CloneDir + " on exit"))
		b.WriteString("\n")
	}
	return b.String()
}

// resultsChromeLines counts the header, its blank line, the blank line and
// the page indicator around the result rows
const resultsChromeLines = 4

// renderResults renders the visible page of results into budget lines of
// rows. A negative budget means the terminal height is unknown.
func (r *Renderer) renderResults(state ViewState, budget int) string {
	var lines []string

	header := fmt.Sprintf("Results for %q", state.LastQuery)
	lines = append(lines, r.styles.Dim.Render(truncate(header, contentWidth(state.Width))), "")

	if state.Total == 0 || len(state.Visible) == 0 {
		lines = append(lines, r.styles.Dim.Render("No repositories found."))
		return strings.Join(lines, "\n")
	}

	n := len(state.Visible)
	compact := budget >= 0 && 2*n > budget
	first, last := 0, n
	var scroll string
	if budget >= 0 && n > budget {
		first, last = window(state.CursorIndex, n, budget-1)
		scroll = r.styles.Dim.Render(scrollIndicator(first, n-last))
	}

	for i := first; i < last; i++ {
		row := Row{
			Repo:     state.Visible[i],
			Number:   state.Offset + i + 1,
			Cursor:   i == state.CursorIndex,
			Selected: i < len(state.Selected) && state.Selected[i],
			Local:    i < len(state.Local) && state.Local[i],
		}
		lines = append(lines, r.repoRender.RenderRepository(row, state.LastQuery, contentWidth(state.Width), compact))
	}
	if scroll != "" {
		lines = append(lines, scroll)
	}

	lines = append(lines, "", r.styles.Page.Render(
		fmt.Sprintf("Page %d/%d · %d results", state.Page+1, state.PageCount, state.Total)))
	return strings.Join(lines, "\n")
}

// renderHelpContent renders the key reference for every screen
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder

	sections := []string{"Search", "Results"}
	for i, group := range state.FullHelp {
		title := "Keys"
		if i < len(sections) {
			title = sections[i]
		}
		b.WriteString(r.styles.Section.Render(title))
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			if h.Key == "" {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				r.styles.Key.Render(fmt.Sprintf("%-10s", h.Key)),
				r.styles.Desc.Render(h.Desc)))
		}
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("Tab marks a repository for cloning. Selections survive new searches."))
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("Press q to quit"))
	return b.String()
}

// window returns the half-open range of size rows out of n that keeps the
// cursor visible, at least one row.
func window(cursor, n, size int) (first, last int) {
	if size < 1 {
		size = 1
	}
	if size >= n {
		return 0, n
	}
	if cursor >= size {
		first = cursor - size + 1
	}
	if first > n-size {
		first = n - size
	}
	return first, first + size
}

func scrollIndicator(above, below int) string {
	var parts []string
	if above > 0 {
		parts = append(parts, fmt.Sprintf("↑ %d more above", above))
	}
	if below > 0 {
		parts = append(parts, fmt.Sprintf("↓ %d more below", below))
	}
	return strings.Join(parts, " · ")
}

// contentWidth is the terminal width minus the main container padding
func contentWidth(width int) int {
	if width <= 0 {
		width = 80
	}
	if width <= 4 {
		return 1
	}
	return width - 4
}
