package people

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/people-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	nameHeading = "NAME"
	ageHeading  = "AGE"
	columnGap   = 3
)

type RenderOptions struct {
	// RefreshedAt is the time of the last successful fetch; zero hides it.
	RefreshedAt time.Time
	// Title replaces the default "People" heading.
	Title string
}

// View renders people in the order given. Both the one-shot CLI output and
// the interactive view draw the list through it.
func View(people []domain.Person, opts RenderOptions) string {
	return renderView(people, opts, newStyles())
}

func renderView(people []domain.Person, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "People"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(headerLine(len(people), opts.RefreshedAt)),
	}

	if len(people) == 0 {
		lines = append(lines, s.list.Render(s.empty.Render("No people available.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.list.Render(renderTable(people, s)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(count int, refreshedAt time.Time) string {
	line := fmt.Sprintf("people: %d", count)
	if refreshedAt.IsZero() {
		return line
	}

	return line + " · refreshed " + refreshedAt.Format("15:04:05")
}

func renderTable(people []domain.Person, s styles) string {
	nameWidth := lipgloss.Width(nameHeading)
	for _, person := range people {
		if w := lipgloss.Width(person.DisplayName()); w > nameWidth {
			nameWidth = w
		}
	}
	ageWidth := lipgloss.Width(ageHeading)
	for _, person := range people {
		if w := lipgloss.Width(person.AgeLabel()); w > ageWidth {
			ageWidth = w
		}
	}

	column := lipgloss.NewStyle().Width(nameWidth + columnGap)
	rows := make([]string, 0, len(people)+2)
	rows = append(rows,
		s.header.Render(column.Render(nameHeading)+ageHeading),
		s.rule.Render(strings.Repeat("─", nameWidth+columnGap+ageWidth)),
	)

	for _, person := range people {
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			column.Render(s.name.Render(person.DisplayName())),
			s.age.Render(person.AgeLabel()),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
