// Package display renders MIXR recipes for the terminal using lipgloss.
//
// A [Printer] binds a lipgloss renderer to its writer, so colors are only
// emitted when the writer is a color-capable terminal. Output written to a
// file or buffer is plain text with the same layout.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/hammamikhairi/mixr/internal/domain"
	"github.com/hammamikhairi/mixr/internal/format"
	"github.com/hammamikhairi/mixr/internal/recipe"
)

// ── Styles ───────────────────────────────────────────────────────

// BannerStyle is the muted slate used for the startup banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#94a3b8"))

type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	rating    lipgloss.Style
	ok        lipgloss.Style
	urgent    lipgloss.Style
	card      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#bae6fd")),
		heading:   r.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		primary:   r.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		secondary: r.NewStyle().Foreground(lipgloss.Color("#71717a")),
		rating:    r.NewStyle().Foreground(lipgloss.Color("#fde68a")),
		ok:        r.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		urgent:    r.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1),
	}
}

// ── Printer ──────────────────────────────────────────────────────

// Printer writes styled output to a single writer.
type Printer struct {
	out io.Writer
	st  styles
}

// NewPrinter creates a printer for out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, st: newStyles(lipgloss.NewRenderer(out))}
}

// Println writes a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// PrintHint prints dimmed secondary text.
func (p *Printer) PrintHint(text string) {
	fmt.Fprintln(p.out, p.st.secondary.Render(text))
}

// PrintUrgent prints an error or alert line.
func (p *Printer) PrintUrgent(text string) {
	fmt.Fprintln(p.out, p.st.urgent.Render(text))
}

// PrintCheck prints a validation outcome such as "✓ display name".
func (p *Printer) PrintCheck(label string, ok bool) {
	if ok {
		fmt.Fprintln(p.out, p.st.ok.Render("✓ "+label))
		return
	}
	fmt.Fprintln(p.out, p.st.urgent.Render("✗ "+label))
}

// PrintRecipe prints a recipe card. agg may be nil when ratings are unknown.
func (p *Printer) PrintRecipe(r *domain.Recipe, agg *domain.RatingAggregate) {
	fmt.Fprintln(p.out, p.RenderRecipe(r, agg))
}

// PrintRecipeList prints one summary line per recipe.
func (p *Printer) PrintRecipeList(recipes []domain.Recipe, aggs map[int]domain.RatingAggregate) {
	fmt.Fprintln(p.out, p.RenderRecipeList(recipes, aggs))
}

// RenderRecipe returns a bordered card with the recipe's mood, rating,
// ingredients, numbered steps, and distinct equipment.
func (p *Printer) RenderRecipe(r *domain.Recipe, agg *domain.RatingAggregate) string {
	st := p.st
	var b strings.Builder

	title := r.Name
	if r.Mood != nil && r.Mood.Emoji != "" {
		title = r.Mood.Emoji + " " + title
	}
	b.WriteString(st.title.Render(title))
	b.WriteByte('\n')

	meta := []string{}
	if r.Mood != nil {
		meta = append(meta, r.Mood.Name)
	}
	if agg != nil {
		meta = append(meta, st.rating.Render(format.RatingDisplay(*agg)))
	}
	if len(meta) > 0 {
		b.WriteString(st.secondary.Render(strings.Join(meta, " · ")))
		b.WriteByte('\n')
	}
	if r.Description != "" {
		b.WriteString(st.primary.Render(r.Description))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(st.heading.Render(fmt.Sprintf("Ingredients (%d)", recipe.IngredientCount(r))))
	b.WriteByte('\n')
	for _, line := range format.IngredientList(r.Ingredients) {
		b.WriteString(st.primary.Render("• " + line))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(st.heading.Render(fmt.Sprintf("Steps (%d)", recipe.StepCount(r))))
	b.WriteByte('\n')
	for _, line := range format.RecipeSteps(r.Steps) {
		b.WriteString(st.primary.Render(line))
		b.WriteByte('\n')
	}

	if names := recipe.EquipmentNames(r); len(names) > 0 {
		b.WriteByte('\n')
		b.WriteString(st.heading.Render("Equipment"))
		b.WriteByte('\n')
		b.WriteString(st.secondary.Render(strings.Join(names, ", ")))
	}

	return st.card.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderRecipeList returns one line per recipe: ID, name, and rating.
func (p *Printer) RenderRecipeList(recipes []domain.Recipe, aggs map[int]domain.RatingAggregate) string {
	st := p.st
	if len(recipes) == 0 {
		return st.secondary.Render("No recipes found.")
	}

	// Pad names by terminal columns so ratings line up for names with
	// accents, emoji or wide characters.
	nameW := 0
	for _, r := range recipes {
		nameW = max(nameW, uniseg.StringWidth(r.Name))
	}

	lines := make([]string, 0, len(recipes))
	for _, r := range recipes {
		rating := format.NoRatings
		if agg, ok := aggs[r.ID]; ok {
			rating = format.RatingDisplay(agg)
		}
		pad := strings.Repeat(" ", nameW-uniseg.StringWidth(r.Name))
		lines = append(lines, fmt.Sprintf("%s  %s%s  %s",
			st.secondary.Render(fmt.Sprintf("%3d", r.ID)),
			st.title.Render(r.Name), pad,
			st.rating.Render(rating)))
	}
	return strings.Join(lines, "\n")
}
