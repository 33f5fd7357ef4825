package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/preflop-trainer/preflop"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	raiseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#96CEB4"))

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#FFEAA7"))

	foldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)
)

const cellWidth = 4

// Render draws the grid with a title and an action legend. Colour carries the
// action, so use RenderPlain when colour is off.
func Render(g *Grid) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s, %s", g.Position, g.Scenario.Name)))
	sb.WriteString("\n\n")

	for i := range Size {
		var cells []string
		for j := range Size {
			c := g.Cells[i][j]
			cells = append(cells, styleFor(c.Action).Width(cellWidth).Render(string(c.Key)))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(legend(g))
	sb.WriteString("\n")
	return sb.String()
}

// RenderPlain draws the grid as action letters only (R, C, F).
func RenderPlain(g *Grid) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %s\n", g.Position, g.Scenario.Name)
	for i := range Size {
		for j := range Size {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(g.Cells[i][j].Action.String()[0])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func legend(g *Grid) string {
	parts := []string{
		raiseStyle.Render(fmt.Sprintf(" Raise %.1f%% ", 100*g.Frequency(preflop.Raise))),
		callStyle.Render(fmt.Sprintf(" Call %.1f%% ", 100*g.Frequency(preflop.Call))),
		foldStyle.Render(fmt.Sprintf(" Fold %.1f%% ", 100*g.Frequency(preflop.Fold))),
	}
	return axisStyle.Render("Legend: ") + strings.Join(parts, " ")
}

func styleFor(a preflop.Action) lipgloss.Style {
	switch a {
	case preflop.Raise:
		return raiseStyle
	case preflop.Call:
		return callStyle
	default:
		return foldStyle
	}
}
