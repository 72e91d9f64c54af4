package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/noty/pkg/types"
)

const listWidth = 60

// listStyles are bound to the output writer so color is dropped when the
// writer is not a terminal.
type listStyles struct {
	rule lipgloss.Style
	id   lipgloss.Style
	time lipgloss.Style
}

func newListStyles(w io.Writer) listStyles {
	r := lipgloss.NewRenderer(w)
	return listStyles{
		rule: r.NewStyle().Foreground(lipgloss.Color("240")),
		id:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		time: r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// renderNotes prints notes as a ruled table, one row per note with a dotted
// separator between rows.
func renderNotes(w io.Writer, notes []types.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}

	s := newListStyles(w)
	rule := s.rule.Render(strings.Repeat("─", listWidth))
	bar := s.rule.Render("│")

	fmt.Fprintf(w, "Found %d note(s):\n", len(notes))
	fmt.Fprintln(w, rule)
	for i, n := range notes {
		fmt.Fprintf(w, "  %s %s %s %s %s\n",
			s.id.Render(fmt.Sprintf("#%d", n.ID)),
			bar,
			s.time.Render(n.Timestamp),
			bar,
			n.Text,
		)
		if i < len(notes)-1 {
			fmt.Fprintln(w, "   "+s.rule.Render(strings.Repeat("·", listWidth-2)))
		}
	}
	fmt.Fprintln(w, rule)
}
