package transactions

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chevrons mark an expandable line.
const (
	chevronCollapsed = "▸"
	chevronExpanded  = "▾"
)

// Renderer draws section models as terminal text.
// Color support is detected from the writer it was created for.
type Renderer struct {
	label   lipgloss.Style
	name    lipgloss.Style
	number  lipgloss.Style
	warning lipgloss.Style
	account lipgloss.Style
}

// NewRenderer creates a renderer whose styles match the capabilities of w.
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		label:   r.NewStyle().Faint(true),
		name:    r.NewStyle().Bold(true),
		number:  r.NewStyle().Faint(true),
		warning: r.NewStyle().Italic(true),
		account: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// Render writes the section as terminal text.
func (u *UserSection) Render(w io.Writer) error {
	_, err := io.WriteString(w, NewRenderer(w).Model(u.Model())+"\n")
	return err
}

// Model draws a computed model.
func (r *Renderer) Model(m Model) string {
	chevron := ""
	if m.Expandable {
		chevron = " " + chevronCollapsed
		if m.Expanded {
			chevron = " " + chevronExpanded
		}
	}

	identity := []string{r.label.Render(m.Label)}

	nameLine := r.name.Render(m.DisplayName)
	if m.ChevronOnName {
		nameLine += chevron
	}
	identity = append(identity, nameLine)

	if m.DisplayNumber != "" {
		identity = append(identity, r.number.Render(m.DisplayNumber)+chevron)
	}

	header := lipgloss.JoinVertical(lipgloss.Left, identity...)
	if m.Avatar != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", m.Avatar)
	}

	blocks := []string{header}
	if m.Warning != "" {
		blocks = append(blocks, r.warning.Render(m.Warning))
	}
	if m.Account != nil {
		body := r.label.Render(m.Account.Label) + "   " + strings.Join(m.Account.Chunks, " ")
		blocks = append(blocks, r.account.Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
