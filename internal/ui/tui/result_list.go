package tui

import (
	"strings"

	"github.com/aalvaropc/pawsearch/internal/domain"
)

const (
	placeholderRows  = 8
	placeholderGlyph = "░"
	placeholderWidth = 40

	emptyStateText = "No customers found."
)

// renderResultList is a pure function of the fetch state. Exactly one of the
// loading, error and results branches renders. width <= 0 means unclamped.
func renderResultList(st domain.FetchState, th Theme, width int) string {
	switch {
	case st.Loading():
		rows := make([]string, placeholderRows)
		w := placeholderWidth
		if width > 0 && width < w {
			w = width
		}
		for i := range rows {
			rows[i] = th.Placeholder.Render(strings.Repeat(placeholderGlyph, w))
		}
		return strings.Join(rows, "\n")

	case st.Status == domain.FetchError:
		return th.Error.Render(st.Message)

	case len(st.Customers) == 0:
		return th.Muted.Render(emptyStateText)
	}

	blocks := make([]string, 0, len(st.Customers))
	for _, c := range st.Customers {
		blocks = append(blocks, renderCustomer(c, th, width))
	}
	return strings.Join(blocks, "\n\n")
}

func renderCustomer(c domain.Customer, th Theme, width int) string {
	var b strings.Builder
	b.WriteString(th.Name.Render(clampString(c.Name, width)))
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(clampString(c.ContactLine(), width)))

	if len(c.Pets) > 0 {
		tags := make([]string, len(c.Pets))
		for i, p := range c.Pets {
			tags[i] = th.Tag.Render(p.Tag())
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(tags, " "))
	}
	return b.String()
}
