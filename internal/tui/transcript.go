package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lojasmm/gadgetchat/internal/product"
	"github.com/lojasmm/gadgetchat/internal/render"
)

const (
	bullet     = "• "
	maxButtons = 9
)

// renderTranscript draws every view for a terminal of the given width.
// Buttons are only listed under the most recent bot message, the one the
// alt+N keys act on, showing the given page of them.
func renderTranscript(views []render.View, st styles, width, page int) string {
	if width <= 0 {
		width = defaultWidth
	}
	last := render.LastBot(views)

	var b strings.Builder
	for i, v := range views {
		if i > 0 {
			b.WriteString("\n")
		}
		if v.Utterance.IsBot() {
			b.WriteString(st.bot.Render("Bot:"))
		} else {
			b.WriteString(st.user.Render("You:"))
		}
		b.WriteString("\n")
		b.WriteString(renderBody(v, st, width))

		if len(v.Rows) > 0 {
			b.WriteString("\n")
			b.WriteString(renderRows(v.Rows, st, width))
		}
		if i == last {
			if buttons := renderButtons(v, st, width, page); buttons != "" {
				b.WriteString("\n")
				b.WriteString(buttons)
			}
		}
	}
	return b.String()
}

func renderBody(v render.View, st styles, width int) string {
	block, ok := v.Segments.Block()
	if !ok {
		return wrap(v.Segments.Plain(), width)
	}

	var parts []string
	if block.PreText != "" {
		parts = append(parts, wrap(block.PreText, width))
	}
	parts = append(parts, st.title.Render(wrap(block.Title, width)), block.BlankLine)
	for _, item := range block.Items {
		parts = append(parts, indent.String(wrap(bullet+item, width-2), 2))
	}
	if block.PostText != "" {
		parts = append(parts, wrap(block.PostText, width))
	}
	return strings.Join(parts, "\n")
}

func renderRows(rows []product.Row, st styles, width int) string {
	parts := []string{st.heading.Render(product.Heading)}
	for _, row := range rows {
		for _, line := range row.Lines() {
			parts = append(parts, indent.String(wrap(line, width-2), 2))
		}
	}
	return strings.Join(parts, "\n")
}

func renderButtons(v render.View, st styles, width, page int) string {
	buttons := v.Buttons()
	if len(buttons) == 0 {
		return ""
	}
	lo, hi := pageBounds(len(buttons), page)
	labels := make([]string, 0, hi-lo)
	for i, btn := range buttons[lo:hi] {
		labels = append(labels, st.button.Render(fmt.Sprintf("[%d] %s", i+1, btn.Label)))
	}

	hint := "alt+N to choose"
	if pages := buttonPages(len(buttons)); pages > 1 {
		hint += fmt.Sprintf(" • page %d/%d, tab for %d more", page%pages+1, pages, len(buttons)-(hi-lo))
	}
	return wrap(strings.Join(labels, "  "), width) + "\n" + st.muted.Render(hint)
}

// buttonPages is the number of pages of at most maxButtons buttons.
func buttonPages(n int) int {
	return (n + maxButtons - 1) / maxButtons
}

// pageBounds returns the slice bounds of page, wrapped into range, over n
// buttons.
func pageBounds(n, page int) (lo, hi int) {
	pages := buttonPages(n)
	if pages == 0 {
		return 0, 0
	}
	lo = (page % pages) * maxButtons
	return lo, min(lo+maxButtons, n)
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
