package ui

import (
	"fmt"

	"github.com/idilsaglam/dailycheck/internal/checklist"
	"github.com/idilsaglam/dailycheck/internal/model"
)

const maxTextWidth = 80

// ListLines renders the grouped view for the non-interactive `ls`.
// With pendingOnly, checked items are hidden but still counted.
func ListLines(p Painter, v checklist.View, pendingOnly bool) []string {
	t := Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.Paint(t.Title, "Routine"),
		p.Paint(t.Success, t.SymDone), v.Done,
		p.Paint(t.Pending, t.SymUnchecked), v.Total-v.Done,
		p.Paint(t.Accent, "Total"), v.Total,
	)

	lines := []string{header, p.Paint(t.Muted, ProgressBar(v.Done, v.Total, 28))}
	for _, sec := range v.Sections {
		lines = append(lines, "", p.Paint(t.Accent, "=== "+sec.Recurrence.Label()+" ==="))
		shown := 0
		for _, it := range sec.Items {
			if pendingOnly && it.Checked {
				continue
			}
			lines = append(lines, itemLine(p, it))
			shown++
		}
		if shown == 0 {
			lines = append(lines, p.Paint(t.Muted, "(none)"))
		}
	}
	lines = append(lines, "", p.Paint(t.Muted, "Tip: add with `dailycheck add --every week \"Water the plants\"`"))
	return lines
}

func itemLine(p Painter, it model.Item) string {
	t := Current()
	idx := fmt.Sprintf("%3d.", it.ID)
	box, color := t.BoxUnchecked, t.Muted
	if it.Checked {
		box, color = t.BoxChecked, t.Success
	}
	return fmt.Sprintf("%s %s %s", p.Dim(idx), p.Paint(color, box), truncate(it.Text, maxTextWidth))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n-3]) + "..."
	}
	return s
}
