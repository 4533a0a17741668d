package checklist

import "github.com/idilsaglam/dailycheck/internal/model"

// Section is one recurrence group.
type Section struct {
	Recurrence model.Recurrence
	Items      []model.Item
}

// View is a read-only snapshot. Front ends throw it away after each change
// and build a new one.
type View struct {
	Sections []Section
	Done     int
	Total    int
}

// BuildView groups items by recurrence in display order, keeping store order
// within a group. Rows with an unknown tag are left out.
func BuildView(items []model.Item) View {
	var v View
	for _, r := range model.Recurrences() {
		sec := Section{Recurrence: r}
		for _, it := range items {
			if it.Recurrence != r {
				continue
			}
			sec.Items = append(sec.Items, it)
			v.Total++
			if it.Checked {
				v.Done++
			}
		}
		v.Sections = append(v.Sections, sec)
	}
	return v
}

// Flat returns the items in display order.
func (v View) Flat() []model.Item {
	var out []model.Item
	for _, sec := range v.Sections {
		out = append(out, sec.Items...)
	}
	return out
}
