package query

import "github.com/pfw-dev/pfw/internal/model"

// Conditions maps column names to the exact cell strings rows must carry.
// All conditions are ANDed; there are no ranges, negations, or ORs.
type Conditions map[string]string

// Matches reports whether a record satisfies every condition. An empty
// Conditions matches everything.
func (c Conditions) Matches(rec model.Record) bool {
	for col, want := range c {
		if rec.Field(col) != want {
			return false
		}
	}
	return true
}

// FilterView returns a new table holding the rows of t that match cond,
// leaving t untouched.
func FilterView(t model.Table, cond Conditions) model.Table {
	var out model.Table
	for _, rec := range t {
		if cond.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// RetainMatching removes from *t every row that does not match cond.
func RetainMatching(t *model.Table, cond Conditions) {
	kept := (*t)[:0]
	for _, rec := range *t {
		if cond.Matches(rec) {
			kept = append(kept, rec)
		}
	}
	*t = kept
}
