package stats

import (
	"strings"
)

// Fragment is one parameterized piece of a WHERE clause. Cond uses `?`
// placeholders; Args holds the bound values in placeholder order. Values
// never appear in Cond itself.
type Fragment struct {
	Cond string
	Args []any
}

func (f Fragment) Empty() bool { return strings.TrimSpace(f.Cond) == "" }

// Never matches no rows. Used when a filter resolves to an unknown entity.
func Never() Fragment {
	return Fragment{Cond: "1 = 0"}
}

func Eq(col string, val any) Fragment {
	return Fragment{Cond: col + " = ?", Args: []any{val}}
}

func In(col string, vals any) Fragment {
	return Fragment{Cond: col + " IN ?", Args: []any{vals}}
}

func Gte(col string, val any) Fragment {
	return Fragment{Cond: col + " >= ?", Args: []any{val}}
}

func Lte(col string, val any) Fragment {
	return Fragment{Cond: col + " <= ?", Args: []any{val}}
}

func IsNull(col string) Fragment {
	return Fragment{Cond: col + " IS NULL"}
}

// likeEscaper neutralizes the LIKE metacharacters so the term always
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// TextSearch matches term as a case-insensitive substring of any of the
// given columns.
func TextSearch(term string, cols ...string) Fragment {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return Fragment{}
	}
	pattern := "%" + likeEscaper.Replace(term) + "%"
	frags := make([]Fragment, 0, len(cols))
	for _, col := range cols {
		frags = append(frags, Fragment{Cond: col + ` ILIKE ? ESCAPE '\'`, Args: []any{pattern}})
	}
	return Or(frags...)
}

// Subquery builds a membership test against a parameterized subselect.
func Subquery(col, sub string, args ...any) Fragment {
	return Fragment{Cond: col + " IN (" + sub + ")", Args: args}
}

func And(frags ...Fragment) Fragment { return join(" AND ", frags) }

func Or(frags ...Fragment) Fragment { return join(" OR ", frags) }

func join(op string, frags []Fragment) Fragment {
	kept := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if !f.Empty() {
			kept = append(kept, f)
		}
	}
	switch len(kept) {
	case 0:
		return Fragment{}
	case 1:
		return kept[0]
	}
	conds := make([]string, 0, len(kept))
	var args []any
	for _, f := range kept {
		conds = append(conds, "("+f.Cond+")")
		args = append(args, f.Args...)
	}
	return Fragment{Cond: strings.Join(conds, op), Args: args}
}

// Composer accumulates fragments into a single conjunctive predicate.
// Adding is order-independent for correctness; fragments are rendered in
// insertion order for readable query plans.
type Composer struct {
	frags []Fragment
}

func (c *Composer) Add(frags ...Fragment) *Composer {
	for _, f := range frags {
		if !f.Empty() {
			c.frags = append(c.frags, f)
		}
	}
	return c
}

// SQL renders the predicate. An empty composer matches everything.
func (c *Composer) SQL() (string, []any) {
	if c == nil || len(c.frags) == 0 {
		return "1 = 1", nil
	}
	f := And(c.frags...)
	return f.Cond, f.Args
}
