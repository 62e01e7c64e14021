package stats

import (
	"errors"
	"fmt"
	"time"
)

// MaxMonths caps the bucket sequence; the output is linear in calendar
// span, so an unbounded range would be linear in attacker-chosen input.
const MaxMonths = 240

var ErrRangeTooWide = errors.New("date range spans too many months")

// MonthKey identifies one calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// String renders the absolute-month form, e.g. "2024-03".
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

func (k MonthKey) Next() MonthKey {
	if k.Month == time.December {
		return MonthKey{Year: k.Year + 1, Month: time.January}
	}
	return MonthKey{Year: k.Year, Month: k.Month + 1}
}

func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

func MonthOf(t time.Time) MonthKey {
	t = t.UTC()
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// MonthsBetween generates the gap-free month sequence covering the
// half-open range [from, to): from the month containing from through the
// month containing the last instant before to. from >= to yields an empty
// sequence; it is the caller's contract violation, not an error here.
func MonthsBetween(from, to time.Time) ([]MonthKey, error) {
	if !from.Before(to) {
		return nil, nil
	}
	first := MonthOf(from)
	last := MonthOf(to.Add(-time.Second))

	span := (last.Year-first.Year)*12 + int(last.Month) - int(first.Month) + 1
	if span > MaxMonths {
		return nil, fmt.Errorf("%w: %d > %d", ErrRangeTooWide, span, MaxMonths)
	}

	keys := make([]MonthKey, 0, span)
	for k := first; !last.Before(k); k = k.Next() {
		keys = append(keys, k)
	}
	return keys, nil
}

// YearMonths returns the twelve buckets of a calendar year, or the single
// bucket of one month when mes is 1-12.
func YearMonths(anio int, mes *int) []MonthKey {
	if mes != nil && *mes >= 1 && *mes <= 12 {
		return []MonthKey{{Year: anio, Month: time.Month(*mes)}}
	}
	keys := make([]MonthKey, 0, 12)
	for m := time.January; m <= time.December; m++ {
		keys = append(keys, MonthKey{Year: anio, Month: m})
	}
	return keys
}
