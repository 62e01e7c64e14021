package stats

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthKeyString(t *testing.T) {
	k := MonthKey{Year: 2024, Month: time.March}
	if got := k.String(); got != "2024-03" {
		t.Fatalf("String: want=%q got=%q", "2024-03", got)
	}
}

func TestMonthKeyNextCrossesYearBoundary(t *testing.T) {
	k := MonthKey{Year: 2023, Month: time.December}.Next()
	if k.Year != 2024 || k.Month != time.January {
		t.Fatalf("Next: want=2024-01 got=%s", k)
	}
}

func TestMonthsBetweenSingleMonth(t *testing.T) {
	keys, err := MonthsBetween(date(2024, time.May, 10), date(2024, time.May, 20))
	if err != nil {
		t.Fatalf("MonthsBetween: %v", err)
	}
	if len(keys) != 1 || keys[0].String() != "2024-05" {
		t.Fatalf("keys: want=[2024-05] got=%v", keys)
	}
}

func TestMonthsBetweenGapFreeAcrossYears(t *testing.T) {
	keys, err := MonthsBetween(date(2023, time.November, 1), date(2024, time.March, 1))
	if err != nil {
		t.Fatalf("MonthsBetween: %v", err)
	}
	want := []string{"2023-11", "2023-12", "2024-01", "2024-02"}
	if len(keys) != len(want) {
		t.Fatalf("len: want=%d got=%d (%v)", len(want), len(keys), keys)
	}
	for i, w := range want {
		if keys[i].String() != w {
			t.Fatalf("keys[%d]: want=%q got=%q", i, w, keys[i])
		}
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[i-1].Next() {
			t.Fatalf("gap between %s and %s", keys[i-1], keys[i])
		}
	}
}

func TestMonthsBetweenHalfOpenUpperBound(t *testing.T) {
	// to is the first instant of April, so April itself is excluded.
	keys, err := MonthsBetween(date(2024, time.January, 1), date(2024, time.April, 1))
	if err != nil {
		t.Fatalf("MonthsBetween: %v", err)
	}
	if len(keys) != 3 || keys[len(keys)-1].String() != "2024-03" {
		t.Fatalf("keys: want 3 ending at 2024-03, got=%v", keys)
	}
}

func TestMonthsBetweenEmptyWhenFromNotBeforeTo(t *testing.T) {
	for _, tc := range []struct {
		name     string
		from, to time.Time
	}{
		{"equal", date(2024, time.May, 1), date(2024, time.May, 1)},
		{"inverted", date(2024, time.June, 1), date(2024, time.May, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			keys, err := MonthsBetween(tc.from, tc.to)
			if err != nil {
				t.Fatalf("MonthsBetween: %v", err)
			}
			if len(keys) != 0 {
				t.Fatalf("keys: want empty, got=%v", keys)
			}
		})
	}
}

func TestMonthsBetweenRejectsOverwideRange(t *testing.T) {
	_, err := MonthsBetween(date(2000, time.January, 1), date(2020, time.February, 1))
	if !errors.Is(err, ErrRangeTooWide) {
		t.Fatalf("expected ErrRangeTooWide, got=%v", err)
	}
}

func TestMonthsBetweenAllowsExactCap(t *testing.T) {
	keys, err := MonthsBetween(date(2000, time.January, 1), date(2020, time.January, 1))
	if err != nil {
		t.Fatalf("MonthsBetween: %v", err)
	}
	if len(keys) != MaxMonths {
		t.Fatalf("len: want=%d got=%d", MaxMonths, len(keys))
	}
}

func TestMonthOfNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 2024-07-01 02:00 +05 is still 2024-06-30 in UTC.
	k := MonthOf(time.Date(2024, time.July, 1, 2, 0, 0, 0, loc))
	if k.String() != "2024-06" {
		t.Fatalf("MonthOf: want=%q got=%q", "2024-06", k.String())
	}
}

func TestYearMonthsFullYear(t *testing.T) {
	keys := YearMonths(2024, nil)
	if len(keys) != 12 {
		t.Fatalf("len: want=12 got=%d", len(keys))
	}
	if keys[0].String() != "2024-01" || keys[11].String() != "2024-12" {
		t.Fatalf("bounds: got first=%s last=%s", keys[0], keys[11])
	}
}

func TestYearMonthsSingleMonth(t *testing.T) {
	mes := 7
	keys := YearMonths(2024, &mes)
	if len(keys) != 1 || keys[0].String() != "2024-07" {
		t.Fatalf("keys: want=[2024-07] got=%v", keys)
	}
}
