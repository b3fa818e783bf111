package proration

import "testing"

func TestProrateRoundsHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		name         string
		monthly      int64
		daysInMonth  int
		daysToCharge int
		want         int64
	}{
		{"seventeen of thirty-one", 1000, 31, 17, 548},
		{"fifteen of twenty-eight", 1000, 28, 15, 536},
		{"fifteen of twenty-nine", 1000, 29, 15, 517},
		{"exact half month", 1000, 28, 14, 500},
		{"almost full leap february", 1000, 29, 28, 966},
		{"thirty of thirty-one", 1000, 31, 30, 968},
		{"seven of thirty-one", 1000, 31, 7, 226},
		{"twenty of thirty", 1000, 30, 20, 667},
		{"full month", 1000, 31, 31, 1000},
		{"higher rent", 2500, 31, 17, 1371},
	}

	for _, tc := range cases {
		if got := Prorate(tc.monthly, tc.daysInMonth, tc.daysToCharge); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2025, 2); got != 28 {
		t.Fatalf("expected 28 days in Feb 2025, got %d", got)
	}
	if got := DaysInMonth(2024, 2); got != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := DaysInMonth(2100, 2); got != 28 {
		t.Fatalf("expected 28 days in Feb 2100, got %d", got)
	}
	if got := DaysInMonth(2000, 2); got != 29 {
		t.Fatalf("expected 29 days in Feb 2000, got %d", got)
	}
	if got := DaysInMonth(2025, 4); got != 30 {
		t.Fatalf("expected 30 days in April, got %d", got)
	}
	if got := DaysInMonth(2025, 12); got != 31 {
		t.Fatalf("expected 31 days in December, got %d", got)
	}
}
