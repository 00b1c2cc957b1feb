package models

import "testing"

func TestDeriveDepartureStatus(t *testing.T) {
	cases := []struct {
		spots, max int
		want       string
	}{
		{0, 12, DepartureStatusSoldOut},
		{-1, 12, DepartureStatusSoldOut},
		{1, 12, DepartureStatusAlmostFull},
		{2, 12, DepartureStatusAlmostFull},
		{2, 4, DepartureStatusAlmostFull}, // almost_full wins over the 40% rule
		{4, 12, DepartureStatusFillingFast},
		{4, 10, DepartureStatusFillingFast}, // exactly 40% still counts
		{5, 12, DepartureStatusAvailable},
		{8, 12, DepartureStatusAvailable},
	}
	for _, c := range cases {
		if got := DeriveDepartureStatus(c.spots, c.max); got != c.want {
			t.Fatalf("DeriveDepartureStatus(%d, %d) = %s, want %s", c.spots, c.max, got, c.want)
		}
	}
}
