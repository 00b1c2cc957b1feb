package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTotalExactDecimal(t *testing.T) {
	price, _ := decimal.NewFromString("4500.50")
	total := ComputeTotal(price, 3)
	if want, _ := decimal.NewFromString("13501.50"); !total.Equal(want) {
		t.Fatalf("total = %s, want %s", total, want)
	}
}

func TestComputeTotalSinglePerson(t *testing.T) {
	price, _ := decimal.NewFromString("199.99")
	if total := ComputeTotal(price, 1); !total.Equal(price) {
		t.Fatalf("total = %s, want %s", total, price)
	}
}

func TestRecalculateSameCountKeepsExistingTotal(t *testing.T) {
	existing, _ := decimal.NewFromString("9000.00")
	livePrice, _ := decimal.NewFromString("5000.00") // price changed since booking
	got := Recalculate(existing, livePrice, 2, 2)
	if !got.Equal(existing) {
		t.Fatalf("unchanged party size must keep total %s, got %s", existing, got)
	}
}

func TestRecalculateUsesLivePriceOnCountChange(t *testing.T) {
	existing, _ := decimal.NewFromString("9000.00")
	livePrice, _ := decimal.NewFromString("5000.00")
	got := Recalculate(existing, livePrice, 2, 3)
	if want, _ := decimal.NewFromString("15000.00"); !got.Equal(want) {
		t.Fatalf("total = %s, want %s", got, want)
	}
}
