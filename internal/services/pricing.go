package services

import "github.com/shopspring/decimal"

// ComputeTotal is the one price formula in the system: unit price times party
// size, in exact decimal arithmetic.
func ComputeTotal(unitPrice decimal.Decimal, partyCount int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(partyCount)))
}

// Recalculate recomputes the total from scratch when the party size changed
// and leaves the existing total untouched otherwise. The unit price is always
// the tour's live price, which may differ from what was charged originally;
// that is intentional.
func Recalculate(existingTotal, unitPrice decimal.Decimal, oldPartyCount, newPartyCount int) decimal.Decimal {
	if newPartyCount == oldPartyCount {
		return existingTotal
	}
	return ComputeTotal(unitPrice, newPartyCount)
}
