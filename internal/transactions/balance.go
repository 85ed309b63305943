package transactions

import "github.com/shopspring/decimal"

// contribution is how much a transaction adds to the owner's savings:
// +amount for income, -amount for expense.
func contribution(typ string, amount decimal.Decimal) decimal.Decimal {
	if typ == TypeExpense {
		return amount.Neg()
	}
	return amount
}

// updateDelta is the savings adjustment for replacing old with new: the old
// contribution is reversed before the new one is applied, so an edit never
// double-counts.
func updateDelta(oldTyp string, oldAmount decimal.Decimal, newTyp string, newAmount decimal.Decimal) decimal.Decimal {
	return contribution(newTyp, newAmount).Sub(contribution(oldTyp, oldAmount))
}
