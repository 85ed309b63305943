package summary

import (
	"github.com/shopspring/decimal"

	"github.com/Saikrishnach4/financial/internal/transactions"
)

// Totals is the income/expense pair for a period.
type Totals struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// CategoryAmount is one row of a spending breakdown.
type CategoryAmount struct {
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

// Spending is total spending plus its per-category breakdown for a period.
type Spending struct {
	TotalSpending      decimal.Decimal  `json:"totalSpending"`
	SpendingByCategory []CategoryAmount `json:"spendingByCategory"`
}

// ComputeTotals sums amounts grouped by type.
func ComputeTotals(txs []transactions.Transaction) Totals {
	t := Totals{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, tx := range txs {
		switch tx.Type {
		case transactions.TypeIncome:
			t.TotalIncome = t.TotalIncome.Add(tx.Amount)
		case transactions.TypeExpense:
			t.TotalExpenses = t.TotalExpenses.Add(tx.Amount)
		}
	}
	return t
}

// ComputeSpending sums expense amounts and breaks them down by category.
// Categories appear in first-seen order, not sorted, so the sum of the rows
// always equals TotalSpending.
func ComputeSpending(txs []transactions.Transaction) Spending {
	s := Spending{
		TotalSpending:      decimal.Zero,
		SpendingByCategory: []CategoryAmount{},
	}
	index := make(map[string]int)
	for _, tx := range txs {
		if tx.Type != transactions.TypeExpense {
			continue
		}
		s.TotalSpending = s.TotalSpending.Add(tx.Amount)
		if i, ok := index[tx.Category]; ok {
			s.SpendingByCategory[i].Amount = s.SpendingByCategory[i].Amount.Add(tx.Amount)
			continue
		}
		index[tx.Category] = len(s.SpendingByCategory)
		s.SpendingByCategory = append(s.SpendingByCategory, CategoryAmount{
			CategoryName: tx.Category,
			Amount:       tx.Amount,
		})
	}
	return s
}
