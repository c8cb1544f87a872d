// Package summary computes aggregate views over a set of transactions.
// Pure functions only; callers decide which transactions are in scope.
package summary

import (
	"sort"

	"github.com/rio1412/acoount251013kakei/internal/models"
)

// CategoryTotal is the aggregated spend for one expense category.
type CategoryTotal struct {
	Category   string
	Total      float64
	Count      int
	Percentage float64
}

// Summary is the aggregate view of a transaction set.
type Summary struct {
	IncomeTotal  float64
	ExpenseTotal float64
	// Balance is income minus expenses; negative means overspent.
	Balance    float64
	Categories []CategoryTotal
}

// Compute aggregates income, expenses, and per-category expense totals.
// Category percentages are relative to the total expenses. Categories are
// ordered by total descending, name ascending for ties, so output is
// deterministic.
func Compute(txs []models.Transaction) Summary {
	var result Summary
	byCategory := make(map[string]*CategoryTotal)

	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			result.IncomeTotal += tx.Amount
		default:
			result.ExpenseTotal += tx.Amount
			ct, ok := byCategory[tx.Category]
			if !ok {
				ct = &CategoryTotal{Category: tx.Category}
				byCategory[tx.Category] = ct
			}
			ct.Total += tx.Amount
			ct.Count++
		}
	}

	result.Balance = result.IncomeTotal - result.ExpenseTotal

	result.Categories = make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		if result.ExpenseTotal > 0 {
			ct.Percentage = ct.Total / result.ExpenseTotal * 100
		}
		result.Categories = append(result.Categories, *ct)
	}

	sort.Slice(result.Categories, func(i, j int) bool {
		a, b := result.Categories[i], result.Categories[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Category < b.Category
	})

	return result
}
