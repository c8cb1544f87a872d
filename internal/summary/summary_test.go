package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rio1412/acoount251013kakei/internal/models"
)

func TestCompute(t *testing.T) {
	txs := []models.Transaction{
		{Category: "salary", Amount: 3000, Type: models.TypeIncome},
		{Category: "food", Amount: 50, Type: models.TypeExpense},
		{Category: "food", Amount: 30, Type: models.TypeExpense},
		{Category: "rent", Amount: 120, Type: models.TypeExpense},
	}

	got := Compute(txs)

	assert.InDelta(t, 3000.0, got.IncomeTotal, 0.001)
	assert.InDelta(t, 200.0, got.ExpenseTotal, 0.001)
	assert.InDelta(t, 2800.0, got.Balance, 0.001)

	// rent (120) sorts before food (80)
	if assert.Len(t, got.Categories, 2) {
		rent := got.Categories[0]
		assert.Equal(t, "rent", rent.Category)
		assert.Equal(t, 1, rent.Count)
		assert.InDelta(t, 60.0, rent.Percentage, 0.001)

		food := got.Categories[1]
		assert.Equal(t, "food", food.Category)
		assert.Equal(t, 2, food.Count)
		assert.InDelta(t, 80.0, food.Total, 0.001)
		assert.InDelta(t, 40.0, food.Percentage, 0.001)
	}
}

func TestCompute_Empty(t *testing.T) {
	got := Compute(nil)

	assert.Zero(t, got.IncomeTotal)
	assert.Zero(t, got.ExpenseTotal)
	assert.Zero(t, got.Balance)
	assert.Empty(t, got.Categories)
}

func TestCompute_OnlyIncome(t *testing.T) {
	got := Compute([]models.Transaction{
		{Category: "salary", Amount: 100, Type: models.TypeIncome},
	})

	assert.InDelta(t, 100.0, got.IncomeTotal, 0.001)
	assert.Zero(t, got.ExpenseTotal)
	assert.Empty(t, got.Categories)
}

func TestCompute_CategoryTieOrder(t *testing.T) {
	got := Compute([]models.Transaction{
		{Category: "books", Amount: 10, Type: models.TypeExpense},
		{Category: "cafe", Amount: 10, Type: models.TypeExpense},
	})

	// Equal totals fall back to name order
	if assert.Len(t, got.Categories, 2) {
		assert.Equal(t, "books", got.Categories[0].Category)
		assert.Equal(t, "cafe", got.Categories[1].Category)
	}
}
