package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbmartins/secretaria/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func addTx(f *Finance, typ model.TransactionType, amount, category string) {
	f.Add(&model.Transaction{
		Type:     typ,
		Amount:   dec(amount),
		Category: category,
		Date:     time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	})
}

func TestFinanceBalance(t *testing.T) {
	f := NewFinance(newMemBackend())
	addTx(f, model.TransactionIncome, "1000.00", "Fiverr")
	addTx(f, model.TransactionExpense, "250.00", "Transporte")

	assert.True(t, f.TotalIncome().Equal(dec("1000.00")))
	assert.True(t, f.TotalExpenses().Equal(dec("250.00")))
	assert.True(t, f.Balance().Equal(dec("750.00")))
}

func TestFinanceBalanceIsIncomeMinusExpenses(t *testing.T) {
	f := NewFinance(newMemBackend())
	addTx(f, model.TransactionIncome, "120.30", "Fiverr")
	addTx(f, model.TransactionIncome, "79.70", "Freela")
	addTx(f, model.TransactionExpense, "10.01", "Almoço")
	addTx(f, model.TransactionExpense, "89.99", "Mercado")

	assert.True(t, f.Balance().Equal(f.TotalIncome().Sub(f.TotalExpenses())))
	assert.True(t, f.Balance().Equal(dec("100.00")))
}

func TestFinanceNegativeBalance(t *testing.T) {
	f := NewFinance(newMemBackend())
	addTx(f, model.TransactionExpense, "50.00", "Mercado")

	assert.True(t, f.Balance().IsNegative())
	assert.True(t, f.Balance().Equal(dec("-50.00")))
}

func TestFinanceExpensesByCategory(t *testing.T) {
	f := NewFinance(newMemBackend())
	addTx(f, model.TransactionExpense, "30.00", "Transporte")
	addTx(f, model.TransactionExpense, "100.00", "Mercado")
	addTx(f, model.TransactionIncome, "500.00", "Fiverr") // incomes never enter the breakdown
	addTx(f, model.TransactionExpense, "20.00", "Transporte")

	got := f.ExpensesByCategory()
	require.Len(t, got, 2)

	// first-seen category order, amounts accumulated
	assert.Equal(t, "Transporte", got[0].Category)
	assert.True(t, got[0].Total.Equal(dec("50.00")))
	assert.Equal(t, "Mercado", got[1].Category)
	assert.True(t, got[1].Total.Equal(dec("100.00")))
}

func TestFinanceSummaryEmpty(t *testing.T) {
	f := NewFinance(newMemBackend())
	sum := f.Summary()

	assert.True(t, sum.Balance.IsZero())
	assert.True(t, sum.TotalIncome.IsZero())
	assert.True(t, sum.TotalExpenses.IsZero())
	assert.Empty(t, sum.ExpensesByCategory)
}
