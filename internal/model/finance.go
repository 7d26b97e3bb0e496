package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single financial movement. Amount is always stored
// positive; the sign is derived from Type at aggregation time.
type Transaction struct {
	Meta
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// TransactionPatch is a partial update; nil fields are left untouched.
type TransactionPatch struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
}

func (p TransactionPatch) Apply(t *Transaction) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
}

// CategoryTotal is one entry of the per-category expense breakdown.
// The breakdown keeps first-seen category order.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

type FinancialSummary struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	ExpensesByCategory []CategoryTotal
}
