package store

import (
	"github.com/shopspring/decimal"

	"github.com/rbmartins/secretaria/internal/model"
)

// Finance owns the transaction ledger and its derived summary.
// Aggregates are recomputed on every read; at single-user sizes that is
// cheaper than keeping caches coherent.
type Finance struct {
	col *Collection[*model.Transaction]
}

func NewFinance(b Backend, opts ...Option) *Finance {
	return &Finance{col: NewCollection[*model.Transaction]("finance", b, opts...)}
}

func (f *Finance) Add(t *model.Transaction) *model.Transaction { return f.col.Add(t) }

func (f *Finance) Update(id string, p model.TransactionPatch) bool {
	return f.col.Update(id, p.Apply)
}

func (f *Finance) Delete(id string) bool { return f.col.Delete(id) }

func (f *Finance) ReplaceAll(ts []*model.Transaction) { f.col.ReplaceAll(ts) }

func (f *Finance) Transactions() []*model.Transaction { return f.col.Items() }

func (f *Finance) Get(id string) (*model.Transaction, bool) { return f.col.Get(id) }

func (f *Finance) TotalIncome() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range f.col.Items() {
		if t.Type == model.TransactionIncome {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

func (f *Finance) TotalExpenses() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range f.col.Items() {
		if t.Type == model.TransactionExpense {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

func (f *Finance) Balance() decimal.Decimal {
	return f.TotalIncome().Sub(f.TotalExpenses())
}

// ExpensesByCategory sums expenses per category in first-seen order.
func (f *Finance) ExpensesByCategory() []model.CategoryTotal {
	var totals []model.CategoryTotal
	index := make(map[string]int)
	for _, t := range f.col.Items() {
		if t.Type != model.TransactionExpense {
			continue
		}
		if i, ok := index[t.Category]; ok {
			totals[i].Total = totals[i].Total.Add(t.Amount)
			continue
		}
		index[t.Category] = len(totals)
		totals = append(totals, model.CategoryTotal{Category: t.Category, Total: t.Amount})
	}
	return totals
}

func (f *Finance) Summary() model.FinancialSummary {
	income := f.TotalIncome()
	expenses := f.TotalExpenses()
	return model.FinancialSummary{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		Balance:            income.Sub(expenses),
		ExpensesByCategory: f.ExpensesByCategory(),
	}
}

func (f *Finance) Wait() { f.col.Wait() }
