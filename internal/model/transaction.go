package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes the two transaction sets a user owns.
type Kind string

const (
	KindIncome  Kind = "pemasukan"
	KindExpense Kind = "pengeluaran"
)

// Transaction is one recorded income or expense event. Amount and Date are
// immutable once stored; the only way a transaction leaves its set is a
// reversal, which posts an offsetting journal pair first.
type Transaction struct {
	ID          int // monotonic per user and kind, assigned at creation
	Date        time.Time
	Amount      decimal.Decimal
	Source      string // income only
	Category    string // expense only
	SubCategory string // expense only
	Method      string
	Memo        string
	Username    string
}

// Label returns the classification shown next to the amount: the income
// source, or "Kategori - Sub" for an expense.
func (t Transaction) Label(kind Kind) string {
	if kind == KindIncome {
		return t.Source
	}
	if t.SubCategory == "" {
		return t.Category
	}
	return t.Category + " - " + t.SubCategory
}
