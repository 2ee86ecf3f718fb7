package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a single journal posting row: exactly one of Debit/Credit is
// non-zero. Lines are append-only; corrections happen by posting new lines,
// never by editing old ones.
type Line struct {
	Date    time.Time
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Memo    string
	Ref     string // pair reference, e.g. "PM-000012" ("R" suffix = reversal)
}

// Amount returns whichever side of the line is set.
func (l Line) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}

// Signed returns the line's effect on a running debit-minus-credit balance.
func (l Line) Signed() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// Pair is the two-sided posting produced for one economic event. By
// construction Debit() and Credit() carry the same amount.
type Pair [2]Line

// Debit returns the debit-side line.
func (p Pair) Debit() Line { return p[0] }

// Credit returns the credit-side line.
func (p Pair) Credit() Line { return p[1] }

// Lines returns the pair as a slice, debit first, the order it is persisted.
func (p Pair) Lines() []Line { return []Line{p[0], p[1]} }
