package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/chart"
	"github.com/taniakun/taniakun/internal/model"
)

// ErrInvalidAmount is returned when a transaction amount is zero or negative.
// No journal lines are produced in that case.
var ErrInvalidAmount = errors.New("amount must be positive")

// ReversalMemoPrefix marks reversing journal lines.
const ReversalMemoPrefix = "Pembatalan: "

// Payment methods with non-default account routing.
const (
	MethodTunai            = "Tunai"
	MethodTransfer         = "Transfer"
	MethodPiutang          = "Piutang"
	MethodUtang            = "Utang"
	MethodSettleReceivable = "Pelunasan Piutang"
	MethodSettlePayable    = "Pelunasan Utang"
)

// incomeDebits maps an income payment method to the account debited.
var incomeDebits = map[string]string{
	MethodTunai:            chart.AccountKas,
	MethodTransfer:         chart.AccountBank,
	MethodPiutang:          chart.AccountPiutang,
	MethodSettleReceivable: chart.AccountKas,
}

// expenseCredits maps an expense payment method to the account credited.
var expenseCredits = map[string]string{
	MethodTunai:         chart.AccountKas,
	MethodTransfer:      chart.AccountBank,
	MethodUtang:         chart.AccountUtang,
	MethodSettlePayable: chart.AccountKas,
}

// MethodKnown reports whether a payment method is recognized for a kind.
// Unknown methods are never rejected; they route to Kas and the caller is
// expected to warn.
func MethodKnown(kind model.Kind, method string) bool {
	if kind == model.KindIncome {
		_, ok := incomeDebits[method]
		return ok
	}
	_, ok := expenseCredits[method]
	return ok
}

// Journalizer derives balanced debit/credit pairs for recorded transactions.
// It is pure: the same inputs always produce the same account choices, and
// nothing is persisted here.
type Journalizer struct {
	chart *chart.Chart
}

// NewJournalizer creates a Journalizer over a chart of accounts.
func NewJournalizer(ch *chart.Chart) *Journalizer {
	return &Journalizer{chart: ch}
}

// Income derives the posting pair for an income transaction. The debit side
// follows the payment method (cash, bank, or receivable); the credit is
// Pendapatan, except that collecting a receivable credits Piutang Dagang
// instead of recognizing new revenue.
func (j *Journalizer) Income(date time.Time, amount decimal.Decimal, method, source, memo, ref string) (model.Pair, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Pair{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	debit, credit := incomeAccounts(method)
	return newPair(date, debit, credit, amount, source+" - "+memo, ref), nil
}

// Expense derives the posting pair for an expense transaction. The credit
// side follows the payment method; the debit is the sub-category expense
// account, except that paying down a payable debits Utang Dagang instead of
// recording a new expense. The debit account must be in the chart; income
// routing only ever targets the core accounts, so no such check applies
// there.
func (j *Journalizer) Expense(date time.Time, amount decimal.Decimal, method, category, subCategory, memo, ref string) (model.Pair, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Pair{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	debit, credit := expenseAccounts(method, subCategory)
	if !j.chart.Exists(debit) {
		return model.Pair{}, fmt.Errorf("unknown expense account %q", debit)
	}
	return newPair(date, debit, credit, amount, category+" - "+memo, ref), nil
}

// Reverse derives the mirror-image pair for a previously recorded
// transaction: the same accounts the original posting used, with debit and
// credit swapped, dated at reversal time.
func (j *Journalizer) Reverse(kind model.Kind, tx model.Transaction, at time.Time, ref string) (model.Pair, error) {
	if tx.Amount.LessThanOrEqual(decimal.Zero) {
		return model.Pair{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, tx.Amount)
	}
	var debit, credit string
	if kind == model.KindIncome {
		debit, credit = incomeAccounts(tx.Method)
	} else {
		debit, credit = expenseAccounts(tx.Method, tx.SubCategory)
	}
	memo := ReversalMemoPrefix + tx.Memo
	return newPair(at, credit, debit, tx.Amount, memo, ref), nil
}

func incomeAccounts(method string) (debit, credit string) {
	debit, ok := incomeDebits[method]
	if !ok {
		debit = chart.AccountKas
	}
	credit = chart.AccountRevenue
	if method == MethodSettleReceivable {
		credit = chart.AccountPiutang
	}
	return debit, credit
}

func expenseAccounts(method, subCategory string) (debit, credit string) {
	credit, ok := expenseCredits[method]
	if !ok {
		credit = chart.AccountKas
	}
	debit = subCategory
	if method == MethodSettlePayable {
		debit = chart.AccountUtang
	}
	return debit, credit
}

// newPair builds the balanced two-line posting, debit line first.
func newPair(date time.Time, debitAccount, creditAccount string, amount decimal.Decimal, memo, ref string) model.Pair {
	return model.Pair{
		{Date: date, Account: debitAccount, Debit: amount, Memo: memo, Ref: ref},
		{Date: date, Account: creditAccount, Credit: amount, Memo: memo, Ref: ref},
	}
}
