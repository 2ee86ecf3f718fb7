package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/chart"
	"github.com/taniakun/taniakun/internal/model"
)

// ErrInvalidDateRange is returned when a report window cannot be parsed.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateFormat is the input format for report boundaries.
const DateFormat = "2006-01-02"

// ParseRange turns inclusive "YYYY-MM-DD" boundaries into the half-open
// window [start 00:00:00, end+1day).
func ParseRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = time.Parse(DateFormat, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", ErrInvalidDateRange, startStr)
	}
	end, err = time.Parse(DateFormat, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", ErrInvalidDateRange, endStr)
	}
	return start, end.AddDate(0, 0, 1), nil
}

// IncomeStatement holds period flow totals for a report window.
type IncomeStatement struct {
	Revenue decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// BalanceSheet holds point-in-time position totals as of the window's end.
// Equity is derived as cumulative retained earnings (revenue minus expense
// since inception); contributed capital is deliberately not modeled, so a
// farm that was seeded with cash outside the books will not balance to it.
type BalanceSheet struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
}

// Totals is the full set of aggregates for one report request.
type Totals struct {
	IncomeStatement IncomeStatement
	BalanceSheet    BalanceSheet
}

// Aggregator computes statement totals from journal lines, classifying
// accounts through the chart.
type Aggregator struct {
	chart *chart.Chart
}

// NewAggregator creates an Aggregator over a chart of accounts.
func NewAggregator(ch *chart.Chart) *Aggregator {
	return &Aggregator{chart: ch}
}

// Totals aggregates journal lines for the window [start, end).
//
// Income-statement figures are period flows restricted to the window.
// Balance-sheet figures ignore the start boundary: they sum every line
// dated before end, because financial position is cumulative since
// inception. An empty journal yields all-zero totals.
func (a *Aggregator) Totals(lines []model.Line, start, end time.Time) Totals {
	var t Totals

	for _, line := range lines {
		class, ok := a.chart.Class(line.Account)
		if !ok {
			continue
		}
		if !line.Date.Before(end) {
			continue
		}

		inWindow := !line.Date.Before(start)

		switch class {
		case model.ClassRevenue:
			// Revenue counts credits only; a reversing debit shows up in
			// the ledger balance but not here, matching the statement
			// definition of revenue as Σcredit over revenue accounts.
			if inWindow {
				t.IncomeStatement.Revenue = t.IncomeStatement.Revenue.Add(line.Credit)
			}
			t.BalanceSheet.Equity = t.BalanceSheet.Equity.Add(line.Credit)
		case model.ClassExpense:
			if inWindow {
				t.IncomeStatement.Expense = t.IncomeStatement.Expense.Add(line.Debit)
			}
			t.BalanceSheet.Equity = t.BalanceSheet.Equity.Sub(line.Debit)
		case model.ClassAsset:
			t.BalanceSheet.Assets = t.BalanceSheet.Assets.Add(line.Debit).Sub(line.Credit)
		case model.ClassLiability:
			t.BalanceSheet.Liabilities = t.BalanceSheet.Liabilities.Add(line.Credit).Sub(line.Debit)
		}
	}

	t.IncomeStatement.Net = t.IncomeStatement.Revenue.Sub(t.IncomeStatement.Expense)
	return t
}
