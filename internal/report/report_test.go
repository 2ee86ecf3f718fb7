package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taniakun/taniakun/internal/chart"
	"github.com/taniakun/taniakun/internal/model"
)

func at(day int) time.Time {
	return time.Date(2025, 3, day, 12, 0, 0, 0, time.UTC)
}

func line(day int, account string, debit, credit int64) model.Line {
	return model.Line{
		Date:    at(day),
		Account: account,
		Debit:   decimal.NewFromInt(debit),
		Credit:  decimal.NewFromInt(credit),
	}
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	// End is exclusive: the inclusive boundary plus one day.
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestParseRange_Invalid(t *testing.T) {
	_, _, err := ParseRange("bukan-tanggal", "2025-03-31")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, _, err = ParseRange("2025-03-01", "31/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestTotals_ExpenseOnly(t *testing.T) {
	// Scenario: one expense on credit (Utang): debit Urea / credit Utang Dagang.
	lines := []model.Line{
		line(2, "Urea", 150000, 0),
		line(2, chart.AccountUtang, 0, 150000),
	}

	agg := NewAggregator(chart.Default())
	totals := agg.Totals(lines, at(1), at(28))

	assert.True(t, totals.IncomeStatement.Revenue.IsZero())
	assert.True(t, totals.IncomeStatement.Expense.Equal(decimal.NewFromInt(150000)))
	assert.True(t, totals.IncomeStatement.Net.Equal(decimal.NewFromInt(-150000)))

	// Urea is not an asset account, so assets are untouched; the payable grew.
	assert.True(t, totals.BalanceSheet.Assets.IsZero())
	assert.True(t, totals.BalanceSheet.Liabilities.Equal(decimal.NewFromInt(150000)))
	assert.True(t, totals.BalanceSheet.Equity.Equal(decimal.NewFromInt(-150000)))
}

func TestTotals_RevenueAndExpense(t *testing.T) {
	lines := []model.Line{
		line(1, chart.AccountKas, 500000, 0),
		line(1, chart.AccountRevenue, 0, 500000),
		line(2, "Urea", 150000, 0),
		line(2, chart.AccountKas, 0, 150000),
	}

	agg := NewAggregator(chart.Default())
	totals := agg.Totals(lines, at(1), at(28))

	assert.True(t, totals.IncomeStatement.Revenue.Equal(decimal.NewFromInt(500000)))
	assert.True(t, totals.IncomeStatement.Expense.Equal(decimal.NewFromInt(150000)))
	assert.True(t, totals.IncomeStatement.Net.Equal(decimal.NewFromInt(350000)))
	assert.True(t, totals.BalanceSheet.Assets.Equal(decimal.NewFromInt(350000)))
	assert.True(t, totals.BalanceSheet.Equity.Equal(decimal.NewFromInt(350000)))
}

func TestTotals_BalanceSheetIgnoresWindowStart(t *testing.T) {
	lines := []model.Line{
		// Before the window.
		line(1, chart.AccountKas, 500000, 0),
		line(1, chart.AccountRevenue, 0, 500000),
		// Inside the window.
		line(10, "Urea", 100000, 0),
		line(10, chart.AccountKas, 0, 100000),
	}

	agg := NewAggregator(chart.Default())
	totals := agg.Totals(lines, at(5), at(28))

	// Period flows only see the window.
	assert.True(t, totals.IncomeStatement.Revenue.IsZero())
	assert.True(t, totals.IncomeStatement.Expense.Equal(decimal.NewFromInt(100000)))

	// Position is cumulative since inception.
	assert.True(t, totals.BalanceSheet.Assets.Equal(decimal.NewFromInt(400000)))
	assert.True(t, totals.BalanceSheet.Equity.Equal(decimal.NewFromInt(400000)))
}

func TestTotals_ExcludesAtAndAfterEnd(t *testing.T) {
	lines := []model.Line{
		line(1, chart.AccountKas, 100, 0),
		line(1, chart.AccountRevenue, 0, 100),
		// Dated exactly at the exclusive end boundary.
		{Date: at(28).Truncate(24 * time.Hour), Account: chart.AccountKas, Debit: decimal.NewFromInt(999)},
	}
	end := at(28).Truncate(24 * time.Hour)

	agg := NewAggregator(chart.Default())
	totals := agg.Totals(lines, at(1).Truncate(24*time.Hour), end)

	assert.True(t, totals.BalanceSheet.Assets.Equal(decimal.NewFromInt(100)))
}

func TestTotals_SubstringNameIsNotRevenue(t *testing.T) {
	// Classification is by chart tag, not by name matching. A line on an
	// account outside the chart contributes nothing, whatever its name.
	lines := []model.Line{
		line(1, "Pendapatan Liar", 0, 999),
	}

	agg := NewAggregator(chart.Default())
	totals := agg.Totals(lines, at(1), at(28))
	assert.True(t, totals.IncomeStatement.Revenue.IsZero())
}

func TestTotals_Empty(t *testing.T) {
	agg := NewAggregator(chart.Default())
	totals := agg.Totals(nil, at(1), at(28))

	assert.True(t, totals.IncomeStatement.Revenue.IsZero())
	assert.True(t, totals.IncomeStatement.Expense.IsZero())
	assert.True(t, totals.IncomeStatement.Net.IsZero())
	assert.True(t, totals.BalanceSheet.Assets.IsZero())
	assert.True(t, totals.BalanceSheet.Liabilities.IsZero())
	assert.True(t, totals.BalanceSheet.Equity.IsZero())
}
