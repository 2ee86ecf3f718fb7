package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taniakun/taniakun/internal/chart"
	"github.com/taniakun/taniakun/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestIncome_Tunai(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	pair, err := jz.Income(date(2025, 3, 1), dec("500000"), MethodTunai, "Penjualan Padi", "panen pertama", "PM-000001")
	require.NoError(t, err)

	assert.Equal(t, chart.AccountKas, pair.Debit().Account)
	assert.Equal(t, chart.AccountRevenue, pair.Credit().Account)
	assert.True(t, pair.Debit().Debit.Equal(dec("500000")))
	assert.True(t, pair.Credit().Credit.Equal(dec("500000")))
	assert.Equal(t, "Penjualan Padi - panen pertama", pair.Debit().Memo)
	assert.Equal(t, "PM-000001", pair.Credit().Ref)
}

func TestIncome_MethodRouting(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	tests := []struct {
		method     string
		wantDebit  string
		wantCredit string
	}{
		{MethodTunai, chart.AccountKas, chart.AccountRevenue},
		{MethodTransfer, chart.AccountBank, chart.AccountRevenue},
		{MethodPiutang, chart.AccountPiutang, chart.AccountRevenue},
		// Collecting a receivable is not new revenue.
		{MethodSettleReceivable, chart.AccountKas, chart.AccountPiutang},
		// Unknown methods fall back to Kas without error.
		{"Barter", chart.AccountKas, chart.AccountRevenue},
	}
	for _, tt := range tests {
		pair, err := jz.Income(date(2025, 3, 1), dec("1000"), tt.method, "Lain-lain", "", "PM-000001")
		require.NoError(t, err, "method %q", tt.method)
		assert.Equal(t, tt.wantDebit, pair.Debit().Account, "debit for %q", tt.method)
		assert.Equal(t, tt.wantCredit, pair.Credit().Account, "credit for %q", tt.method)
	}
}

func TestExpense_Utang(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	pair, err := jz.Expense(date(2025, 3, 2), dec("150000"), MethodUtang, "Pupuk", "Urea", "musim tanam", "PG-000001")
	require.NoError(t, err)

	assert.Equal(t, "Urea", pair.Debit().Account)
	assert.Equal(t, chart.AccountUtang, pair.Credit().Account)
	assert.True(t, pair.Debit().Debit.Equal(dec("150000")))
	assert.True(t, pair.Credit().Credit.Equal(dec("150000")))
	assert.Equal(t, "Pupuk - musim tanam", pair.Debit().Memo)
}

func TestExpense_MethodRouting(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	tests := []struct {
		method     string
		wantDebit  string
		wantCredit string
	}{
		{MethodTunai, "Urea", chart.AccountKas},
		{MethodTransfer, "Urea", chart.AccountBank},
		{MethodUtang, "Urea", chart.AccountUtang},
		// Paying down a payable is not a new expense.
		{MethodSettlePayable, chart.AccountUtang, chart.AccountKas},
		{"Cek", "Urea", chart.AccountKas},
	}
	for _, tt := range tests {
		pair, err := jz.Expense(date(2025, 3, 2), dec("1000"), tt.method, "Pupuk", "Urea", "", "PG-000001")
		require.NoError(t, err, "method %q", tt.method)
		assert.Equal(t, tt.wantDebit, pair.Debit().Account, "debit for %q", tt.method)
		assert.Equal(t, tt.wantCredit, pair.Credit().Account, "credit for %q", tt.method)
	}
}

func TestExpense_UnknownSubCategory(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	_, err := jz.Expense(date(2025, 3, 2), dec("1000"), MethodTunai, "Pupuk", "Mesin Traktor", "", "PG-000001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mesin Traktor")
}

func TestJournalize_InvalidAmount(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	_, err := jz.Income(date(2025, 1, 1), decimal.Zero, MethodTunai, "Penjualan Padi", "", "PM-000001")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = jz.Expense(date(2025, 1, 1), dec("-5"), MethodTunai, "Pupuk", "Urea", "", "PG-000001")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestJournalize_Pure(t *testing.T) {
	jz := NewJournalizer(chart.Default())

	first, err := jz.Income(date(2025, 3, 1), dec("500000"), MethodTransfer, "Penjualan Padi", "x", "PM-000007")
	require.NoError(t, err)
	second, err := jz.Income(date(2025, 3, 1), dec("500000"), MethodTransfer, "Penjualan Padi", "x", "PM-000007")
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical pairs")
}

func TestReverse_Income(t *testing.T) {
	jz := NewJournalizer(chart.Default())
	tx := model.Transaction{
		ID:     1,
		Date:   date(2025, 3, 1),
		Amount: dec("500000"),
		Source: "Penjualan Padi",
		Method: MethodTunai,
		Memo:   "panen pertama",
	}

	at := date(2025, 3, 10)
	pair, err := jz.Reverse(model.KindIncome, tx, at, "PM-000001R")
	require.NoError(t, err)

	// Mirror image of the original debit Kas / credit Pendapatan.
	assert.Equal(t, chart.AccountRevenue, pair.Debit().Account)
	assert.Equal(t, chart.AccountKas, pair.Credit().Account)
	assert.True(t, pair.Debit().Debit.Equal(dec("500000")))
	assert.Equal(t, at, pair.Debit().Date, "reversal is dated at reversal time")
	assert.Equal(t, "Pembatalan: panen pertama", pair.Debit().Memo)
}

func TestReverse_ExpensePelunasanUtang(t *testing.T) {
	jz := NewJournalizer(chart.Default())
	tx := model.Transaction{
		ID:          3,
		Date:        date(2025, 4, 1),
		Amount:      dec("75000"),
		Category:    "Pupuk",
		SubCategory: "NPK",
		Method:      MethodSettlePayable,
		Memo:        "cicilan",
	}

	pair, err := jz.Reverse(model.KindExpense, tx, date(2025, 4, 2), "PG-000003R")
	require.NoError(t, err)

	// Original was debit Utang Dagang / credit Kas; reversal swaps it.
	assert.Equal(t, chart.AccountKas, pair.Debit().Account)
	assert.Equal(t, chart.AccountUtang, pair.Credit().Account)
}

func TestMethodKnown(t *testing.T) {
	assert.True(t, MethodKnown(model.KindIncome, MethodTunai))
	assert.True(t, MethodKnown(model.KindIncome, MethodSettleReceivable))
	assert.False(t, MethodKnown(model.KindIncome, MethodUtang))
	assert.True(t, MethodKnown(model.KindExpense, MethodUtang))
	assert.False(t, MethodKnown(model.KindExpense, "Barter"))
}
