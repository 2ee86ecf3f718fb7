package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taniakun/taniakun/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleIncome(id int) model.Transaction {
	return model.Transaction{
		ID:       id,
		Date:     time.Date(2025, 3, 1, 8, 15, 0, 0, time.UTC),
		Amount:   dec("500000"),
		Source:   "Penjualan Padi",
		Method:   "Tunai",
		Memo:     "panen, blok A",
		Username: "budi",
	}
}

func sampleExpense(id int) model.Transaction {
	return model.Transaction{
		ID:          id,
		Date:        time.Date(2025, 3, 2, 14, 0, 5, 0, time.UTC),
		Amount:      dec("150000"),
		Category:    "Pupuk",
		SubCategory: "Urea",
		Method:      "Utang",
		Memo:        "musim tanam",
		Username:    "budi",
	}
}

func TestLoadTransactions_Missing(t *testing.T) {
	s := NewFileStore(t.TempDir())

	txns, err := s.LoadTransactions(model.KindIncome, "budi")
	require.NoError(t, err)
	assert.Empty(t, txns, "missing file is an empty set")
}

func TestSaveLoadTransactions_Income(t *testing.T) {
	s := NewFileStore(t.TempDir())

	want := []model.Transaction{sampleIncome(1), sampleIncome(2)}
	require.NoError(t, s.SaveTransactions(model.KindIncome, "budi", want))

	got, err := s.LoadTransactions(model.KindIncome, "budi")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "Penjualan Padi", got[0].Source)
	assert.True(t, got[0].Amount.Equal(dec("500000")))
	assert.Equal(t, want[0].Date, got[0].Date)
	assert.Equal(t, "panen, blok A", got[0].Memo, "commas survive CSV quoting")
}

func TestSaveLoadTransactions_Expense(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.SaveTransactions(model.KindExpense, "budi", []model.Transaction{sampleExpense(7)}))

	got, err := s.LoadTransactions(model.KindExpense, "budi")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
	assert.Equal(t, "Pupuk", got[0].Category)
	assert.Equal(t, "Urea", got[0].SubCategory)
}

func TestSaveTransactions_Overwrites(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.SaveTransactions(model.KindIncome, "budi", []model.Transaction{sampleIncome(1), sampleIncome(2)}))
	require.NoError(t, s.SaveTransactions(model.KindIncome, "budi", []model.Transaction{sampleIncome(2)}))

	got, err := s.LoadTransactions(model.KindIncome, "budi")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestPerUserFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.SaveTransactions(model.KindIncome, "budi", []model.Transaction{sampleIncome(1)}))
	require.NoError(t, s.SaveTransactions(model.KindIncome, "siti", nil))

	_, err := os.Stat(filepath.Join(dir, "pemasukan_budi.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "pemasukan_siti.csv"))
	require.NoError(t, err)

	got, err := s.LoadTransactions(model.KindIncome, "siti")
	require.NoError(t, err)
	assert.Empty(t, got, "users do not see each other's rows")
}

func journalPair(day int, ref string) []model.Line {
	date := time.Date(2025, 3, day, 9, 0, 0, 0, time.UTC)
	return []model.Line{
		{Date: date, Account: "Kas", Debit: dec("1000"), Memo: "m", Ref: ref},
		{Date: date, Account: "Pendapatan", Credit: dec("1000"), Memo: "m", Ref: ref},
	}
}

func TestAppendJournal(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	require.NoError(t, s.AppendJournal("budi", journalPair(1, "PM-000001")))
	require.NoError(t, s.AppendJournal("budi", journalPair(2, "PM-000002")))

	lines, err := s.LoadJournal("budi")
	require.NoError(t, err)
	require.Len(t, lines, 4, "appends accumulate, never overwrite")
	assert.Equal(t, "PM-000001", lines[0].Ref)
	assert.Equal(t, "PM-000002", lines[3].Ref)
	assert.True(t, lines[3].Credit.Equal(dec("1000")))

	// Header written exactly once.
	data, err := os.ReadFile(filepath.Join(dir, "jurnal_budi.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), JournalHeader))
}

func TestLoadJournal_Missing(t *testing.T) {
	s := NewFileStore(t.TempDir())

	lines, err := s.LoadJournal("budi")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestUnmarshalLine_BadRow(t *testing.T) {
	_, err := UnmarshalLine([]string{"not-a-date", "Kas", "1", "0", "", "PM-000001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")

	_, err = UnmarshalLine([]string{"2025-03-01 09:00:00", "Kas", "abc", "0", "", "PM-000001"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing debit")
}

func TestUnmarshalTransaction_FieldCount(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"1", "2025-03-01 08:15:00"}, model.KindIncome)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 7 fields")
}
