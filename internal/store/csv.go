package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/model"
)

// TimeFormat is the timestamp layout used in every data file.
const TimeFormat = "2006-01-02 15:04:05"

// IncomeHeader is the CSV header for pemasukan files.
const IncomeHeader = "id,date,source,amount,method,memo,username"

// ExpenseHeader is the CSV header for pengeluaran files.
const ExpenseHeader = "id,date,category,sub_category,amount,method,memo,username"

// JournalHeader is the CSV header for jurnal files.
const JournalHeader = "date,account,debit,credit,memo,ref"

const (
	incomeNumFields  = 7
	expenseNumFields = 8
	journalNumFields = 6
)

// Header returns the CSV header for a transaction kind.
func Header(kind model.Kind) string {
	if kind == model.KindIncome {
		return IncomeHeader
	}
	return ExpenseHeader
}

// ReadTransactions reads all transactions of a kind from a CSV reader.
func ReadTransactions(r io.Reader, kind model.Kind) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields(kind)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", kind, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec, kind)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a CSV writer, header included,
// preserving order.
func WriteTransactions(w io.Writer, kind model.Kind, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header(kind), ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx, kind)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row for its kind.
func MarshalTransaction(tx model.Transaction, kind model.Kind) []string {
	if kind == model.KindIncome {
		return []string{
			strconv.Itoa(tx.ID),
			tx.Date.Format(TimeFormat),
			tx.Source,
			tx.Amount.String(),
			tx.Method,
			tx.Memo,
			tx.Username,
		}
	}
	return []string{
		strconv.Itoa(tx.ID),
		tx.Date.Format(TimeFormat),
		tx.Category,
		tx.SubCategory,
		tx.Amount.String(),
		tx.Method,
		tx.Memo,
		tx.Username,
	}
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string, kind model.Kind) (model.Transaction, error) {
	want := numFields(kind)
	if len(record) != want {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", want, len(record))
	}

	txID, err := strconv.Atoi(record[0])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing id %q: %w", record[0], err)
	}
	date, err := time.Parse(TimeFormat, record[1])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[1], err)
	}

	if kind == model.KindIncome {
		amount, err := decimal.NewFromString(record[3])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[3], err)
		}
		return model.Transaction{
			ID:       txID,
			Date:     date,
			Source:   record[2],
			Amount:   amount,
			Method:   record[4],
			Memo:     record[5],
			Username: record[6],
		}, nil
	}

	amount, err := decimal.NewFromString(record[4])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[4], err)
	}
	return model.Transaction{
		ID:          txID,
		Date:        date,
		Category:    record[2],
		SubCategory: record[3],
		Amount:      amount,
		Method:      record[5],
		Memo:        record[6],
		Username:    record[7],
	}, nil
}

// ReadLines reads all journal lines from a CSV reader.
func ReadLines(r io.Reader) ([]model.Line, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = journalNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var lines []model.Line
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// AppendLines appends journal lines to an existing CSV writer (no header).
func AppendLines(w io.Writer, lines []model.Line) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts a journal Line to a CSV row. The zero side is
// written as "0" so the files stay readable as plain spreadsheets.
func MarshalLine(line model.Line) []string {
	return []string{
		line.Date.Format(TimeFormat),
		line.Account,
		line.Debit.String(),
		line.Credit.String(),
		line.Memo,
		line.Ref,
	}
}

// UnmarshalLine converts a CSV row to a journal Line.
func UnmarshalLine(record []string) (model.Line, error) {
	if len(record) != journalNumFields {
		return model.Line{}, fmt.Errorf("expected %d fields, got %d", journalNumFields, len(record))
	}

	date, err := time.Parse(TimeFormat, record[0])
	if err != nil {
		return model.Line{}, fmt.Errorf("parsing date %q: %w", record[0], err)
	}
	debit, err := decimal.NewFromString(record[2])
	if err != nil {
		return model.Line{}, fmt.Errorf("parsing debit %q: %w", record[2], err)
	}
	credit, err := decimal.NewFromString(record[3])
	if err != nil {
		return model.Line{}, fmt.Errorf("parsing credit %q: %w", record[3], err)
	}

	return model.Line{
		Date:    date,
		Account: record[1],
		Debit:   debit,
		Credit:  credit,
		Memo:    record[4],
		Ref:     record[5],
	}, nil
}

func numFields(kind model.Kind) int {
	if kind == model.KindIncome {
		return incomeNumFields
	}
	return expenseNumFields
}
