package books

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/chart"
	"github.com/taniakun/taniakun/internal/id"
	"github.com/taniakun/taniakun/internal/journal"
	"github.com/taniakun/taniakun/internal/ledger"
	"github.com/taniakun/taniakun/internal/model"
)

// ErrNotFound is returned when a reversal target does not exist.
var ErrNotFound = errors.New("transaction not found")

// Store is the narrow persistence contract the bookkeeping core depends
// on. Transaction sets are overwritten whole in stored order; the journal
// only grows, and a posting pair is always appended in a single call.
type Store interface {
	LoadTransactions(kind model.Kind, username string) ([]model.Transaction, error)
	SaveTransactions(kind model.Kind, username string, txns []model.Transaction) error
	AppendJournal(username string, lines []model.Line) error
	LoadJournal(username string) ([]model.Line, error)
}

// Service ties the journalizer, reversal logic, ledger builder and
// statement aggregator to a Store. All operations are synchronous and
// assume a single writer per user.
type Service struct {
	store Store
	chart *chart.Chart
	jz    *journal.Journalizer
	now   func() time.Time
	warn  io.Writer
}

// NewService creates a bookkeeping Service over a store and a chart.
func NewService(store Store, ch *chart.Chart) *Service {
	return &Service{
		store: store,
		chart: ch,
		jz:    journal.NewJournalizer(ch),
		now:   time.Now,
		warn:  os.Stderr,
	}
}

// IncomeParams holds the validated inputs for recording an income event.
type IncomeParams struct {
	Date   time.Time
	Amount decimal.Decimal
	Source string
	Method string
	Memo   string
}

// ExpenseParams holds the validated inputs for recording an expense event.
type ExpenseParams struct {
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	SubCategory string
	Method      string
	Memo        string
}

// RecordIncome journalizes and persists one income transaction. The
// amount is validated before anything is written, so a rejected
// transaction leaves no partial state.
func (s *Service) RecordIncome(username string, p IncomeParams) (model.Transaction, error) {
	txns, err := s.store.LoadTransactions(model.KindIncome, username)
	if err != nil {
		return model.Transaction{}, err
	}
	journalLines, err := s.store.LoadJournal(username)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:       id.NextTxID(model.KindIncome, txns, journalLines),
		Date:     p.Date,
		Amount:   p.Amount,
		Source:   p.Source,
		Method:   p.Method,
		Memo:     p.Memo,
		Username: username,
	}

	ref := id.PairRef(model.KindIncome, tx.ID)
	pair, err := s.jz.Income(p.Date, p.Amount, p.Method, p.Source, p.Memo, ref)
	if err != nil {
		return model.Transaction{}, err
	}
	s.warnUnknownMethod(model.KindIncome, p.Method)

	if err := s.checkPair(pair); err != nil {
		return model.Transaction{}, err
	}
	return tx, s.persist(model.KindIncome, username, append(txns, tx), pair)
}

// RecordExpense journalizes and persists one expense transaction.
func (s *Service) RecordExpense(username string, p ExpenseParams) (model.Transaction, error) {
	txns, err := s.store.LoadTransactions(model.KindExpense, username)
	if err != nil {
		return model.Transaction{}, err
	}
	journalLines, err := s.store.LoadJournal(username)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:          id.NextTxID(model.KindExpense, txns, journalLines),
		Date:        p.Date,
		Amount:      p.Amount,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Method:      p.Method,
		Memo:        p.Memo,
		Username:    username,
	}

	ref := id.PairRef(model.KindExpense, tx.ID)
	pair, err := s.jz.Expense(p.Date, p.Amount, p.Method, p.Category, p.SubCategory, p.Memo, ref)
	if err != nil {
		return model.Transaction{}, err
	}
	s.warnUnknownMethod(model.KindExpense, p.Method)

	if err := s.checkPair(pair); err != nil {
		return model.Transaction{}, err
	}
	return tx, s.persist(model.KindExpense, username, append(txns, tx), pair)
}

// Reverse voids a transaction by its ID: it posts the mirror-image
// journal pair dated now, then removes the transaction from its set. The
// journal itself is never edited; reversal corrects by addition only.
//
// The reversing pair is appended before the transaction set is rewritten.
// If the append fails, nothing has changed. If the subsequent save fails,
// the error is reported as-is; the store collaborator owns reconciliation.
func (s *Service) Reverse(kind model.Kind, txID int, username string) (model.Transaction, error) {
	txns, err := s.store.LoadTransactions(kind, username)
	if err != nil {
		return model.Transaction{}, err
	}

	at := -1
	for i, tx := range txns {
		if tx.ID == txID {
			at = i
			break
		}
	}
	if at < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s %d for %s", ErrNotFound, kind, txID, username)
	}
	tx := txns[at]

	pair, err := s.jz.Reverse(kind, tx, s.now(), id.ReversalRef(kind, txID))
	if err != nil {
		return model.Transaction{}, err
	}
	if err := s.checkPair(pair); err != nil {
		return model.Transaction{}, err
	}

	if err := s.store.AppendJournal(username, pair.Lines()); err != nil {
		return model.Transaction{}, fmt.Errorf("appending reversal: %w", err)
	}

	remaining := append(txns[:at:at], txns[at+1:]...)
	if err := s.store.SaveTransactions(kind, username, remaining); err != nil {
		return model.Transaction{}, fmt.Errorf("removing transaction after reversal: %w", err)
	}
	return tx, nil
}

// List returns a user's transactions of a kind in stored order.
func (s *Service) List(kind model.Kind, username string) ([]model.Transaction, error) {
	return s.store.LoadTransactions(kind, username)
}

// Ledger builds per-account running balances over the window [start, end).
// Balances start at zero at the window's start.
func (s *Service) Ledger(username string, start, end time.Time) (map[string][]ledger.Row, error) {
	lines, err := s.store.LoadJournal(username)
	if err != nil {
		return nil, err
	}
	return ledger.Build(filterWindow(lines, start, end)), nil
}

// persist saves the transaction set, then appends the posting pair. The
// pair goes through AppendJournal in one call so both lines land
// together; a crash between the two writes is the accepted storage risk.
func (s *Service) persist(kind model.Kind, username string, txns []model.Transaction, pair model.Pair) error {
	if err := s.store.SaveTransactions(kind, username, txns); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	if err := s.store.AppendJournal(username, pair.Lines()); err != nil {
		return fmt.Errorf("appending journal pair: %w", err)
	}
	return nil
}

func (s *Service) checkPair(pair model.Pair) error {
	verrs := journal.ValidatePair(pair, s.chart)
	if len(verrs) == 0 {
		return nil
	}
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func (s *Service) warnUnknownMethod(kind model.Kind, method string) {
	if journal.MethodKnown(kind, method) {
		return
	}
	fmt.Fprintf(s.warn, "warning: unknown payment method %q, defaulting to %s\n", method, chart.AccountKas)
}

func filterWindow(lines []model.Line, start, end time.Time) []model.Line {
	var filtered []model.Line
	for _, line := range lines {
		if line.Date.Before(start) || !line.Date.Before(end) {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}
