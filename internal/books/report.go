package books

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/ledger"
	"github.com/taniakun/taniakun/internal/model"
	"github.com/taniakun/taniakun/internal/report"
)

// Summary totals the recorded transaction amounts inside a report window,
// independent of how they were journalized.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Report is everything one report request produces: the window, the
// transaction summary, the income statement for the period, the balance
// sheet as of the window's end, and the windowed journal with its ledger.
type Report struct {
	Start time.Time
	End   time.Time // exclusive
	Summary
	report.Totals
	Lines  []model.Line
	Ledger map[string][]ledger.Row
}

// Report aggregates a user's books over the window [start, end). An empty
// journal produces zero totals and an empty ledger.
func (s *Service) Report(username string, start, end time.Time) (*Report, error) {
	rep := &Report{Start: start, End: end}

	for _, kind := range []model.Kind{model.KindIncome, model.KindExpense} {
		txns, err := s.store.LoadTransactions(kind, username)
		if err != nil {
			return nil, err
		}
		for _, tx := range txns {
			if tx.Date.Before(start) || !tx.Date.Before(end) {
				continue
			}
			if kind == model.KindIncome {
				rep.TotalIncome = rep.TotalIncome.Add(tx.Amount)
			} else {
				rep.TotalExpense = rep.TotalExpense.Add(tx.Amount)
			}
		}
	}

	lines, err := s.store.LoadJournal(username)
	if err != nil {
		return nil, err
	}

	agg := report.NewAggregator(s.chart)
	rep.Totals = agg.Totals(lines, start, end)
	rep.Lines = filterWindow(lines, start, end)
	rep.Ledger = ledger.Build(rep.Lines)
	return rep, nil
}
