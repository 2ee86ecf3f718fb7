package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Ref         string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s]: %s", e.Ref, e.Description)
}

// AccountChecker tests whether an account name exists in the chart.
type AccountChecker interface {
	Exists(name string) bool
}

// ValidatePair checks a single posting pair before it is persisted.
func ValidatePair(p model.Pair, accounts AccountChecker) []ValidationError {
	return ValidateLines(p.Lines(), accounts)
}

// ValidateLines enforces the journal invariants on a set of lines:
// each pair (grouped by ref) balances, every line has exactly one side,
// accounts exist in the chart, and amounts have at most 2 decimal places.
func ValidateLines(lines []model.Line, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Group lines by pair ref.
	groups := make(map[string][]model.Line)
	var groupOrder []string
	for _, line := range lines {
		if _, seen := groups[line.Ref]; !seen {
			groupOrder = append(groupOrder, line.Ref)
		}
		groups[line.Ref] = append(groups[line.Ref], line)
	}

	for _, ref := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, line := range groups[ref] {
			totalDebit = totalDebit.Add(line.Debit)
			totalCredit = totalCredit.Add(line.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Ref:         ref,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	two := decimal.NewFromInt(100)
	for _, line := range lines {
		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Ref:         line.Ref,
				Description: "line must have exactly one of debit or credit",
			})
		}

		if !accounts.Exists(line.Account) {
			errs = append(errs, ValidationError{
				Ref:         line.Ref,
				Description: fmt.Sprintf("unknown account %q", line.Account),
			})
		}

		if !line.Debit.Mul(two).Equal(line.Debit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Ref:         line.Ref,
				Description: fmt.Sprintf("debit %s has more than 2 decimal places", line.Debit),
			})
		}
		if !line.Credit.Mul(two).Equal(line.Credit.Mul(two).Floor()) {
			errs = append(errs, ValidationError{
				Ref:         line.Ref,
				Description: fmt.Sprintf("credit %s has more than 2 decimal places", line.Credit),
			})
		}
	}

	return errs
}
