package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/taniakun/taniakun/internal/model"
)

// Row is one journal line annotated with the running balance after it.
type Row struct {
	Line    model.Line
	Balance decimal.Decimal
}

// Build groups journal lines by account and computes a running
// debit-minus-credit balance per account, chronologically ascending. The
// balance starts at 0 for whatever window the caller supplied, so the
// result is a lifetime balance only when the full journal is passed in.
// Accounts with no lines do not appear in the result.
func Build(lines []model.Line) map[string][]Row {
	byAccount := make(map[string][]model.Line)
	for _, line := range lines {
		byAccount[line.Account] = append(byAccount[line.Account], line)
	}

	result := make(map[string][]Row, len(byAccount))
	for account, accountLines := range byAccount {
		// Stable sort keeps insertion order for equal timestamps.
		sort.SliceStable(accountLines, func(i, j int) bool {
			return accountLines[i].Date.Before(accountLines[j].Date)
		})

		rows := make([]Row, 0, len(accountLines))
		balance := decimal.Zero
		for _, line := range accountLines {
			balance = balance.Add(line.Signed())
			rows = append(rows, Row{Line: line, Balance: balance})
		}
		result[account] = rows
	}
	return result
}

// ForAccount returns the ledger rows for a single account.
func ForAccount(lines []model.Line, account string) []Row {
	var filtered []model.Line
	for _, line := range lines {
		if line.Account == account {
			filtered = append(filtered, line)
		}
	}
	return Build(filtered)[account]
}

// Accounts returns the account names of a built ledger, sorted.
func Accounts(m map[string][]Row) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
