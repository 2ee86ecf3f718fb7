package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taniakun/taniakun/internal/model"
)

// ReversalSuffix marks the pair ref of reversing journal lines.
const ReversalSuffix = "R"

// NextTxID returns the next transaction ID for a user's set: one more than
// the highest ID ever issued, starting at 1. A reversed transaction leaves
// the set but its pair ref stays in the journal, so the journal is scanned
// too; an ID freed by reversal is never reissued.
func NextTxID(kind model.Kind, txns []model.Transaction, journal []model.Line) int {
	maxID := 0
	for _, tx := range txns {
		if tx.ID > maxID {
			maxID = tx.ID
		}
	}
	for _, line := range journal {
		refKind, txID, _, err := ParsePairRef(line.Ref)
		if err != nil || refKind != kind {
			continue
		}
		if txID > maxID {
			maxID = txID
		}
	}
	return maxID + 1
}

// PairRef formats the journal reference tying a posting pair to its source
// transaction, like "PM-000012" (income) or "PG-000012" (expense).
func PairRef(kind model.Kind, txID int) string {
	return fmt.Sprintf("%s-%06d", kindPrefix(kind), txID)
}

// ReversalRef formats the reference of the reversing pair for a transaction.
func ReversalRef(kind model.Kind, txID int) string {
	return PairRef(kind, txID) + ReversalSuffix
}

// ParsePairRef parses "PM-000012" or "PG-000012R" into its parts.
func ParsePairRef(ref string) (kind model.Kind, txID int, reversal bool, err error) {
	base := ref
	if strings.HasSuffix(base, ReversalSuffix) {
		reversal = true
		base = strings.TrimSuffix(base, ReversalSuffix)
	}

	prefix, num, found := strings.Cut(base, "-")
	if !found {
		return "", 0, false, fmt.Errorf("invalid pair ref format: %q", ref)
	}

	switch prefix {
	case "PM":
		kind = model.KindIncome
	case "PG":
		kind = model.KindExpense
	default:
		return "", 0, false, fmt.Errorf("invalid kind prefix in pair ref %q", ref)
	}

	txID, err = strconv.Atoi(num)
	if err != nil {
		return "", 0, false, fmt.Errorf("invalid transaction ID in pair ref %q: %w", ref, err)
	}

	return kind, txID, reversal, nil
}

func kindPrefix(kind model.Kind) string {
	if kind == model.KindIncome {
		return "PM"
	}
	return "PG"
}
