package model

// AccountClass classifies accounts for statement aggregation. Every account
// is tagged once when the chart is built; reports never inspect account
// names to decide how to treat them.
type AccountClass string

const (
	ClassAsset     AccountClass = "asset"
	ClassLiability AccountClass = "liability"
	ClassEquity    AccountClass = "equity"
	ClassRevenue   AccountClass = "revenue"
	ClassExpense   AccountClass = "expense"
)

// Account is a named posting bucket in the chart of accounts. Accounts are
// identified by name only; Category links an expense sub-account to its
// parent category and is empty for everything else.
type Account struct {
	Name     string
	Class    AccountClass
	Category string
}
