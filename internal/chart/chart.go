package chart

import (
	"sort"

	"github.com/taniakun/taniakun/internal/model"
)

// Category is one expense category and its sub-category accounts.
type Category struct {
	Name string   `yaml:"name"`
	Subs []string `yaml:"subs"`
}

// Chart is the immutable chart of accounts. It is built once (from
// Default or a chart.yaml) and injected into the journalizer and the
// statement aggregator; nothing mutates it at runtime.
//
// Classification is explicit: every account carries a class tag. A new
// expense sub-category automatically becomes an expense account for
// reporting, and revenue accounts are revenue because they are tagged so,
// not because of their name.
type Chart struct {
	categories []Category
	sources    []string
	byName     map[string]model.Account
}

// Core account names shared by every chart.
const (
	AccountKas     = "Kas"
	AccountBank    = "Bank"
	AccountPiutang = "Piutang Dagang"
	AccountUtang   = "Utang Dagang"
	AccountRevenue = "Pendapatan"
)

// New builds a Chart from expense categories and income sources. The core
// asset/liability/revenue accounts are always present; each category and
// each sub-category becomes an expense account.
func New(categories []Category, sources []string) *Chart {
	byName := map[string]model.Account{
		AccountKas:     {Name: AccountKas, Class: model.ClassAsset},
		AccountBank:    {Name: AccountBank, Class: model.ClassAsset},
		AccountPiutang: {Name: AccountPiutang, Class: model.ClassAsset},
		AccountUtang:   {Name: AccountUtang, Class: model.ClassLiability},
		AccountRevenue: {Name: AccountRevenue, Class: model.ClassRevenue},
	}
	for _, cat := range categories {
		byName[cat.Name] = model.Account{Name: cat.Name, Class: model.ClassExpense}
		for _, sub := range cat.Subs {
			byName[sub] = model.Account{Name: sub, Class: model.ClassExpense, Category: cat.Name}
		}
	}
	return &Chart{
		categories: categories,
		sources:    sources,
		byName:     byName,
	}
}

// Default returns the standard farm chart of accounts.
func Default() *Chart {
	return New(
		[]Category{
			{Name: "Bibit", Subs: []string{"Intani", "Inpari", "Ciherang", "32"}},
			{Name: "Pupuk", Subs: []string{"Urea", "NPK", "Organik", "Ponska"}},
			{Name: "Pestisida", Subs: []string{"Debestan", "Ronsa", "Refaton", "Ema", "Plenum"}},
			{Name: "Alat Tani", Subs: []string{"Sabit", "Cangkul", "Karung"}},
			{Name: "Tenaga Kerja", Subs: []string{"Upah Harian", "Borongan"}},
			{Name: "Lainnya", Subs: []string{"Lain-lain"}},
		},
		[]string{"Penjualan Padi", "Lain-lain"},
	)
}

// Get returns an account by name.
func (c *Chart) Get(name string) (model.Account, bool) {
	a, ok := c.byName[name]
	return a, ok
}

// Exists reports whether an account name is in the chart.
func (c *Chart) Exists(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Class returns the classification of an account name.
func (c *Chart) Class(name string) (model.AccountClass, bool) {
	a, ok := c.byName[name]
	return a.Class, ok
}

// Accounts returns all accounts sorted by name.
func (c *Chart) Accounts() []model.Account {
	result := make([]model.Account, 0, len(c.byName))
	for _, a := range c.byName {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// ByClass returns all accounts of the given class, sorted by name.
func (c *Chart) ByClass(class model.AccountClass) []model.Account {
	var result []model.Account
	for _, a := range c.Accounts() {
		if a.Class == class {
			result = append(result, a)
		}
	}
	return result
}

// Categories returns the expense categories in declaration order.
func (c *Chart) Categories() []Category {
	return c.categories
}

// SubCategories returns the sub-category names of a category.
func (c *Chart) SubCategories(category string) ([]string, bool) {
	for _, cat := range c.categories {
		if cat.Name == category {
			return cat.Subs, true
		}
	}
	return nil, false
}

// IncomeSources returns the valid income source names.
func (c *Chart) IncomeSources() []string {
	return c.sources
}
