package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taniakun/taniakun/internal/books"
	"github.com/taniakun/taniakun/internal/model"
)

func newExpenseCommand() *cobra.Command {
	expenseCmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and list expenses",
	}
	expenseCmd.AddCommand(newExpenseAddCommand())
	expenseCmd.AddCommand(newExpenseListCommand())
	return expenseCmd
}

func newExpenseAddCommand() *cobra.Command {
	var dir, user, date, amount, category, sub, method, memo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.requireUser(user); err != nil {
				return err
			}

			subs, ok := e.chart.SubCategories(category)
			if !ok {
				return fmt.Errorf("unknown expense category %q", category)
			}
			known := false
			for _, s := range subs {
				if s == sub {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("sub-category %q is not part of %q", sub, category)
			}

			when, err := parseEntryDate(date)
			if err != nil {
				return err
			}
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			tx, err := e.service.RecordExpense(user, books.ExpenseParams{
				Date:        when,
				Amount:      amt,
				Category:    category,
				SubCategory: sub,
				Method:      method,
				Memo:        memo,
			})
			if err != nil {
				return err
			}

			e.snapshot(fmt.Sprintf("expense: #%d %s/%s %s", tx.ID, category, sub, amt))
			pterm.Success.Printf("Recorded expense #%d: %s - %s %s (%s)\n", tx.ID, category, sub, amt, method)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "expense category, e.g. Pupuk (required)")
	cmd.Flags().StringVar(&sub, "sub", "", "sub-category, e.g. Urea (required)")
	cmd.Flags().StringVar(&method, "method", "Tunai", "payment method: Tunai, Transfer, Utang, Pelunasan Utang")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("sub")

	return cmd
}

func newExpenseListCommand() *cobra.Command {
	var dir, user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expense transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.requireUser(user); err != nil {
				return err
			}

			txns, err := e.service.List(model.KindExpense, user)
			if err != nil {
				return err
			}
			renderTransactions(model.KindExpense, txns)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")

	return cmd
}
