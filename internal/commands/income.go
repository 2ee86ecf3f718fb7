package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taniakun/taniakun/internal/books"
	"github.com/taniakun/taniakun/internal/model"
)

func newIncomeCommand() *cobra.Command {
	incomeCmd := &cobra.Command{
		Use:   "income",
		Short: "Record and list income",
	}
	incomeCmd.AddCommand(newIncomeAddCommand())
	incomeCmd.AddCommand(newIncomeListCommand())
	return incomeCmd
}

func newIncomeAddCommand() *cobra.Command {
	var dir, user, date, amount, source, method, memo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.requireUser(user); err != nil {
				return err
			}

			when, err := parseEntryDate(date)
			if err != nil {
				return err
			}
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			tx, err := e.service.RecordIncome(user, books.IncomeParams{
				Date:   when,
				Amount: amt,
				Source: source,
				Method: method,
				Memo:   memo,
			})
			if err != nil {
				return err
			}

			e.snapshot(fmt.Sprintf("income: #%d %s %s", tx.ID, source, amt))
			pterm.Success.Printf("Recorded income #%d: %s %s (%s)\n", tx.ID, source, amt, method)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&source, "source", "", "income source, e.g. \"Penjualan Padi\" (required)")
	cmd.Flags().StringVar(&method, "method", "Tunai", "payment method: Tunai, Transfer, Piutang, Pelunasan Piutang")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func newIncomeListCommand() *cobra.Command {
	var dir, user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.requireUser(user); err != nil {
				return err
			}

			txns, err := e.service.List(model.KindIncome, user)
			if err != nil {
				return err
			}
			renderTransactions(model.KindIncome, txns)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")

	return cmd
}

func renderTransactions(kind model.Kind, txns []model.Transaction) {
	if len(txns) == 0 {
		pterm.Info.Println("No transactions recorded")
		return
	}

	data := pterm.TableData{{"ID", "Date", "Classification", "Amount", "Method", "Memo"}}
	for _, tx := range txns {
		data = append(data, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format("2006-01-02"),
			tx.Label(kind),
			tx.Amount.String(),
			tx.Method,
			tx.Memo,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
