package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/taniakun/taniakun/internal/books"
	"github.com/taniakun/taniakun/internal/report"
)

func newReportCommand() *cobra.Command {
	var dir, user, from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Income statement and balance sheet for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.requireUser(user); err != nil {
				return err
			}

			start, end, err := report.ParseRange(defaultRange(from, to))
			if err != nil {
				return err
			}

			rep, err := e.service.Report(user, start, end)
			if err != nil {
				return err
			}
			renderReport(rep)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")
	cmd.Flags().StringVar(&from, "from", "", "range start YYYY-MM-DD (default first of month)")
	cmd.Flags().StringVar(&to, "to", "", "range end YYYY-MM-DD inclusive (default today)")

	return cmd
}

// defaultRange fills empty boundaries the way the report page always has:
// first of the current month through today.
func defaultRange(from, to string) (string, string) {
	now := time.Now()
	if from == "" {
		from = now.AddDate(0, 0, 1-now.Day()).Format(report.DateFormat)
	}
	if to == "" {
		to = now.Format(report.DateFormat)
	}
	return from, to
}

func renderReport(rep *books.Report) {
	endInclusive := rep.End.AddDate(0, 0, -1)
	pterm.DefaultSection.Printf("Laporan %s s/d %s\n",
		rep.Start.Format(report.DateFormat), endInclusive.Format(report.DateFormat))

	summary := pterm.TableData{
		{"", "Amount"},
		{"Total Pemasukan", rep.TotalIncome.String()},
		{"Total Pengeluaran", rep.TotalExpense.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(summary).Render()

	pterm.DefaultSection.Println("Laba Rugi (periode)")
	income := pterm.TableData{
		{"", "Amount"},
		{"Pendapatan", rep.IncomeStatement.Revenue.String()},
		{"Beban", rep.IncomeStatement.Expense.String()},
		{"Laba/Rugi Bersih", rep.IncomeStatement.Net.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(income).Render()

	pterm.DefaultSection.Printf("Neraca per %s\n", endInclusive.Format(report.DateFormat))
	balance := pterm.TableData{
		{"", "Amount"},
		{"Aktiva", rep.BalanceSheet.Assets.String()},
		{"Kewajiban", rep.BalanceSheet.Liabilities.String()},
		{"Ekuitas", rep.BalanceSheet.Equity.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(balance).Render()

	if len(rep.Lines) == 0 {
		pterm.Info.Println("No journal entries in range")
		return
	}

	pterm.DefaultSection.Println("Jurnal Umum")
	data := pterm.TableData{{"Date", "Account", "Debit", "Credit", "Memo", "Ref"}}
	for _, line := range rep.Lines {
		data = append(data, []string{
			line.Date.Format("2006-01-02"),
			line.Account,
			line.Debit.String(),
			line.Credit.String(),
			line.Memo,
			line.Ref,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
