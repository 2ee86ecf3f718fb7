package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/taniakun/taniakun/internal/ledger"
	"github.com/taniakun/taniakun/internal/report"
)

func newLedgerCommand() *cobra.Command {
	var dir, user, from, to, account string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show per-account running balances for a date range",
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

			accounts, err := e.service.Ledger(user, start, end)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				pterm.Info.Println("No journal entries in range")
				return nil
			}

			for _, name := range ledger.Accounts(accounts) {
				if account != "" && name != account {
					continue
				}
				renderAccount(name, accounts[name])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")
	cmd.Flags().StringVar(&from, "from", "", "range start YYYY-MM-DD (default first of month)")
	cmd.Flags().StringVar(&to, "to", "", "range end YYYY-MM-DD inclusive (default today)")
	cmd.Flags().StringVar(&account, "account", "", "show a single account")

	return cmd
}

func renderAccount(name string, rows []ledger.Row) {
	pterm.DefaultSection.Println(name)

	data := pterm.TableData{{"Date", "Memo", "Debit", "Credit", "Balance"}}
	for _, row := range rows {
		data = append(data, []string{
			row.Line.Date.Format("2006-01-02"),
			row.Line.Memo,
			row.Line.Debit.String(),
			row.Line.Credit.String(),
			row.Balance.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
