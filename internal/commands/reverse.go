package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/taniakun/taniakun/internal/model"
)

func newReverseCommand() *cobra.Command {
	var dir, user string

	cmd := &cobra.Command{
		Use:   "reverse <pemasukan|pengeluaran> <id>",
		Short: "Void a transaction by posting its reversing journal pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			txID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid transaction ID %q", args[1])
			}

			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.requireUser(user); err != nil {
				return err
			}

			tx, err := e.service.Reverse(kind, txID, user)
			if err != nil {
				return err
			}

			e.snapshot(fmt.Sprintf("reverse: %s #%d", kind, txID))
			pterm.Success.Printf("Reversed %s #%d (%s %s); reversing journal pair posted\n",
				kind, tx.ID, tx.Label(kind), tx.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&user, "user", "", "owning user (required)")

	return cmd
}

func parseKind(s string) (model.Kind, error) {
	switch s {
	case string(model.KindIncome), "income":
		return model.KindIncome, nil
	case string(model.KindExpense), "expense":
		return model.KindExpense, nil
	}
	return "", fmt.Errorf("unknown transaction kind %q (want pemasukan or pengeluaran)", s)
}
