package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage registered users",
	}
	userCmd.AddCommand(newUserRegisterCommand())
	return userCmd
}

func newUserRegisterCommand() *cobra.Command {
	var dir string
	var password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}
			if err := e.users.Register(args[0], password); err != nil {
				return err
			}
			e.snapshot("user: register " + args[0])
			fmt.Printf("Registered user %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
