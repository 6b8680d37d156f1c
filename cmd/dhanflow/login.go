package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
)

func loginCmd() *cobra.Command {
	var (
		name     string
		phone    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and register this device",
		Long: `Log in with an email address. First-time emails are registered; repeat
logins update the registered name and phone.

The reserved administrative address requires --password. This is a
development placeholder, not real authentication.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}

			user, err := st.Login(args[0], name, phone, password)
			if err != nil {
				return err
			}

			greeting := fmt.Sprintf("Logged in as %s <%s>", user.Name, user.Email)
			if user.IsAdmin {
				greeting += " " + cli.ShieldIcon + " admin"
			}
			fmt.Println(cli.FormatSuccess(greeting))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "User", "display name")
	cmd.Flags().StringVar(&phone, "phone", "N/A", "phone number")
	cmd.Flags().StringVar(&password, "password", "", "password (only checked for the admin address)")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the current session",
		Long:  `Clear the session. Accounts, transactions, budgets, and the user registry are kept.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if st.CurrentUser() == nil {
				fmt.Println(cli.FormatInfo("Not logged in."))
				return nil
			}
			st.Logout()
			fmt.Println(cli.FormatSuccess("Logged out."))
			return nil
		},
	}
}
