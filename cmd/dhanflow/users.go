package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/common"
)

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users (admin only)",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			user, err := requireUser(st)
			if err != nil {
				return err
			}
			if !user.IsAdmin {
				return common.NewUserError("only the administrator can list users", common.ErrAdminOnly)
			}

			users := st.RegisteredUsers()
			if len(users) == 0 {
				fmt.Println(cli.InfoStyle.Render("No users have registered yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle(cli.ShieldIcon + " Registered users"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Email"),
				cli.HeaderStyle.Render("Phone"),
				cli.HeaderStyle.Render("Joined"))
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Name, u.Email, u.Phone, u.JoinedAt)
			}
			return nil
		},
	}
}
