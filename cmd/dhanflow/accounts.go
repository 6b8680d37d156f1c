package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/report"
	"github.com/dhanflow/dhanflow/internal/store"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  `List, add, update, and delete the accounts money moves through.`,
	}

	cmd.AddCommand(listAccountsCmd())
	cmd.AddCommand(addAccountCmd())
	cmd.AddCommand(updateAccountCmd())
	cmd.AddCommand(deleteAccountCmd())

	return cmd
}

func listAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts with derived balances",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			if len(snap.Accounts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No accounts yet. Use 'dhanflow accounts add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Balance"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 8), strings.Repeat("-", 20), strings.Repeat("-", 6), strings.Repeat("-", 12))

			for _, acc := range snap.Accounts {
				balance := report.AccountBalance(acc, snap.Transactions)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(acc.ID), acc.Name, acc.Type, money(st, balance))
			}

			fmt.Fprintf(w, "\t\t%s\t%s\n",
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render(money(st, report.TotalBalance(snap.Accounts, snap.Transactions))))
			return nil
		},
	}
}

func addAccountCmd() *cobra.Command {
	var (
		accountType     string
		startingBalance string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			at, err := model.ParseAccountType(accountType)
			if err != nil {
				return err
			}
			balance, err := parseAmount(startingBalance)
			if err != nil {
				return err
			}

			acc, err := st.AddAccount(model.Account{
				Name:            args[0],
				Type:            at,
				StartingBalance: balance,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s account %q (%s)", acc.Type, acc.Name, shortID(acc.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountType, "type", "t", "CASH", "account type (CASH, BANK, WALLET, CARD)")
	cmd.Flags().StringVarP(&startingBalance, "balance", "b", "0", "starting balance")

	return cmd
}

func updateAccountCmd() *cobra.Command {
	var (
		name            string
		accountType     string
		startingBalance string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			acc, ok := resolveAccount(st, args[0])
			if !ok {
				fmt.Println(cli.FormatWarning("No account matches " + args[0] + "; nothing to update."))
				return nil
			}

			if cmd.Flags().Changed("name") {
				acc.Name = name
			}
			if cmd.Flags().Changed("type") {
				at, err := model.ParseAccountType(accountType)
				if err != nil {
					return err
				}
				acc.Type = at
			}
			if cmd.Flags().Changed("balance") {
				balance, err := parseAmount(startingBalance)
				if err != nil {
					return err
				}
				acc.StartingBalance = balance
			}

			if err := st.UpdateAccount(acc); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated account %q", acc.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&accountType, "type", "", "new type")
	cmd.Flags().StringVar(&startingBalance, "balance", "", "new starting balance")

	return cmd
}

func deleteAccountCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account and every transaction on it",
		Long: `Delete an account. All transactions referencing the account are removed
in the same operation, so references never dangle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			acc, ok := resolveAccount(st, args[0])
			if !ok {
				fmt.Println(cli.FormatWarning("No account matches " + args[0] + "; nothing to delete."))
				return nil
			}

			if !force {
				prompt := fmt.Sprintf("Delete account %q and all its transactions?", acc.Name)
				if !cli.Confirm(os.Stdout, cmd.InOrStdin(), prompt) {
					fmt.Println("Canceled.")
					return nil
				}
			}

			cascaded, err := st.DeleteAccount(acc.ID)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %q along with %d transactions", acc.Name, cascaded)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

// resolveAccount finds an account by full id, id prefix, or exact name.
func resolveAccount(st *store.Store, ref string) (model.Account, bool) {
	snap := st.Snapshot()
	for _, acc := range snap.Accounts {
		if acc.ID == ref || acc.Name == ref {
			return acc, true
		}
	}
	for _, acc := range snap.Accounts {
		if strings.HasPrefix(acc.ID, ref) {
			return acc, true
		}
	}
	return model.Account{}, false
}

// shortID keeps table output readable; full ids still resolve everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
