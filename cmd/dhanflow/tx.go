package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/store"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Record, list, update, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(updateTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		month      string
		accountRef string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			snap := st.Snapshot()
			accountNames := make(map[string]string, len(snap.Accounts))
			for _, acc := range snap.Accounts {
				accountNames[acc.ID] = acc.Name
			}

			var accountID string
			if accountRef != "" {
				acc, ok := resolveAccount(st, accountRef)
				if !ok {
					return fmt.Errorf("no account matches %q", accountRef)
				}
				accountID = acc.ID
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Title"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Account"),
				cli.HeaderStyle.Render("Amount"))

			shown := 0
			for _, t := range snap.Transactions {
				if month != "" && t.Month() != month {
					continue
				}
				if accountID != "" && t.AccountID != accountID {
					continue
				}
				shown++

				amount := money(st, t.Amount)
				if t.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render("+" + amount)
				} else {
					amount = cli.ExpenseStyle.Render("-" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(t.ID), t.Date, t.Title, t.Category, accountNames[t.AccountID], amount)
			}

			if shown == 0 {
				fmt.Fprintln(w, cli.InfoStyle.Render("No transactions match."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "only transactions in YYYY-MM")
	cmd.Flags().StringVarP(&accountRef, "account", "a", "", "only transactions on this account")

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		amountStr  string
		txType     string
		category   string
		accountRef string
		date       string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction against an account.

The amount is always a positive magnitude; direction comes from --type.
Income transactions default to the Income Source category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			amount, err := parseAmount(amountStr)
			if err != nil {
				return err
			}
			tt, err := model.ParseTransactionType(txType)
			if err != nil {
				return err
			}

			if category == "" {
				if tt == model.TypeIncome {
					category = string(model.CategoryIncomeSource)
				} else {
					category = string(model.CategoryOther)
				}
			}
			cat, err := model.ParseCategory(category)
			if err != nil {
				return err
			}

			acc, ok := resolveAccount(st, accountRef)
			if !ok {
				return fmt.Errorf("no account matches %q; run 'dhanflow accounts list'", accountRef)
			}

			if date == "" {
				date = time.Now().Format(model.DateLayout)
			}

			tx, err := st.AddTransaction(model.Transaction{
				Title:     args[0],
				Amount:    amount,
				Type:      tt,
				Category:  cat,
				AccountID: acc.ID,
				Date:      date,
				Notes:     notes,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s on %q (%s)",
				strings.ToLower(string(tx.Type)), money(st, tx.Amount), acc.Name, shortID(tx.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (positive)")
	cmd.Flags().StringVarP(&txType, "type", "t", "EXPENSE", "INCOME or EXPENSE")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category (default: Other, or Income Source for income)")
	cmd.Flags().StringVarP(&accountRef, "account", "a", "", "account id or name")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "free-form notes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func updateTxCmd() *cobra.Command {
	var (
		title     string
		amountStr string
		category  string
		date      string
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a transaction in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			tx, ok := resolveTransaction(st, args[0])
			if !ok {
				fmt.Println(cli.FormatWarning("No transaction matches " + args[0] + "; nothing to update."))
				return nil
			}

			if cmd.Flags().Changed("title") {
				tx.Title = title
			}
			if cmd.Flags().Changed("amount") {
				amount, err := parseAmount(amountStr)
				if err != nil {
					return err
				}
				tx.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				cat, err := model.ParseCategory(category)
				if err != nil {
					return err
				}
				tx.Category = cat
			}
			if cmd.Flags().Changed("date") {
				tx.Date = date
			}
			if cmd.Flags().Changed("notes") {
				tx.Notes = notes
			}

			if err := st.UpdateTransaction(tx); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %q", tx.Title)))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&date, "date", "", "new date YYYY-MM-DD")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			tx, ok := resolveTransaction(st, args[0])
			if !ok {
				fmt.Println(cli.FormatWarning("No transaction matches " + args[0] + "; nothing to delete."))
				return nil
			}

			if err := st.DeleteTransaction(tx.ID); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %q (%s)", tx.Title, money(st, tx.Amount))))
			return nil
		},
	}
}

// resolveTransaction finds a transaction by full id or id prefix.
func resolveTransaction(st *store.Store, ref string) (model.Transaction, bool) {
	snap := st.Snapshot()
	for _, t := range snap.Transactions {
		if t.ID == ref {
			return t, true
		}
	}
	for _, t := range snap.Transactions {
		if strings.HasPrefix(t.ID, ref) {
			return t, true
		}
	}
	return model.Transaction{}, false
}
