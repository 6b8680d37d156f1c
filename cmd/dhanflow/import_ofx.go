package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var (
		accountRef string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx <file>...",
		Short: "Import transactions from OFX/QFX statement files",
		Long: `Parse one or more OFX/QFX bank statement files and record their
transactions against an account. Lines already present, matched on date,
amount, direction, title, and account, are skipped.

Glob patterns are expanded, so 'dhanflow import-ofx statements/*.qfx'
imports a whole directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			acc, ok := resolveAccount(st, accountRef)
			if !ok {
				return fmt.Errorf("no account matches %q; run 'dhanflow accounts list'", accountRef)
			}

			var files []string
			for _, arg := range args {
				matches, err := filepath.Glob(arg)
				if err != nil {
					return fmt.Errorf("invalid file pattern %q: %w", arg, err)
				}
				if len(matches) == 0 {
					return fmt.Errorf("no files match %q", arg)
				}
				files = append(files, matches...)
			}

			seen := make(map[string]bool)
			for _, t := range st.Snapshot().Transactions {
				seen[t.GenerateHash()] = true
			}

			parser := ofx.NewParser()
			imported, skipped := 0, 0

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing statements..."),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			for _, file := range files {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				txs, err := parser.ParseFile(cmd.Context(), f, acc.ID)
				f.Close()
				if err != nil {
					return fmt.Errorf("failed to import %s: %w", file, err)
				}

				for _, tx := range txs {
					hash := tx.GenerateHash()
					if seen[hash] {
						skipped++
						continue
					}
					seen[hash] = true
					if !dryRun {
						if _, err := st.AddTransaction(tx); err != nil {
							return fmt.Errorf("failed to record %q from %s: %w", tx.Title, file, err)
						}
					}
					imported++
				}
				_ = bar.Add(1)
			}

			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %d transaction(s) into %q, skipped %d duplicate(s)",
				verb, imported, acc.Name, skipped)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&accountRef, "account", "a", "", "account id or name to import into")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without recording anything")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
