package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhanflow/dhanflow/internal/cli"
	"github.com/dhanflow/dhanflow/internal/currency"
)

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency [code]",
		Short: "Show or change the display currency",
		Long: `With no argument, print the active display currency. With a code,
switch to it. Supported codes: ` + strings.Join(currency.Supported, ", ") + `.

Changing the currency relabels amounts; stored values are not converted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Printf("Display currency: %s\n", cli.BoldStyle.Render(st.Snapshot().Currency))
				return nil
			}

			code := strings.ToUpper(args[0])
			if !currency.IsSupported(code) {
				return fmt.Errorf("unsupported currency %q; choose one of %s",
					args[0], strings.Join(currency.Supported, ", "))
			}
			st.SetCurrency(code)
			fmt.Println(cli.FormatSuccess("Display currency set to " + code))
			return nil
		},
	}
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if _, err := requireUser(st); err != nil {
				return err
			}

			if st.ToggleDarkMode() {
				fmt.Println(cli.FormatSuccess("Dark theme enabled"))
			} else {
				fmt.Println(cli.FormatSuccess("Light theme enabled"))
			}
			return nil
		},
	}
}
