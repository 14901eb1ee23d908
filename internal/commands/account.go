package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-books/tally/internal/model"
)

func newAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage the chart of accounts",
	}
	cmd.AddCommand(newAccountListCommand())
	cmd.AddCommand(newAccountAddCommand())
	cmd.AddCommand(newAccountRemoveCommand())
	return cmd
}

func newAccountListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts in chart order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tNORMAL\tBEGINNING")
			for _, a := range b.accounts.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					a.ID, a.Name, a.Category, a.NormalSide(), a.BeginningBalance.StringFixed(2))
			}
			return tw.Flush()
		},
	}
}

func newAccountAddCommand() *cobra.Command {
	var name string
	var category string
	var balance string
	var description string

	cmd := &cobra.Command{
		Use:   "add <account-id>",
		Short: "Add an account to the chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			beginning := decimal.Zero
			if balance != "" {
				beginning, err = decimal.NewFromString(balance)
				if err != nil {
					return fmt.Errorf("parsing --balance %q: %w", balance, err)
				}
			}

			acct := model.Account{
				ID:               args[0],
				Name:             name,
				Category:         model.Category(category),
				BeginningBalance: beginning,
				Description:      description,
			}
			if err := b.accounts.Add(acct); err != nil {
				return err
			}
			if err := b.accounts.Save(b.dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s, normal %s)\n",
				acct.ID, acct.Name, acct.Category, acct.NormalSide())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&category, "category", "", "account category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&balance, "balance", "", "beginning balance on the normal side")
	cmd.Flags().StringVar(&description, "description", "", "account description")

	return cmd
}

func newAccountRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <account-id>",
		Short: "Remove an unreferenced account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			if err := b.accounts.Remove(args[0], b.journal); err != nil {
				return err
			}
			if err := b.accounts.Save(b.dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
