package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-books/tally/internal/journal"
	"github.com/tally-books/tally/internal/model"
)

func newEntryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Record journal entries",
	}
	cmd.AddCommand(newEntryAddCommand())
	cmd.AddCommand(newEntryIncomeCommand())
	cmd.AddCommand(newEntryExpenseCommand())
	return cmd
}

// parseSideFlags converts repeated "ACCOUNT=AMOUNT" flag values into parts.
func parseSideFlags(values []string, side model.Side) ([]journal.LinePart, error) {
	var parts []journal.LinePart
	for _, v := range values {
		acct, amt, found := strings.Cut(v, "=")
		if !found {
			return nil, fmt.Errorf("invalid %s %q (want ACCOUNT=AMOUNT)", side, v)
		}
		amount, err := decimal.NewFromString(amt)
		if err != nil {
			return nil, fmt.Errorf("parsing amount in %q: %w", v, err)
		}
		parts = append(parts, journal.LinePart{AccountID: acct, Side: side, Amount: amount})
	}
	return parts, nil
}

func newEntryAddCommand() *cobra.Command {
	var dateStr string
	var description string
	var debits []string
	var credits []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a multi-line entry from explicit debit/credit pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}

			debitParts, err := parseSideFlags(debits, model.SideDebit)
			if err != nil {
				return err
			}
			creditParts, err := parseSideFlags(credits, model.SideCredit)
			if err != nil {
				return err
			}

			entryID, err := b.journal.AddEntry(date, description, append(debitParts, creditParts...))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded entry %s\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line ACCOUNT=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line ACCOUNT=AMOUNT (repeatable)")

	return cmd
}

func newEntryIncomeCommand() *cobra.Command {
	var dateStr string
	var description string
	var account string
	var amountStr string
	var applyTax bool

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record income, optionally with output tax",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amountStr, err)
			}

			entryID, err := b.journal.AddIncome(date, description, journal.IncomeParams{
				AccountID: account,
				Amount:    amount,
				ApplyTax:  applyTax,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded entry %s\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&account, "account", "", "income account (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amountStr, "amount", "", "net amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().BoolVar(&applyTax, "tax", false, "add output tax on top of the amount")

	return cmd
}

func newEntryExpenseCommand() *cobra.Command {
	var dateStr string
	var description string
	var account string
	var amountStr string
	var applyWithholding bool

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense, optionally with withholding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amountStr, err)
			}

			entryID, err := b.journal.AddExpense(date, description, journal.ExpenseParams{
				AccountID:        account,
				Amount:           amount,
				ApplyWithholding: applyWithholding,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded entry %s\n", entryID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "desc", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("desc")
	cmd.Flags().StringVar(&account, "account", "", "expense account (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amountStr, "amount", "", "gross amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().BoolVar(&applyWithholding, "withhold", false, "withhold tax from the cash paid")

	return cmd
}
