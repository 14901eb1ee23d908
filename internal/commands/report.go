package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-books/tally/internal/ledger"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive financial reports from the journal",
	}
	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newLedgerCommand())
	cmd.AddCommand(newIncomeStatementCommand())
	cmd.AddCommand(newBalanceSheetCommand())
	return cmd
}

func newTrialBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance",
		Short: "Beginning balance, period activity, and ending balance per account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			co, err := b.cfg.CompanyInfo()
			if err != nil {
				return err
			}
			lines, err := b.journal.ReadAll()
			if err != nil {
				return err
			}

			report, diags := ledger.TrialBalance(b.accounts.All(), lines, co.FiscalYearStart)
			printDiagnostics(cmd.ErrOrStderr(), diags)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\nTrial Balance for fiscal year %s to %s\n",
				co.Name,
				co.FiscalYearStart.Format("2006-01-02"),
				co.FiscalYearEnd.Format("2006-01-02"))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "ACCOUNT\tNAME\tBEGINNING\tDEBIT\tCREDIT\tENDING\t")
			for _, row := range report.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
					row.AccountID, row.AccountName,
					row.BeginningBalance.StringFixed(2),
					row.TotalDebit.StringFixed(2),
					row.TotalCredit.StringFixed(2),
					row.EndingBalance.StringFixed(2))
			}
			fmt.Fprintf(tw, "\tTOTAL\t\t%s\t%s\t\t\n",
				report.TotalDebit.StringFixed(2), report.TotalCredit.StringFixed(2))
			return tw.Flush()
		},
	}
}

func newLedgerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <account-id>",
		Short: "Running-balance ledger for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}
			acct, ok := b.accounts.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown account %s", args[0])
			}
			fyStart, err := b.fiscalYearStart()
			if err != nil {
				return err
			}
			lines, err := b.journal.ReadAll()
			if err != nil {
				return err
			}

			view := ledger.AccountLedger(acct, lines, fyStart)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (normal %s)\n", view.AccountID, view.AccountName, acct.NormalSide())
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "DATE\tDESCRIPTION\tDEBIT\tCREDIT\tBALANCE\t")
			fmt.Fprintf(tw, "\tBeginning balance\t\t\t%s\t\n", view.BeginningBalance.StringFixed(2))
			for _, row := range view.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
					row.Date.Format("2006-01-02"), row.Description,
					zeroBlank(row.Debit), zeroBlank(row.Credit),
					row.Balance.StringFixed(2))
			}
			fmt.Fprintf(tw, "\tEnding balance\t\t\t%s\t\n", view.EndingBalance.StringFixed(2))
			return tw.Flush()
		},
	}
}

func newIncomeStatementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "income-statement",
		Short: "Revenue, expenses, and net income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			income, _, err := runStatements(cmd)
			if err != nil {
				return err
			}
			return printStatement(cmd.OutOrStdout(), income)
		},
	}
}

func newBalanceSheetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance-sheet",
		Short: "Assets, liabilities, and equity with retained earnings roll-forward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, balance, err := runStatements(cmd)
			if err != nil {
				return err
			}
			return printStatement(cmd.OutOrStdout(), balance)
		},
	}
}

func runStatements(cmd *cobra.Command) (income, balance ledger.Statement, err error) {
	b, err := openBooks(cmd)
	if err != nil {
		return income, balance, err
	}
	co, err := b.cfg.CompanyInfo()
	if err != nil {
		return income, balance, err
	}
	lines, err := b.journal.ReadAll()
	if err != nil {
		return income, balance, err
	}

	income, balance, diags := ledger.Statements(b.accounts.All(), lines, b.cfg.Accounts.RetainedEarnings)
	printDiagnostics(cmd.ErrOrStderr(), diags)
	fmt.Fprintln(cmd.OutOrStdout(), co.Name)
	return income, balance, nil
}

func printStatement(w io.Writer, s ledger.Statement) error {
	fmt.Fprintln(w, s.Title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, sec := range s.Sections {
		fmt.Fprintf(tw, "%s\t\t\n", sec.Title)
		for _, item := range sec.Items {
			fmt.Fprintf(tw, "  %s\t%s\t\n", item.Label, item.Amount.StringFixed(2))
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", sec.TotalLabel, sec.Total.StringFixed(2))
	}
	fmt.Fprintf(tw, "%s\t%s\t\n", s.FinalLabel, s.FinalAmount.StringFixed(2))
	return tw.Flush()
}

func printDiagnostics(w io.Writer, diags ledger.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintf(w, "warning: line %s references unknown account %s; skipped\n", d.LineID, d.AccountID)
	}
}

func zeroBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}
