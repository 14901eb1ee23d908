package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-books/tally/internal/importer"
)

func newImportCommand() *cobra.Command {
	var format string
	var contraAccount string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Book bank statement CSVs from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(cmd)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}
			if !b.accounts.Exists(contraAccount) {
				return fmt.Errorf("unknown contra account %s", contraAccount)
			}

			files, err := importer.Scan(b.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			for _, file := range files {
				f, err := os.Open(file.Path)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file.Name, err)
				}
				rows, err := parser.Parse(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("parsing %s: %w", file.Name, err)
				}

				for _, row := range rows {
					parts, err := importer.EntryParts(row, b.cfg.Accounts.Cash, contraAccount)
					if err != nil {
						return fmt.Errorf("%s: %w", file.Name, err)
					}
					entryID, err := b.journal.AddEntry(row.Date, row.Description, parts)
					if err != nil {
						return fmt.Errorf("%s: booking %q: %w", file.Name, row.Description, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Booked %s: %s\n", entryID, row.Description)
				}

				if err := importer.MarkProcessed(b.dir, file.Name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Processed %s (%d rows)\n", file.Name, len(rows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "statement CSV format")
	cmd.Flags().StringVar(&contraAccount, "account", "", "contra account for every row (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
