package cmd

import (
	"fmt"

	"github.com/income-recorder/backend/internal/models"
	"github.com/income-recorder/backend/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	addCode        string
	addDescription string
	addDate        string
	addIncome      string
	addWHT         string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an income record",
	Example: `  income-recorder add --code IN001 --description "Freelance Work" \
    --date 25/07/2025 --income 10000 --wht 1000`,
	RunE: func(_ *cobra.Command, _ []string) error {
		income, err := parseAmount("income", addIncome)
		if err != nil {
			return err
		}

		wht, err := parseAmount("wht", addWHT)
		if err != nil {
			return err
		}

		record, err := models.NewRecord(addCode, addDescription, addDate, income, wht)
		if err != nil {
			return err
		}

		l, err := loadLedger()
		if err != nil {
			return err
		}

		if err := l.Add(record); err != nil {
			return err
		}

		if err := storage.Save(dataFile, l.All()); err != nil {
			return err
		}

		fmt.Printf("Added %s\n", record)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <code>",
	Short: "Show a single income record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		l, err := loadLedger()
		if err != nil {
			return err
		}

		record, err := l.Get(args[0])
		if err != nil {
			return err
		}

		printRecords(record)
		return nil
	},
}

var listSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List income records",
	Long: `List all income records sorted by code.

With --search, only records whose code or description matches the glob
pattern are listed, e.g. --search 'IN*' or --search '*Freelance*'.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		l, err := loadLedger()
		if err != nil {
			return err
		}

		records := l.All()
		if listSearch != "" {
			records = l.Search(listSearch)
		}

		if len(records) == 0 {
			fmt.Println("No records found.")
			return nil
		}

		printRecords(records...)
		return nil
	},
}

var (
	updateDescription string
	updateDate        string
	updateIncome      string
	updateWHT         string
)

var updateCmd = &cobra.Command{
	Use:   "update <code>",
	Short: "Update an income record",
	Long: `Update fields of an existing income record. Only the fields for
which a flag is given are changed, the code cannot be changed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var update models.RecordUpdate

		if cmd.Flags().Changed("description") {
			update.Description = &updateDescription
		}
		if cmd.Flags().Changed("date") {
			update.Date = &updateDate
		}
		if cmd.Flags().Changed("income") {
			income, err := parseAmount("income", updateIncome)
			if err != nil {
				return err
			}
			update.IncomeAmount = &income
		}
		if cmd.Flags().Changed("wht") {
			wht, err := parseAmount("wht", updateWHT)
			if err != nil {
				return err
			}
			update.WHTAmount = &wht
		}

		l, err := loadLedger()
		if err != nil {
			return err
		}

		record, err := l.Update(args[0], update)
		if err != nil {
			return err
		}

		if err := storage.Save(dataFile, l.All()); err != nil {
			return err
		}

		fmt.Printf("Updated %s\n", record)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete an income record",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		l, err := loadLedger()
		if err != nil {
			return err
		}

		if err := l.Delete(args[0]); err != nil {
			return err
		}

		if err := storage.Save(dataFile, l.All()); err != nil {
			return err
		}

		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd, getCmd, listCmd, updateCmd, deleteCmd)

	addCmd.Flags().StringVar(&addCode, "code", "", "income code, 2 letters followed by 3 digits")
	addCmd.Flags().StringVar(&addDescription, "description", "", "description, 1 to 20 characters")
	addCmd.Flags().StringVar(&addDate, "date", "", "date in DD/MM/YYYY format")
	addCmd.Flags().StringVar(&addIncome, "income", "", "gross income amount")
	addCmd.Flags().StringVar(&addWHT, "wht", "0", "withholding tax amount")
	_ = addCmd.MarkFlagRequired("code")
	_ = addCmd.MarkFlagRequired("description")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("income")

	listCmd.Flags().StringVar(&listSearch, "search", "", "glob pattern matched against code and description")

	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "new date in DD/MM/YYYY format")
	updateCmd.Flags().StringVar(&updateIncome, "income", "", "new gross income amount")
	updateCmd.Flags().StringVar(&updateWHT, "wht", "", "new withholding tax amount")
}

// parseAmount parses a command line amount the same way the validators
// treat it: anything that is not a number is rejected.
func parseAmount(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, models.ValidationError{Field: name, Reason: "must be a valid number"}
	}

	return amount, nil
}

// printRecords prints records in a fixed-width table.
func printRecords(records ...models.Record) {
	fmt.Printf("%-6s %-20s %-10s %12s %12s %12s\n", "CODE", "DESCRIPTION", "DATE", "INCOME", "WHT", "NET")
	for _, record := range records {
		fmt.Printf("%-6s %-20s %-10s %12s %12s %12s\n",
			record.Code,
			record.Description,
			record.Date,
			record.IncomeAmount.StringFixed(2),
			record.WHTAmount.StringFixed(2),
			record.NetAmount().StringFixed(2),
		)
	}
}
