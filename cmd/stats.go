package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over all records",
	RunE: func(_ *cobra.Command, _ []string) error {
		l, err := loadLedger()
		if err != nil {
			return err
		}

		stats := l.Stats()

		fmt.Printf("Records:        %d\n", stats.Count)
		fmt.Printf("Total income:   %s\n", stats.TotalIncome.StringFixed(2))
		fmt.Printf("Total WHT:      %s\n", stats.TotalWHT.StringFixed(2))
		fmt.Printf("Total net:      %s\n", stats.TotalNet.StringFixed(2))
		fmt.Printf("Average income: %s\n", stats.AverageIncome.StringFixed(2))
		fmt.Printf("Average WHT:    %s\n", stats.AverageWHT.StringFixed(2))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
