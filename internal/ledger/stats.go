package ledger

import "github.com/shopspring/decimal"

// Stats contains aggregate statistics over all records in a ledger.
// All amounts are rounded to two decimal places.
type Stats struct {
	Count         int             `json:"count" example:"2"`                // Number of records
	TotalIncome   decimal.Decimal `json:"totalIncome" example:"12500.00"`   // Sum of all gross amounts
	TotalWHT      decimal.Decimal `json:"totalWht" example:"1250.00"`       // Sum of all withholding tax amounts
	TotalNet      decimal.Decimal `json:"totalNet" example:"11250.00"`      // Sum of all net amounts
	AverageIncome decimal.Decimal `json:"averageIncome" example:"6250.00"`  // Mean gross amount
	AverageWHT    decimal.Decimal `json:"averageWht" example:"625.00"`      // Mean withholding tax amount
}

// Stats calculates the aggregate statistics for the ledger.
// An empty ledger yields all-zero statistics.
func (l *Ledger) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := Stats{Count: len(l.records)}
	for _, record := range l.records {
		stats.TotalIncome = stats.TotalIncome.Add(record.IncomeAmount)
		stats.TotalWHT = stats.TotalWHT.Add(record.WHTAmount)
		stats.TotalNet = stats.TotalNet.Add(record.NetAmount())
	}

	if stats.Count > 0 {
		count := decimal.NewFromInt(int64(stats.Count))
		stats.AverageIncome = stats.TotalIncome.Div(count).RoundBank(2)
		stats.AverageWHT = stats.TotalWHT.Div(count).RoundBank(2)
	}

	return stats
}
