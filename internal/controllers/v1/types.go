package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/httputil"
	"github.com/income-recorder/backend/internal/ledger"
	"github.com/income-recorder/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RecordEditable contains all fields a client sends to create a record.
type RecordEditable struct {
	Code         string          `json:"code" example:"IN001"`                 // Two letters followed by three digits, case-insensitive
	Description  string          `json:"description" example:"Freelance Work"` // 1 to 20 characters
	Date         string          `json:"date" example:"25/07/2025"`            // DD/MM/YYYY
	IncomeAmount decimal.Decimal `json:"incomeAmount" example:"10000.00"`      // Gross amount, must be positive
	WHTAmount    decimal.Decimal `json:"whtAmount" example:"1000.00"`          // Withholding tax, must not be negative
}

// model validates the editable fields and returns the record they describe.
func (editable RecordEditable) model() (models.Record, error) {
	return models.NewRecord(editable.Code, editable.Description, editable.Date, editable.IncomeAmount, editable.WHTAmount)
}

// RecordLinks contains the links for a record.
type RecordLinks struct {
	Self string `json:"self" example:"https://example.com/v1/records/IN001"` // The record itself
}

// Record is the API representation of an income record.
type Record struct {
	models.Record
	NetAmount decimal.Decimal `json:"netAmount" example:"9000.00"` // Gross amount minus withholding tax
	Links     RecordLinks     `json:"links"`
}

// newRecord returns the API representation of the record.
func newRecord(c *gin.Context, model models.Record) Record {
	return Record{
		Record:    model,
		NetAmount: model.NetAmount(),
		Links: RecordLinks{
			Self: fmt.Sprintf("%s/v1/records/%s", httputil.RequestHost(c), model.Code),
		},
	}
}

type RecordResponse struct {
	Data  *Record `json:"data"`  // The record
	Error *string `json:"error"` // The error, if any occurred
}

type RecordListResponse struct {
	Data  []Record `json:"data"`  // List of records
	Error *string  `json:"error"` // The error, if any occurred
}

type StatsResponse struct {
	Data  *ledger.Stats `json:"data"`  // Aggregate statistics for all records
	Error *string       `json:"error"` // The error, if any occurred
}
