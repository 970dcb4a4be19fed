// Package models implements the income record, its validation rules and its
// textual encodings.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/income-recorder/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DescriptionMaxLength is the maximum number of characters in a description.
const DescriptionMaxLength = 20

var codeFormat = regexp.MustCompile(`^[A-Z]{2}[0-9]{3}$`)

// Record represents a single income transaction.
//
// The code is the unique identifier of a record and is immutable after
// creation, all other fields can be changed with Update. Every Record that
// exists has passed validation for all of its fields.
type Record struct {
	Code         string          `json:"code" example:"IN001"`                 // Two letters followed by three digits
	Description  string          `json:"description" example:"Freelance Work"` // What the income was for
	Date         types.Date      `json:"date" example:"25/07/2025"`            // Day the income was received
	IncomeAmount decimal.Decimal `json:"incomeAmount" example:"10000.00"`      // Gross amount
	WHTAmount    decimal.Decimal `json:"whtAmount" example:"1000.00"`          // Withholding tax deducted from the gross amount
}

// NewRecord validates all fields and returns a new Record.
//
// Validation is all-or-nothing: the first field that fails aborts creation
// and no Record is returned.
func NewRecord(code, description, date string, income, wht decimal.Decimal) (Record, error) {
	c, err := ValidateCode(code)
	if err != nil {
		return Record{}, err
	}

	d, err := ValidateDescription(description)
	if err != nil {
		return Record{}, err
	}

	day, err := ValidateDate(date)
	if err != nil {
		return Record{}, err
	}

	i, err := ValidateIncomeAmount(income)
	if err != nil {
		return Record{}, err
	}

	w, err := ValidateWHTAmount(wht)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Code:         c,
		Description:  d,
		Date:         day,
		IncomeAmount: i,
		WHTAmount:    w,
	}, nil
}

// ValidateCode trims and upper-cases the code and checks that it is two
// letters followed by three digits.
func ValidateCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !codeFormat.MatchString(code) {
		return "", ValidationError{Field: "code", Reason: "must be 2 letters followed by 3 digits, e.g. IN001"}
	}

	return code, nil
}

// ValidateDescription trims the description and checks its length.
// The length is counted in characters, not bytes.
func ValidateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ValidationError{Field: "description", Reason: "must not be empty"}
	}

	if utf8.RuneCountInString(description) > DescriptionMaxLength {
		return "", ValidationError{Field: "description", Reason: fmt.Sprintf("must not exceed %d characters", DescriptionMaxLength)}
	}

	return description, nil
}

// ValidateDate checks that the date is in DD/MM/YYYY format and denotes a
// real calendar date.
func ValidateDate(date string) (types.Date, error) {
	d, err := types.ParseDate(date)
	if err != nil {
		return types.Date{}, ValidationError{Field: "date", Reason: err.Error()}
	}

	return d, nil
}

// ValidateIncomeAmount checks that the amount is strictly positive and
// rounds it to two decimal places, half to even.
func ValidateIncomeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, ValidationError{Field: "incomeAmount", Reason: "must be positive"}
	}

	return amount.RoundBank(2), nil
}

// ValidateWHTAmount checks that the amount is not negative and rounds it to
// two decimal places, half to even.
func ValidateWHTAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, ValidationError{Field: "whtAmount", Reason: "must not be negative"}
	}

	return amount.RoundBank(2), nil
}

// NetAmount returns the income amount after withholding tax.
func (r Record) NetAmount() decimal.Decimal {
	return r.IncomeAmount.Sub(r.WHTAmount).RoundBank(2)
}

// Equal reports whether two records represent the same income transaction.
// Identity is defined by the code alone.
func (r Record) Equal(other Record) bool {
	return r.Code == other.Code
}

// RecordUpdate contains the fields of a Record that can be changed after
// creation. Nil fields are left unchanged.
type RecordUpdate struct {
	Description  *string          `json:"description"`
	Date         *string          `json:"date"`
	IncomeAmount *decimal.Decimal `json:"incomeAmount"`
	WHTAmount    *decimal.Decimal `json:"whtAmount"`
}

// Update applies the non-nil fields of the update to the record.
// A validation failure leaves the record completely unchanged.
func (r *Record) Update(update RecordUpdate) error {
	updated := *r

	if update.Description != nil {
		d, err := ValidateDescription(*update.Description)
		if err != nil {
			return err
		}
		updated.Description = d
	}

	if update.Date != nil {
		d, err := ValidateDate(*update.Date)
		if err != nil {
			return err
		}
		updated.Date = d
	}

	if update.IncomeAmount != nil {
		i, err := ValidateIncomeAmount(*update.IncomeAmount)
		if err != nil {
			return err
		}
		updated.IncomeAmount = i
	}

	if update.WHTAmount != nil {
		w, err := ValidateWHTAmount(*update.WHTAmount)
		if err != nil {
			return err
		}
		updated.WHTAmount = w
	}

	*r = updated
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("Record(code=%s, description=%s, date=%s, income=%s, wht=%s, net=%s)",
		r.Code, r.Description, r.Date, r.IncomeAmount.StringFixed(2), r.WHTAmount.StringFixed(2), r.NetAmount().StringFixed(2))
}
