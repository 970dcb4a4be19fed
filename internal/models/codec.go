package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StorageLine renders the record in its pipe-delimited storage form:
// CODE|DESCRIPTION|DD/MM/YYYY|INCOME|WHT, amounts with exactly two
// fractional digits.
func (r Record) StorageLine() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		r.Code, r.Description, r.Date, r.IncomeAmount.StringFixed(2), r.WHTAmount.StringFixed(2))
}

// FromStorageLine parses the pipe-delimited storage form of a record.
//
// The line must have exactly five fields and every field is validated again,
// so re-encoding the result reproduces the canonical bytes.
func FromStorageLine(line string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) != 5 {
		return Record{}, ParseError{Err: fmt.Errorf("expected 5 fields, got %d", len(parts))}
	}

	return fromFields(parts)
}

// ReportLine renders the record in its comma-delimited report form with the
// checksum appended: CODE,DESCRIPTION,DD/MM/YYYY,INCOME,WHT,CHECKSUM.
//
// The checksum is computed over the line before it is appended.
func (r Record) ReportLine() string {
	line := fmt.Sprintf("%s,%s,%s,%s,%s",
		r.Code, r.Description, r.Date, r.IncomeAmount.StringFixed(2), r.WHTAmount.StringFixed(2))

	return fmt.Sprintf("%s,%d", line, Checksum(line))
}

// FromReportLine parses the comma-delimited report form of a record.
//
// The trailing checksum field is optional on read and is not cross-checked
// against the other fields here. Callers that want verification use the
// report package's strict mode.
func FromReportLine(line string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 5 {
		return Record{}, ParseError{Err: fmt.Errorf("expected at least 5 fields, got %d", len(parts))}
	}

	return fromFields(parts[:5])
}

// fromFields builds a Record from the five textual fields shared by both
// line forms, in the fixed field order.
func fromFields(fields []string) (Record, error) {
	income, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return Record{}, ParseError{Err: ValidationError{Field: "incomeAmount", Reason: "must be a valid number"}}
	}

	wht, err := decimal.NewFromString(strings.TrimSpace(fields[4]))
	if err != nil {
		return Record{}, ParseError{Err: ValidationError{Field: "whtAmount", Reason: "must be a valid number"}}
	}

	record, err := NewRecord(fields[0], fields[1], fields[2], income, wht)
	if err != nil {
		return Record{}, ParseError{Err: err}
	}

	return record, nil
}
