// Package report renders and parses the checksummed CSV income sheet.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/income-recorder/backend/internal/models"
)

// Header is the fixed first line of every income sheet.
const Header = "Income_Code,Description,Date,Income_Amount,WHT_Amount,Checksum"

// Write renders the income sheet: the header followed by one report line per
// record, in the order the records are passed in.
//
// The lines are written verbatim without CSV quoting, as the checksum of a
// line is computed over its exact bytes.
func Write(w io.Writer, records []models.Record) error {
	writer := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(writer, Header); err != nil {
		return fmt.Errorf("writing income sheet: %w", err)
	}

	for _, record := range records {
		if _, err := fmt.Fprintln(writer, record.ReportLine()); err != nil {
			return fmt.Errorf("writing income sheet: %w", err)
		}
	}

	return writer.Flush()
}

// Options control how Parse treats the lines it reads.
type Options struct {
	// VerifyChecksums recomputes the checksum of every line and fails on a
	// mismatch. Existing sheets were written without verification in mind,
	// so this is off by default.
	VerifyChecksums bool
}

// Parse reads an income sheet. The header line is skipped, every following
// line must decode into a valid record. The checksum field is optional on
// read and only cross-checked in strict mode.
func Parse(r io.Reader, opts Options) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip the header
	_, err := reader.Read()
	if err == io.EOF {
		return []models.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header line: %w", err)
	}

	var records []models.Record

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv errors already carry the line number
			return nil, fmt.Errorf("could not read line in CSV: %w", err)
		}

		record, err := models.FromReportLine(strings.Join(fields, ","))
		if err != nil {
			return csvReadError(reader, err)
		}

		if opts.VerifyChecksums && len(fields) >= 6 {
			want, err := strconv.Atoi(strings.TrimSpace(fields[5]))
			if err != nil {
				return csvReadError(reader, models.ParseError{Err: fmt.Errorf("checksum is not a number: %q", fields[5])})
			}

			if got := models.Checksum(strings.Join(fields[:5], ",")); got != want {
				return csvReadError(reader, models.ParseError{Err: fmt.Errorf("checksum mismatch: line has %d, calculated %d", want, got)})
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// csvReadError returns an error including the line of the input the error
// occurred in.
func csvReadError(r *csv.Reader, err error) ([]models.Record, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return nil, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
