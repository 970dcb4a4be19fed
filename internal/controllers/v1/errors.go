package v1

import (
	"errors"
	"net/http"

	"github.com/income-recorder/backend/internal/ledger"
	"github.com/income-recorder/backend/internal/models"
)

var errNoRecordsToExport = errors.New("there are no records to export")

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	var validationError models.ValidationError

	switch {
	case errors.Is(err, ledger.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrCodeExists):
		return http.StatusConflict
	case errors.Is(err, errNoRecordsToExport):
		return http.StatusNotFound
	case errors.As(err, &validationError):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
