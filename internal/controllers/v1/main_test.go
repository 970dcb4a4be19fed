package v1_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/income-recorder/backend/internal/controllers/v1"
	"github.com/income-recorder/backend/internal/ledger"
	"github.com/income-recorder/backend/internal/models"
	"github.com/income-recorder/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.ReleaseMode)
	m.Run()
}

// testController returns a controller backed by a fresh ledger and a data
// file in a temporary directory.
func testController(t *testing.T) v1.Controller {
	t.Helper()

	return v1.Controller{
		Ledger:   ledger.New(),
		DataFile: test.TmpFile(t),
	}
}

func addRecord(t *testing.T, co v1.Controller, code, description, date, income, wht string) models.Record {
	t.Helper()

	record, err := models.NewRecord(code, description, date,
		decimal.RequireFromString(income), decimal.RequireFromString(wht))
	require.NoError(t, err)
	require.NoError(t, co.Ledger.Add(record))

	return record
}

func decimalFromString(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	return decimal.RequireFromString(value)
}
