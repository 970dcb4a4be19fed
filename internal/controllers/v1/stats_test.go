package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/income-recorder/backend/internal/controllers/v1"
	"github.com/income-recorder/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsStats(t *testing.T) {
	t.Parallel()
	co := testController(t)

	recorder := test.Request(t, co, http.MethodOptions, "/v1/stats", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))
}

func TestGetStats(t *testing.T) {
	t.Parallel()
	co := testController(t)
	addRecord(t, co, "IN001", "Freelance Work", "25/07/2025", "10000", "1000")
	addRecord(t, co, "IN002", "Salary July", "31/07/2025", "2500", "250")

	recorder := test.Request(t, co, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response v1.StatsResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Data)
	assert.Equal(t, 2, response.Data.Count)
	assert.Equal(t, "12500.00", response.Data.TotalIncome.StringFixed(2))
	assert.Equal(t, "1250.00", response.Data.TotalWHT.StringFixed(2))
	assert.Equal(t, "11250.00", response.Data.TotalNet.StringFixed(2))
	assert.Equal(t, "6250.00", response.Data.AverageIncome.StringFixed(2))
	assert.Equal(t, "625.00", response.Data.AverageWHT.StringFixed(2))
}

func TestGetStatsEmpty(t *testing.T) {
	t.Parallel()
	co := testController(t)

	recorder := test.Request(t, co, http.MethodGet, "/v1/stats", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response v1.StatsResponse
	test.DecodeResponse(t, &recorder, &response)

	require.NotNil(t, response.Data)
	assert.Equal(t, 0, response.Data.Count)
	assert.True(t, response.Data.TotalIncome.IsZero())
}
