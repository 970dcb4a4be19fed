package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	v1 "github.com/income-recorder/backend/internal/controllers/v1"
	"github.com/income-recorder/backend/internal/ledger"
	"github.com/income-recorder/backend/internal/router"
	"github.com/income-recorder/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.ReleaseMode)
	m.Run()
}

func testController(t *testing.T) v1.Controller {
	t.Helper()

	return v1.Controller{Ledger: ledger.New(), DataFile: test.TmpFile(t)}
}

func TestGetRoot(t *testing.T) {
	t.Parallel()

	recorder := test.Request(t, testController(t), http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response router.RootResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Contains(t, response.Links.Healthz, "/healthz")
	assert.Contains(t, response.Links.Version, "/version")
	assert.Contains(t, response.Links.Metrics, "/metrics")
	assert.Contains(t, response.Links.V1, "/v1")
}

func TestGetVersion(t *testing.T) {
	t.Parallel()

	recorder := test.Request(t, testController(t), http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response router.VersionResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.NotEmpty(t, response.Data.Version)
}

func TestGetV1(t *testing.T) {
	t.Parallel()

	recorder := test.Request(t, testController(t), http.MethodGet, "/v1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response router.V1Response
	test.DecodeResponse(t, &recorder, &response)

	assert.Contains(t, response.Links.Records, "/v1/records")
	assert.Contains(t, response.Links.Export, "/v1/export")
	assert.Contains(t, response.Links.Stats, "/v1/stats")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/version", "/v1"} {
		recorder := test.Request(t, testController(t), http.MethodOptions, path, nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code, path)
		assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"), path)
	}
}

func TestGetMetrics(t *testing.T) {
	t.Parallel()

	recorder := test.Request(t, testController(t), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	recorder := test.Request(t, testController(t), http.MethodPost, "/version", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestAttachRoutes(t *testing.T) {
	t.Parallel()

	r, err := router.Config()
	require.NoError(t, err)
	router.AttachRoutes(testController(t), r.Group("/api"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/version", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code, "routes can be attached to any base path")
}

func TestPprofDisabledByDefault(t *testing.T) {
	recorder := test.Request(t, testController(t), http.MethodGet, "/debug/pprof/", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
