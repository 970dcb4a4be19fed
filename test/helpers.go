// Package test contains helpers that are used in tests across the backend.
package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	v1 "github.com/income-recorder/backend/internal/controllers/v1"
	"github.com/income-recorder/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path of a data file in a directory that is cleaned up
// when the test finishes. The file itself does not exist yet.
func TmpFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "income_data.txt")
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(t *testing.T, co v1.Controller, method, url string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	t.Helper()

	var byteBuffer *bytes.Buffer

	switch b := body.(type) {
	case string:
		byteBuffer = bytes.NewBufferString(b)
	case nil:
		byteBuffer = bytes.NewBuffer(nil)
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			require.FailNow(t, "Request body could not be marshalled from input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	r, err := router.Config()
	if err != nil {
		require.FailNow(t, "Router could not be initialized")
	}
	router.AttachRoutes(co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes a response body into the target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	t.Helper()

	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %T, '%v'", r.Body, target, err)
	}
}
