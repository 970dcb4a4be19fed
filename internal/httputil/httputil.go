// Package httputil provides small helpers shared by all API handlers.
package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OptionsGet answers an OPTIONS request for endpoints that support GET.
func OptionsGet(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// OptionsGetPost answers an OPTIONS request for endpoints that support GET
// and POST.
func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, POST")
	c.Status(http.StatusNoContent)
}

// OptionsGetPatchDelete answers an OPTIONS request for endpoints that
// support GET, PATCH and DELETE.
func OptionsGetPatchDelete(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, PATCH, DELETE")
	c.Status(http.StatusNoContent)
}

// RequestHost returns the protocol and host the request was made against,
// e.g. "https://example.com". Used to build absolute links in responses.
func RequestHost(c *gin.Context) string {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	return scheme + "://" + c.Request.Host
}
