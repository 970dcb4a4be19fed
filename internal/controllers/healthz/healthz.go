// Package healthz implements the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/httputil"
)

// RegisterRoutes registers the health check endpoints on the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns an empty response with the allowed HTTP verbs.
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the application health. The backend holds all state in memory
// once started, so a running process is a healthy process.
func Get(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
