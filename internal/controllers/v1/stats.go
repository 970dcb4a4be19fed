package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/httputil"
)

// RegisterStatsRoutes registers the routes for aggregate statistics with
// the RouterGroup that is passed.
func (co Controller) RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", co.GetStats)
}

// OptionsStats returns an empty response with the allowed HTTP verbs.
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetStats returns aggregate statistics over all records.
func (co Controller) GetStats(c *gin.Context) {
	stats := co.Ledger.Stats()
	c.JSON(http.StatusOK, StatsResponse{Data: &stats})
}
