package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/httputil"
	"github.com/income-recorder/backend/internal/report"
	"github.com/rs/zerolog/log"
)

// RegisterExportRoutes registers the routes for the income sheet export
// with the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.GetExport)
}

// OptionsExport returns an empty response with the allowed HTTP verbs.
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetExport streams the income sheet as a CSV download.
// An empty ledger has nothing to export and yields a 404.
func (co Controller) GetExport(c *gin.Context) {
	records := co.Ledger.All()
	if len(records) == 0 {
		e := errNoRecordsToExport.Error()
		c.JSON(status(errNoRecordsToExport), RecordListResponse{Error: &e})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="income_sheet.csv"`)
	c.Status(http.StatusOK)

	if err := report.Write(c.Writer, records); err != nil {
		// The status line is already out, all we can do is log
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("writing income sheet failed")
	}
}
