// Package v1 implements the first version of the income recording API.
package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/httputil"
	"github.com/income-recorder/backend/internal/ledger"
	"github.com/income-recorder/backend/internal/models"
	"github.com/income-recorder/backend/internal/storage"
	"github.com/income-recorder/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// Controller provides the API handlers with access to the shared ledger and
// the data file they persist to.
type Controller struct {
	Ledger   *ledger.Ledger
	DataFile string
}

// RegisterRecordRoutes registers the routes for income records with the
// RouterGroup that is passed.
func (co Controller) RegisterRecordRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecords)
		r.GET("", co.GetRecords)
		r.POST("", co.CreateRecord)
	}

	// Record with code
	{
		r.OPTIONS("/:code", OptionsRecordDetail)
		r.GET("/:code", co.GetRecord)
		r.PATCH("/:code", co.UpdateRecord)
		r.DELETE("/:code", co.DeleteRecord)
	}
}

// OptionsRecords returns an empty response with the allowed HTTP verbs.
func OptionsRecords(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsRecordDetail returns an empty response with the allowed HTTP verbs.
func OptionsRecordDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// RecordQuery contains the supported filters for the record list.
type RecordQuery struct {
	Search    string `form:"search"`    // Glob pattern matched against code and description
	FromDate  string `form:"fromDate"`  // Records at and after this DD/MM/YYYY date
	UntilDate string `form:"untilDate"` // Records before and at this DD/MM/YYYY date
}

// GetRecords returns the list of records, filtered by the query parameters.
func (co Controller) GetRecords(c *gin.Context) {
	var query RecordQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, RecordListResponse{Error: &e})
		return
	}

	var records []models.Record
	if query.Search != "" {
		records = co.Ledger.Search(query.Search)
	} else {
		records = co.Ledger.All()
	}

	if query.FromDate != "" || query.UntilDate != "" {
		filtered, err := filterDateRange(records, query.FromDate, query.UntilDate)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), RecordListResponse{Error: &e})
			return
		}
		records = filtered
	}

	data := make([]Record, 0, len(records))
	for _, record := range records {
		data = append(data, newRecord(c, record))
	}

	c.JSON(http.StatusOK, RecordListResponse{Data: data})
}

// GetRecord returns the record with the code in the URL.
func (co Controller) GetRecord(c *gin.Context) {
	record, err := co.Ledger.Get(c.Param("code"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{Error: &e})
		return
	}

	data := newRecord(c, record)
	c.JSON(http.StatusOK, RecordResponse{Data: &data})
}

// CreateRecord creates a new record from the request body.
func (co Controller) CreateRecord(c *gin.Context) {
	var editable RecordEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, RecordResponse{Error: &e})
		return
	}

	record, err := editable.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{Error: &e})
		return
	}

	if err := co.Ledger.Add(record); err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{Error: &e})
		return
	}

	if !co.save(c) {
		return
	}

	data := newRecord(c, record)
	c.JSON(http.StatusCreated, RecordResponse{Data: &data})
}

// UpdateRecord applies a partial update to the record with the code in the
// URL. The code itself cannot be changed.
func (co Controller) UpdateRecord(c *gin.Context) {
	var update models.RecordUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, RecordResponse{Error: &e})
		return
	}

	record, err := co.Ledger.Update(c.Param("code"), update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{Error: &e})
		return
	}

	if !co.save(c) {
		return
	}

	data := newRecord(c, record)
	c.JSON(http.StatusOK, RecordResponse{Data: &data})
}

// DeleteRecord deletes the record with the code in the URL.
func (co Controller) DeleteRecord(c *gin.Context) {
	if err := co.Ledger.Delete(c.Param("code")); err != nil {
		e := err.Error()
		c.JSON(status(err), RecordResponse{Error: &e})
		return
	}

	if !co.save(c) {
		return
	}

	c.Status(http.StatusNoContent)
}

// save persists the ledger to the data file after a mutation. On failure it
// responds with a 500 and reports false, the in-memory state keeps the
// change and is written again by the next successful save.
func (co Controller) save(c *gin.Context) bool {
	if err := storage.Save(co.DataFile, co.Ledger.All()); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("saving data file failed")
		e := "an error occurred on the server during your request"
		c.JSON(http.StatusInternalServerError, RecordResponse{Error: &e})
		return false
	}

	return true
}

// filterDateRange returns the records whose date falls into the inclusive
// range. Empty bounds are open.
func filterDateRange(records []models.Record, from, until string) ([]models.Record, error) {
	var fromDate, untilDate types.Date
	var err error

	if from != "" {
		fromDate, err = models.ValidateDate(from)
		if err != nil {
			return nil, err
		}
	}

	if until != "" {
		untilDate, err = models.ValidateDate(until)
		if err != nil {
			return nil, err
		}
	}

	filtered := make([]models.Record, 0, len(records))
	for _, record := range records {
		if !fromDate.IsZero() && record.Date.Before(fromDate) {
			continue
		}
		if !untilDate.IsZero() && record.Date.After(untilDate) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered, nil
}
