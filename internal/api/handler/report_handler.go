package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yasiralharfash/chronos/internal/dto"
	"github.com/yasiralharfash/chronos/internal/service"
	"github.com/yasiralharfash/chronos/pkg/response"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler serves hours/cost summaries and timesheet exports.
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Summary aggregates hours and labor cost over a date range.
// GET /api/v1/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	summary, err := h.reportSvc.Summary(c.Request.Context(), companyID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// Export downloads the timesheet for a date range as CSV or XLSX.
// GET /api/v1/reports/export
func (h *ReportHandler) Export(c *gin.Context) {
	companyID, ok := MustGetCompanyID(c)
	if !ok {
		return
	}

	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	buf, filename, err := h.reportSvc.Export(c.Request.Context(), companyID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	contentType := contentTypeCSV
	if strings.HasSuffix(filename, ".xlsx") {
		contentType = contentTypeXLSX
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
