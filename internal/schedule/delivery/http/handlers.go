package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-calendar/pkg/response"
)

// Extract godoc
// @Summary     Extract schedule events
// @Description Sends free-text schedule content to the completion service and returns the extracted events.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Schedule text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.ErrorBody "No content provided or content too large"
// @Failure     429  {object} response.ErrorBody "Too many requests"
// @Failure     500  {object} response.ErrorBody "Failed to process schedule"
// @Router      /api/v1/schedules/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		status, msg := mapExtractError(err)
		response.Fail(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, h.newExtractResp(output))
}

// ExportCalendar godoc
// @Summary     Download an iCalendar document
// @Description Serializes events into schedule.ics. Events whose dates cannot be read are left out.
// @Tags        Schedule
// @Accept      json
// @Produce     text/calendar
// @Param       body body exportReq true "Events to export"
// @Success     200  {file}   file
// @Failure     400  {object} response.ErrorBody "Invalid events payload"
// @Failure     500  {object} response.ErrorBody "Failed to generate calendar file"
// @Router      /api/v1/schedules/export/ics [POST]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.uc.ExportCalendar(ctx, req.toCalendarInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		response.Fail(c, http.StatusInternalServerError, msgExportFailed)
		return
	}

	response.Attachment(c, output.Filename, response.ContentTypeCalendar, []byte(output.Document))
}

// ExportSpreadsheet godoc
// @Summary     Download a CSV export
// @Description Renders events as a spreadsheet import file. The google and outlook variants share the same body.
// @Tags        Schedule
// @Accept      json
// @Produce     text/csv
// @Param       variant path string    true "google or outlook"
// @Param       body    body exportReq true "Events to export"
// @Success     200  {file}   file
// @Failure     400  {object} response.ErrorBody "Invalid events payload or unknown variant"
// @Failure     500  {object} response.ErrorBody "Failed to generate calendar file"
// @Router      /api/v1/schedules/export/csv/{variant} [POST]
func (h *handler) ExportSpreadsheet(c *gin.Context) {
	ctx := c.Request.Context()

	variant, err := h.processVariant(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, msgUnknownVariant)
		return
	}

	req, err := h.processExportReq(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.uc.ExportSpreadsheet(ctx, req.toSpreadsheetInput(variant))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportSpreadsheet: %v", err)
		response.Fail(c, http.StatusInternalServerError, msgExportFailed)
		return
	}

	response.Attachment(c, output.Filename, response.ContentTypeCSV, []byte(output.Content))
}
