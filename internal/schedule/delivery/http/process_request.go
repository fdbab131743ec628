package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"schedule-calendar/pkg/calendar"
)

// processExtractReq binds the extraction body. A body that is not an
// object with a string content is treated as missing content.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errNoContent
	}
	if strings.TrimSpace(req.Content) == "" {
		return req, errNoContent
	}
	return req, nil
}

// processExportReq binds the events list of an export request.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidEvents
	}
	return req, nil
}

// processVariant reads the :variant path parameter.
func (h *handler) processVariant(c *gin.Context) (calendar.SpreadsheetVariant, error) {
	return calendar.ParseSpreadsheetVariant(c.Param("variant"))
}
