package http

import (
	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/middleware"
)

// RegisterRoutes maps the schedule endpoints under the /api group.
// Extraction calls the paid completion service and is rate limited.
func RegisterRoutes(api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	api.POST("/completion", mw.RateLimit(), h.Extract)

	schedules := api.Group("/v1/schedules")
	{
		schedules.POST("/extract", mw.RateLimit(), h.Extract)
		schedules.POST("/export/ics", h.ExportCalendar)
		schedules.POST("/export/csv/:variant", h.ExportSpreadsheet)
	}
}
