package http

import (
	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	ExportCalendar(c *gin.Context)
	ExportSpreadsheet(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
