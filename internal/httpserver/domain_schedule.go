package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"schedule-calendar/internal/middleware"
	scheduleHTTP "schedule-calendar/internal/schedule/delivery/http"
)

// setupScheduleDomain registers the extraction and export routes under /api.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup) {
	mw := middleware.New(srv.l, srv.rateLimit)
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)
	scheduleHTTP.RegisterRoutes(api, h, mw)

	if srv.rateLimit.Enabled {
		srv.l.Infof(ctx, "Schedule domain registered (rate limit %d/min per client)", srv.rateLimit.RequestsPerMin)
	} else {
		srv.l.Infof(ctx, "Schedule domain registered (rate limit disabled)")
	}
}
