package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"schedule-calendar/config"
	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/log"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Schedule domain
	scheduleUC schedule.UseCase
	rateLimit  config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Schedule domain
	ScheduleUseCase schedule.UseCase
	RateLimit       config.RateLimitConfig
}

// New creates a new HTTPServer instance and registers all routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		scheduleUC:  cfg.ScheduleUseCase,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule usecase is required")
	}
	return nil
}
