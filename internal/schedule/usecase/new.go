package usecase

import (
	"context"
	"time"

	"schedule-calendar/pkg/calendar"
	"schedule-calendar/pkg/llmprovider"
	pkgLog "schedule-calendar/pkg/log"
)

// LLM is the completion backend; *llmprovider.Manager satisfies it.
type LLM interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes extraction and export.
type Config struct {
	Location        *time.Location // zone of the "today" anchor and of zone-less timestamps
	Temperature     float64
	MaxTokens       int
	MaxContentBytes int // 0 disables the limit
	ProductID       string
	UIDDomain       string
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        LLM
	serializer *calendar.Serializer
	cfg        Config
	now        func() time.Time
}

// New creates a new schedule UseCase instance.
func New(l pkgLog.Logger, llm LLM, cfg Config) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	uc := &implUseCase{
		l:   l,
		llm: llm,
		cfg: cfg,
		now: time.Now,
	}
	uc.serializer = calendar.NewSerializer(calendar.Options{
		ProductID: cfg.ProductID,
		UIDDomain: cfg.UIDDomain,
		Location:  cfg.Location,
		Now:       func() time.Time { return uc.now() },
	})
	return uc
}
