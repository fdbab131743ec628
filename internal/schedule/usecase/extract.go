package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedule-calendar/internal/schedule"
	"schedule-calendar/pkg/llmprovider"
)

const logBodyLimit = 512

// Extract sends the content to the completion service and validates the
// returned events.
func (uc *implUseCase) Extract(ctx context.Context, input schedule.ExtractInput) (schedule.ExtractOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return schedule.ExtractOutput{}, schedule.ErrEmptyContent
	}
	if uc.cfg.MaxContentBytes > 0 && len(input.Content) > uc.cfg.MaxContentBytes {
		return schedule.ExtractOutput{}, fmt.Errorf("%w: %d > %d bytes", schedule.ErrContentTooLarge, len(input.Content), uc.cfg.MaxContentBytes)
	}

	ref := input.ReferenceDate
	if ref.IsZero() {
		ref = uc.now()
	}
	ref = ref.In(uc.cfg.Location)

	uc.l.Infof(ctx, "Extract: input_length=%d reference=%s", len(input.Content), ref.Format("2006-01-02"))

	resp, err := uc.llm.GenerateContent(ctx, uc.buildRequest(input.Content, ref))
	if err != nil {
		err = fmt.Errorf("%w: %w", schedule.ErrUpstreamService, err)
		uc.l.Errorf(ctx, "Extract: kind=%s err=%v", schedule.Kind(err), err)
		return schedule.ExtractOutput{}, err
	}

	raw := resp.Text()
	events, err := decodeEvents(raw)
	if err != nil {
		uc.l.Errorf(ctx, "Extract: kind=%s err=%v body=%s", schedule.Kind(err), err, compactForLog(raw, logBodyLimit))
		return schedule.ExtractOutput{}, err
	}

	uc.l.Infof(ctx, "Extract: provider=%s model=%s events=%d", resp.ProviderName, resp.ModelName, len(events))
	return schedule.ExtractOutput{Events: events}, nil
}

func (uc *implUseCase) buildRequest(content string, ref time.Time) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: llmprovider.SystemText(buildSystemPrompt(ref)...),
		Messages:          []llmprovider.Message{llmprovider.UserText(buildUserPrompt(content))},
		Temperature:       uc.cfg.Temperature,
		MaxTokens:         uc.cfg.MaxTokens,
		JSONMode:          true,
	}
}
