// Package handlers orchestrates between the CLI and domain services.
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/services"
)

// TodayHandler serves daily prediction requests.
type TodayHandler struct {
	selector *services.DailySelector
}

// NewTodayHandler creates a new today handler.
func NewTodayHandler(selector *services.DailySelector) *TodayHandler {
	return &TodayHandler{selector: selector}
}

// TodayResult contains the predictions served for one request.
type TodayResult struct {
	Sign entities.Sign
	Date string
	// Texts holds one entry for a single-category request, all
	// categories otherwise.
	Texts map[entities.Category]string
}

// Handle returns today's general prediction for a sign name. The sign name
// is boundary input: an unrecognized name still yields the fallback text.
func (h *TodayHandler) Handle(ctx context.Context, signName string) *TodayResult {
	sign, _ := entities.ParseSign(signName)
	return &TodayResult{
		Sign: sign,
		Date: entities.DayKey(time.Now()),
		Texts: map[entities.Category]string{
			entities.CategoryGeneral: h.selector.TodayText(ctx, sign),
		},
	}
}

// HandleCategory returns today's prediction for one category.
func (h *TodayHandler) HandleCategory(ctx context.Context, signName, categoryName string) (*TodayResult, error) {
	sign, _ := entities.ParseSign(signName)
	category, ok := entities.ParseCategory(categoryName)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", categoryName)
	}
	return &TodayResult{
		Sign: sign,
		Date: entities.DayKey(time.Now()),
		Texts: map[entities.Category]string{
			category: h.selector.CategoryText(ctx, sign, category),
		},
	}, nil
}

// HandleAll returns today's predictions for every category.
func (h *TodayHandler) HandleAll(ctx context.Context, signName string) *TodayResult {
	sign, _ := entities.ParseSign(signName)
	prediction := h.selector.TodayPrediction(ctx, sign)
	return &TodayResult{
		Sign:  sign,
		Date:  prediction.Date,
		Texts: prediction.Texts,
	}
}
