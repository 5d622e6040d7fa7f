package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/services"
)

// CompatibilityHandler serves compatibility requests and records them to
// the profile history.
type CompatibilityHandler struct {
	scorer   *services.CompatibilityScorer
	profiles *services.ProfileService
}

// NewCompatibilityHandler creates a new compatibility handler. profiles
// may be nil, in which case no history is recorded.
func NewCompatibilityHandler(scorer *services.CompatibilityScorer, profiles *services.ProfileService) *CompatibilityHandler {
	return &CompatibilityHandler{scorer: scorer, profiles: profiles}
}

// CompatibilityReport contains the scored pair and the result.
type CompatibilityReport struct {
	Sign1  entities.Sign
	Sign2  entities.Sign
	Result entities.CompatibilityResult
}

// Handle scores a pair of sign names. Unknown names are scored through the
// neutral fallback path rather than rejected.
func (h *CompatibilityHandler) Handle(ctx context.Context, name1, name2, relTypeName string) (*CompatibilityReport, error) {
	sign1, _ := entities.ParseSign(name1)
	sign2, _ := entities.ParseSign(name2)
	relType := entities.ParseRelationshipType(relTypeName)

	result := h.scorer.Score(sign1, sign2, relType)

	if h.profiles != nil && h.profiles.Profile().HasIdentity() {
		if err := h.profiles.AddCompatibilityRecord(ctx, sign1, sign2, result); err != nil {
			return nil, fmt.Errorf("recording compatibility history: %w", err)
		}
	}

	return &CompatibilityReport{
		Sign1:  sign1,
		Sign2:  sign2,
		Result: result,
	}, nil
}
