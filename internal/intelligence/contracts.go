package intelligence

import (
	"context"

	"github.com/ramavi/balans/internal/domain"
)

// SuggestionRequest asks for task ideas for one category, timeframe and
// difficulty. User is optional personalization context.
type SuggestionRequest struct {
	Category   domain.Category
	Timeframe  domain.Timeframe
	Difficulty domain.Difficulty
	User       *domain.User
}

// SuggestionResult carries generated suggestions. FromModel is false
// when the deterministic fallback produced them.
type SuggestionResult struct {
	Suggestions []domain.Suggestion
	FromModel   bool
}

// SuggestionService produces task suggestions. Model failures are never
// surfaced as errors: the service degrades to the built-in fallback so
// manual task entry flows keep working.
type SuggestionService interface {
	GenerateSuggestions(ctx context.Context, req SuggestionRequest) (*SuggestionResult, error)
}

// InsightRequest asks for a reading of the user's current life balance.
type InsightRequest struct {
	User     *domain.User
	Analysis domain.CategoryAnalysis
	Balance  domain.Balance
}

// InsightResult is a short textual assessment of the user's balance.
type InsightResult struct {
	Text      string
	FromModel bool
}

// InsightService turns aggregated analytics into guidance. Degrades to a
// deterministic summary when the model is unavailable.
type InsightService interface {
	BalanceInsight(ctx context.Context, req InsightRequest) (*InsightResult, error)
}
