package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/llm"
)

type suggestionService struct {
	client   llm.Client
	observer llm.Observer
}

// NewSuggestionService creates a SuggestionService backed by an LLM
// client. A nil client always uses the fallback.
func NewSuggestionService(client llm.Client, observer llm.Observer) SuggestionService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &suggestionService{client: client, observer: observer}
}

// suggestionPayload is the JSON element expected from the LLM.
type suggestionPayload struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedMin    int    `json:"estimatedMinutes"`
	EmotionalImpact string `json:"emotionalImpact"`
}

func (s *suggestionService) GenerateSuggestions(ctx context.Context, req SuggestionRequest) (*SuggestionResult, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("invalid category %q", req.Category)
	}
	if !req.Timeframe.Valid() {
		return nil, fmt.Errorf("invalid timeframe %q", req.Timeframe)
	}
	if !req.Difficulty.Valid() {
		return nil, fmt.Errorf("invalid difficulty %q", req.Difficulty)
	}

	if s.client == nil {
		return &SuggestionResult{Suggestions: FallbackSuggestions(req.Category, req.Difficulty)}, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestPrompt(req),
	})
	if err != nil {
		// Model failures never block the user: degrade to the canned list.
		return &SuggestionResult{Suggestions: FallbackSuggestions(req.Category, req.Difficulty)}, nil
	}

	payloads, err := llm.ExtractJSON[[]suggestionPayload](resp.Text, validateSuggestions)
	if err != nil {
		return &SuggestionResult{Suggestions: FallbackSuggestions(req.Category, req.Difficulty)}, nil
	}

	suggestions := make([]domain.Suggestion, 0, len(payloads))
	for _, p := range payloads {
		suggestions = append(suggestions, domain.Suggestion{
			Title:           p.Title,
			Description:     p.Description,
			EstimatedMin:    p.EstimatedMin,
			EmotionalImpact: p.EmotionalImpact,
		})
	}
	return &SuggestionResult{Suggestions: suggestions, FromModel: true}, nil
}

func buildSuggestPrompt(req SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\nTimeframe: %s\nDifficulty: %s\n", req.Category, req.Timeframe, req.Difficulty)

	if req.User != nil {
		userCtx := map[string]any{
			"displayName": req.User.DisplayName,
			"language":    req.User.Language,
			"preferredDailyAllocationHours": map[string]float64{
				"workStudy":     req.User.Allocation.WorkStudy,
				"socialFriends": req.User.Allocation.SocialFriends,
				"socialPartner": req.User.Allocation.SocialPartner,
				"entertainment": req.User.Allocation.Entertainment,
				"sleep":         req.User.Allocation.Sleep,
			},
		}
		if data, err := json.Marshal(userCtx); err == nil {
			fmt.Fprintf(&b, "User context: %s\n", data)
		}
	}

	b.WriteString("\nPropose 3 to 5 task suggestions as a JSON array.")
	return b.String()
}

func validateSuggestions(payloads []suggestionPayload) error {
	if len(payloads) == 0 {
		return fmt.Errorf("empty suggestion list")
	}
	for i, p := range payloads {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("suggestion %d has no title", i)
		}
		if p.EstimatedMin <= 0 {
			return fmt.Errorf("suggestion %d has non-positive estimate", i)
		}
	}
	return nil
}
