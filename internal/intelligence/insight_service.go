package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ramavi/balans/internal/domain"
	"github.com/ramavi/balans/internal/llm"
)

type insightService struct {
	client   llm.Client
	observer llm.Observer
}

// NewInsightService creates an InsightService backed by an LLM client.
// A nil client always uses the deterministic summary.
func NewInsightService(client llm.Client, observer llm.Observer) InsightService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &insightService{client: client, observer: observer}
}

func (s *insightService) BalanceInsight(ctx context.Context, req InsightRequest) (*InsightResult, error) {
	if req.Analysis == nil {
		return nil, fmt.Errorf("analysis is required")
	}

	if s.client == nil {
		return &InsightResult{Text: DeterministicInsight(req.Analysis, req.Balance)}, nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskInsight,
		SystemPrompt: insightSystemPrompt,
		UserPrompt:   buildInsightPrompt(req),
	})
	if err != nil {
		return &InsightResult{Text: DeterministicInsight(req.Analysis, req.Balance)}, nil
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return &InsightResult{Text: DeterministicInsight(req.Analysis, req.Balance)}, nil
	}
	return &InsightResult{Text: text, FromModel: true}, nil
}

func buildInsightPrompt(req InsightRequest) string {
	categories := make(map[string]map[string]any, len(domain.AllCategories))
	for _, c := range domain.AllCategories {
		stats := req.Analysis[c]
		categories[string(c)] = map[string]any{
			"totalTasks":         stats.TotalTasks,
			"completedTasks":     stats.CompletedTasks,
			"totalTimeSeconds":   stats.TotalTimeSec,
			"averageTimeSeconds": stats.AverageTimeSec,
			"balancePercent":     req.Balance[c],
		}
	}

	payload := map[string]any{"categories": categories}
	if req.User != nil {
		payload["user"] = map[string]any{
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
	}

	var b strings.Builder
	b.WriteString("Balance data:\n")
	if data, err := json.MarshalIndent(payload, "", "  "); err == nil {
		b.Write(data)
	}
	b.WriteString("\n\nAssess this user's life balance.")
	return b.String()
}
