package intelligence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramavi/balans/internal/domain"
)

func TestFallbackSuggestions_EveryCategoryCovered(t *testing.T) {
	for _, c := range domain.AllCategories {
		suggestions := FallbackSuggestions(c, domain.DifficultyRegular)
		require.NotEmpty(t, suggestions, "category %s has no fallback suggestions", c)
		for _, s := range suggestions {
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Description)
			assert.Positive(t, s.EstimatedMin)
		}
	}
}

func TestFallbackSuggestions_DifficultyScalesEstimates(t *testing.T) {
	regular := FallbackSuggestions(domain.CategoryWork, domain.DifficultyRegular)
	challenging := FallbackSuggestions(domain.CategoryWork, domain.DifficultyChallenging)
	difficult := FallbackSuggestions(domain.CategoryWork, domain.DifficultyDifficult)

	require.Len(t, challenging, len(regular))
	require.Len(t, difficult, len(regular))
	for i := range regular {
		assert.Equal(t, int(float64(regular[i].EstimatedMin)*1.5), challenging[i].EstimatedMin)
		assert.Equal(t, regular[i].EstimatedMin*2, difficult[i].EstimatedMin)
	}
}

func TestFallbackSuggestions_UnknownDifficultyUsesRegular(t *testing.T) {
	regular := FallbackSuggestions(domain.CategoryStudy, domain.DifficultyRegular)
	unknown := FallbackSuggestions(domain.CategoryStudy, domain.Difficulty("heroic"))
	assert.Equal(t, regular, unknown)
}

func TestFallbackSuggestions_DoesNotMutateCatalog(t *testing.T) {
	before := fallbackCatalog[domain.CategoryWork][0].EstimatedMin
	FallbackSuggestions(domain.CategoryWork, domain.DifficultyDifficult)
	assert.Equal(t, before, fallbackCatalog[domain.CategoryWork][0].EstimatedMin)
}

func TestDeterministicInsight_NoTrackedTime(t *testing.T) {
	analysis := domain.CategoryAnalysis{}
	for _, c := range domain.AllCategories {
		analysis[c] = domain.CategoryStats{}
	}

	text := DeterministicInsight(analysis, domain.Balance{})
	assert.Contains(t, text, "No completed")
}

func TestDeterministicInsight_NamesDominantAndIdle(t *testing.T) {
	analysis := domain.CategoryAnalysis{}
	for _, c := range domain.AllCategories {
		analysis[c] = domain.CategoryStats{}
	}
	analysis[domain.CategoryWork] = domain.CategoryStats{TotalTasks: 3, CompletedTasks: 2, TotalTimeSec: 7200, AverageTimeSec: 3600}
	analysis[domain.CategoryStudy] = domain.CategoryStats{TotalTasks: 1, CompletedTasks: 1, TotalTimeSec: 1800, AverageTimeSec: 1800}
	balance := domain.Balance{domain.CategoryWork: 80, domain.CategoryStudy: 20}

	text := DeterministicInsight(analysis, balance)
	assert.Contains(t, text, "80%")
	assert.Contains(t, text, string(domain.CategoryWork))
	assert.Contains(t, text, string(domain.CategoryEntertainment))
}
