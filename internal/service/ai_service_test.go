package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/config"
	"github.com/dhananjayaDev/trivity/internal/model"
)

func TestFallbackAnalysis_Levels(t *testing.T) {
	tests := []struct {
		name   string
		scores model.CategoryScores
		level  string
	}{
		{"advanced at 80", model.CategoryScores{General: 80, Environment: 80, Social: 80, Governance: 80}, "Advanced"},
		{"intermediate at 60", model.CategoryScores{General: 60, Environment: 60, Social: 60, Governance: 60}, "Intermediate"},
		{"developing at 40", model.CategoryScores{General: 40, Environment: 40, Social: 40, Governance: 40}, "Developing"},
		{"beginner below 40", model.CategoryScores{General: 39, Environment: 39, Social: 39, Governance: 39}, "Beginner"},
		{"beginner at zero", model.CategoryScores{}, "Beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := FallbackAnalysis(tt.scores)
			assert.Equal(t, tt.level, analysis.Level)
			assert.NotEmpty(t, analysis.Recommendation)
			assert.False(t, analysis.IsZero())
		})
	}
}

func TestFallbackAnalysis_StrengthsAndWeaknesses(t *testing.T) {
	scores := model.CategoryScores{General: 85, Environment: 70, Social: 49.9, Governance: 20}
	analysis := FallbackAnalysis(scores)

	assert.ElementsMatch(t, []string{
		"Strong General practices",
		"Strong Environment practices",
	}, analysis.Strengths)
	assert.ElementsMatch(t, []string{
		"Needs improvement in Social practices",
		"Needs improvement in Governance practices",
	}, analysis.Weaknesses)
}

func TestFallbackAnalysis_Placeholders(t *testing.T) {
	// Nothing at 70 or above, nothing below 50.
	scores := model.CategoryScores{General: 60, Environment: 55, Social: 50, Governance: 65}
	analysis := FallbackAnalysis(scores)

	assert.Equal(t, []string{"Basic sustainability awareness"}, analysis.Strengths)
	assert.Equal(t, []string{"Overall sustainability maturity"}, analysis.Weaknesses)
}

func TestParseEmbeddedJSON(t *testing.T) {
	var out struct {
		Level string `json:"level"`
	}

	text := "Here is the result:\n```json\n{\"level\": \"Advanced\"}\n```\nHope this helps."
	require.NoError(t, parseEmbeddedJSON(text, &out))
	assert.Equal(t, "Advanced", out.Level)
}

func TestParseEmbeddedJSON_NoObject(t *testing.T) {
	var out map[string]interface{}
	assert.Error(t, parseEmbeddedJSON("no json here", &out))
	assert.Error(t, parseEmbeddedJSON("", &out))
}

func TestGenerateAnalysis_FallsBackWithoutAPIKey(t *testing.T) {
	svc := NewAIService(&config.AIConfig{}, zap.NewNop())
	require.False(t, svc.IsAvailable())

	scores := model.CategoryScores{General: 90, Environment: 90, Social: 90, Governance: 90}
	analysis := svc.GenerateAnalysis(context.Background(), model.AnswerSet{}, scores, model.AssessmentContext{})

	assert.Equal(t, "Advanced", analysis.Level)
	assert.NotEmpty(t, analysis.Strengths)
}

func TestGenerateSDGRecommendations_FallsBackWithoutAPIKey(t *testing.T) {
	svc := NewAIService(&config.AIConfig{}, zap.NewNop())

	goals := svc.GenerateSDGRecommendations(context.Background(), &model.User{}, &model.ScoresSummary{})

	require.Len(t, goals, 2)
	assert.Equal(t, 7, goals[0].Number)
	assert.Equal(t, 13, goals[1].Number)
	assert.Equal(t, "high", goals[0].Priority)
}

func TestGenerateCarbonAnalysis_FallsBackWithoutAPIKey(t *testing.T) {
	svc := NewAIService(&config.AIConfig{}, zap.NewNop())

	analysis := svc.GenerateCarbonAnalysis(context.Background(), &model.User{}, &model.CarbonData{})

	assert.NotEmpty(t, analysis.OverallAssessment)
	assert.NotEmpty(t, analysis.Recommendations)
}
