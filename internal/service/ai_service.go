package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/config"
	"github.com/dhananjayaDev/trivity/internal/model"
)

// AIService generates narrative analysis via the Gemini API. Every
// generation has a deterministic fallback, so callers always get a
// usable structure even with no API key or a dead network.
type AIService struct {
	config *config.AIConfig
	client *http.Client
	log    *zap.Logger
}

// NewAIService creates a new AI service
func NewAIService(cfg *config.AIConfig, log *zap.Logger) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		log: log,
	}
}

// IsAvailable reports whether the external API is configured.
func (s *AIService) IsAvailable() bool {
	return s.config.IsEnabled()
}

// GenerateAnalysis produces the narrative overlay for a scored
// assessment. Any failure falls back to FallbackAnalysis; this method
// never returns an empty overlay.
func (s *AIService) GenerateAnalysis(ctx context.Context, answers model.AnswerSet, scores model.CategoryScores, assessCtx model.AssessmentContext) model.AIAnalysis {
	if !s.config.IsEnabled() {
		s.log.Warn("AI service not available, using fallback analysis")
		return FallbackAnalysis(scores)
	}

	prompt := s.buildAnalysisPrompt(answers, scores, assessCtx)
	response, err := s.callGemini(ctx, s.config.Models.Analysis, prompt)
	if err != nil {
		s.log.Error("SRI analysis generation failed", zap.Error(err))
		return FallbackAnalysis(scores)
	}

	var analysis model.AIAnalysis
	if err := parseEmbeddedJSON(response, &analysis); err != nil {
		s.log.Error("SRI analysis response unparsable", zap.Error(err))
		return FallbackAnalysis(scores)
	}
	if analysis.IsZero() {
		return FallbackAnalysis(scores)
	}
	return analysis
}

// GenerateSDGRecommendations produces the primary/secondary UN SDG
// goal pair from the latest scores, with a static fallback.
func (s *AIService) GenerateSDGRecommendations(ctx context.Context, user *model.User, summary *model.ScoresSummary) []model.SDGGoal {
	if !s.config.IsEnabled() {
		s.log.Warn("AI service not available, using fallback SDG recommendations")
		return fallbackSDGGoals()
	}

	prompt := s.buildSDGPrompt(user, summary)
	response, err := s.callGemini(ctx, s.config.Models.SDG, prompt)
	if err != nil {
		s.log.Error("SDG recommendation generation failed", zap.Error(err))
		return fallbackSDGGoals()
	}

	var parsed struct {
		Primary   model.SDGGoal `json:"primary_goal"`
		Secondary model.SDGGoal `json:"secondary_goal"`
	}
	if err := parseEmbeddedJSON(response, &parsed); err != nil {
		s.log.Error("SDG response unparsable", zap.Error(err))
		return fallbackSDGGoals()
	}
	return []model.SDGGoal{parsed.Primary, parsed.Secondary}
}

// GenerateCarbonAnalysis produces insight text for a carbon record.
func (s *AIService) GenerateCarbonAnalysis(ctx context.Context, user *model.User, data *model.CarbonData) model.CarbonAnalysis {
	if !s.config.IsEnabled() {
		s.log.Warn("AI service not available, using fallback carbon analysis")
		return fallbackCarbonAnalysis()
	}

	prompt := s.buildCarbonPrompt(user, data)
	response, err := s.callGemini(ctx, s.config.Models.Carbon, prompt)
	if err != nil {
		s.log.Error("carbon analysis generation failed", zap.Error(err))
		return fallbackCarbonAnalysis()
	}

	var analysis model.CarbonAnalysis
	if err := parseEmbeddedJSON(response, &analysis); err != nil {
		s.log.Error("carbon analysis response unparsable", zap.Error(err))
		return fallbackCarbonAnalysis()
	}
	return analysis
}

// callGemini makes a request to the Gemini API
func (s *AIService) callGemini(ctx context.Context, modelName, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// parseEmbeddedJSON extracts the JSON object embedded in free text
// (first '{' to last '}') and unmarshals it into out. Model responses
// sometimes wrap the object in prose or code fences.
func parseEmbeddedJSON(text string, out interface{}) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in response")
	}
	return json.Unmarshal([]byte(text[start:end+1]), out)
}

// Prompt builders

func (s *AIService) buildAnalysisPrompt(answers model.AnswerSet, scores model.CategoryScores, assessCtx model.AssessmentContext) string {
	answersJSON, _ := json.MarshalIndent(answers, "", "  ")

	return fmt.Sprintf(`Analyze this Sustainability Readiness Index (SRI) assessment and provide insights.
Return ONLY valid JSON:
{
  "level": "Beginner/Developing/Intermediate/Advanced",
  "overall_assessment": "brief overall assessment of sustainability readiness",
  "recommendation": "single most important recommendation",
  "strengths": ["key strengths identified"],
  "weaknesses": ["areas needing improvement"],
  "next_steps": ["immediate next steps to take"]
}

Assessment Data:
- Total Score: %.1f/100
- Category Scores: general %.1f, environment %.1f, social %.1f, governance %.1f
- Industry: %s
- Company Size: %s
- Location: %s

Answers:
%s`,
		scores.Mean(), scores.General, scores.Environment, scores.Social, scores.Governance,
		orNotSpecified(assessCtx.Industry), orNotSpecified(assessCtx.CompanySize), orNotSpecified(assessCtx.Location),
		answersJSON)
}

func (s *AIService) buildSDGPrompt(user *model.User, summary *model.ScoresSummary) string {
	return fmt.Sprintf(`You are a sustainability expert recommending UN SDG goals for a company.
Return ONLY valid JSON:
{
  "primary_goal": {"number": 7, "title": "...", "description": "...", "priority": "high", "relevance_score": 85, "opportunities": ["..."], "implementation_timeline": "6-12 months", "expected_impact": "..."},
  "secondary_goal": {"number": 13, "title": "...", "description": "...", "priority": "medium", "relevance_score": 72, "opportunities": ["..."], "implementation_timeline": "12-18 months", "expected_impact": "..."}
}

Company: %s
Sustainability scores (0-100): total %.1f, general %.1f, environment %.1f, social %.1f, governance %.1f

Recommend the two most relevant SDG goals: one building on the strongest
category, one addressing the weakest. Consider feasibility for the
company's size and industry.`,
		orNotSpecified(user.Company), summary.Total,
		summary.Categories.General, summary.Categories.Environment,
		summary.Categories.Social, summary.Categories.Governance)
}

func (s *AIService) buildCarbonPrompt(user *model.User, data *model.CarbonData) string {
	return fmt.Sprintf(`You are a sustainability expert analyzing carbon footprint data for a company.
Return ONLY valid JSON:
{
  "overall_assessment": "...",
  "key_insights": ["..."],
  "industry_comparison": "...",
  "improvement_recommendations": ["..."],
  "priority_actions": ["..."],
  "estimated_reduction_potential": "..."
}

Company: %s
Carbon footprint (tonnes CO2e, period %s):
- Electricity: %.2f
- Transportation: %.2f
- Refrigerants: %.2f
- Mobile/Digital: %.2f
- Combustion: %.2f
- Total: %.2f

Focus on practical, implementable reductions ranked by impact.`,
		orNotSpecified(user.Company), data.Period,
		data.ElectricityEmissions, data.TransportationEmissions, data.RefrigerantEmissions,
		data.MobileEmissions, data.CombustionEmissions, data.TotalEmissions)
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// Fallback implementations

// FallbackAnalysis derives the overlay purely from category scores.
// Its level ladder (80/60/40) predates the trophy ladder (75/50/25)
// and intentionally stays separate from it.
func FallbackAnalysis(scores model.CategoryScores) model.AIAnalysis {
	total := scores.Mean()

	var level, recommendation string
	switch {
	case total >= 80:
		level = "Advanced"
		recommendation = "Excellent sustainability practices. Consider becoming a sustainability leader in your industry."
	case total >= 60:
		level = "Intermediate"
		recommendation = "Good foundation. Focus on strengthening weaker areas and expanding initiatives."
	case total >= 40:
		level = "Developing"
		recommendation = "Basic sustainability practices in place. Develop comprehensive policies and programs."
	default:
		level = "Beginner"
		recommendation = "Start with basic sustainability practices and gradually build comprehensive programs."
	}

	return model.AIAnalysis{
		Level:          level,
		Recommendation: recommendation,
		Strengths:      identifyStrengths(scores),
		Weaknesses:     identifyWeaknesses(scores),
	}
}

func identifyStrengths(scores model.CategoryScores) []string {
	var strengths []string
	for _, c := range model.Categories() {
		if scores.Get(c) >= 70 {
			strengths = append(strengths, fmt.Sprintf("Strong %s practices", c.Title()))
		}
	}
	if len(strengths) == 0 {
		strengths = []string{"Basic sustainability awareness"}
	}
	return strengths
}

func identifyWeaknesses(scores model.CategoryScores) []string {
	var weaknesses []string
	for _, c := range model.Categories() {
		if scores.Get(c) < 50 {
			weaknesses = append(weaknesses, fmt.Sprintf("Needs improvement in %s practices", c.Title()))
		}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{"Overall sustainability maturity"}
	}
	return weaknesses
}

func fallbackSDGGoals() []model.SDGGoal {
	return []model.SDGGoal{
		{
			Number:         7,
			Title:          "Affordable and Clean Energy",
			Description:    "Focus on renewable energy adoption and energy efficiency to reduce environmental impact and operational costs",
			Priority:       "high",
			RelevanceScore: 85,
			Opportunities: []string{
				"Install solar panels or purchase renewable energy credits",
				"Conduct energy efficiency audits and implement improvements",
				"Switch to LED lighting and energy-efficient equipment",
			},
			Timeline:       "6-12 months",
			ExpectedImpact: "High - immediate cost savings and environmental benefits",
		},
		{
			Number:         13,
			Title:          "Climate Action",
			Description:    "Implement comprehensive climate change mitigation and adaptation strategies",
			Priority:       "medium",
			RelevanceScore: 72,
			Opportunities: []string{
				"Develop carbon reduction targets and action plans",
				"Implement carbon offset programs for unavoidable emissions",
				"Conduct climate risk assessments and adaptation planning",
			},
			Timeline:       "12-18 months",
			ExpectedImpact: "Medium - long-term climate resilience and compliance",
		},
	}
}

func fallbackCarbonAnalysis() model.CarbonAnalysis {
	return model.CarbonAnalysis{
		OverallAssessment: "Based on your carbon footprint data, there are several opportunities for improvement. Focus on the highest emission categories first for maximum impact.",
		KeyInsights: []string{
			"Electricity consumption is typically the largest source of emissions for most companies",
			"Transportation emissions can be reduced through efficient planning and alternative transport",
			"Refrigerant leaks, while small in volume, have high global warming potential",
		},
		IndustryComparison: "Your emissions appear to be within typical ranges for companies of your size and industry.",
		Recommendations: []string{
			"Switch to renewable energy sources for electricity",
			"Implement energy efficiency measures to reduce overall consumption",
			"Optimize transportation through route planning, carpooling, or electric vehicles",
		},
		PriorityActions: []string{
			"Conduct an energy audit to identify the biggest efficiency opportunities (next 30 days)",
			"Switch to renewable energy suppliers or install solar panels (next 3 months)",
			"Develop a sustainability strategy with measurable targets (next 12 months)",
		},
		ReductionPotential: "30-50% reduction possible through focused improvements in energy efficiency and renewable energy adoption",
	}
}
