package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/repository"
	"github.com/dhananjayaDev/trivity/internal/sri"
)

// OverlayGenerator produces the narrative overlay for a scored
// assessment. Implementations must be total: a failed external call
// yields a fallback overlay, never an error.
type OverlayGenerator interface {
	GenerateAnalysis(ctx context.Context, answers model.AnswerSet, scores model.CategoryScores, assessCtx model.AssessmentContext) model.AIAnalysis
}

// SRIService manages assessment submission and retrieval.
type SRIService struct {
	assessments repository.AssessmentRepo
	users       repository.UserRepo
	overlay     OverlayGenerator
	log         *zap.Logger
}

// NewSRIService creates a new SRI service
func NewSRIService(assessments repository.AssessmentRepo, users repository.UserRepo, overlay OverlayGenerator, log *zap.Logger) *SRIService {
	return &SRIService{
		assessments: assessments,
		users:       users,
		overlay:     overlay,
		log:         log,
	}
}

// Questions returns the catalog, optionally filtered by category.
func (s *SRIService) Questions(category model.Category) []model.Question {
	questions := sri.Questions(category)
	s.log.Info("returning SRI questions",
		zap.Int("count", len(questions)),
		zap.String("category", string(category)))
	return questions
}

// SubmitAssessment scores the answers, attaches the AI overlay and
// persists the completed assessment. AI failure never blocks
// persistence; persistence failure is returned as an explicit result,
// with nothing partially committed.
func (s *SRIService) SubmitAssessment(ctx context.Context, userID string, answers model.AnswerSet, assessCtx model.AssessmentContext) *model.SubmitResult {
	if len(answers) == 0 {
		return &model.SubmitResult{Success: false, Error: "no answers provided"}
	}

	result := sri.Score(answers, sri.Catalog())
	for _, id := range result.UnknownIDs {
		s.log.Warn("answer for unknown question ignored",
			zap.String("question_id", id),
			zap.String("user_id", userID))
	}

	analysis := s.overlay.GenerateAnalysis(ctx, answers, result.CategoryScores, assessCtx)

	assessment := &model.Assessment{
		UserID:         userID,
		TotalScore:     result.TotalScore,
		CategoryScores: result.CategoryScores,
		Answers:        answers,
		Industry:       assessCtx.Industry,
		CompanySize:    assessCtx.CompanySize,
		Location:       assessCtx.Location,
		TrophyLevel:    result.TrophyLevel,
		Status:         "completed",
		AIAnalysis:     analysis,
	}

	id, err := s.assessments.Create(ctx, assessment)
	if err != nil {
		s.log.Error("failed to persist assessment",
			zap.String("user_id", userID),
			zap.Error(err))
		return &model.SubmitResult{Success: false, Error: err.Error()}
	}

	// Denormalized profile fields; the assessment is already durable,
	// so a failure here is logged rather than surfaced.
	if err := s.users.UpdateSustainabilityProfile(ctx, userID, result.TotalScore, assessment.CreatedAt); err != nil {
		s.log.Error("failed to update sustainability profile",
			zap.String("user_id", userID),
			zap.Error(err))
	}

	s.log.Info("SRI assessment submitted",
		zap.String("user_id", userID),
		zap.String("assessment_id", id),
		zap.Float64("total_score", result.TotalScore),
		zap.String("trophy_level", string(result.TrophyLevel)))

	return &model.SubmitResult{
		Success:        true,
		AssessmentID:   id,
		TotalScore:     result.TotalScore,
		CategoryScores: result.CategoryScores,
		TrophyLevel:    result.TrophyLevel,
		AIAnalysis:     analysis,
	}
}

// LatestAssessment returns the user's most recent assessment, or nil.
func (s *SRIService) LatestAssessment(ctx context.Context, userID string) (*model.Assessment, error) {
	return s.assessments.GetLatestByUserID(ctx, userID)
}

// AssessmentHistory returns all of the user's assessments, newest first.
func (s *SRIService) AssessmentHistory(ctx context.Context, userID string) ([]*model.Assessment, error) {
	return s.assessments.GetHistoryByUserID(ctx, userID)
}

// ScoresSummary is the dashboard projection of the latest assessment.
// A user without assessments gets an explicit zero-valued summary,
// never nil.
func (s *SRIService) ScoresSummary(ctx context.Context, userID string) (*model.ScoresSummary, error) {
	assessment, err := s.assessments.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return &model.ScoresSummary{
			TrophyLevel:   model.TrophyNone,
			HasAssessment: false,
		}, nil
	}

	created := assessment.CreatedAt
	return &model.ScoresSummary{
		Total:              assessment.TotalScore,
		Categories:         assessment.CategoryScores,
		TrophyLevel:        assessment.TrophyLevel,
		HasAssessment:      true,
		LastAssessmentDate: &created,
		AIAnalysis:         assessment.AIAnalysis,
	}, nil
}
