package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/repository"
)

// SDGService generates and stores UN SDG goal recommendations.
type SDGService struct {
	sdg   repository.SDGRepo
	users repository.UserRepo
	sri   *SRIService
	ai    *AIService
	log   *zap.Logger
}

// NewSDGService creates a new SDG recommendation service
func NewSDGService(sdg repository.SDGRepo, users repository.UserRepo, sriSvc *SRIService, ai *AIService, log *zap.Logger) *SDGService {
	return &SDGService{
		sdg:   sdg,
		users: users,
		sri:   sriSvc,
		ai:    ai,
		log:   log,
	}
}

// Generate builds a fresh recommendation pair from the user's latest
// scores and persists it.
func (s *SDGService) Generate(ctx context.Context, userID string) (*model.SDGRecommendation, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	summary, err := s.sri.ScoresSummary(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals := s.ai.GenerateSDGRecommendations(ctx, user, summary)

	rec := &model.SDGRecommendation{
		UserID: userID,
		Goals:  goals,
	}
	if _, err := s.sdg.Create(ctx, rec); err != nil {
		s.log.Error("failed to persist SDG recommendations", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// Latest returns the most recently generated recommendations, or nil.
func (s *SDGService) Latest(ctx context.Context, userID string) (*model.SDGRecommendation, error) {
	return s.sdg.GetLatestByUserID(ctx, userID)
}
