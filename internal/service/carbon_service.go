package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/repository"
)

// CarbonService stores and reads carbon footprint records.
type CarbonService struct {
	carbon repository.CarbonRepo
	users  repository.UserRepo
	ai     *AIService
	log    *zap.Logger
}

// NewCarbonService creates a new carbon data service
func NewCarbonService(carbon repository.CarbonRepo, users repository.UserRepo, ai *AIService, log *zap.Logger) *CarbonService {
	return &CarbonService{
		carbon: carbon,
		users:  users,
		ai:     ai,
		log:    log,
	}
}

// Save persists one carbon footprint record; the total is always
// recomputed server-side from the five sources.
func (s *CarbonService) Save(ctx context.Context, userID string, input *model.CarbonInput) (*model.CarbonData, error) {
	for _, v := range []float64{input.Electricity, input.Transportation, input.Refrigerants, input.Mobile, input.Combustion} {
		if v < 0 {
			return nil, errors.New("emission values must not be negative")
		}
	}

	period := input.Period
	if period == "" {
		period = "monthly"
	}

	data := &model.CarbonData{
		UserID:                  userID,
		ElectricityEmissions:    input.Electricity,
		TransportationEmissions: input.Transportation,
		RefrigerantEmissions:    input.Refrigerants,
		MobileEmissions:         input.Mobile,
		CombustionEmissions:     input.Combustion,
		Period:                  period,
	}
	data.ComputeTotal()

	id, err := s.carbon.Create(ctx, data)
	if err != nil {
		s.log.Error("failed to persist carbon data", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.log.Info("carbon data saved",
		zap.String("user_id", userID),
		zap.String("carbon_id", id),
		zap.Float64("total_emissions", data.TotalEmissions))
	return data, nil
}

// Latest returns the user's most recent carbon record, or nil.
func (s *CarbonService) Latest(ctx context.Context, userID string) (*model.CarbonData, error) {
	return s.carbon.GetLatestByUserID(ctx, userID)
}

// History returns all carbon records for the user, newest first.
func (s *CarbonService) History(ctx context.Context, userID string) ([]*model.CarbonData, error) {
	return s.carbon.GetHistoryByUserID(ctx, userID)
}

// Analyze produces the AI (or fallback) narrative for the user's
// latest carbon record.
func (s *CarbonService) Analyze(ctx context.Context, userID string) (*model.CarbonAnalysis, error) {
	data, err := s.carbon.GetLatestByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, errors.New("no carbon data found")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	analysis := s.ai.GenerateCarbonAnalysis(ctx, user, data)
	return &analysis, nil
}
