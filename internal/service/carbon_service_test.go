package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/config"
	"github.com/dhananjayaDev/trivity/internal/model"
)

type fakeCarbonRepo struct {
	records []*model.CarbonData
}

func (f *fakeCarbonRepo) Create(ctx context.Context, data *model.CarbonData) (string, error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now
	data.ID = userID(len(f.records) + 1)
	f.records = append(f.records, data)
	return data.ID, nil
}

func (f *fakeCarbonRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.CarbonData, error) {
	var latest *model.CarbonData
	for _, d := range f.records {
		if d.UserID != userID {
			continue
		}
		if latest == nil || d.CreatedAt.After(latest.CreatedAt) {
			latest = d
		}
	}
	return latest, nil
}

func (f *fakeCarbonRepo) GetHistoryByUserID(ctx context.Context, userID string) ([]*model.CarbonData, error) {
	var out []*model.CarbonData
	for _, d := range f.records {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func newCarbonFixture() (*CarbonService, *fakeCarbonRepo, *fakeUserRepo) {
	carbon := &fakeCarbonRepo{}
	users := newFakeUserRepo()
	ai := NewAIService(&config.AIConfig{}, zap.NewNop())
	svc := NewCarbonService(carbon, users, ai, zap.NewNop())
	return svc, carbon, users
}

func TestCarbonSave_ComputesTotal(t *testing.T) {
	svc, _, users := newCarbonFixture()
	userID := seedUser(t, users)

	data, err := svc.Save(context.Background(), userID, &model.CarbonInput{
		Electricity:    10.5,
		Transportation: 4,
		Refrigerants:   0.5,
		Mobile:         1,
		Combustion:     2,
	})

	require.NoError(t, err)
	assert.InDelta(t, 18.0, data.TotalEmissions, 1e-9)
	assert.Equal(t, "monthly", data.Period, "missing period defaults to monthly")
}

func TestCarbonSave_RejectsNegativeValues(t *testing.T) {
	svc, carbon, users := newCarbonFixture()
	userID := seedUser(t, users)

	_, err := svc.Save(context.Background(), userID, &model.CarbonInput{Electricity: -1})

	assert.Error(t, err)
	assert.Empty(t, carbon.records)
}

func TestCarbonAnalyze_NoData(t *testing.T) {
	svc, _, users := newCarbonFixture()
	userID := seedUser(t, users)

	_, err := svc.Analyze(context.Background(), userID)
	assert.EqualError(t, err, "no carbon data found")
}

func TestCarbonAnalyze_Fallback(t *testing.T) {
	svc, _, users := newCarbonFixture()
	userID := seedUser(t, users)

	_, err := svc.Save(context.Background(), userID, &model.CarbonInput{Electricity: 5})
	require.NoError(t, err)

	analysis, err := svc.Analyze(context.Background(), userID)
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.OverallAssessment)
}

func TestCarbonLatest_ReturnsNewestRecord(t *testing.T) {
	svc, carbon, users := newCarbonFixture()
	userID := seedUser(t, users)

	_, err := svc.Save(context.Background(), userID, &model.CarbonInput{Electricity: 1})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), userID, &model.CarbonInput{Electricity: 2})
	require.NoError(t, err)
	carbon.records[1].CreatedAt = carbon.records[0].CreatedAt.Add(time.Minute)

	latest, err := svc.Latest(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, latest.ElectricityEmissions)

	history, err := svc.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
