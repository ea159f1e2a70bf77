package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/model"
)

func newSRIFixture() (*SRIService, *fakeAssessmentRepo, *fakeUserRepo, *staticOverlay) {
	assessments := &fakeAssessmentRepo{}
	users := newFakeUserRepo()
	overlay := &staticOverlay{analysis: model.AIAnalysis{
		Level:     "Intermediate",
		Strengths: []string{"Strong General practices"},
	}}
	svc := NewSRIService(assessments, users, overlay, zap.NewNop())
	return svc, assessments, users, overlay
}

func seedUser(t *testing.T, users *fakeUserRepo) string {
	t.Helper()
	id, err := users.Create(context.Background(), &model.User{
		Email:     "a@b.com",
		FirstName: "Ann",
		LastName:  "Lee",
		IsActive:  true,
	})
	require.NoError(t, err)
	return id
}

func TestSubmitAssessment_Success(t *testing.T) {
	svc, assessments, users, overlay := newSRIFixture()
	userID := seedUser(t, users)

	answers := model.AnswerSet{
		"general_1":     model.OptionAnswer("yes"),
		"environment_1": model.OptionAnswer("no"),
	}
	result := svc.SubmitAssessment(context.Background(), userID, answers, model.AssessmentContext{Industry: "Tech"})

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.NotEmpty(t, result.AssessmentID)
	assert.Equal(t, 25.0, result.TotalScore)
	assert.Equal(t, model.TrophyAdvocate, result.TrophyLevel)
	assert.Equal(t, "Intermediate", result.AIAnalysis.Level)

	// Persisted assessment carries the same numbers and the overlay
	// saw the computed scores.
	require.Len(t, assessments.assessments, 1)
	saved := assessments.assessments[0]
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "completed", saved.Status)
	assert.Equal(t, "Tech", saved.Industry)
	assert.Equal(t, saved.CategoryScores, overlay.gotScores)

	// Denormalized profile fields follow the submission.
	user, _ := users.GetByID(context.Background(), userID)
	assert.True(t, user.ProfileCompleted)
	assert.Equal(t, 25.0, user.Sustainability.SRIScore)
	require.NotNil(t, user.Sustainability.LastSRIDate)
}

func TestSubmitAssessment_EmptyAnswers(t *testing.T) {
	svc, assessments, users, _ := newSRIFixture()
	userID := seedUser(t, users)

	result := svc.SubmitAssessment(context.Background(), userID, model.AnswerSet{}, model.AssessmentContext{})

	assert.False(t, result.Success)
	assert.Equal(t, "no answers provided", result.Error)
	assert.Empty(t, assessments.assessments)
}

func TestSubmitAssessment_PersistFailure(t *testing.T) {
	svc, assessments, users, _ := newSRIFixture()
	userID := seedUser(t, users)
	assessments.createErr = errors.New("write concern failed")

	answers := model.AnswerSet{"general_1": model.OptionAnswer("yes")}
	result := svc.SubmitAssessment(context.Background(), userID, answers, model.AssessmentContext{})

	assert.False(t, result.Success)
	assert.Equal(t, "write concern failed", result.Error)

	// Profile must stay untouched when nothing was committed.
	user, _ := users.GetByID(context.Background(), userID)
	assert.False(t, user.ProfileCompleted)
}

func TestSubmitAssessment_ProfileUpdateFailureIsNonFatal(t *testing.T) {
	svc, _, users, _ := newSRIFixture()
	userID := seedUser(t, users)
	users.profileErr = errors.New("profile write failed")

	answers := model.AnswerSet{"general_1": model.OptionAnswer("yes")}
	result := svc.SubmitAssessment(context.Background(), userID, answers, model.AssessmentContext{})

	assert.True(t, result.Success)
}

func TestScoresSummary_NoAssessment(t *testing.T) {
	svc, _, users, _ := newSRIFixture()
	userID := seedUser(t, users)

	summary, err := svc.ScoresSummary(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, summary.HasAssessment)
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, model.TrophyNone, summary.TrophyLevel)
	assert.Nil(t, summary.LastAssessmentDate)
}

func TestScoresSummary_AfterSubmission(t *testing.T) {
	svc, _, users, _ := newSRIFixture()
	userID := seedUser(t, users)

	answers := model.AnswerSet{
		"general_1":     model.OptionAnswer("yes"),
		"environment_1": model.OptionAnswer("yes"),
		"social_1":      model.OptionAnswer("yes"),
		"governance_1":  model.OptionAnswer("yes"),
	}
	result := svc.SubmitAssessment(context.Background(), userID, answers, model.AssessmentContext{})
	require.True(t, result.Success)

	summary, err := svc.ScoresSummary(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, summary.HasAssessment)
	assert.Equal(t, 100.0, summary.Total)
	assert.Equal(t, model.TrophyChampion, summary.TrophyLevel)
	require.NotNil(t, summary.LastAssessmentDate)
	assert.Equal(t, "Intermediate", summary.AIAnalysis.Level)
}

func TestQuestions_ServiceFilter(t *testing.T) {
	svc, _, _, _ := newSRIFixture()

	all := svc.Questions("")
	assert.Len(t, all, 27)

	social := svc.Questions(model.CategorySocial)
	assert.Len(t, social, 8)
}
