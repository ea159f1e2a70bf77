package service

import (
	"context"
	"errors"
	"time"

	"github.com/dhananjayaDev/trivity/internal/model"
)

// In-memory doubles for the repository and cache interfaces.

type fakeUserRepo struct {
	users      map[string]*model.User
	nextID     int
	createErr  error
	profileErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	user.ID = userID(f.nextID)
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id, firstName, lastName, company string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.FirstName, u.LastName, u.Company = firstName, lastName, company
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.LastLogin = &at
	return nil
}

func (f *fakeUserRepo) UpdateSustainabilityProfile(ctx context.Context, id string, sriScore float64, at time.Time) error {
	if f.profileErr != nil {
		return f.profileErr
	}
	u, ok := f.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.ProfileCompleted = true
	u.Sustainability = model.SustainabilityProfile{LastSRIDate: &at, SRIScore: sriScore}
	return nil
}

func userID(n int) string {
	// 24 hex chars, like a Mongo ObjectID.
	const hex = "0123456789abcdef"
	id := make([]byte, 24)
	for i := range id {
		id[i] = hex[n%16]
	}
	return string(id)
}

type fakeAssessmentRepo struct {
	assessments []*model.Assessment
	createErr   error
}

func (f *fakeAssessmentRepo) Create(ctx context.Context, a *model.Assessment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	a.ID = userID(len(f.assessments) + 1)
	f.assessments = append(f.assessments, a)
	return a.ID, nil
}

func (f *fakeAssessmentRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.Assessment, error) {
	var latest *model.Assessment
	for _, a := range f.assessments {
		if a.UserID != userID {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (f *fakeAssessmentRepo) GetHistoryByUserID(ctx context.Context, userID string) ([]*model.Assessment, error) {
	var out []*model.Assessment
	for _, a := range f.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeSessionCache struct {
	sessions map[string]*model.Session
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: map[string]*model.Session{}}
}

func (f *fakeSessionCache) Set(ctx context.Context, session *model.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	return f.sessions[id], nil
}

func (f *fakeSessionCache) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

// staticOverlay returns a fixed overlay and records what it was asked for.
type staticOverlay struct {
	analysis  model.AIAnalysis
	gotScores model.CategoryScores
}

func (o *staticOverlay) GenerateAnalysis(ctx context.Context, answers model.AnswerSet, scores model.CategoryScores, assessCtx model.AssessmentContext) model.AIAnalysis {
	o.gotScores = scores
	return o.analysis
}
