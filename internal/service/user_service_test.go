package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dhananjayaDev/trivity/internal/model"
)

func newUserFixture() (*UserService, *AuthService, *fakeUserRepo, *fakeSessionCache) {
	users := newFakeUserRepo()
	sessions := newFakeSessionCache()
	auth := NewAuthService("test-secret", sessions)
	svc := NewUserService(users, auth, zap.NewNop())
	return svc, auth, users, sessions
}

func validRegistration() *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:           "ann@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		FirstName:       "Ann",
		LastName:        "Lee",
		Company:         "Acme",
	}
}

func TestRegister_Success(t *testing.T) {
	svc, auth, _, _ := newUserFixture()

	resp, err := svc.Register(context.Background(), validRegistration())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ann@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.NotEqual(t, "supersecret", resp.User.PasswordHash)

	// The issued token must validate against its session.
	claims, err := auth.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	req := validRegistration()
	req.Email = "  ANN@Example.COM "
	resp, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", resp.User.Email)
}

func TestRegister_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.RegisterRequest)
	}{
		{"missing email", func(r *model.RegisterRequest) { r.Email = "" }},
		{"invalid email", func(r *model.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *model.RegisterRequest) { r.Password, r.ConfirmPassword = "short", "short" }},
		{"password mismatch", func(r *model.RegisterRequest) { r.ConfirmPassword = "different1" }},
		{"short first name", func(r *model.RegisterRequest) { r.FirstName = "A" }},
		{"missing last name", func(r *model.RegisterRequest) { r.LastName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _ := newUserFixture()
			req := validRegistration()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ann@example.com",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotNil(t, resp.User.LastLogin)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	_, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ann@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, _, users, _ := newUserFixture()
	resp, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	users.users[resp.User.ID].IsActive = false

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ann@example.com",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, auth, _, _ := newUserFixture()
	resp, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	claims, err := auth.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims.SessionID))

	_, err = auth.ValidateToken(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	resp, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)
	userID := resp.User.ID

	err = svc.ChangePassword(context.Background(), userID, "wrong", "newpassword1", "newpassword1")
	assert.Error(t, err, "wrong current password must be rejected")

	err = svc.ChangePassword(context.Background(), userID, "supersecret", "newpassword1", "other")
	assert.Error(t, err, "mismatched confirmation must be rejected")

	err = svc.ChangePassword(context.Background(), userID, "supersecret", "newpassword1", "newpassword1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "ann@example.com", Password: "newpassword1"})
	assert.NoError(t, err)
}

func TestUpdateProfile_RequiresNames(t *testing.T) {
	svc, _, _, _ := newUserFixture()
	resp, err := svc.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.Error(t, svc.UpdateProfile(context.Background(), resp.User.ID, "", "Lee", "Acme"))
	assert.NoError(t, svc.UpdateProfile(context.Background(), resp.User.ID, "Anna", "Lee", "NewCo"))

	user, err := svc.Profile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", user.FirstName)
	assert.Equal(t, "NewCo", user.Company)
}

func TestValidateToken_GarbageToken(t *testing.T) {
	_, auth, _, _ := newUserFixture()

	_, err := auth.ValidateToken(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
