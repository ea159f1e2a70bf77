package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhananjayaDev/trivity/internal/model"
	"github.com/dhananjayaDev/trivity/internal/repository"
)

var (
	ErrEmailTaken      = errors.New("an account with this email already exists")
	ErrAccountDisabled = errors.New("account has been deactivated")
	ErrUserNotFound    = errors.New("user not found")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserService handles registration, login and profile management.
type UserService struct {
	users repository.UserRepo
	auth  *AuthService
	log   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepo, auth *AuthService, log *zap.Logger) *UserService {
	return &UserService{
		users: users,
		auth:  auth,
		log:   log,
	}
}

// Register validates the request, creates the account and logs it in.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegistration(email, req); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Company:      strings.TrimSpace(req.Company),
		Role:         "user",
		IsActive:     true,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		s.log.Error("user creation failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	token, err := s.auth.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	return &model.LoginResponse{Token: token, User: user}, nil
}

// Login authenticates by email and password.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || !emailPattern.MatchString(email) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn("failed to update last login", zap.String("user_id", user.ID), zap.Error(err))
	}
	user.LastLogin = &now

	token, err := s.auth.IssueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: token, User: user}, nil
}

// Logout revokes the session behind the presented token.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	return s.auth.Revoke(ctx, sessionID)
}

// Profile returns the user record.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the user's name and company.
func (s *UserService) UpdateProfile(ctx context.Context, userID, firstName, lastName, company string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return errors.New("first and last names are required")
	}
	return s.users.UpdateProfile(ctx, userID, firstName, lastName, strings.TrimSpace(company))
}

// ChangePassword verifies the current password and stores a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, newPassword, confirm string) error {
	if len(newPassword) < 8 {
		return errors.New("new password must be at least 8 characters long")
	}
	if newPassword != confirm {
		return errors.New("new passwords do not match")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(ctx, userID, string(hash))
}

func validateRegistration(email string, req *model.RegisterRequest) error {
	switch {
	case email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "":
		return errors.New("please fill in all required fields")
	case !emailPattern.MatchString(email):
		return errors.New("please enter a valid email address")
	case len(req.Password) < 8:
		return errors.New("password must be at least 8 characters long")
	case req.Password != req.ConfirmPassword:
		return errors.New("passwords do not match")
	case len(strings.TrimSpace(req.FirstName)) < 2 || len(strings.TrimSpace(req.LastName)) < 2:
		return errors.New("first and last names must be at least 2 characters long")
	}
	return nil
}
