package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/store"
	"github.com/jonathan/career-compass/internal/types"
)

// UserService provides business logic for account operations over the
// in-memory user store.
type UserService struct {
	store          *store.MemoryStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(st *store.MemoryStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          st,
		passwordConfig: passwordConfig,
	}
}

// publicUser strips the password hash from a stored user.
func publicUser(u *store.User) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(req *types.RegisterRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.store.Create(req.Email, req.FullName, passwordHash)
	if err != nil {
		var taken *store.ErrEmailTaken
		if errors.As(err, &taken) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return publicUser(u), nil
}

// Login verifies credentials and returns the account. A missing account and
// a wrong password produce the same error.
func (s *UserService) Login(req *types.LoginRequest) (*types.User, error) {
	u, err := s.store.GetByEmail(req.Email)
	if err != nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, u.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return publicUser(u), nil
}

// Get returns the account and profile for the given user ID.
func (s *UserService) Get(userID uuid.UUID) (*types.User, *types.UserProfile, error) {
	u, err := s.store.GetByID(userID)
	if err != nil {
		return nil, nil, &ErrUserNotFound{}
	}
	profile := u.Profile
	return publicUser(u), &profile, nil
}

// UpdateProfile applies partial profile updates.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	profile, err := s.store.UpdateProfile(userID, req)
	if err != nil {
		return nil, &ErrUserNotFound{}
	}
	return profile, nil
}

// SaveAnalysis appends a gap analysis to the user's history and returns the
// new history length.
func (s *UserService) SaveAnalysis(userID uuid.UUID, req *types.SaveHistoryRequest) (int, error) {
	entry := types.HistoryEntry{
		Timestamp:       time.Now().UTC(),
		JobTitle:        req.JobTitle,
		MatchPercentage: req.Analysis.MatchPercentage,
		MissingSkills:   req.Analysis.MissingSkills,
		Analysis:        req.Analysis,
	}

	total, err := s.store.AppendHistory(userID, entry)
	if err != nil {
		return 0, &ErrUserNotFound{}
	}
	return total, nil
}

// History returns the user's saved gap analyses.
func (s *UserService) History(userID uuid.UUID) ([]types.HistoryEntry, error) {
	u, err := s.store.GetByID(userID)
	if err != nil {
		return nil, &ErrUserNotFound{}
	}
	return u.Profile.SkillsGapHistory, nil
}

// List returns all registered accounts, oldest first.
func (s *UserService) List() []*types.User {
	stored := s.store.List()
	users := make([]*types.User, 0, len(stored))
	for _, u := range stored {
		users = append(users, publicUser(u))
	}
	return users
}
