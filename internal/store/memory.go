// Package store keeps user accounts and their career history in memory.
// Durable persistence is deliberately out of scope; the store exists so the
// API layer has somewhere to hang accounts and analysis history between
// requests within one process lifetime.
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/types"
)

// maxHistoryEntries bounds each user's skills-gap history; older entries
// are discarded first.
const maxHistoryEntries = 10

// ErrEmailTaken indicates the email is already registered.
type ErrEmailTaken struct {
	Email string
}

func (e *ErrEmailTaken) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrNotFound indicates no user matched the lookup.
type ErrNotFound struct {
	UserID uuid.UUID
	Email  string
}

func (e *ErrNotFound) Error() string {
	if e.Email != "" {
		return fmt.Sprintf("user not found: %s", e.Email)
	}
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// User is a stored account. PasswordHash never leaves this package's
// callers without being stripped into types.User.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	Profile      types.UserProfile
}

// MemoryStore is a mutex-guarded in-memory user store, safe for concurrent
// use by HTTP handlers.
type MemoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	byID    map[uuid.UUID]*User
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail: make(map[string]*User),
		byID:    make(map[uuid.UUID]*User),
	}
}

// Create registers a new user. The email must be unused.
func (s *MemoryStore) Create(email, fullName, passwordHash string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, &ErrEmailTaken{Email: email}
	}

	u := &User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
		Profile: types.UserProfile{
			SkillsGapHistory: []types.HistoryEntry{},
			TargetJobs:       []string{},
			LearningProgress: map[string]float64{},
		},
	}
	s.byEmail[email] = u
	s.byID[u.ID] = u
	return snapshot(u), nil
}

// GetByEmail returns the user registered under email.
func (s *MemoryStore) GetByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, &ErrNotFound{Email: email}
	}
	return snapshot(u), nil
}

// GetByID returns the user with the given id.
func (s *MemoryStore) GetByID(id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, &ErrNotFound{UserID: id}
	}
	return snapshot(u), nil
}

// UpdateProfile applies the non-nil fields of req to the user's profile and
// returns the updated profile.
func (s *MemoryStore) UpdateProfile(id uuid.UUID, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, &ErrNotFound{UserID: id}
	}

	if req.ResumeData != nil {
		u.Profile.ResumeData = req.ResumeData
	}
	if req.TargetJobs != nil {
		u.Profile.TargetJobs = req.TargetJobs
	}
	if req.LearningProgress != nil {
		u.Profile.LearningProgress = req.LearningProgress
	}

	profile := u.Profile
	return &profile, nil
}

// AppendHistory adds one gap-analysis entry to the user's history, keeping
// only the most recent entries. It returns the new history length.
func (s *MemoryStore) AppendHistory(id uuid.UUID, entry types.HistoryEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return 0, &ErrNotFound{UserID: id}
	}

	u.Profile.SkillsGapHistory = append(u.Profile.SkillsGapHistory, entry)
	if n := len(u.Profile.SkillsGapHistory); n > maxHistoryEntries {
		u.Profile.SkillsGapHistory = u.Profile.SkillsGapHistory[n-maxHistoryEntries:]
	}
	return len(u.Profile.SkillsGapHistory), nil
}

// List returns all users ordered by creation time (then email, for stable
// output when timestamps collide).
func (s *MemoryStore) List() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*User, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, snapshot(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.Before(users[j].CreatedAt)
		}
		return users[i].Email < users[j].Email
	})
	return users
}

// snapshot copies a user so callers never share the store's mutable state.
func snapshot(u *User) *User {
	c := *u
	c.Profile.SkillsGapHistory = append([]types.HistoryEntry(nil), u.Profile.SkillsGapHistory...)
	c.Profile.TargetJobs = append([]string(nil), u.Profile.TargetJobs...)
	progress := make(map[string]float64, len(u.Profile.LearningProgress))
	for k, v := range u.Profile.LearningProgress {
		progress[k] = v
	}
	c.Profile.LearningProgress = progress
	return &c
}
