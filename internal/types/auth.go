package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new user account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user account for API responses; the password hash is
// never included.
type User struct {
	ID        uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login: the user plus a bearer
// token.
type AuthResponse struct {
	Message   string `json:"message"`
	User      *User  `json:"user"`
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
}

// HistoryEntry is one saved skills-gap analysis in a user's history.
type HistoryEntry struct {
	Timestamp       time.Time      `json:"timestamp"`
	JobTitle        string         `json:"job_title"`
	MatchPercentage float64        `json:"match_percentage"`
	MissingSkills   []MissingSkill `json:"missing_skills"`
	Analysis        *GapAnalysis   `json:"analysis"`
}

// UserProfile holds per-user career data kept alongside the account.
type UserProfile struct {
	ResumeData       *ResumeProfile     `json:"resume_data"`
	SkillsGapHistory []HistoryEntry     `json:"skills_gap_history"`
	TargetJobs       []string           `json:"target_jobs"`
	LearningProgress map[string]float64 `json:"learning_progress"`
}

// UpdateProfileRequest carries partial profile updates; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	ResumeData       *ResumeProfile     `json:"resume_data,omitempty"`
	TargetJobs       []string           `json:"target_jobs,omitempty"`
	LearningProgress map[string]float64 `json:"learning_progress,omitempty"`
}

// SaveHistoryRequest asks to append a gap analysis to the user's history.
type SaveHistoryRequest struct {
	JobTitle string       `json:"job_title" validate:"required"`
	Analysis *GapAnalysis `json:"analysis" validate:"required"`
}
