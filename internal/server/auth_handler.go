package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/types"
)

// AuthHandler handles account and profile HTTP requests.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validator   *validator.Validate
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validator:   validator.New(),
	}
}

// Register handles user registration requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationError(err))
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	h.tokenResponse(w, http.StatusCreated, "User registered successfully", user)
}

// Login handles user login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationError(err))
		return
	}

	user, err := h.userService.Login(&req)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	h.tokenResponse(w, http.StatusOK, "Login successful", user)
}

// Me returns the authenticated user's account and profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, profile, err := h.userService.Get(userID)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User profile retrieved successfully",
		"user":    user,
		"profile": profile,
	})
}

// UpdateProfile applies partial profile updates for the authenticated user.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ResumeData == nil && req.TargetJobs == nil && req.LearningProgress == nil {
		errorJSON(w, http.StatusBadRequest, "No updates provided")
		return
	}

	profile, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

// SaveAnalysis appends a gap analysis to the authenticated user's history.
func (h *AuthHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SaveHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationError(err))
		return
	}

	total, err := h.userService.SaveAnalysis(userID, &req)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Analysis saved to history",
		"total_analyses": total,
	})
}

// History returns the authenticated user's saved gap analyses.
func (h *AuthHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	history, err := h.userService.History(userID)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":            "Skills history retrieved successfully",
		"user_id":            userID,
		"skills_gap_history": history,
		"total_analyses":     len(history),
	})
}

// Dashboard returns the authenticated user's analytics summary and recent
// activity.
func (h *AuthHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, profile, err := h.userService.Get(userID)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	history := profile.SkillsGapHistory
	var latest *types.HistoryEntry
	latestMatch := 0.0
	if n := len(history); n > 0 {
		latest = &history[n-1]
		latestMatch = latest.MatchPercentage
	}

	// The trend is reported only once there are two analyses to compare.
	var improvementTrend *float64
	if len(history) >= 2 {
		trend := history[len(history)-1].MatchPercentage - history[0].MatchPercentage
		improvementTrend = &trend
	}

	recentTargets := profile.TargetJobs
	if len(recentTargets) > 3 {
		recentTargets = recentTargets[len(recentTargets)-3:]
	}

	name := user.FullName
	if name == "" {
		name = user.Email
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Dashboard data retrieved successfully",
		"user": map[string]any{
			"name":         name,
			"email":        user.Email,
			"member_since": user.CreatedAt,
		},
		"analytics": map[string]any{
			"total_skill_analyses":    len(history),
			"latest_match_percentage": latestMatch,
			"improvement_trend":       improvementTrend,
			"target_jobs_count":       len(profile.TargetJobs),
		},
		"recent_activity": map[string]any{
			"latest_analysis":   latest,
			"target_jobs":       recentTargets,
			"learning_progress": profile.LearningProgress,
		},
	})
}

// ListUsers returns all registered accounts. Debug endpoint, unauthenticated.
func (h *AuthHandler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	users := h.userService.List()
	writeJSON(w, http.StatusOK, map[string]any{
		"total_users": len(users),
		"users":       users,
	})
}

func (h *AuthHandler) tokenResponse(w http.ResponseWriter, status int, message string, user *types.User) {
	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	writeJSON(w, status, types.AuthResponse{
		Message:   message,
		User:      user,
		Token:     token,
		TokenType: TokenType,
	})
}

// extractValidationError renders the first validator error.
func extractValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
