package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/gap"
	"github.com/jonathan/career-compass/internal/jobs"
	"github.com/jonathan/career-compass/internal/types"
)

// Search defaults matching the public API contract.
const (
	defaultLocation    = "United States"
	defaultSearchLimit = 10
	gapAnalysisLimit   = 15
)

// JobSearchRequest is the body of POST /jobs/search.
type JobSearchRequest struct {
	JobTitle string `json:"job_title" validate:"required"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

// SkillsGapRequest is the body of POST /jobs/skills-gap-analysis.
type SkillsGapRequest struct {
	UserSkills types.SkillSet `json:"user_skills" validate:"required"`
	JobTitle   string         `json:"job_title" validate:"required"`
	Location   string         `json:"location"`
}

// JobsHandler handles job market analysis requests.
type JobsHandler struct {
	service   *jobs.Service
	validator *validator.Validate
}

// NewJobsHandler creates a JobsHandler around the job search service.
func NewJobsHandler(service *jobs.Service) *JobsHandler {
	return &JobsHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Search searches job postings and aggregates their skill requirements.
func (h *JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req JobSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		errorJSON(w, http.StatusBadRequest, "Job title is required")
		return
	}
	if req.Location == "" {
		req.Location = defaultLocation
	}
	if req.Limit <= 0 {
		req.Limit = defaultSearchLimit
	}

	result, err := h.service.Search(r.Context(), req.JobTitle, req.Location, req.Limit)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Job search completed successfully",
		"data":    result,
	})
}

// SkillsGap compares the caller's skills against aggregated market demand
// for the requested role.
func (h *JobsHandler) SkillsGap(w http.ResponseWriter, r *http.Request) {
	var req SkillsGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		errorJSON(w, http.StatusBadRequest, extractValidationError(err))
		return
	}
	if req.Location == "" {
		req.Location = defaultLocation
	}

	// A wider search gives the gap analysis a better demand histogram.
	market, err := h.service.Search(r.Context(), req.JobTitle, req.Location, gapAnalysisLimit)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}

	analysis := gap.Analyze(req.UserSkills, market.TopSkillsRequired)
	missing := analysis.MissingSkills
	if len(missing) > 5 {
		missing = missing[:5]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Skills gap analysis completed",
		"job_search": map[string]any{
			"title":         req.JobTitle,
			"location":      req.Location,
			"jobs_analyzed": market.JobsFound,
		},
		"analysis": analysis,
		"recommendations": map[string]any{
			"priority_focus": analysis.SkillCategoriesToFocus,
			"next_steps":     gap.Recommendations(missing),
		},
	})
}

// TrendingSkills reports the top skills for a CS field.
func (h *JobsHandler) TrendingSkills(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		errorJSON(w, http.StatusBadRequest, "Query parameter 'field' is required")
		return
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		location = defaultLocation
	}

	result, err := h.service.TrendingSkills(r.Context(), field, location)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// QuickAnalysis reports headline market numbers for a role.
func (h *JobsHandler) QuickAnalysis(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		errorJSON(w, http.StatusBadRequest, "Query parameter 'title' is required")
		return
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		location = defaultLocation
	}

	result, err := h.service.QuickAnalysis(r.Context(), title, location)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
