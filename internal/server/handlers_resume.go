package server

import (
	"io"
	"net/http"

	"github.com/jonathan/career-compass/internal/resume"
	"github.com/jonathan/career-compass/internal/types"
)

// maxUploadBytes caps résumé uploads at 10 MB.
const maxUploadBytes = 10 << 20

// ResumeHandler handles résumé upload and analysis requests.
type ResumeHandler struct {
	builder *resume.Builder
}

// NewResumeHandler creates a ResumeHandler around the profile builder.
func NewResumeHandler(builder *resume.Builder) *ResumeHandler {
	return &ResumeHandler{builder: builder}
}

// Upload decodes an uploaded résumé file and returns the full parsed
// profile.
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	parsed, ok := h.parseUpload(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Resume parsed successfully",
		"data":    parsed,
	})
}

// AnalyzeSkills decodes an uploaded résumé file and returns only its skills
// analysis.
func (h *ResumeHandler) AnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	parsed, ok := h.parseUpload(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"filename":     parsed.Filename,
		"skills_found": parsed.Skills,
		"total_skills": parsed.Skills.Total(),
		"education":    parsed.Education,
		"experience":   parsed.Experience,
	})
}

// parseUpload reads the multipart "file" field, decodes it, and builds the
// profile. On failure it writes the error response and reports false.
func (h *ResumeHandler) parseUpload(w http.ResponseWriter, r *http.Request) (*types.ParsedResume, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "No file selected")
		return nil, false
	}
	defer file.Close()

	if header.Filename == "" {
		errorJSON(w, http.StatusBadRequest, "No file selected")
		return nil, false
	}

	// Read one byte past the cap so an oversized file is detected rather
	// than silently truncated.
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return nil, false
	}
	if len(data) > maxUploadBytes {
		errorJSON(w, http.StatusBadRequest, "File too large, maximum size is 10 MB")
		return nil, false
	}

	text, err := resume.Decode(header.Filename, data)
	if err != nil {
		errorJSON(w, HTTPStatus(err), err.Error())
		return nil, false
	}

	profile := h.builder.BuildProfile(text)
	return &types.ParsedResume{
		ResumeProfile: *profile,
		RawText:       text,
		Filename:      header.Filename,
	}, true
}
