package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/jobs"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/resume"
	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
	"github.com/jonathan/career-compass/internal/store"
	"github.com/jonathan/career-compass/internal/taxonomy"
)

// Version reported by the root endpoint.
const Version = "1.0.0"

// Server is the HTTP server wiring the analysis engine, accounts, and the
// AI pass-through behind one API.
type Server struct {
	httpServer  *http.Server
	cfg         *config.ServerConfig
	rateLimiter *ratelimit.Limiter

	authHandler   *AuthHandler
	resumeHandler *ResumeHandler
	jobsHandler   *JobsHandler
	aiHandler     *AIHandler
}

// New creates a server, wiring every service from the environment-driven
// configuration.
func New(cfg *config.ServerConfig) (*Server, error) {
	tax, err := taxonomy.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load skill taxonomy: %w", err)
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	llmConfig := config.NewLLMConfig()

	jwtService := NewJWTService(jwtConfig)
	userService := NewUserService(store.NewMemoryStore(), passwordConfig)

	jobService := jobs.NewService(jobs.NewMockSource(), jobs.NewAggregator(tax))
	aiService := llm.NewService(
		llm.NewClaudeClient(llmConfig.AnthropicAPIKey),
		llm.NewOpenAIClient(llmConfig.OpenAIAPIKey),
	)

	s := &Server{
		cfg:           cfg,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.LoadConfig()),
		authHandler:   NewAuthHandler(userService, jwtService),
		resumeHandler: NewResumeHandler(resume.NewBuilder(tax)),
		jobsHandler:   NewJobsHandler(jobService),
		aiHandler:     NewAIHandler(aiService),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes(jwtService)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// routes builds the API router. All API endpoints live under the configured
// prefix; the root and health endpoints sit beside it.
func (s *Server) routes(jwtService *JWTService) http.Handler {
	mux := http.NewServeMux()
	p := s.cfg.APIPrefix

	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET "+p+"/health", s.handleHealth)

	// Resume parsing
	mux.HandleFunc("POST "+p+"/resume/upload", s.resumeHandler.Upload)
	mux.HandleFunc("POST "+p+"/resume/analyze-skills", s.resumeHandler.AnalyzeSkills)

	// Job market analysis
	mux.HandleFunc("POST "+p+"/jobs/search", s.jobsHandler.Search)
	mux.HandleFunc("POST "+p+"/jobs/skills-gap-analysis", s.jobsHandler.SkillsGap)
	mux.HandleFunc("GET "+p+"/jobs/trending-skills", s.jobsHandler.TrendingSkills)
	mux.HandleFunc("GET "+p+"/jobs/quick-analysis", s.jobsHandler.QuickAnalysis)

	// Accounts
	requireAuth := middleware.Auth(jwtService.AsTokenValidator())
	mux.HandleFunc("POST "+p+"/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST "+p+"/auth/login", s.authHandler.Login)
	mux.Handle("GET "+p+"/auth/me", requireAuth(http.HandlerFunc(s.authHandler.Me)))
	mux.Handle("PUT "+p+"/auth/profile", requireAuth(http.HandlerFunc(s.authHandler.UpdateProfile)))
	mux.Handle("POST "+p+"/auth/history", requireAuth(http.HandlerFunc(s.authHandler.SaveAnalysis)))
	mux.Handle("GET "+p+"/auth/history", requireAuth(http.HandlerFunc(s.authHandler.History)))
	mux.Handle("GET "+p+"/auth/dashboard", requireAuth(http.HandlerFunc(s.authHandler.Dashboard)))
	mux.HandleFunc("GET "+p+"/auth/users", s.authHandler.ListUsers)

	// AI pass-through
	mux.HandleFunc("POST "+p+"/ai/chat", s.aiHandler.Chat)
	mux.HandleFunc("POST "+p+"/ai/claude", s.aiHandler.Claude)
	mux.HandleFunc("POST "+p+"/ai/openai", s.aiHandler.OpenAI)
	mux.HandleFunc("GET "+p+"/ai/providers", s.aiHandler.Providers)
	mux.HandleFunc("GET "+p+"/ai/models", s.aiHandler.Models)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS allows requests from the configured origins.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && slices.Contains(s.cfg.AllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit rejects clients that exceed their request budget.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := s.rateLimiter.Allow(clientID(r))
		if !info.Allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
			}
			writeJSON(w, http.StatusTooManyRequests, map[string]any{
				"error":   "rate_limit_exceeded",
				"message": "Rate limit exceeded. Please try again later.",
				"limit":   info.Limit,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleRoot announces the API.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		errorJSON(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Career Compass API is running!",
		"version": Version,
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is operational",
	})
}

// clientID identifies the client for rate limiting, by IP.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorJSON writes an error JSON response.
func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
