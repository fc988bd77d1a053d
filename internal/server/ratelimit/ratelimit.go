// Package ratelimit provides per-client request limiting using a token
// bucket per client. Buckets refill at a steady rate and idle buckets are
// reaped so the map does not grow without bound.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	CleanupInterval time.Duration
}

// LoadConfig reads rate limit settings from the environment. Invalid or
// missing values fall back to defaults.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         true,
		RequestsPerMin:  120,
		Burst:           30,
		CleanupInterval: 5 * time.Minute,
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestsPerMin = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}
	return cfg
}

// Info describes the limiter's view of one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter tracks a token bucket per client ID.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether a request from clientID may proceed, consuming one
// token when it may.
func (l *Limiter) Allow(clientID string) Info {
	if !l.config.Enabled {
		return Info{Allowed: true}
	}

	refillRate := float64(l.config.RequestsPerMin) / 60.0
	capacity := float64(l.config.Burst)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: capacity, lastRefill: now}
		l.buckets[clientID] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * refillRate
	if b.tokens > capacity {
		b.tokens = capacity
	}
	b.lastRefill = now
	b.lastAccess = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return Info{
			Allowed:   true,
			Limit:     l.config.RequestsPerMin,
			Remaining: int(b.tokens),
		}
	}

	retryAfter := time.Duration((1.0 - b.tokens) / refillRate * float64(time.Second))
	return Info{
		Allowed:    false,
		Limit:      l.config.RequestsPerMin,
		Remaining:  0,
		RetryAfter: retryAfter,
	}
}

// Stop ends the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.reap()
		case <-l.cleanupStop:
			return
		}
	}
}

// reap drops buckets idle for over an hour.
func (l *Limiter) reap() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	for id, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}
