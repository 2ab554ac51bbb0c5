package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/aurumprivate/aurum-leads/internal/entity"
	"github.com/aurumprivate/aurum-leads/internal/infra/http/middleware"
	"github.com/aurumprivate/aurum-leads/internal/usecase"
)

type LeadHandler struct {
	addLead     *usecase.AddLeadUseCase
	leadRepo    usecase.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(addLead *usecase.AddLeadUseCase, leadRepo usecase.LeadRepositoryInterface) *LeadHandler {
	return &LeadHandler{
		addLead:     addLead,
		leadRepo:    leadRepo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// CaptureLead trata POST /leads: valida, pontua e agenda o follow-up.
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.LeadSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	output, err := h.addLead.Execute(ctx, input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to capture lead")
		return
	}

	middleware.RecordLeadCaptured(output.Category)

	writeJSON(w, http.StatusCreated, output)
}

// ListByCategory trata GET /leads?category=HOT|WARM|COLD.
func (h *LeadHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	switch category {
	case entity.CategoryHot, entity.CategoryWarm, entity.CategoryCold:
	default:
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_CATEGORY", "category must be HOT, WARM or COLD")
		return
	}

	leads, err := h.leadRepo.ListByCategory(r.Context(), category)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list leads")
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"count":    len(leads),
		"leads":    leads,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
