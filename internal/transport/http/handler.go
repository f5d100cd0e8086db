// Package http exposes the lookup engine over a JSON HTTP API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/common"
	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/validation"
)

// Engine runs the lookup pipelines
type Engine interface {
	PhoneBatch(ctx context.Context, input string) []models.PhoneRecord
	Email(ctx context.Context, input string) models.EmailRecord
	IP(ctx context.Context, input string) models.IPRecord
	Username(ctx context.Context, input string) models.UsernameRecord
}

// ResultReader reads lookup results written by the queue worker
type ResultReader interface {
	GetTaskResult(ctx context.Context, task models.Task, lookupID string) (*models.TaskResult, error)
	ListTaskResults(ctx context.Context, task models.Task) ([]string, error)
}

// Enqueuer submits lookups to the queue worker
type Enqueuer interface {
	SendMessage(ctx context.Context, message *models.TaskMessage) error
}

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler serves the lookup API
type Handler struct {
	engine       Engine
	results      ResultReader
	queue        Enqueuer
	checks       map[string]HealthChecker
	providerMode string
	validator    *validation.Validator
}

// Option configures optional Handler dependencies
type Option func(*Handler)

// WithResults enables the stored result endpoints
func WithResults(r ResultReader) Option {
	return func(h *Handler) {
		h.results = r
	}
}

// WithQueue enables asynchronous lookups
func WithQueue(q Enqueuer) Option {
	return func(h *Handler) {
		h.queue = q
	}
}

// WithHealthCheck adds a named dependency to /healthz
func WithHealthCheck(name string, c HealthChecker) Option {
	return func(h *Handler) {
		h.checks[name] = c
	}
}

// WithProviderMode reports the provider mode on /healthz
func WithProviderMode(mode string) Option {
	return func(h *Handler) {
		h.providerMode = mode
	}
}

// NewHandler creates the API handler
func NewHandler(engine Engine, opts ...Option) *Handler {
	h := &Handler{
		engine:    engine,
		checks:    map[string]HealthChecker{},
		validator: validation.NewValidator(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the lookup endpoints on r
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/phone", h.lookup(func(ctx context.Context, q string) any { return h.engine.PhoneBatch(ctx, q) }))
		r.Get("/email", h.lookup(func(ctx context.Context, q string) any { return h.engine.Email(ctx, q) }))
		r.Get("/ip", h.lookup(func(ctx context.Context, q string) any { return h.engine.IP(ctx, q) }))
		r.Get("/username", h.lookup(func(ctx context.Context, q string) any { return h.engine.Username(ctx, q) }))

		r.Post("/lookups", h.enqueue)
		r.Get("/lookups/{task}", h.listResults)
		r.Get("/lookups/{task}/{lookupID}", h.getResult)
	})
}

// lookup serves a synchronous lookup for the q query parameter. Lookup
// outcomes are always reported in the record with status 200.
func (h *Handler) lookup(run func(context.Context, string) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			writeError(w, http.StatusBadRequest, "query parameter q is required")
			return
		}
		writeJSON(w, http.StatusOK, run(r.Context(), q))
	}
}

type enqueueRequest struct {
	Task  models.Task `json:"task"`
	Input string      `json:"input"`
}

type enqueueResponse struct {
	LookupID string            `json:"lookup_id"`
	Task     models.Task       `json:"task"`
	Status   models.TaskStatus `json:"status"`
}

func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		writeError(w, http.StatusServiceUnavailable, "asynchronous lookups are not configured")
		return
	}

	var req enqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg := &models.TaskMessage{
		Task:     req.Task,
		LookupID: uuid.NewString(),
		Input:    strings.TrimSpace(req.Input),
	}
	if err := h.validator.ValidateTaskMessage(msg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validator.ValidateInput(msg.Task, msg.Input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.queue.SendMessage(r.Context(), msg); err != nil {
		gologger.Error().Msgf("Failed to enqueue %s lookup: %v", msg.Task, err)
		writeError(w, http.StatusBadGateway, "failed to enqueue lookup")
		return
	}

	gologger.Info().Msgf("Enqueued %s lookup %s", msg.Task, msg.LookupID)
	writeJSON(w, http.StatusAccepted, enqueueResponse{
		LookupID: msg.LookupID,
		Task:     msg.Task,
		Status:   models.TaskStatusRunning,
	})
}

func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	task, ok := h.resultTask(w, r)
	if !ok {
		return
	}

	names, err := h.results.ListTaskResults(r.Context(), task)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"task": task, "results": names})
}

func (h *Handler) getResult(w http.ResponseWriter, r *http.Request) {
	task, ok := h.resultTask(w, r)
	if !ok {
		return
	}

	lookupID := chi.URLParam(r, "lookupID")
	if _, err := uuid.Parse(lookupID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid lookup id")
		return
	}

	result, err := h.results.GetTaskResult(r.Context(), task, lookupID)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// resultTask checks that result storage is configured and parses the task
func (h *Handler) resultTask(w http.ResponseWriter, r *http.Request) (models.Task, bool) {
	if h.results == nil {
		writeError(w, http.StatusServiceUnavailable, "result storage is not configured")
		return "", false
	}

	task := models.Task(chi.URLParam(r, "task"))
	for _, t := range models.Tasks {
		if t == task {
			return task, true
		}
	}
	writeError(w, http.StatusNotFound, "unknown task type: "+string(task))
	return "", false
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) && appErr.Type == common.ErrorTypeNotFound {
		writeError(w, http.StatusNotFound, appErr.Message)
		return
	}
	gologger.Error().Msgf("Result storage request failed: %v", err)
	writeError(w, http.StatusBadGateway, "result storage unavailable")
}

type healthResponse struct {
	Status       string            `json:"status"`
	ProviderMode string            `json:"provider_mode,omitempty"`
	Checks       map[string]string `json:"checks,omitempty"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", ProviderMode: h.providerMode}
	status := http.StatusOK

	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}
	for name, c := range h.checks {
		if err := c.Health(r.Context()); err != nil {
			gologger.Warning().Msgf("Health check %s failed: %v", name, err)
			resp.Checks[name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		gologger.Warning().Msgf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
