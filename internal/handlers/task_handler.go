package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/common"
	"github.com/allsafeASM/lookup/internal/metrics"
	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/pipeline"
	"github.com/allsafeASM/lookup/internal/validation"
)

// ResultStore persists finished lookup results
type ResultStore interface {
	StoreTaskResult(ctx context.Context, result *models.TaskResult) (string, error)
}

// Notifier reports lookup progress
type Notifier interface {
	NotifyTaskReceived(ctx context.Context, taskMsg *models.TaskMessage) error
	NotifyTaskCompleted(ctx context.Context, taskMsg *models.TaskMessage, result *models.TaskResult) error
	NotifyTaskFailed(ctx context.Context, taskMsg *models.TaskMessage, err error) error
	NotifyResultStored(ctx context.Context, taskMsg *models.TaskMessage, result *models.TaskResult) error
}

// TaskHandler runs queued lookups and stores their results
type TaskHandler struct {
	engine          *pipeline.Engine
	store           ResultStore
	notifier        Notifier
	metrics         *metrics.Metrics
	validator       *validation.Validator
	errorClassifier *common.ErrorClassifier
}

// NewTaskHandler creates a new task handler. notifier may be nil.
func NewTaskHandler(engine *pipeline.Engine, store ResultStore, notifier Notifier, m *metrics.Metrics) *TaskHandler {
	if m == nil {
		m = metrics.NewNoop()
	}
	return &TaskHandler{
		engine:          engine,
		store:           store,
		notifier:        notifier,
		metrics:         m,
		validator:       validation.NewValidator(),
		errorClassifier: common.NewErrorClassifier(),
	}
}

// HandleTask processes a lookup task and stores the result
func (h *TaskHandler) HandleTask(ctx context.Context, taskMsg *models.TaskMessage) *models.MessageProcessingResult {
	if taskMsg.LookupID == "" {
		taskMsg.LookupID = uuid.NewString()
	}

	gologger.Info().Msgf("Processing %s lookup %s for input: %s", taskMsg.Task, taskMsg.LookupID, taskMsg.Input)
	h.notify(func(n Notifier) error { return n.NotifyTaskReceived(ctx, taskMsg) })

	if err := h.validator.ValidateTaskMessage(taskMsg); err != nil {
		gologger.Error().Msgf("Invalid task message: %v", err)
		h.metrics.IncrementTask(string(taskMsg.Task), string(models.TaskStatusFailed))
		h.notify(func(n Notifier) error { return n.NotifyTaskFailed(ctx, taskMsg, err) })
		return &models.MessageProcessingResult{
			Success:   false,
			Error:     err,
			Retryable: false,
		}
	}

	result := &models.TaskResult{
		Task:      taskMsg.Task,
		LookupID:  taskMsg.LookupID,
		Input:     taskMsg.Input,
		Status:    models.TaskStatusRunning,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := h.Run(ctx, taskMsg.Task, taskMsg.Input)
	if err != nil {
		result.Status = models.TaskStatusFailed
		result.Error = err.Error()
	} else {
		result.Status = models.TaskStatusCompleted
		result.Data = data
	}

	if _, storeErr := h.store.StoreTaskResult(ctx, result); storeErr != nil {
		gologger.Error().Msgf("Failed to store task result: %v", storeErr)
		h.metrics.IncrementTask(string(taskMsg.Task), string(models.TaskStatusFailed))
		h.notify(func(n Notifier) error { return n.NotifyTaskFailed(ctx, taskMsg, storeErr) })
		return &models.MessageProcessingResult{
			Success:   false,
			Error:     storeErr,
			Retryable: h.errorClassifier.IsRetryableError(storeErr),
		}
	}
	h.notify(func(n Notifier) error { return n.NotifyResultStored(ctx, taskMsg, result) })

	h.metrics.IncrementTask(string(taskMsg.Task), string(result.Status))
	if err != nil {
		gologger.Error().Msgf("Lookup failed: %v", err)
		h.notify(func(n Notifier) error { return n.NotifyTaskFailed(ctx, taskMsg, err) })
		return &models.MessageProcessingResult{
			Success:   false,
			Error:     err,
			Retryable: false,
		}
	}

	gologger.Info().Msgf("Lookup %s completed successfully", taskMsg.LookupID)
	h.notify(func(n Notifier) error { return n.NotifyTaskCompleted(ctx, taskMsg, result) })
	return &models.MessageProcessingResult{Success: true}
}

// Run dispatches input to the pipeline for task. Phone input is treated as
// a comma-separated batch.
func (h *TaskHandler) Run(ctx context.Context, task models.Task, input string) (any, error) {
	switch task {
	case models.TaskPhone:
		return h.engine.PhoneBatch(ctx, input), nil
	case models.TaskEmail:
		return h.engine.Email(ctx, input), nil
	case models.TaskIP:
		return h.engine.IP(ctx, input), nil
	case models.TaskUsername:
		return h.engine.Username(ctx, input), nil
	default:
		return nil, fmt.Errorf("invalid task type: %s", task)
	}
}

// notify sends a notification without failing the task
func (h *TaskHandler) notify(send func(Notifier) error) {
	if h.notifier == nil {
		return
	}
	if err := send(h.notifier); err != nil {
		gologger.Warning().Msgf("Failed to send notification: %v", err)
	}
}
