package handlers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allsafeASM/lookup/internal/metrics"
	"github.com/allsafeASM/lookup/internal/models"
	"github.com/allsafeASM/lookup/internal/pipeline"
	"github.com/allsafeASM/lookup/internal/providers"
	"github.com/allsafeASM/lookup/internal/tables"
)

type memoryStore struct {
	mu      sync.Mutex
	results []*models.TaskResult
	err     error
}

func (s *memoryStore) StoreTaskResult(_ context.Context, result *models.TaskResult) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.results = append(s.results, result)
	return "results/" + string(result.Task) + "/" + result.LookupID + ".json", nil
}

type recordingNotifier struct {
	steps []string
	err   error
}

func (n *recordingNotifier) NotifyTaskReceived(context.Context, *models.TaskMessage) error {
	n.steps = append(n.steps, "received")
	return n.err
}

func (n *recordingNotifier) NotifyTaskCompleted(context.Context, *models.TaskMessage, *models.TaskResult) error {
	n.steps = append(n.steps, "completed")
	return n.err
}

func (n *recordingNotifier) NotifyTaskFailed(context.Context, *models.TaskMessage, error) error {
	n.steps = append(n.steps, "failed")
	return n.err
}

func (n *recordingNotifier) NotifyResultStored(context.Context, *models.TaskMessage, *models.TaskResult) error {
	n.steps = append(n.steps, "stored")
	return n.err
}

func newHandler(t *testing.T, store ResultStore, notifier Notifier, m *metrics.Metrics) *TaskHandler {
	t.Helper()
	tb := tables.New()
	s := providers.NewStatic(tb)
	engine := pipeline.New(tb, providers.Set{Carrier: s, MailServer: s, Geo: s, Prober: s}, "+91")
	return NewTaskHandler(engine, store, notifier, m)
}

func TestHandleTaskStoresEachLookupType(t *testing.T) {
	tests := []struct {
		task  models.Task
		input string
		check func(t *testing.T, data any)
	}{
		{models.TaskPhone, "+14155552671, +447911123456", func(t *testing.T, data any) {
			records, ok := data.([]models.PhoneRecord)
			require.True(t, ok)
			require.Len(t, records, 2)
			assert.Equal(t, "United States/Canada", records[0].Country)
			assert.Equal(t, "United Kingdom", records[1].Country)
		}},
		{models.TaskEmail, "someone@mailinator.com", func(t *testing.T, data any) {
			rec, ok := data.(models.EmailRecord)
			require.True(t, ok)
			assert.True(t, rec.IsDisposable)
		}},
		{models.TaskIP, "8.8.8.8", func(t *testing.T, data any) {
			rec, ok := data.(models.IPRecord)
			require.True(t, ok)
			assert.True(t, rec.IsValid)
		}},
		{models.TaskUsername, "octocat", func(t *testing.T, data any) {
			rec, ok := data.(models.UsernameRecord)
			require.True(t, ok)
			assert.Len(t, rec.Platforms, 8)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			store := &memoryStore{}
			h := newHandler(t, store, nil, nil)

			result := h.HandleTask(context.Background(), &models.TaskMessage{Task: tt.task, LookupID: "l-1", Input: tt.input})

			require.True(t, result.Success)
			require.Len(t, store.results, 1)
			stored := store.results[0]
			assert.Equal(t, models.TaskStatusCompleted, stored.Status)
			assert.Equal(t, "l-1", stored.LookupID)
			assert.NotEmpty(t, stored.Timestamp)
			tt.check(t, stored.Data)
		})
	}
}

func TestHandleTaskGeneratesLookupID(t *testing.T) {
	store := &memoryStore{}
	h := newHandler(t, store, nil, nil)

	msg := &models.TaskMessage{Task: models.TaskIP, Input: "1.1.1.1"}
	require.True(t, h.HandleTask(context.Background(), msg).Success)

	assert.Len(t, msg.LookupID, 36)
	assert.Equal(t, msg.LookupID, store.results[0].LookupID)
}

func TestHandleTaskRejectsInvalidMessages(t *testing.T) {
	tests := []struct {
		name string
		msg  *models.TaskMessage
		want string
	}{
		{"missing task", &models.TaskMessage{Input: "x"}, "task type is required"},
		{"unknown task", &models.TaskMessage{Task: "fax", Input: "x"}, "invalid task type: fax"},
		{"blank input", &models.TaskMessage{Task: models.TaskEmail, Input: "  "}, "input is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			notifier := &recordingNotifier{}
			h := newHandler(t, store, notifier, nil)

			result := h.HandleTask(context.Background(), tt.msg)

			assert.False(t, result.Success)
			assert.False(t, result.Retryable)
			assert.ErrorContains(t, result.Error, tt.want)
			assert.Empty(t, store.results)
			assert.Equal(t, []string{"received", "failed"}, notifier.steps)
		})
	}
}

func TestHandleTaskStoreFailureIsRetryable(t *testing.T) {
	store := &memoryStore{err: errors.New("connection reset by peer")}
	h := newHandler(t, store, nil, nil)

	result := h.HandleTask(context.Background(), &models.TaskMessage{Task: models.TaskEmail, Input: "a@example.com"})

	assert.False(t, result.Success)
	assert.True(t, result.Retryable)
}

func TestHandleTaskNotifiesInOrder(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("webhook down")}
	h := newHandler(t, &memoryStore{}, notifier, nil)

	result := h.HandleTask(context.Background(), &models.TaskMessage{Task: models.TaskUsername, Input: "octocat"})

	assert.True(t, result.Success, "notification errors must not fail the task")
	assert.Equal(t, []string{"received", "stored", "completed"}, notifier.steps)
}

func TestHandleTaskRecordsMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := newHandler(t, &memoryStore{}, nil, m)

	h.HandleTask(context.Background(), &models.TaskMessage{Task: models.TaskIP, Input: "8.8.4.4"})
	h.HandleTask(context.Background(), &models.TaskMessage{Task: "fax", Input: "x"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksProcessed.WithLabelValues("ip", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TasksProcessed.WithLabelValues("fax", "failed")))
}

func TestRunRejectsUnknownTask(t *testing.T) {
	h := newHandler(t, &memoryStore{}, nil, nil)

	_, err := h.Run(context.Background(), "fax", "x")
	assert.EqualError(t, err, "invalid task type: fax")
}
