package azure

import (
	"context"
	"errors"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allsafeASM/lookup/internal/models"
)

type recordingSettler struct {
	completed   int
	abandoned   []map[string]any
	deadLetters []string
}

func (r *recordingSettler) CompleteMessage(context.Context, *azservicebus.ReceivedMessage, *azservicebus.CompleteMessageOptions) error {
	r.completed++
	return nil
}

func (r *recordingSettler) AbandonMessage(_ context.Context, _ *azservicebus.ReceivedMessage, opts *azservicebus.AbandonMessageOptions) error {
	r.abandoned = append(r.abandoned, opts.PropertiesToModify)
	return nil
}

func (r *recordingSettler) DeadLetterMessage(_ context.Context, _ *azservicebus.ReceivedMessage, opts *azservicebus.DeadLetterOptions) error {
	r.deadLetters = append(r.deadLetters, *opts.ErrorDescription)
	return nil
}

func TestSettleCompletesSuccessfulMessages(t *testing.T) {
	s := &recordingSettler{}
	settle(context.Background(), s, &azservicebus.ReceivedMessage{}, &models.MessageProcessingResult{Success: true})

	assert.Equal(t, 1, s.completed)
	assert.Empty(t, s.abandoned)
	assert.Empty(t, s.deadLetters)
}

func TestSettleAbandonsRetryableFailures(t *testing.T) {
	s := &recordingSettler{}
	settle(context.Background(), s, &azservicebus.ReceivedMessage{}, &models.MessageProcessingResult{
		Error:      errors.New("connection reset"),
		Retryable:  true,
		RetryCount: 1,
	})

	require.Len(t, s.abandoned, 1)
	assert.Equal(t, 2, s.abandoned[0]["RetryCount"])
	assert.Equal(t, "connection reset", s.abandoned[0]["LastError"])
	assert.Empty(t, s.deadLetters)
}

func TestSettleDeadLettersExhaustedOrPermanentFailures(t *testing.T) {
	tests := []struct {
		name   string
		result *models.MessageProcessingResult
	}{
		{"permanent", &models.MessageProcessingResult{Error: errors.New("invalid task type: fax")}},
		{"exhausted", &models.MessageProcessingResult{Error: errors.New("timeout"), Retryable: true, RetryCount: MaxDeliveryRetries}},
		{"no error", &models.MessageProcessingResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recordingSettler{}
			settle(context.Background(), s, &azservicebus.ReceivedMessage{}, tt.result)

			require.Len(t, s.deadLetters, 1)
			assert.Contains(t, s.deadLetters[0], "Failed after")
			assert.Empty(t, s.abandoned)
			assert.Zero(t, s.completed)
		})
	}
}

func TestResultBlobName(t *testing.T) {
	assert.Equal(t, "results/phone/abc.json", ResultBlobName(models.TaskPhone, "abc"))
}
