package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/google/uuid"
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/models"
)

// Handler processes one decoded task message
type Handler func(context.Context, *models.TaskMessage) *models.MessageProcessingResult

// LockRenewer renews the lock on a received message
type LockRenewer interface {
	RenewMessageLock(ctx context.Context, msg *azservicebus.ReceivedMessage, options *azservicebus.RenewMessageLockOptions) error
}

// Options controls retries, timeouts and lock renewal
type Options struct {
	LockRenewalInterval time.Duration
	MaxLockRenewalTime  time.Duration
	TaskTimeout         time.Duration
	MaxRetries          int
	BaseDelay           time.Duration
}

// DefaultOptions returns the worker defaults
func DefaultOptions() Options {
	return Options{
		LockRenewalInterval: 30 * time.Second,
		MaxLockRenewalTime:  10 * time.Minute,
		TaskTimeout:         2 * time.Minute,
		MaxRetries:          3,
		BaseDelay:           1 * time.Second,
	}
}

// MessageProcessor handles message processing logic
type MessageProcessor struct {
	renewer LockRenewer
	opts    Options
}

// NewMessageProcessor creates a new message processor
func NewMessageProcessor(renewer LockRenewer, opts Options) *MessageProcessor {
	return &MessageProcessor{
		renewer: renewer,
		opts:    opts,
	}
}

// ProcessMessage processes a single message with retry logic and auto-renewal.
// The body is decoded once and a missing lookup ID is assigned before the
// first attempt, so every retry stores its result under the same ID.
func (p *MessageProcessor) ProcessMessage(ctx context.Context, message *azservicebus.ReceivedMessage, handler Handler) *models.MessageProcessingResult {
	var taskMsg models.TaskMessage
	if err := json.Unmarshal(message.Body, &taskMsg); err != nil {
		return &models.MessageProcessingResult{
			Success:   false,
			Error:     fmt.Errorf("failed to unmarshal message body: %w", err),
			Retryable: false,
		}
	}
	if taskMsg.LookupID == "" {
		taskMsg.LookupID = uuid.NewString()
	}

	maxRetries := p.opts.MaxRetries

	for attempt := 0; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return &models.MessageProcessingResult{
				Success:    false,
				Error:      ctx.Err(),
				Retryable:  false,
				RetryCount: attempt,
			}
		default:
		}

		// Create a context with timeout for the handler
		handlerCtx, cancel := context.WithTimeout(ctx, p.opts.TaskTimeout)
		result := p.processMessageWithRenewal(handlerCtx, message, taskMsg, handler)
		cancel()

		result.RetryCount = attempt

		if result.Success {
			return result
		}

		if !result.Retryable || attempt == maxRetries {
			return result
		}

		// Calculate exponential backoff delay
		delay := time.Duration(p.opts.BaseDelay.Nanoseconds() * int64(1<<attempt))
		gologger.Warning().Msgf("Processing failed (attempt %d/%d), retrying in %v: %v", attempt+1, maxRetries+1, delay, result.Error)

		select {
		case <-ctx.Done():
			return &models.MessageProcessingResult{
				Success:    false,
				Error:      ctx.Err(),
				Retryable:  false,
				RetryCount: attempt,
			}
		case <-time.After(delay):
			continue
		}
	}

	return &models.MessageProcessingResult{
		Success:    false,
		Error:      fmt.Errorf("max retries exceeded"),
		Retryable:  false,
		RetryCount: maxRetries,
	}
}

// processMessageWithRenewal runs one attempt with automatic lock renewal.
// taskMsg is a per-attempt copy; a timed-out attempt may still be running.
func (p *MessageProcessor) processMessageWithRenewal(ctx context.Context, message *azservicebus.ReceivedMessage, taskMsg models.TaskMessage, handler Handler) *models.MessageProcessingResult {
	done := make(chan *models.MessageProcessingResult, 1)
	go func() {
		done <- handler(ctx, &taskMsg)
	}()

	// Lock renewal is bounded by the maximum renewal time
	renewalCtx, cancelRenewal := context.WithTimeout(context.Background(), p.opts.MaxLockRenewalTime)
	defer cancelRenewal()

	go func() {
		ticker := time.NewTicker(p.opts.LockRenewalInterval)
		defer ticker.Stop()

		for {
			select {
			case <-renewalCtx.Done():
				gologger.Debug().Msg("Lock renewal stopped due to timeout or cancellation")
				return
			case <-ticker.C:
				if err := p.renewer.RenewMessageLock(renewalCtx, message, nil); err != nil {
					gologger.Warning().Msgf("Failed to renew message lock: %v", err)
					cancelRenewal()
					return
				}
				gologger.Debug().Msg("Message lock renewed successfully")
			}
		}
	}()

	select {
	case <-ctx.Done():
		return &models.MessageProcessingResult{
			Success:   false,
			Error:     ctx.Err(),
			Retryable: true,
		}
	case result := <-done:
		return result
	}
}
