package azure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/messaging"
	"github.com/allsafeASM/lookup/internal/models"
)

// MaxDeliveryRetries is the number of abandons before a message is dead-lettered
const MaxDeliveryRetries = 3

// ServiceBusClient wraps Azure Service Bus operations
type ServiceBusClient struct {
	client    *azservicebus.Client
	queueName string
}

// NewServiceBusClient creates a new Service Bus client
func NewServiceBusClient(connectionString, queueName string) (*ServiceBusClient, error) {
	client, err := azservicebus.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create service bus client: %w", err)
	}

	return &ServiceBusClient{
		client:    client,
		queueName: queueName,
	}, nil
}

// Close closes the Service Bus client
func (s *ServiceBusClient) Close(ctx context.Context) error {
	return s.client.Close(ctx)
}

// SendMessage sends a lookup task to the queue
func (s *ServiceBusClient) SendMessage(ctx context.Context, message *models.TaskMessage) error {
	sender, err := s.client.NewSender(s.queueName, nil)
	if err != nil {
		return fmt.Errorf("failed to create sender: %w", err)
	}
	defer sender.Close(ctx)

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	contentType := "application/json"
	return sender.SendMessage(ctx, &azservicebus.Message{
		Body:        messageBytes,
		ContentType: &contentType,
		MessageID:   &message.LookupID,
	}, nil)
}

// ProcessMessages receives messages one at a time and settles each one
// according to the handler result until ctx is cancelled
func (s *ServiceBusClient) ProcessMessages(ctx context.Context, handler messaging.Handler, pollInterval time.Duration, opts messaging.Options) error {
	receiver, err := s.client.NewReceiverForQueue(s.queueName, nil)
	if err != nil {
		return fmt.Errorf("failed to create receiver: %w", err)
	}
	defer receiver.Close(context.Background())

	processor := messaging.NewMessageProcessor(receiver, opts)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		messages, err := receiver.ReceiveMessages(ctx, 1, nil)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			gologger.Error().Msgf("Failed to receive messages: %v", err)
			sleep(ctx, pollInterval)
			continue
		}

		if len(messages) == 0 {
			sleep(ctx, pollInterval)
			continue
		}

		message := messages[0]
		gologger.Info().Msgf("Received message: %s", string(message.Body))

		result := processor.ProcessMessage(ctx, message, handler)
		settle(context.Background(), receiver, message, result)
	}
}

// settler is the subset of the receiver used to finish a message
type settler interface {
	CompleteMessage(ctx context.Context, message *azservicebus.ReceivedMessage, options *azservicebus.CompleteMessageOptions) error
	AbandonMessage(ctx context.Context, message *azservicebus.ReceivedMessage, options *azservicebus.AbandonMessageOptions) error
	DeadLetterMessage(ctx context.Context, message *azservicebus.ReceivedMessage, options *azservicebus.DeadLetterOptions) error
}

// settle completes, abandons or dead-letters a message based on its result
func settle(ctx context.Context, receiver settler, message *azservicebus.ReceivedMessage, result *models.MessageProcessingResult) {
	if result.Success {
		if err := receiver.CompleteMessage(ctx, message, nil); err != nil {
			gologger.Error().Msgf("Failed to complete message: %v", err)
			return
		}
		gologger.Info().Msg("Message completed successfully")
		return
	}

	if result.Retryable && result.RetryCount < MaxDeliveryRetries {
		retryCount := result.RetryCount + 1
		properties := map[string]any{
			"RetryCount": retryCount,
			"LastError":  errorText(result.Error),
		}

		if err := receiver.AbandonMessage(ctx, message, &azservicebus.AbandonMessageOptions{
			PropertiesToModify: properties,
		}); err != nil {
			gologger.Error().Msgf("Failed to abandon message: %v", err)
			return
		}
		gologger.Warning().Msgf("Message abandoned for retry (attempt %d/%d): %v", retryCount, MaxDeliveryRetries, result.Error)
		return
	}

	reason := "ProcessingFailed"
	description := fmt.Sprintf("Failed after %d attempts: %s", result.RetryCount+1, errorText(result.Error))

	if err := receiver.DeadLetterMessage(ctx, message, &azservicebus.DeadLetterOptions{
		Reason:           &reason,
		ErrorDescription: &description,
	}); err != nil {
		gologger.Error().Msgf("Failed to move message to dead letter queue: %v", err)
		return
	}
	gologger.Error().Msgf("Message moved to dead letter queue: %v", result.Error)
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
