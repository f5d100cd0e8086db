package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/models"
)

// DiscordNotifier handles sending notifications to Discord webhook
type DiscordNotifier struct {
	webhookURL string
	httpClient *http.Client
	enabled    bool
	maxRetries int
	baseDelay  time.Duration
}

// DiscordEmbed represents a Discord embed object
type DiscordEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Fields      []DiscordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Footer      *DiscordEmbedFooter `json:"footer,omitempty"`
}

// DiscordEmbedField represents a field in a Discord embed
type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// DiscordEmbedFooter represents the footer of a Discord embed
type DiscordEmbedFooter struct {
	Text string `json:"text"`
}

// DiscordWebhookPayload represents the payload sent to Discord webhook
type DiscordWebhookPayload struct {
	Username string         `json:"username,omitempty"`
	Content  string         `json:"content,omitempty"`
	Embeds   []DiscordEmbed `json:"embeds,omitempty"`
}

// NotificationStep represents different steps in the lookup processing
type NotificationStep string

const (
	StepTaskReceived  NotificationStep = "task_received"
	StepTaskCompleted NotificationStep = "task_completed"
	StepTaskFailed    NotificationStep = "task_failed"
	StepResultStored  NotificationStep = "result_stored"
)

// Color constants for Discord embeds
const (
	ColorInfo    = 0x3498db // Blue
	ColorSuccess = 0x2ecc71 // Green
	ColorWarning = 0xf39c12 // Orange
	ColorError   = 0xe74c3c // Red
)

// NewDiscordNotifier creates a Discord notifier. An empty webhook URL
// returns a disabled notifier.
func NewDiscordNotifier(webhookURL string, timeout time.Duration) *DiscordNotifier {
	if webhookURL == "" {
		return &DiscordNotifier{enabled: false}
	}

	return &DiscordNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		enabled:    true,
		maxRetries: 3,
		baseDelay:  1 * time.Second,
	}
}

// IsEnabled returns whether Discord notifications are enabled
func (d *DiscordNotifier) IsEnabled() bool {
	return d != nil && d.enabled
}

// NotifyStep sends a notification for a specific step in the lookup processing
func (d *DiscordNotifier) NotifyStep(ctx context.Context, step NotificationStep, taskMsg *models.TaskMessage, result *models.TaskResult, err error) error {
	if !d.IsEnabled() {
		return nil
	}

	payload := d.createPayload(step, taskMsg, result, err)
	return d.SendWebhookWithRetry(ctx, payload)
}

// NotifyTaskReceived sends notification when a task is received
func (d *DiscordNotifier) NotifyTaskReceived(ctx context.Context, taskMsg *models.TaskMessage) error {
	return d.NotifyStep(ctx, StepTaskReceived, taskMsg, nil, nil)
}

// NotifyTaskCompleted sends notification when a lookup completes
func (d *DiscordNotifier) NotifyTaskCompleted(ctx context.Context, taskMsg *models.TaskMessage, result *models.TaskResult) error {
	return d.NotifyStep(ctx, StepTaskCompleted, taskMsg, result, nil)
}

// NotifyTaskFailed sends notification when a task fails
func (d *DiscordNotifier) NotifyTaskFailed(ctx context.Context, taskMsg *models.TaskMessage, err error) error {
	return d.NotifyStep(ctx, StepTaskFailed, taskMsg, nil, err)
}

// NotifyResultStored sends notification when the result blob is written
func (d *DiscordNotifier) NotifyResultStored(ctx context.Context, taskMsg *models.TaskMessage, result *models.TaskResult) error {
	return d.NotifyStep(ctx, StepResultStored, taskMsg, result, nil)
}

// createPayload creates a Discord webhook payload based on the step and data
func (d *DiscordNotifier) createPayload(step NotificationStep, taskMsg *models.TaskMessage, result *models.TaskResult, err error) DiscordWebhookPayload {
	embed := DiscordEmbed{
		Timestamp: time.Now().Format(time.RFC3339),
		Fields:    taskFields(taskMsg),
	}

	switch step {
	case StepTaskReceived:
		embed.Title = "🔄 Lookup Received"
		embed.Description = "New lookup received for processing"
		embed.Color = ColorInfo

	case StepTaskCompleted:
		embed.Title = "✅ Lookup Completed"
		embed.Description = "Lookup completed successfully"
		embed.Color = ColorSuccess
		if result != nil {
			embed.Fields = append(embed.Fields, summaryFields(result.Data)...)
		}

	case StepTaskFailed:
		embed.Title = "❌ Lookup Failed"
		embed.Description = "Lookup processing failed"
		embed.Color = ColorError
		if err != nil {
			embed.Fields = append(embed.Fields, DiscordEmbedField{
				Name: "Error", Value: err.Error(), Inline: false,
			})
		}

	case StepResultStored:
		embed.Title = "💾 Result Stored"
		embed.Description = "Lookup result stored successfully"
		embed.Color = ColorSuccess
	}

	embed.Footer = &DiscordEmbedFooter{
		Text: "AllSafe Lookup Worker",
	}

	return DiscordWebhookPayload{
		Username: "AllSafe Lookup Bot",
		Embeds:   []DiscordEmbed{embed},
	}
}

func taskFields(taskMsg *models.TaskMessage) []DiscordEmbedField {
	if taskMsg == nil {
		return nil
	}
	return []DiscordEmbedField{
		{Name: "Task", Value: string(taskMsg.Task), Inline: true},
		{Name: "Lookup ID", Value: taskMsg.LookupID, Inline: true},
		{Name: "Input", Value: taskMsg.Input, Inline: true},
	}
}

// summaryFields describes the headline facts of a lookup result
func summaryFields(data any) []DiscordEmbedField {
	switch v := data.(type) {
	case []models.PhoneRecord:
		return []DiscordEmbedField{
			{Name: "Numbers", Value: fmt.Sprintf("%d", len(v)), Inline: true},
		}
	case models.EmailRecord:
		return []DiscordEmbedField{
			{Name: "Mail Server", Value: v.MailServer, Inline: true},
			{Name: "Disposable", Value: fmt.Sprintf("%t", v.IsDisposable), Inline: true},
		}
	case models.IPRecord:
		return []DiscordEmbedField{
			{Name: "Country", Value: v.Country, Inline: true},
			{Name: "ISP", Value: v.ISP, Inline: true},
		}
	case models.UsernameRecord:
		available := 0
		for _, p := range v.Platforms {
			if p.Available {
				available++
			}
		}
		return []DiscordEmbedField{
			{Name: "Available On", Value: fmt.Sprintf("%d/%d", available, len(v.Platforms)), Inline: true},
		}
	}
	return nil
}

// sendWebhook sends the webhook payload to Discord
func (d *DiscordNotifier) sendWebhook(ctx context.Context, payload DiscordWebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook failed with status %d", resp.StatusCode)
	}

	gologger.Debug().Msgf("Discord webhook sent successfully. Status: %d", resp.StatusCode)
	return nil
}

// SendWebhookWithRetry sends a webhook with retry logic
func (d *DiscordNotifier) SendWebhookWithRetry(ctx context.Context, payload DiscordWebhookPayload) error {
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := d.sendWebhook(ctx, payload)
		if err == nil {
			return nil
		}

		if attempt == d.maxRetries {
			return fmt.Errorf("failed to send Discord webhook after %d attempts: %w", d.maxRetries+1, err)
		}

		delay := time.Duration(d.baseDelay.Nanoseconds() * int64(1<<attempt))
		gologger.Warning().Msgf("Discord webhook failed (attempt %d/%d), retrying in %v: %v", attempt+1, d.maxRetries+1, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			continue
		}
	}

	return fmt.Errorf("max retries exceeded for Discord webhook")
}
