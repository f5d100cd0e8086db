package models

// TaskMessage represents the structure of messages in the queue
type TaskMessage struct {
	Task       Task   `json:"task"`
	LookupID   string `json:"lookup_id"`
	Input      string `json:"input"`
	InstanceID string `json:"instance_id,omitempty"`
}

// TaskResult represents the result of a completed task
type TaskResult struct {
	Task      Task       `json:"task"`
	LookupID  string     `json:"lookup_id"`
	Input     string     `json:"input"`
	Status    TaskStatus `json:"status"`
	Data      any        `json:"data,omitempty"`
	Error     string     `json:"error,omitempty"`
	Timestamp string     `json:"timestamp"`
}

// Task types
type Task string

const (
	TaskPhone    Task = "phone"
	TaskEmail    Task = "email"
	TaskIP       Task = "ip"
	TaskUsername Task = "username"
)

// Tasks lists every supported task type
var Tasks = []Task{TaskPhone, TaskEmail, TaskIP, TaskUsername}

// Task status
type TaskStatus string

const (
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusRunning   TaskStatus = "running"
)

// MessageProcessingResult represents the result of processing a message
type MessageProcessingResult struct {
	Success bool
	Error   error
	// Retryable indicates if the error is transient and should be retried
	Retryable bool
	// RetryCount is the number of times this message has been retried
	RetryCount int
}
