package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/allsafeASM/lookup/internal/models"
)

const maxEmailLength = 254

var (
	phonePattern    = regexp.MustCompile(`^[+ \d\-().]{7,20}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	ipv4Pattern     = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

// IsPhone reports whether s has the shape of a phone number. Only the
// character set and length are checked here.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsEmail reports whether s has the local@domain.tld shape
func IsEmail(s string) bool {
	if len(s) == 0 || len(s) > maxEmailLength {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsIPv4 reports whether s is a dotted quad with every octet in [0,255]
func IsIPv4(s string) bool {
	return ipv4Pattern.MatchString(s)
}

// IsUsername reports whether s can be used as a platform handle
func IsUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// Validator provides all validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateInput checks raw input for the given task type
func (v *Validator) ValidateInput(task models.Task, input string) error {
	if input == "" {
		return fmt.Errorf("input is required for %s lookup", task)
	}

	switch task {
	case models.TaskPhone:
		// batches are validated entry by entry by the pipeline
		return nil
	case models.TaskEmail:
		if !IsEmail(input) {
			return fmt.Errorf("invalid email address: %s", input)
		}
	case models.TaskIP:
		if !IsIPv4(input) {
			return fmt.Errorf("invalid IPv4 address: %s", input)
		}
	case models.TaskUsername:
		if !IsUsername(input) {
			return fmt.Errorf("invalid username: %s", input)
		}
	default:
		return fmt.Errorf("invalid task type: %s", task)
	}

	return nil
}

// ValidateTaskMessage validates a task message
func (v *Validator) ValidateTaskMessage(taskMsg *models.TaskMessage) error {
	if taskMsg.Task == "" {
		return fmt.Errorf("task type is required")
	}

	if !v.isValidTaskType(taskMsg.Task) {
		return fmt.Errorf("invalid task type: %s", taskMsg.Task)
	}

	if strings.TrimSpace(taskMsg.Input) == "" {
		return fmt.Errorf("input is required for task processing")
	}

	return nil
}

// isValidTaskType checks if the task type is supported
func (v *Validator) isValidTaskType(taskType models.Task) bool {
	for _, t := range models.Tasks {
		if t == taskType {
			return true
		}
	}
	return false
}
