package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allsafeASM/lookup/internal/models"
)

func TestIsPhone(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"+91 9876543210", true},
		{"9876543210", true},
		{"+1 (555) 123-4567", true},
		{"+44.20.7946.0958", true},
		{"123456", false},
		{"+1234567890123456789012", false},
		{"+91 98765abc10", false},
		{"", false},
		{"+91\t9876543210", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPhone(tt.input))
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@tempmail.com", true},
		{"first.last+tag@mail.example.co", true},
		{"not-an-email", false},
		{"user@domain", false},
		{"user@domain.c", false},
		{"user@domain.c0m", false},
		{"@example.com", false},
		{"", false},
		{strings.Repeat("a", 250) + "@x.io", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.input))
		})
	}
}

func TestIsIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"8.8.8.8", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"999.1.1.1", false},
		{"256.1.1.1", false},
		{"1.1.1", false},
		{"1.1.1.1.1", false},
		{"1.1.1.1 ", false},
		{"a.b.c.d", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIPv4(tt.input))
		})
	}
}

func TestIsUsername(t *testing.T) {
	assert.True(t, IsUsername("octocat"))
	assert.True(t, IsUsername("john.doe_99"))
	assert.False(t, IsUsername(""))
	assert.False(t, IsUsername("has space"))
	assert.False(t, IsUsername("slash/inject"))
	assert.False(t, IsUsername(strings.Repeat("x", 65)))
}

func TestValidateTaskMessage(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateTaskMessage(&models.TaskMessage{Task: models.TaskEmail, Input: "a@b.io"}))
	assert.Error(t, v.ValidateTaskMessage(&models.TaskMessage{Input: "a@b.io"}))
	assert.Error(t, v.ValidateTaskMessage(&models.TaskMessage{Task: "subfinder", Input: "example.com"}))
	assert.Error(t, v.ValidateTaskMessage(&models.TaskMessage{Task: models.TaskIP, Input: "   "}))
}

func TestValidateInput(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateInput(models.TaskPhone, "+91 1, bogus"))
	assert.NoError(t, v.ValidateInput(models.TaskIP, "8.8.8.8"))
	assert.Error(t, v.ValidateInput(models.TaskIP, "999.1.1.1"))
	assert.Error(t, v.ValidateInput(models.TaskEmail, "nope"))
	assert.Error(t, v.ValidateInput(models.TaskUsername, ""))
}

func TestDomainValidator(t *testing.T) {
	v := NewDomainValidator()

	assert.True(t, v.IsValidDomain("example.com"))
	assert.False(t, v.IsValidDomain("localhost"))
	assert.False(t, v.IsValidDomain("bad..example.com"))
	assert.False(t, v.IsValidDomain("-example.com"))
	assert.False(t, v.IsValidDomain(""))
}
