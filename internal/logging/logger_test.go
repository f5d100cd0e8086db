package logging

import (
	"testing"

	"github.com/projectdiscovery/gologger/levels"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  levels.Level
		known bool
	}{
		{"debug", levels.LevelDebug, true},
		{"INFO", levels.LevelInfo, true},
		{" warn ", levels.LevelWarning, true},
		{"warning", levels.LevelWarning, true},
		{"error", levels.LevelError, true},
		{"fatal", levels.LevelFatal, true},
		{"verbose", levels.LevelInfo, false},
		{"", levels.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}
