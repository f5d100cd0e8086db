package logging

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

var levelMap = map[string]levels.Level{
	"debug":   levels.LevelDebug,
	"info":    levels.LevelInfo,
	"warning": levels.LevelWarning,
	"warn":    levels.LevelWarning,
	"error":   levels.LevelError,
	"fatal":   levels.LevelFatal,
}

// ParseLevel maps a configured log level name to a gologger level
func ParseLevel(logLevel string) (levels.Level, bool) {
	level, ok := levelMap[strings.ToLower(strings.TrimSpace(logLevel))]
	if !ok {
		return levels.LevelInfo, false
	}
	return level, true
}

// SetupLogging configures gologger based on the log level
func SetupLogging(logLevel string) {
	level, ok := ParseLevel(logLevel)
	gologger.DefaultLogger.SetMaxLevel(level)
	if !ok {
		gologger.Warning().Msgf("Unknown log level '%s', defaulting to 'info'", logLevel)
		return
	}
	gologger.Debug().Msgf("Log level configured to: %s", logLevel)
}
