package engine

import "github.com/sgostarter/i/l"

// NewTraceLogger returns a console logger that lets the Debug level trace messages through.
func NewTraceLogger() l.Wrapper {
	logger := l.NewConsoleLoggerWrapper()
	logger.GetLogger().SetLevel(l.LevelDebug)

	return logger
}
