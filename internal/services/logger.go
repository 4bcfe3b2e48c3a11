package services

import (
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"

	"tunescout/internal/shared"
)

// ConsoleLogger implementation
type ConsoleLogger struct {
	mu        sync.Mutex
	debugMode bool
}

func NewConsoleLogger() *ConsoleLogger {
	return &ConsoleLogger{debugMode: false}
}

func (cl *ConsoleLogger) Info(message string, args ...interface{}) {
	shared.ColorInfo.Printf(message+"\n", args...)
}

func (cl *ConsoleLogger) Warning(message string, args ...interface{}) {
	shared.ColorWarning.Printf("⚠️ "+message+"\n", args...)
}

func (cl *ConsoleLogger) Error(message string, args ...interface{}) {
	shared.ColorError.Printf("❌ "+message+"\n", args...)
}

func (cl *ConsoleLogger) Debug(message string, args ...interface{}) {
	cl.mu.Lock()
	enabled := cl.debugMode
	cl.mu.Unlock()
	if !enabled {
		return
	}
	shared.ColorMuted.Printf("🐛 DEBUG: "+message+"\n", args...)
}

func (cl *ConsoleLogger) Success(message string, args ...interface{}) {
	shared.ColorSuccess.Printf("✅ "+message+"\n", args...)
}

func (cl *ConsoleLogger) SetDebugMode(enabled bool) {
	cl.mu.Lock()
	cl.debugMode = enabled
	cl.mu.Unlock()
}

// HclogLogger adapts hclog for the HTTP server
type HclogLogger struct {
	logger hclog.Logger
}

// NewHclogLogger creates a leveled logger writing to w. JSON output suits log collectors.
func NewHclogLogger(name string, w io.Writer, jsonFormat bool) *HclogLogger {
	return &HclogLogger{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:       name,
			Level:      hclog.Info,
			Output:     w,
			JSONFormat: jsonFormat,
		}),
	}
}

// Hclog exposes the underlying logger for request scoped key-value logging
func (hl *HclogLogger) Hclog() hclog.Logger {
	return hl.logger
}

func (hl *HclogLogger) Info(message string, args ...interface{}) {
	hl.logger.Info(fmt.Sprintf(message, args...))
}

func (hl *HclogLogger) Warning(message string, args ...interface{}) {
	hl.logger.Warn(fmt.Sprintf(message, args...))
}

func (hl *HclogLogger) Error(message string, args ...interface{}) {
	hl.logger.Error(fmt.Sprintf(message, args...))
}

func (hl *HclogLogger) Debug(message string, args ...interface{}) {
	hl.logger.Debug(fmt.Sprintf(message, args...))
}

func (hl *HclogLogger) Success(message string, args ...interface{}) {
	hl.logger.Info(fmt.Sprintf(message, args...), "status", "ok")
}

func (hl *HclogLogger) SetDebugMode(enabled bool) {
	if enabled {
		hl.logger.SetLevel(hclog.Debug)
		return
	}
	hl.logger.SetLevel(hclog.Info)
}
