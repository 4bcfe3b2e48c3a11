package shared

import (
	"github.com/fatih/color"
)

// Package-level color variables
var (
	ColorInfo    = color.New(color.FgCyan)
	ColorSuccess = color.New(color.FgGreen)
	ColorWarning = color.New(color.FgYellow)
	ColorError   = color.New(color.FgRed)
	ColorPrompt  = color.New(color.FgBlue, color.Bold)
	ColorMuted   = color.New(color.FgHiBlack)
)

// InitializeColors initializes color output based on TTY detection
func InitializeColors() {
	color.NoColor = !IsTTY()
}
