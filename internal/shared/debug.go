package shared

import (
	"os"
	"strings"
)

// IsDebugMode checks if debug mode is enabled via environment variable
func IsDebugMode() bool {
	for _, key := range []string{"TUNESCOUT_DEBUG", "DEBUG"} {
		switch strings.ToLower(os.Getenv(key)) {
		case "1", "true", "yes":
			return true
		}
	}
	return false
}
