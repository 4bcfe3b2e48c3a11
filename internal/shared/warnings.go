package shared

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// WarningType represents different types of warnings
type WarningType int

const (
	AlbumYearWarning WarningType = iota
	StrategyWarning
	SeedArtistWarning
	MostLovedWarning
)

// Warning represents a single swallowed provider failure with context
type Warning struct {
	Type    WarningType
	Message string
	Context string // Artist/album/query context
	Details string // Underlying error message
}

// WarningCollector collects warnings during a search. Safe for concurrent use.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
	enabled  bool
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector(enabled bool) *WarningCollector {
	return &WarningCollector{
		warnings: make([]Warning, 0),
		enabled:  enabled,
	}
}

// AddWarning adds a warning to the collector
func (wc *WarningCollector) AddWarning(warningType WarningType, context, message, details string) {
	if wc == nil || !wc.enabled {
		return
	}

	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, Warning{
		Type:    warningType,
		Message: message,
		Context: context,
		Details: details,
	})
}

// AddAlbumYearWarning records a failed album lookup during year enrichment
func (wc *WarningCollector) AddAlbumYearWarning(albumID, details string) {
	wc.AddWarning(AlbumYearWarning, fmt.Sprintf("album %s", albumID), "Could not fetch album year", details)
}

// AddStrategyWarning records a failed fallback strategy
func (wc *WarningCollector) AddStrategyWarning(strategy, query, details string) {
	context := fmt.Sprintf("%s (%q)", strategy, query)
	wc.AddWarning(StrategyWarning, context, "Search strategy failed", details)
}

// AddSeedArtistWarning records a seed artist whose top tracks could not be fetched
func (wc *WarningCollector) AddSeedArtistWarning(artist, details string) {
	wc.AddWarning(SeedArtistWarning, artist, "Could not fetch top tracks", details)
}

// AddMostLovedWarning records a failure of the curated most-loved endpoint
func (wc *WarningCollector) AddMostLovedWarning(details string) {
	wc.AddWarning(MostLovedWarning, "mostloved", "Most loved endpoint unavailable", details)
}

// HasWarnings returns true if there are any warnings
func (wc *WarningCollector) HasWarnings() bool {
	return wc.GetWarningCount() > 0
}

// GetWarningCount returns the total number of warnings
func (wc *WarningCollector) GetWarningCount() int {
	if wc == nil {
		return 0
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.warnings)
}

// Reset drops all collected warnings
func (wc *WarningCollector) Reset() {
	if wc == nil {
		return
	}
	wc.mu.Lock()
	wc.warnings = wc.warnings[:0]
	wc.mu.Unlock()
}

// GetWarningsByType returns warnings grouped by type
func (wc *WarningCollector) GetWarningsByType() map[WarningType][]Warning {
	grouped := make(map[WarningType][]Warning)
	if wc == nil {
		return grouped
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	for _, warning := range wc.warnings {
		grouped[warning.Type] = append(grouped[warning.Type], warning)
	}
	return grouped
}

// PrintSummary prints a formatted summary of all warnings
func (wc *WarningCollector) PrintSummary() {
	if !wc.HasWarnings() {
		return
	}

	grouped := wc.GetWarningsByType()
	ColorWarning.Printf("\n⚠️  Warning Summary (%d warnings):\n", wc.GetWarningCount())
	ColorWarning.Println(strings.Repeat("─", 50))

	// Sort warning types for consistent output
	var types []WarningType
	for warningType := range grouped {
		types = append(types, warningType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, warningType := range types {
		wc.printWarningTypeSection(warningType, grouped[warningType])
	}
}

// printWarningTypeSection prints warnings for a specific type
func (wc *WarningCollector) printWarningTypeSection(warningType WarningType, warnings []Warning) {
	if len(warnings) == 0 {
		return
	}

	ColorWarning.Printf("\n%s (%d):\n", wc.getWarningTypeTitle(warningType), len(warnings))

	// Group similar warnings to avoid repetition
	contextCounts := make(map[string]int)
	for _, warning := range warnings {
		contextCounts[warning.Context]++
	}

	var contexts []string
	for context := range contextCounts {
		contexts = append(contexts, context)
	}
	sort.Strings(contexts)

	for _, context := range contexts {
		count := contextCounts[context]
		if count > 1 {
			ColorWarning.Printf("  • %s (×%d)\n", context, count)
		} else {
			ColorWarning.Printf("  • %s\n", context)
		}
	}
}

// getWarningTypeTitle returns a human-readable title for a warning type
func (wc *WarningCollector) getWarningTypeTitle(warningType WarningType) string {
	switch warningType {
	case AlbumYearWarning:
		return "Album Year Lookup Failures"
	case StrategyWarning:
		return "Search Strategy Failures"
	case SeedArtistWarning:
		return "Seed Artist Failures"
	case MostLovedWarning:
		return "Most Loved Endpoint Failures"
	default:
		return "Other Warnings"
	}
}
