package interfaces

import (
	"context"

	"tunescout/internal/shared"
)

// APIClient defines the raw TheAudioDB operations. Results are unmapped provider records.
type APIClient interface {
	// SearchArtists looks artists up by name
	SearchArtists(ctx context.Context, name string) ([]shared.Record, error)

	// TopTracks returns up to ten top track records for an artist name
	TopTracks(ctx context.Context, artist string) ([]shared.Record, error)

	// SearchTrack searches tracks by artist and title
	SearchTrack(ctx context.Context, artist, title string) ([]shared.Record, error)

	// SearchTrackByTitle searches tracks by title only
	SearchTrackByTitle(ctx context.Context, title string) ([]shared.Record, error)

	// MostLoved returns the curated most loved track records
	MostLoved(ctx context.Context) ([]shared.Record, error)

	// AlbumYear resolves the release year of an album, "" when unknown
	AlbumYear(ctx context.Context, albumID string) (string, error)
}

// TrackSource is the composed, mapped track lookup used by the sampler and the facade
type TrackSource interface {
	// TopTracksByArtist returns the mapped, year-enriched top tracks of an artist
	TopTracksByArtist(ctx context.Context, artist string) ([]shared.Track, error)

	// SearchTrackByArtistAndTitle runs a scoped search
	SearchTrackByArtistAndTitle(ctx context.Context, artist, title string) ([]shared.Track, error)

	// SearchTracksByTitleOnly resolves an ambiguous free-form string through the fallback chain
	SearchTracksByTitleOnly(ctx context.Context, text string) ([]shared.Track, error)

	// MostLovedTracks returns curated popular tracks, falling back to seed artists
	MostLovedTracks(ctx context.Context) []shared.Track
}

// PopularSampler composes a synthetic popular tracks list
type PopularSampler interface {
	PopularSample(ctx context.Context, args shared.PopularArgs) []shared.Track
}

// SearchService defines the interface for search operations
type SearchService interface {
	// SearchTracks runs a structured query and returns a filtered, deduplicated list
	SearchTracks(ctx context.Context, query shared.Query) ([]shared.Track, error)
}

// Store is a key-value persistence collaborator
type Store interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases resources
	Close() error
}

// PlaylistService manages the playlists of a user
type PlaylistService interface {
	List(ctx context.Context, userID string) ([]shared.Playlist, error)
	Create(ctx context.Context, userID, name string) (*shared.Playlist, error)
	Rename(ctx context.Context, userID, playlistID, name string) (*shared.Playlist, error)
	Delete(ctx context.Context, userID, playlistID string) error
	AddTrack(ctx context.Context, userID, playlistID string, track shared.Track) (*shared.Playlist, error)
	RemoveTrack(ctx context.Context, userID, playlistID, trackID string) (*shared.Playlist, error)
}

// SessionService defines the static credential gate and the current session user
type SessionService interface {
	Login(ctx context.Context, email, password string) (*shared.SessionUser, error)
	Current(ctx context.Context) (*shared.SessionUser, error)
	Logout(ctx context.Context) error
}

// LoggerService defines the interface for logging operations
type LoggerService interface {
	// Info logs an informational message
	Info(message string, args ...interface{})

	// Warning logs a warning message
	Warning(message string, args ...interface{})

	// Error logs an error message
	Error(message string, args ...interface{})

	// Debug logs a debug message
	Debug(message string, args ...interface{})

	// Success logs a success message
	Success(message string, args ...interface{})

	// SetDebugMode enables or disables debug logging
	SetDebugMode(enabled bool)
}

// WarningCollectorService defines the interface for warning collection
type WarningCollectorService interface {
	AddAlbumYearWarning(albumID, details string)
	AddStrategyWarning(strategy, query, details string)
	AddSeedArtistWarning(artist, details string)
	AddMostLovedWarning(details string)

	// HasWarnings returns true if there are any warnings
	HasWarnings() bool

	// GetWarningCount returns the total number of warnings
	GetWarningCount() int

	// PrintSummary prints a formatted summary of all warnings
	PrintSummary()
}
