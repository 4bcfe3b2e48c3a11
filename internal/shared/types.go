package shared

import (
	"time"
)

// MaxTracks caps every track list handed back to callers
const MaxTracks = 10

// Music data structures
type Track struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Genre  string `json:"genre,omitempty"`
	Year   string `json:"year,omitempty"` // Release year, possibly backfilled from the album
}

// Query is a structured track search request
type Query struct {
	Title       string       `json:"title,omitempty"`
	Artist      string       `json:"artist,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	Year        string       `json:"year,omitempty"` // Prefix match against Track.Year
	Popular     bool         `json:"popular,omitempty"`
	PopularArgs *PopularArgs `json:"popularArgs,omitempty"`
}

// PopularArgs tunes the simulated popularity sampling
type PopularArgs struct {
	Size      int    `json:"size,omitempty"`
	PerArtist int    `json:"perArtist,omitempty"`
	GenreBias string `json:"genreBias,omitempty"`
}

// Playlist is a named bucket of tracks owned by a user
type Playlist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	UserID string  `json:"userId"`
	Tracks []Track `json:"tracks"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionUser is the persisted form of the logged in user
type SessionUser struct {
	User
	LastLogin time.Time `json:"lastLogin"`
}

// Facets lists the distinct genres and years present in a result set
type Facets struct {
	Genres []string `json:"genres"`
	Years  []string `json:"years"`
}
