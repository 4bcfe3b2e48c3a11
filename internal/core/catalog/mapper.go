package catalog

import (
	"github.com/google/uuid"

	"tunescout/internal/shared"
)

const (
	unknownName   = "Unknown"
	unknownArtist = "—"
)

// MapTracks normalizes raw provider records into tracks, keeping at most the first ten.
func MapTracks(records []shared.Record) []shared.Track {
	if len(records) > shared.MaxTracks {
		records = records[:shared.MaxTracks]
	}

	tracks := make([]shared.Track, 0, len(records))
	for _, r := range records {
		tracks = append(tracks, mapTrack(r))
	}
	return tracks
}

func mapTrack(r shared.Record) shared.Track {
	id, ok := r.First(shared.FieldTrackID, shared.FieldAlbumID, shared.FieldArtistID)
	if !ok {
		id = uuid.NewString()
	}
	name, ok := r.First(shared.FieldTrack, shared.FieldAlbum, shared.FieldTrackAlternate)
	if !ok {
		name = unknownName
	}
	artist, ok := r.First(shared.FieldArtist)
	if !ok {
		artist = unknownArtist
	}
	genre, _ := r.First(shared.FieldGenre, shared.FieldStyle)
	year, _ := r.First(shared.FieldYearReleased, shared.FieldYear)

	return shared.Track{
		ID:     id,
		Name:   name,
		Artist: artist,
		Genre:  genre,
		Year:   year,
	}
}

// DedupeByID drops repeated ids. A repeated id keeps its first position but takes the later value.
func DedupeByID(tracks []shared.Track) []shared.Track {
	index := make(map[string]int, len(tracks))
	result := make([]shared.Track, 0, len(tracks))
	for _, t := range tracks {
		if i, seen := index[t.ID]; seen {
			result[i] = t
			continue
		}
		index[t.ID] = len(result)
		result = append(result, t)
	}
	return result
}

// Cap truncates a list to the public maximum
func Cap(tracks []shared.Track) []shared.Track {
	if len(tracks) > shared.MaxTracks {
		return tracks[:shared.MaxTracks]
	}
	return tracks
}
