package catalog

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunescout/internal/shared"
)

func TestMapTracksDefaults(t *testing.T) {
	tests := []struct {
		name   string
		record shared.Record
		want   shared.Track
	}{
		{
			name:   "track fields",
			record: shared.Record{"idTrack": "1", "strTrack": "Song", "strArtist": "Band", "strGenre": "Rock", "intYearReleased": "1980"},
			want:   shared.Track{ID: "1", Name: "Song", Artist: "Band", Genre: "Rock", Year: "1980"},
		},
		{
			name:   "album fallbacks",
			record: shared.Record{"idAlbum": "A", "strAlbum": "Record", "strStyle": "Jazz", "intYear": float64(1975)},
			want:   shared.Track{ID: "A", Name: "Record", Artist: "—", Genre: "Jazz", Year: "1975"},
		},
		{
			name:   "artist id and alternate title",
			record: shared.Record{"idArtist": "R", "strTrackAlternate": "Alt", "strTrack": nil},
			want:   shared.Track{ID: "R", Name: "Alt", Artist: "—"},
		},
		{
			name:   "empty strings are absent",
			record: shared.Record{"idTrack": "", "idAlbum": "A", "strTrack": "", "strArtist": "", "intYearReleased": "", "intYear": "2001"},
			want:   shared.Track{ID: "A", Name: "Unknown", Artist: "—", Year: "2001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTracks([]shared.Record{tt.record})
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestMapTracksRandomID(t *testing.T) {
	got := MapTracks([]shared.Record{{}})
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].Name)
	assert.Equal(t, "—", got[0].Artist)
	_, err := uuid.Parse(got[0].ID)
	assert.NoError(t, err)
}

func TestMapTracksNilIsEmpty(t *testing.T) {
	assert.Empty(t, MapTracks(nil))
}

func TestMapTracksTruncates(t *testing.T) {
	var records []shared.Record
	for i := 0; i < 25; i++ {
		records = append(records, shared.Record{"idTrack": fmt.Sprint(i)})
	}
	got := MapTracks(records)
	require.Len(t, got, 10)
	assert.Equal(t, "0", got[0].ID)
	assert.Equal(t, "9", got[9].ID)
}

func TestDedupeByIDKeepsFirstPositionLastValue(t *testing.T) {
	in := []shared.Track{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "b"},
		{ID: "a", Name: "second"},
		{ID: "c", Name: "c"},
	}
	got := DedupeByID(in)
	require.Len(t, got, 3)
	assert.Equal(t, shared.Track{ID: "a", Name: "second"}, got[0])
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestCap(t *testing.T) {
	tracks := make([]shared.Track, 12)
	assert.Len(t, Cap(tracks), 10)
	assert.Len(t, Cap(tracks[:3]), 3)
}
