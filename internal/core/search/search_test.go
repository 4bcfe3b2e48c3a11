package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunescout/internal/shared"
)

type fakeSource struct {
	calls []string

	scoped    func(artist, title string) ([]shared.Track, error)
	titleOnly func(text string) ([]shared.Track, error)
	mostLoved []shared.Track
}

func (f *fakeSource) TopTracksByArtist(context.Context, string) ([]shared.Track, error) {
	f.calls = append(f.calls, "top")
	return nil, nil
}

func (f *fakeSource) SearchTrackByArtistAndTitle(_ context.Context, artist, title string) ([]shared.Track, error) {
	f.calls = append(f.calls, "scoped:"+artist+"/"+title)
	if f.scoped == nil {
		return nil, nil
	}
	return f.scoped(artist, title)
}

func (f *fakeSource) SearchTracksByTitleOnly(_ context.Context, text string) ([]shared.Track, error) {
	f.calls = append(f.calls, "titleOnly:"+text)
	if f.titleOnly == nil {
		return nil, nil
	}
	return f.titleOnly(text)
}

func (f *fakeSource) MostLovedTracks(context.Context) []shared.Track {
	f.calls = append(f.calls, "mostLoved")
	return f.mostLoved
}

type fakeSampler struct {
	args   []shared.PopularArgs
	tracks []shared.Track
}

func (f *fakeSampler) PopularSample(_ context.Context, args shared.PopularArgs) []shared.Track {
	f.args = append(f.args, args)
	return f.tracks
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Warning(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{})   {}
func (nopLogger) Debug(string, ...interface{})   {}
func (nopLogger) Success(string, ...interface{}) {}
func (nopLogger) SetDebugMode(bool)              {}

var sample = []shared.Track{
	{ID: "1", Name: "One", Artist: "A", Genre: "Hard Rock", Year: "1984"},
	{ID: "2", Name: "Two", Artist: "B", Genre: "Pop", Year: "1990"},
	{ID: "3", Name: "Three", Artist: "C", Genre: "rock and roll"},
	{ID: "4", Name: "Four", Artist: "D", Year: "1989"},
}

func TestSearchTracksRouting(t *testing.T) {
	tests := []struct {
		name  string
		query shared.Query
		want  []string
	}{
		{"artist and title", shared.Query{Artist: " Queen ", Title: " Bohemian Rhapsody "}, []string{"scoped:Queen/Bohemian Rhapsody"}},
		{"artist only", shared.Query{Artist: "Coldplay"}, []string{"titleOnly:Coldplay"}},
		{"title only", shared.Query{Title: "Yesterday"}, []string{"titleOnly:Yesterday"}},
		{"blank", shared.Query{Artist: "  ", Title: "\t"}, nil},
		{"popular wins", shared.Query{Popular: true, Artist: "Queen"}, []string{"mostLoved"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{}
			svc := NewService(source, &fakeSampler{}, nopLogger{})

			tracks, err := svc.SearchTracks(context.Background(), tt.query)
			require.NoError(t, err)
			assert.NotNil(t, tracks)
			assert.Equal(t, tt.want, source.calls)
		})
	}
}

func TestSearchTracksPopularUsesMostLoved(t *testing.T) {
	source := &fakeSource{mostLoved: sample}
	sampler := &fakeSampler{}
	svc := NewService(source, sampler, nopLogger{})

	tracks, err := svc.SearchTracks(context.Background(), shared.Query{Popular: true})
	require.NoError(t, err)
	assert.Len(t, tracks, 4)
	assert.Empty(t, sampler.args)
}

func TestSearchTracksPopularFallsBackToSampler(t *testing.T) {
	sampler := &fakeSampler{tracks: sample[:2]}
	svc := NewService(&fakeSource{}, sampler, nopLogger{})

	tracks, err := svc.SearchTracks(context.Background(), shared.Query{Popular: true})
	require.NoError(t, err)
	assert.Len(t, tracks, 2)
	require.Len(t, sampler.args, 1)
	assert.Equal(t, shared.PopularArgs{Size: 6, PerArtist: 2}, sampler.args[0])

	args := &shared.PopularArgs{Size: 3, PerArtist: 1, GenreBias: "jazz"}
	_, err = svc.SearchTracks(context.Background(), shared.Query{Popular: true, PopularArgs: args})
	require.NoError(t, err)
	assert.Equal(t, *args, sampler.args[1])
}

func TestSearchTracksFilters(t *testing.T) {
	source := &fakeSource{titleOnly: func(string) ([]shared.Track, error) { return sample, nil }}
	svc := NewService(source, &fakeSampler{}, nopLogger{})
	ctx := context.Background()

	tracks, err := svc.SearchTracks(ctx, shared.Query{Title: "x", Genre: " ROCK "})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(tracks))

	tracks, err = svc.SearchTracks(ctx, shared.Query{Title: "x", Year: "198"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, ids(tracks))

	tracks, err = svc.SearchTracks(ctx, shared.Query{Title: "x", Genre: "rock", Year: "1984"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(tracks))
}

func TestSearchTracksFiltersApplyToPopular(t *testing.T) {
	svc := NewService(&fakeSource{mostLoved: sample}, &fakeSampler{}, nopLogger{})

	tracks, err := svc.SearchTracks(context.Background(), shared.Query{Popular: true, Genre: "pop"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(tracks))
}

func TestSearchTracksWrapsErrors(t *testing.T) {
	boom := errors.New("boom")
	source := &fakeSource{scoped: func(string, string) ([]shared.Track, error) { return nil, boom }}
	svc := NewService(source, &fakeSampler{}, nopLogger{})

	_, err := svc.SearchTracks(context.Background(), shared.Query{Artist: "Queen", Title: "Song"})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrSearchFailed)
	assert.ErrorIs(t, err, boom)
}

func TestFacets(t *testing.T) {
	facets := Facets(append(sample, shared.Track{ID: "5", Genre: "Pop", Year: "1984"}))
	assert.Equal(t, []string{"Hard Rock", "Pop", "rock and roll"}, facets.Genres)
	assert.Equal(t, []string{"1984", "1989", "1990"}, facets.Years)

	empty := Facets(nil)
	assert.Empty(t, empty.Genres)
	assert.Empty(t, empty.Years)
}

func ids(tracks []shared.Track) []string {
	out := make([]string, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, t.ID)
	}
	return out
}
