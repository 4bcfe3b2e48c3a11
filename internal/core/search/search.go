package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tunescout/internal/core/catalog"
	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

// defaultPopularArgs is used when a popular query has no explicit sampling arguments
var defaultPopularArgs = shared.PopularArgs{Size: 6, PerArtist: 2}

// Service routes a structured query to the right catalog operation and filters the result
type Service struct {
	source  interfaces.TrackSource
	sampler interfaces.PopularSampler
	logger  interfaces.LoggerService
}

// NewService creates a search service
func NewService(source interfaces.TrackSource, sampler interfaces.PopularSampler, logger interfaces.LoggerService) *Service {
	return &Service{
		source:  source,
		sampler: sampler,
		logger:  logger,
	}
}

// SearchTracks resolves a query into at most ten unique tracks.
// Every error is reported as shared.ErrSearchFailed.
func (s *Service) SearchTracks(ctx context.Context, query shared.Query) ([]shared.Track, error) {
	tracks, err := s.route(ctx, query)
	if err != nil {
		s.logger.Error("Search failed: %v", err)
		return nil, fmt.Errorf("%w: %w", shared.ErrSearchFailed, err)
	}

	tracks = FilterGenre(tracks, query.Genre)
	tracks = FilterYear(tracks, query.Year)
	return catalog.Cap(catalog.DedupeByID(tracks)), nil
}

func (s *Service) route(ctx context.Context, query shared.Query) ([]shared.Track, error) {
	if query.Popular {
		return s.popular(ctx, query.PopularArgs), nil
	}

	artist := strings.TrimSpace(query.Artist)
	title := strings.TrimSpace(query.Title)

	switch {
	case artist != "" && title != "":
		s.logger.Debug("searching %q by %q", title, artist)
		return s.source.SearchTrackByArtistAndTitle(ctx, artist, title)
	case artist != "":
		return s.source.SearchTracksByTitleOnly(ctx, artist)
	case title != "":
		return s.source.SearchTracksByTitleOnly(ctx, title)
	default:
		return []shared.Track{}, nil
	}
}

func (s *Service) popular(ctx context.Context, args *shared.PopularArgs) []shared.Track {
	if loved := s.source.MostLovedTracks(ctx); len(loved) > 0 {
		return loved
	}
	sampleArgs := defaultPopularArgs
	if args != nil {
		sampleArgs = *args
	}
	s.logger.Debug("most loved list empty, sampling %d artists", sampleArgs.Size)
	return s.sampler.PopularSample(ctx, sampleArgs)
}

// FilterGenre keeps tracks whose genre contains genre, ignoring case. A blank genre keeps everything.
func FilterGenre(tracks []shared.Track, genre string) []shared.Track {
	genre = strings.ToLower(strings.TrimSpace(genre))
	if genre == "" {
		return tracks
	}
	out := make([]shared.Track, 0, len(tracks))
	for _, t := range tracks {
		if strings.Contains(strings.ToLower(t.Genre), genre) {
			out = append(out, t)
		}
	}
	return out
}

// FilterYear keeps tracks whose year starts with year. Tracks without a year are dropped.
func FilterYear(tracks []shared.Track, year string) []shared.Track {
	year = strings.TrimSpace(year)
	if year == "" {
		return tracks
	}
	out := make([]shared.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Year != "" && strings.HasPrefix(t.Year, year) {
			out = append(out, t)
		}
	}
	return out
}

// Facets returns the sorted distinct genres and years of a result list
func Facets(tracks []shared.Track) shared.Facets {
	genres := map[string]bool{}
	years := map[string]bool{}
	for _, t := range tracks {
		if t.Genre != "" {
			genres[t.Genre] = true
		}
		if t.Year != "" {
			years[t.Year] = true
		}
	}
	return shared.Facets{Genres: sortedKeys(genres), Years: sortedKeys(years)}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
