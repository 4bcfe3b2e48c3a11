package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

// fallbackArtists seed the most loved list when the curated endpoint fails
var fallbackArtists = [...]string{"Queen", "Adele", "Coldplay", "Michael Jackson", "Taylor Swift"}

// Catalog composes raw provider calls into mapped track lists
type Catalog struct {
	api         interfaces.APIClient
	enricher    *Enricher
	logger      interfaces.LoggerService
	warnings    interfaces.WarningCollectorService
	parallelism int64
}

// New creates a catalog over a raw provider client
func New(api interfaces.APIClient, logger interfaces.LoggerService, warnings interfaces.WarningCollectorService, parallelism int) *Catalog {
	if parallelism <= 0 {
		parallelism = 5
	}
	return &Catalog{
		api:         api,
		enricher:    NewEnricher(api, logger, warnings, parallelism),
		logger:      logger,
		warnings:    warnings,
		parallelism: int64(parallelism),
	}
}

// SearchArtists returns raw artist records matching name
func (c *Catalog) SearchArtists(ctx context.Context, name string) ([]shared.Record, error) {
	return c.api.SearchArtists(ctx, name)
}

// TopTracksByArtist returns the enriched, mapped top tracks of an artist
func (c *Catalog) TopTracksByArtist(ctx context.Context, artist string) ([]shared.Track, error) {
	records, err := c.api.TopTracks(ctx, artist)
	if err != nil {
		return nil, err
	}
	return c.finish(ctx, records), nil
}

// SearchTrackByArtistAndTitle runs a search scoped by artist and title
func (c *Catalog) SearchTrackByArtistAndTitle(ctx context.Context, artist, title string) ([]shared.Track, error) {
	records, err := c.api.SearchTrack(ctx, artist, title)
	if err != nil {
		return nil, err
	}
	return c.finish(ctx, records), nil
}

// MostLovedTracks returns the curated most loved tracks.
// When the curated endpoint fails, the fallback artists' top tracks are merged instead.
func (c *Catalog) MostLovedTracks(ctx context.Context) []shared.Track {
	records, err := c.api.MostLoved(ctx)
	if err == nil {
		return c.finish(ctx, records)
	}

	c.logger.Warning("Most loved tracks unavailable, using fallback artists: %v", err)
	c.warnings.AddMostLovedWarning(err.Error())
	return c.fallbackMostLoved(ctx)
}

func (c *Catalog) fallbackMostLoved(ctx context.Context) []shared.Track {
	results := make([][]shared.Track, len(fallbackArtists))
	sem := semaphore.NewWeighted(c.parallelism)
	var wg sync.WaitGroup

	for i, artist := range fallbackArtists {
		wg.Add(1)
		go func(slot int, artist string) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				c.warnings.AddSeedArtistWarning(artist, err.Error())
				return
			}
			defer sem.Release(1)

			tracks, err := c.TopTracksByArtist(ctx, artist)
			if err != nil {
				c.logger.Debug("fallback artist %s failed: %v", artist, err)
				c.warnings.AddSeedArtistWarning(artist, err.Error())
				return
			}
			results[slot] = tracks
		}(i, artist)
	}
	wg.Wait()

	var merged []shared.Track
	for _, tracks := range results {
		merged = append(merged, tracks...)
	}
	return Cap(DedupeByID(merged))
}

// finish enriches raw records with album years, maps them and drops repeated ids
func (c *Catalog) finish(ctx context.Context, records []shared.Record) []shared.Track {
	return Cap(DedupeByID(MapTracks(c.enricher.EnrichYearFromAlbum(ctx, records))))
}
