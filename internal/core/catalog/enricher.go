package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

// Enricher backfills missing release years from album lookups
type Enricher struct {
	api         interfaces.APIClient
	logger      interfaces.LoggerService
	warnings    interfaces.WarningCollectorService
	parallelism int
}

// NewEnricher creates an enricher issuing at most parallelism concurrent album lookups
func NewEnricher(api interfaces.APIClient, logger interfaces.LoggerService, warnings interfaces.WarningCollectorService, parallelism int) *Enricher {
	if parallelism <= 0 {
		parallelism = 5
	}
	return &Enricher{
		api:         api,
		logger:      logger,
		warnings:    warnings,
		parallelism: parallelism,
	}
}

// EnrichYearFromAlbum sets intYearReleased in place on records that lack it, one lookup per distinct album.
// A failed lookup only leaves its own records without a year.
func (e *Enricher) EnrichYearFromAlbum(ctx context.Context, records []shared.Record) []shared.Record {
	albumIDs := missingYearAlbums(records)
	if len(albumIDs) == 0 {
		return records
	}

	var (
		mu          sync.Mutex
		yearByAlbum = make(map[string]string, len(albumIDs))
	)

	g := new(errgroup.Group)
	g.SetLimit(e.parallelism)
	for _, albumID := range albumIDs {
		g.Go(func() error {
			year, err := e.api.AlbumYear(ctx, albumID)
			if err != nil {
				e.logger.Debug("album %s year lookup failed: %v", albumID, err)
				e.warnings.AddAlbumYearWarning(albumID, err.Error())
				return nil
			}
			mu.Lock()
			yearByAlbum[albumID] = year
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range records {
		if r.Has(shared.FieldYearReleased) {
			continue
		}
		albumID, ok := r.Get(shared.FieldAlbumID)
		if !ok {
			continue
		}
		if year := yearByAlbum[albumID]; year != "" {
			r.Set(shared.FieldYearReleased, year)
		}
	}
	return records
}

// missingYearAlbums returns the distinct album ids of records without a release year, in first-seen order
func missingYearAlbums(records []shared.Record) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range records {
		if r.Has(shared.FieldYearReleased) {
			continue
		}
		albumID, ok := r.Get(shared.FieldAlbumID)
		if !ok || seen[albumID] {
			continue
		}
		seen[albumID] = true
		ids = append(ids, albumID)
	}
	return ids
}
