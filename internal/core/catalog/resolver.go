package catalog

import (
	"context"
	"errors"
	"fmt"

	"tunescout/internal/shared"
)

const (
	strategyTitle       = "title search"
	strategyTopTracks   = "artist top tracks"
	strategyArtistMatch = "artist search"
)

// resolution tracks strategy outcomes so the caller can tell "nothing found" from "provider down"
type resolution struct {
	attempted int
	errs      []error
}

func (r *resolution) fail(err error) {
	r.errs = append(r.errs, err)
}

func (r *resolution) allFailed() bool {
	return r.attempted > 0 && len(r.errs) == r.attempted
}

// SearchTracksByTitleOnly resolves a free-form string that may be a title or an artist name.
// Strategies run in order and the first non-empty result wins:
// title search, top tracks of text as an artist, top tracks of the first artist matching text.
func (c *Catalog) SearchTracksByTitleOnly(ctx context.Context, text string) ([]shared.Track, error) {
	res := &resolution{}

	// 1. Title search
	res.attempted++
	records, err := c.api.SearchTrackByTitle(ctx, text)
	if err != nil {
		c.strategyFailed(res, strategyTitle, text, err)
	} else if len(records) > 0 {
		return c.finish(ctx, records), nil
	}

	// 2. Text as an artist name
	res.attempted++
	tracks, err := c.TopTracksByArtist(ctx, text)
	if err != nil {
		c.strategyFailed(res, strategyTopTracks, text, err)
	} else if len(tracks) > 0 {
		return tracks, nil
	}

	// 3. Closest artist match
	res.attempted++
	tracks, err = c.tracksOfMatchedArtist(ctx, text)
	if err != nil {
		c.strategyFailed(res, strategyArtistMatch, text, err)
	} else if len(tracks) > 0 {
		return tracks, nil
	}

	if res.allFailed() {
		return nil, fmt.Errorf("%w: %w", shared.ErrProviderUnavailable, errors.Join(res.errs...))
	}
	return []shared.Track{}, nil
}

func (c *Catalog) tracksOfMatchedArtist(ctx context.Context, text string) ([]shared.Track, error) {
	artists, err := c.api.SearchArtists(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(artists) == 0 {
		return nil, nil
	}
	name, ok := artists[0].Get(shared.FieldArtist)
	if !ok {
		return nil, nil
	}
	c.logger.Debug("resolved %q to artist %q", text, name)
	return c.TopTracksByArtist(ctx, name)
}

func (c *Catalog) strategyFailed(res *resolution, strategy, text string, err error) {
	res.fail(fmt.Errorf("%s: %w", strategy, err))
	c.logger.Warning("%s failed for %q: %v", strategy, text, err)
	c.warnings.AddStrategyWarning(strategy, text, err.Error())
}
