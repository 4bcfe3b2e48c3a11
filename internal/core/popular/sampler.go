package popular

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"tunescout/internal/core/catalog"
	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

const (
	DefaultSize      = 5
	DefaultPerArtist = 3
)

// seedArtists is the pool popular lists are drawn from. Shuffles work on a copy.
var seedArtists = [...]string{
	"Queen", "Adele", "Coldplay", "Michael Jackson", "Taylor Swift",
	"The Beatles", "Ed Sheeran", "Rihanna", "Bruno Mars", "Madonna",
	"Linkin Park", "Imagine Dragons", "Beyoncé", "Drake", "Shakira",
	"U2", "Katy Perry", "Eminem", "Maroon 5", "Elton John",
	"The Weeknd", "Lady Gaga", "Metallica", "Pink Floyd", "Nirvana",
}

// SeedArtists returns a copy of the sampling pool
func SeedArtists() []string {
	pool := seedArtists
	return pool[:]
}

// Sampler builds a popular list from the top tracks of randomly drawn artists
type Sampler struct {
	source      interfaces.TrackSource
	logger      interfaces.LoggerService
	warnings    interfaces.WarningCollectorService
	parallelism int64

	mu  sync.Mutex
	rng *rand.Rand

	// Progress, when set, is called once per drawn artist as its fetch settles
	Progress func()
}

// NewSampler creates a sampler. A zero seed draws one from crypto/rand.
func NewSampler(source interfaces.TrackSource, logger interfaces.LoggerService, warnings interfaces.WarningCollectorService, parallelism int, seed uint64) *Sampler {
	if parallelism <= 0 {
		parallelism = 5
	}
	if seed == 0 {
		seed = randomSeed()
	}
	return &Sampler{
		source:      source,
		logger:      logger,
		warnings:    warnings,
		parallelism: int64(parallelism),
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Draw shuffles a copy of the pool and returns its first size artists
func (s *Sampler) Draw(size int) []string {
	pool := SeedArtists()

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	if size > len(pool) {
		size = len(pool)
	}
	if size < 0 {
		size = 0
	}
	return pool[:size]
}

// PopularSample merges the first PerArtist top tracks of Size drawn artists.
// Artist failures only shrink the result.
func (s *Sampler) PopularSample(ctx context.Context, args shared.PopularArgs) []shared.Track {
	size := args.Size
	if size <= 0 {
		size = DefaultSize
	}
	perArtist := args.PerArtist
	if perArtist <= 0 {
		perArtist = DefaultPerArtist
	}

	artists := s.Draw(size)
	s.logger.Debug("sampling popular tracks from %s", strings.Join(artists, ", "))

	results := s.fetchAll(ctx, artists, perArtist)

	var merged []shared.Track
	for _, tracks := range results {
		merged = append(merged, tracks...)
	}
	merged = catalog.DedupeByID(merged)

	if bias := strings.TrimSpace(args.GenreBias); bias != "" {
		if biased := filterGenre(merged, bias); len(biased) >= shared.MaxTracks {
			merged = biased
		}
	}
	return catalog.Cap(merged)
}

// fetchAll downloads every artist concurrently and returns results in draw order
func (s *Sampler) fetchAll(ctx context.Context, artists []string, perArtist int) [][]shared.Track {
	results := make([][]shared.Track, len(artists))
	sem := semaphore.NewWeighted(s.parallelism)
	var wg sync.WaitGroup

	for i, artist := range artists {
		wg.Add(1)
		go func(slot int, artist string) {
			defer wg.Done()
			defer s.tick()

			if err := sem.Acquire(ctx, 1); err != nil {
				s.warnings.AddSeedArtistWarning(artist, err.Error())
				return
			}
			defer sem.Release(1)

			tracks, err := s.source.TopTracksByArtist(ctx, artist)
			if err != nil {
				s.logger.Warning("Skipping %s: %v", artist, err)
				s.warnings.AddSeedArtistWarning(artist, err.Error())
				return
			}
			if len(tracks) > perArtist {
				tracks = tracks[:perArtist]
			}
			results[slot] = tracks
		}(i, artist)
	}
	wg.Wait()
	return results
}

func (s *Sampler) tick() {
	if s.Progress != nil {
		s.Progress()
	}
}

func filterGenre(tracks []shared.Track, genre string) []shared.Track {
	needle := strings.ToLower(genre)
	var out []shared.Track
	for _, t := range tracks {
		if strings.Contains(strings.ToLower(t.Genre), needle) {
			out = append(out, t)
		}
	}
	return out
}
