package library

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tunescout/internal/interfaces"
	"tunescout/internal/shared"
)

// PlaylistService keeps each user's playlists as one JSON document in the store.
// Writes are read-modify-write of that document, so mu serializes them.
type PlaylistService struct {
	store interfaces.Store
	mu    sync.Mutex
}

func NewPlaylistService(store interfaces.Store) *PlaylistService {
	return &PlaylistService{store: store}
}

func playlistsKey(userID string) string {
	return "playlists:" + userID
}

// List returns the user's playlists, empty when none were saved
func (p *PlaylistService) List(ctx context.Context, userID string) ([]shared.Playlist, error) {
	data, ok, err := p.store.Get(ctx, playlistsKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []shared.Playlist{}, nil
	}
	var playlists []shared.Playlist
	if err := json.Unmarshal(data, &playlists); err != nil {
		return nil, fmt.Errorf("corrupt playlists for %s: %w", userID, err)
	}
	if playlists == nil {
		playlists = []shared.Playlist{}
	}
	return playlists, nil
}

func (p *PlaylistService) save(ctx context.Context, userID string, playlists []shared.Playlist) error {
	data, err := json.Marshal(playlists)
	if err != nil {
		return fmt.Errorf("failed to encode playlists: %w", err)
	}
	return p.store.Set(ctx, playlistsKey(userID), data)
}

// Create appends a new empty playlist
func (p *PlaylistService) Create(ctx context.Context, userID, name string) (*shared.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrEmptyPlaylistName
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	playlists, err := p.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	created := shared.Playlist{
		ID:     uuid.NewString(),
		Name:   name,
		UserID: userID,
		Tracks: []shared.Track{},
	}
	playlists = append(playlists, created)
	if err := p.save(ctx, userID, playlists); err != nil {
		return nil, err
	}
	return &created, nil
}

func (p *PlaylistService) Rename(ctx context.Context, userID, playlistID, name string) (*shared.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrEmptyPlaylistName
	}
	return p.update(ctx, userID, playlistID, func(pl *shared.Playlist) {
		pl.Name = name
	})
}

func (p *PlaylistService) Delete(ctx context.Context, userID, playlistID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	playlists, err := p.List(ctx, userID)
	if err != nil {
		return err
	}
	i := indexOf(playlists, playlistID)
	if i < 0 {
		return shared.ErrPlaylistNotFound
	}
	playlists = append(playlists[:i], playlists[i+1:]...)
	return p.save(ctx, userID, playlists)
}

// AddTrack appends a track unless a track with the same id is already there
func (p *PlaylistService) AddTrack(ctx context.Context, userID, playlistID string, track shared.Track) (*shared.Playlist, error) {
	return p.update(ctx, userID, playlistID, func(pl *shared.Playlist) {
		for _, t := range pl.Tracks {
			if t.ID == track.ID {
				return
			}
		}
		pl.Tracks = append(pl.Tracks, track)
	})
}

func (p *PlaylistService) RemoveTrack(ctx context.Context, userID, playlistID, trackID string) (*shared.Playlist, error) {
	return p.update(ctx, userID, playlistID, func(pl *shared.Playlist) {
		kept := make([]shared.Track, 0, len(pl.Tracks))
		for _, t := range pl.Tracks {
			if t.ID != trackID {
				kept = append(kept, t)
			}
		}
		pl.Tracks = kept
	})
}

func (p *PlaylistService) update(ctx context.Context, userID, playlistID string, mutate func(*shared.Playlist)) (*shared.Playlist, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	playlists, err := p.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	i := indexOf(playlists, playlistID)
	if i < 0 {
		return nil, shared.ErrPlaylistNotFound
	}
	mutate(&playlists[i])
	if err := p.save(ctx, userID, playlists); err != nil {
		return nil, err
	}
	updated := playlists[i]
	return &updated, nil
}

func indexOf(playlists []shared.Playlist, id string) int {
	for i, pl := range playlists {
		if pl.ID == id {
			return i
		}
	}
	return -1
}
