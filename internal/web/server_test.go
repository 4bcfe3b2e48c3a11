package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunescout/internal/config"
	"tunescout/internal/services"
	"tunescout/internal/shared"
	"tunescout/internal/storage"
)

// stubAPI answers every provider call from canned records
type stubAPI struct {
	track []shared.Record
	err   error
}

func (s *stubAPI) SearchArtists(context.Context, string) ([]shared.Record, error) {
	return nil, s.err
}

func (s *stubAPI) TopTracks(context.Context, string) ([]shared.Record, error) {
	return s.track, s.err
}

func (s *stubAPI) SearchTrack(context.Context, string, string) ([]shared.Record, error) {
	return s.track, s.err
}

func (s *stubAPI) SearchTrackByTitle(context.Context, string) ([]shared.Record, error) {
	return s.track, s.err
}

func (s *stubAPI) MostLoved(context.Context) ([]shared.Record, error) {
	return s.track, s.err
}

func (s *stubAPI) AlbumYear(context.Context, string) (string, error) {
	return "", s.err
}

func newTestServer(t *testing.T, api *stubAPI) (*Server, http.Handler) {
	t.Helper()
	cfg := config.DefaultConfig()
	container, err := services.NewServiceContainer(cfg, services.Options{
		Logger:    services.NewHclogLogger("test", &bytes.Buffer{}, false),
		APIClient: api,
		Store:     storage.NewMemoryStore(),
		Seed:      1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Close() })

	srv := NewServer(container)
	return srv, srv.Router()
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler) {
	t.Helper()
	creds := config.DefaultConfig().Credentials
	rec := do(t, h, http.MethodPost, "/api/session", loginRequest{Email: creds.Email, Password: creds.Password})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t, &stubAPI{})
	rec := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearchTracksEndpoint(t *testing.T) {
	api := &stubAPI{track: []shared.Record{
		{"idTrack": "1", "strTrack": "Yellow", "strArtist": "Coldplay", "strGenre": "Rock", "intYearReleased": "2000"},
		{"idTrack": "2", "strTrack": "Clocks", "strArtist": "Coldplay", "strGenre": "Pop", "intYearReleased": "2002"},
	}}
	_, h := newTestServer(t, api)

	rec := do(t, h, http.MethodGet, "/api/tracks?artist=Coldplay&title=Yellow", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tracksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Tracks, 2)
	assert.Equal(t, []string{"Pop", "Rock"}, resp.Facets.Genres)
	assert.Equal(t, []string{"2000", "2002"}, resp.Facets.Years)

	rec = do(t, h, http.MethodGet, "/api/tracks?title=Yellow&year=2002", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tracks, 1)
	assert.Equal(t, "Clocks", resp.Tracks[0].Name)

	rec = do(t, h, http.MethodGet, "/api/tracks/state", nil)
	var state services.ResultSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.False(t, state.Loading)
	assert.Len(t, state.Items, 1)
}

func TestSearchTracksEndpointFailure(t *testing.T) {
	_, h := newTestServer(t, &stubAPI{err: errors.New("provider down")})

	rec := do(t, h, http.MethodGet, "/api/tracks?artist=Queen&title=Song", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"search error"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/tracks/state", nil)
	assert.Contains(t, rec.Body.String(), `"error":"search error"`)
}

func TestSearchTracksEndpointBadParams(t *testing.T) {
	_, h := newTestServer(t, &stubAPI{})

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/tracks?popular=maybe", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/api/tracks?popular=true&size=-1", nil).Code)
}

func TestParseQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tracks?popular=1&size=4&perArtist=2&genreBias=rock&genre=pop", nil)
	query, err := parseQuery(req.URL.Query())
	require.NoError(t, err)
	assert.True(t, query.Popular)
	assert.Equal(t, "pop", query.Genre)
	require.NotNil(t, query.PopularArgs)
	assert.Equal(t, shared.PopularArgs{Size: 4, PerArtist: 2, GenreBias: "rock"}, *query.PopularArgs)

	req = httptest.NewRequest(http.MethodGet, "/api/tracks?title=x", nil)
	query, err = parseQuery(req.URL.Query())
	require.NoError(t, err)
	assert.Nil(t, query.PopularArgs)
}

func TestSessionEndpoints(t *testing.T) {
	_, h := newTestServer(t, &stubAPI{})

	rec := do(t, h, http.MethodGet, "/api/session", nil)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/session", loginRequest{Email: "bad", Password: "whatever"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/session", loginRequest{Email: "me@example.com", Password: "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	login(t, h)
	rec = do(t, h, http.MethodGet, "/api/session", nil)
	assert.Contains(t, rec.Body.String(), `"id":"u1"`)

	rec = do(t, h, http.MethodDelete, "/api/session", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/session", nil)
	assert.JSONEq(t, `{"user":null}`, rec.Body.String())
}

func TestPlaylistEndpointsRequireSession(t *testing.T) {
	_, h := newTestServer(t, &stubAPI{})

	rec := do(t, h, http.MethodGet, "/api/playlists", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"not authenticated"}`, rec.Body.String())
}

func TestPlaylistEndpoints(t *testing.T) {
	_, h := newTestServer(t, &stubAPI{})
	login(t, h)

	rec := do(t, h, http.MethodPost, "/api/playlists", playlistRequest{Name: "Focus"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created shared.Playlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "u1", created.UserID)

	rec = do(t, h, http.MethodPost, "/api/playlists", playlistRequest{Name: " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/api/playlists/"+created.ID, playlistRequest{Name: "Deep Focus"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Deep Focus")

	rec = do(t, h, http.MethodPost, "/api/playlists/"+created.ID+"/tracks", shared.Track{ID: "t1", Name: "Song", Artist: "Band"})
	require.Equal(t, http.StatusOK, rec.Code)
	var withTrack shared.Playlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withTrack))
	assert.Len(t, withTrack.Tracks, 1)

	rec = do(t, h, http.MethodPost, "/api/playlists/"+created.ID+"/tracks", shared.Track{Name: "No id"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/playlists/"+created.ID+"/tracks/t1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracks":[]`)

	rec = do(t, h, http.MethodGet, "/api/playlists", nil)
	var list []shared.Playlist
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(t, h, http.MethodDelete, "/api/playlists/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/playlists/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
