package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tunescout/internal/shared"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.json")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSearchCommandJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/searchtrack.php" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"track":[{"idTrack":"1","strTrack":"Yellow","strArtist":"Coldplay","strGenre":"Rock","intYearReleased":2000}]}`))
	}))
	defer srv.Close()

	out, err := runCLI(t, "search", "--base-url", srv.URL, "--db", "", "--json", "Yellow")
	require.NoError(t, err)

	var resp struct {
		Tracks []shared.Track `json:"tracks"`
		Facets shared.Facets  `json:"facets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Tracks, 1)
	assert.Equal(t, "2000", resp.Tracks[0].Year)
	assert.Equal(t, []string{"Rock"}, resp.Facets.Genres)
}

func TestSearchCommandFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := runCLI(t, "search", "--base-url", srv.URL, "--db", "", "--json", "--artist", "Queen", "--title", "Song")
	assert.ErrorIs(t, err, shared.ErrSearchFailed)
}

func TestPlaylistCommandRequiresLogin(t *testing.T) {
	_, err := runCLI(t, "--db", "", "playlist", "list")
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
}

func TestLoginAndPlaylistFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tunescout.db")

	_, err := runCLI(t, "--db", db, "login", "--email", "listener@tunescout.local", "--password", "tunescout")
	require.NoError(t, err)

	_, err = runCLI(t, "--db", db, "playlist", "create", "Mix")
	require.NoError(t, err)

	_, err = runCLI(t, "--db", db, "playlist", "delete", "does-not-exist")
	assert.ErrorIs(t, err, shared.ErrPlaylistNotFound)

	_, err = runCLI(t, "--db", db, "logout")
	require.NoError(t, err)

	_, err = runCLI(t, "--db", db, "whoami")
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
}
