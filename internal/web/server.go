package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tunescout/internal/interfaces"
	"tunescout/internal/services"
)

const (
	searchTimeout   = 30 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server exposes search, session and playlist operations as a JSON API
type Server struct {
	search    interfaces.SearchService
	results   *services.ResultState
	sessions  interfaces.SessionService
	playlists interfaces.PlaylistService
	logger    interfaces.LoggerService
}

// NewServer creates a server over the container's services
func NewServer(container *services.ServiceContainer) *Server {
	return &Server{
		search:    container.SearchService,
		results:   container.Results,
		sessions:  container.Sessions,
		playlists: container.Playlists,
		logger:    container.Logger,
	}
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.logRequests)

	router.HandleFunc("/health", s.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks", s.SearchTracks).Methods(http.MethodGet)
	router.HandleFunc("/api/tracks/state", s.TrackState).Methods(http.MethodGet)

	router.HandleFunc("/api/session", s.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/session", s.CurrentSession).Methods(http.MethodGet)
	router.HandleFunc("/api/session", s.Logout).Methods(http.MethodDelete)

	playlists := router.PathPrefix("/api/playlists").Subrouter()
	playlists.Use(s.requireSession)
	playlists.HandleFunc("", s.ListPlaylists).Methods(http.MethodGet)
	playlists.HandleFunc("", s.CreatePlaylist).Methods(http.MethodPost)
	playlists.HandleFunc("/{id}", s.RenamePlaylist).Methods(http.MethodPatch)
	playlists.HandleFunc("/{id}", s.DeletePlaylist).Methods(http.MethodDelete)
	playlists.HandleFunc("/{id}/tracks", s.AddTrack).Methods(http.MethodPost)
	playlists.HandleFunc("/{id}/tracks/{trackID}", s.RemoveTrack).Methods(http.MethodDelete)

	return router
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("%s %s -> %d (%s)", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond))
	})
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
