package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"tunescout/internal/shared"
)

type contextKey string

const userKey contextKey = "user"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type playlistRequest struct {
	Name string `json:"name"`
}

type sessionResponse struct {
	User *shared.SessionUser `json:"user"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInvalidEmail), errors.Is(err, shared.ErrPasswordTooShort):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, shared.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, err.Error())
		default:
			s.logger.Error("login failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithJSON(w, http.StatusOK, sessionResponse{User: user})
}

func (s *Server) CurrentSession(w http.ResponseWriter, r *http.Request) {
	user, err := s.sessions.Current(r.Context())
	if err != nil {
		s.logger.Error("session lookup failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondWithJSON(w, http.StatusOK, sessionResponse{User: user})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(r.Context()); err != nil {
		s.logger.Error("logout failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requireSession rejects requests without a logged in user
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.sessions.Current(r.Context())
		if err != nil {
			s.logger.Error("session lookup failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, shared.ErrNotAuthenticated.Error())
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func userID(r *http.Request) string {
	if user, ok := r.Context().Value(userKey).(*shared.SessionUser); ok {
		return user.ID
	}
	return ""
}

func (s *Server) ListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.playlists.List(r.Context(), userID(r))
	if err != nil {
		s.playlistError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, playlists)
}

func (s *Server) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req playlistRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	playlist, err := s.playlists.Create(r.Context(), userID(r), req.Name)
	if err != nil {
		s.playlistError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, playlist)
}

func (s *Server) RenamePlaylist(w http.ResponseWriter, r *http.Request) {
	var req playlistRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	playlist, err := s.playlists.Rename(r.Context(), userID(r), mux.Vars(r)["id"], req.Name)
	if err != nil {
		s.playlistError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, playlist)
}

func (s *Server) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := s.playlists.Delete(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
		s.playlistError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AddTrack(w http.ResponseWriter, r *http.Request) {
	var track shared.Track
	if err := decodeJSON(r, &track); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(track.ID) == "" {
		respondWithError(w, http.StatusBadRequest, "track id is required")
		return
	}
	playlist, err := s.playlists.AddTrack(r.Context(), userID(r), mux.Vars(r)["id"], track)
	if err != nil {
		s.playlistError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, playlist)
}

func (s *Server) RemoveTrack(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playlist, err := s.playlists.RemoveTrack(r.Context(), userID(r), vars["id"], vars["trackID"])
	if err != nil {
		s.playlistError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, playlist)
}

func (s *Server) playlistError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrPlaylistNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrEmptyPlaylistName):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("playlist operation failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
