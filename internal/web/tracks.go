package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"tunescout/internal/core/search"
	"tunescout/internal/shared"
)

type tracksResponse struct {
	Tracks []shared.Track `json:"tracks"`
	Facets shared.Facets  `json:"facets"`
}

// SearchTracks runs the query described by the URL parameters
func (s *Server) SearchTracks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
	defer cancel()

	query, err := parseQuery(r.URL.Query())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tracks, err := s.results.Run(ctx, s.search, query)
	if err != nil {
		if errors.Is(err, shared.ErrSearchFailed) {
			respondWithError(w, http.StatusBadGateway, shared.ErrSearchFailed.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, tracksResponse{Tracks: tracks, Facets: search.Facets(tracks)})
}

// TrackState reports the last search state
func (s *Server) TrackState(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.results.Snapshot())
}

func parseQuery(values url.Values) (shared.Query, error) {
	query := shared.Query{
		Title:  values.Get("title"),
		Artist: values.Get("artist"),
		Genre:  values.Get("genre"),
		Year:   values.Get("year"),
	}

	if raw := values.Get("popular"); raw != "" {
		popular, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errors.New("popular must be a boolean")
		}
		query.Popular = popular
	}

	args := shared.PopularArgs{GenreBias: values.Get("genreBias")}
	hasArgs := args.GenreBias != ""
	for name, dst := range map[string]*int{"size": &args.Size, "perArtist": &args.PerArtist} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return query, errors.New(name + " must be a positive integer")
		}
		*dst = n
		hasArgs = true
	}
	if hasArgs {
		query.PopularArgs = &args
	}
	return query, nil
}
