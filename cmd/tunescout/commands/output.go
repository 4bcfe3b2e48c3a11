package commands

import (
	"fmt"
	"io"

	"tunescout/internal/shared"
)

func printTracks(w io.Writer, tracks []shared.Track) {
	if len(tracks) == 0 {
		shared.ColorWarning.Fprintln(w, "No results found.")
		return
	}

	shared.ColorInfo.Fprintf(w, "Found %d tracks:\n", len(tracks))
	for i, t := range tracks {
		fmt.Fprintf(w, "%2d. %s - %s", i+1, shared.TruncateString(t.Name, 48), shared.TruncateString(t.Artist, 32))
		if t.Year != "" {
			shared.ColorMuted.Fprintf(w, " (%s)", t.Year)
		}
		if t.Genre != "" {
			shared.ColorMuted.Fprintf(w, " [%s]", t.Genre)
		}
		shared.ColorMuted.Fprintf(w, "  id:%s\n", t.ID)
	}
}

func printPlaylist(w io.Writer, p shared.Playlist) {
	shared.ColorInfo.Fprintf(w, "%s", p.Name)
	shared.ColorMuted.Fprintf(w, "  id:%s  %d tracks\n", p.ID, len(p.Tracks))
	for i, t := range p.Tracks {
		fmt.Fprintf(w, "   %d. %s - %s\n", i+1, t.Name, t.Artist)
	}
}

func printFacets(w io.Writer, facets shared.Facets) {
	if len(facets.Genres) > 0 {
		shared.ColorMuted.Fprintf(w, "Genres: %v\n", facets.Genres)
	}
	if len(facets.Years) > 0 {
		shared.ColorMuted.Fprintf(w, "Years: %v\n", facets.Years)
	}
}
