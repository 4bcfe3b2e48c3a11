package commands

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"tunescout/internal/core/search"
	"tunescout/internal/services"
	"tunescout/internal/shared"
)

// NewSearchCommand creates the track search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search tracks by title and/or artist.",
		Long: `Search tracks by title and/or artist.

A positional argument is treated as a title that may also be an artist name.
With both --artist and --title the search is scoped to that artist.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearchCommand,
	}

	cmd.Flags().String("title", "", "Track title")
	cmd.Flags().String("artist", "", "Artist name")
	cmd.Flags().String("genre", "", "Keep tracks whose genre contains this text")
	cmd.Flags().String("year", "", "Keep tracks whose release year starts with this text")
	cmd.Flags().Bool("json", false, "Print results as JSON")

	return cmd
}

func runSearchCommand(cmd *cobra.Command, args []string) error {
	_, container, err := initConfigAndServices(cmd, services.Options{})
	if err != nil {
		return err
	}
	defer container.Close()

	query := shared.Query{}
	query.Title, _ = cmd.Flags().GetString("title")
	query.Artist, _ = cmd.Flags().GetString("artist")
	query.Genre, _ = cmd.Flags().GetString("genre")
	query.Year, _ = cmd.Flags().GetString("year")
	if len(args) == 1 && query.Title == "" {
		query.Title = args[0]
	}

	return runQuery(cmd, container, query)
}

// runQuery executes a query, prints it and the warning summary
func runQuery(cmd *cobra.Command, container *services.ServiceContainer, query shared.Query) error {
	tracks, err := container.SearchService.SearchTracks(cmd.Context(), query)
	if err != nil {
		if errors.Is(err, shared.ErrSearchFailed) {
			container.Logger.Debug("search failed: %v", err)
			return shared.ErrSearchFailed
		}
		return err
	}
	return renderTracks(cmd, container, tracks)
}

// renderTracks prints tracks as a table or JSON, followed by collected warnings
func renderTracks(cmd *cobra.Command, container *services.ServiceContainer, tracks []shared.Track) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{"tracks": tracks, "facets": search.Facets(tracks)})
	}

	printTracks(out, tracks)
	printFacets(out, search.Facets(tracks))
	if container.WarningCollector.HasWarnings() {
		container.WarningCollector.PrintSummary()
	}
	return nil
}
