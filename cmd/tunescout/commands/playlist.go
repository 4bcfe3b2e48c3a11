package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunescout/internal/services"
	"tunescout/internal/shared"
)

// NewPlaylistCommand creates the playlist command group
func NewPlaylistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playlist",
		Short: "Manage local playlists (requires login).",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List playlists.",
		Args:  cobra.NoArgs,
		RunE: withPlaylists(func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error {
			playlists, err := c.Playlists.List(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if len(playlists) == 0 {
				shared.ColorWarning.Fprintln(cmd.OutOrStdout(), "No playlists yet.")
				return nil
			}
			for _, p := range playlists {
				printPlaylist(cmd.OutOrStdout(), p)
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create a playlist.",
		Args:  cobra.ExactArgs(1),
		RunE: withPlaylists(func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error {
			p, err := c.Playlists.Create(cmd.Context(), userID, args[0])
			if err != nil {
				return err
			}
			c.Logger.Success("Created playlist %s (%s)", p.Name, p.ID)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename [playlist_id] [name]",
		Short: "Rename a playlist.",
		Args:  cobra.ExactArgs(2),
		RunE: withPlaylists(func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error {
			p, err := c.Playlists.Rename(cmd.Context(), userID, args[0], args[1])
			if err != nil {
				return err
			}
			c.Logger.Success("Renamed playlist to %s", p.Name)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [playlist_id]",
		Short: "Delete a playlist.",
		Args:  cobra.ExactArgs(1),
		RunE: withPlaylists(func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error {
			if err := c.Playlists.Delete(cmd.Context(), userID, args[0]); err != nil {
				return err
			}
			c.Logger.Success("Deleted playlist %s", args[0])
			return nil
		}),
	})

	add := &cobra.Command{
		Use:   "add [playlist_id] [track_id]",
		Short: "Add a track to a playlist.",
		Long: `Add a track to a playlist.

The track is described by --name, --artist, --genre and --year since tracks are not
looked up again once found.`,
		Args: cobra.ExactArgs(2),
		RunE: withPlaylists(func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error {
			track := shared.Track{ID: args[1]}
			track.Name, _ = cmd.Flags().GetString("name")
			track.Artist, _ = cmd.Flags().GetString("artist")
			track.Genre, _ = cmd.Flags().GetString("genre")
			track.Year, _ = cmd.Flags().GetString("year")

			p, err := c.Playlists.AddTrack(cmd.Context(), userID, args[0], track)
			if err != nil {
				return err
			}
			c.Logger.Success("%s now has %d tracks", p.Name, len(p.Tracks))
			return nil
		}),
	}
	add.Flags().String("name", "Unknown", "Track name")
	add.Flags().String("artist", "—", "Artist name")
	add.Flags().String("genre", "", "Genre")
	add.Flags().String("year", "", "Release year")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [playlist_id] [track_id]",
		Short: "Remove a track from a playlist.",
		Args:  cobra.ExactArgs(2),
		RunE: withPlaylists(func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error {
			p, err := c.Playlists.RemoveTrack(cmd.Context(), userID, args[0], args[1])
			if err != nil {
				return err
			}
			c.Logger.Success("%s now has %d tracks", p.Name, len(p.Tracks))
			return nil
		}),
	})

	return cmd
}

type playlistRunner func(cmd *cobra.Command, c *services.ServiceContainer, userID string, args []string) error

// withPlaylists wires services and resolves the session user before running fn
func withPlaylists(fn playlistRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, container, err := initConfigAndServices(cmd, services.Options{})
		if err != nil {
			return err
		}
		defer container.Close()

		user, err := requireUser(cmd, container.Sessions)
		if err != nil {
			return err
		}
		if err := fn(cmd, container, user.ID, args); err != nil {
			return fmt.Errorf("playlist %s: %w", cmd.Name(), err)
		}
		return nil
	}
}
