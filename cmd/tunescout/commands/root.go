package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunescout/internal/config"
	"tunescout/internal/interfaces"
	"tunescout/internal/services"
	"tunescout/internal/shared"
)

const toolVersion = "1.0.0"

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "tunescout",
		Version: toolVersion,
		Short:   "Find tracks on TheAudioDB from partial titles and artist names.",
		Long: fmt.Sprintf(`TuneScout (v%s)

A music catalog explorer backed by TheAudioDB. It allows you to:
- Search tracks by title, artist, or both, with fallbacks when exact queries find nothing.
- Browse popular tracks, sampled from well known artists when the curated list is unavailable.
- Keep local playlists behind a simple login.
- Serve everything as a local JSON API.`, toolVersion),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			shared.InitializeColors()
		},
	}

	root.PersistentFlags().String("config", config.ConfigFile, "Path to the JSON config file")
	root.PersistentFlags().String("base-url", "", "TheAudioDB API base URL")
	root.PersistentFlags().String("db", "", "Path to the sqlite database (empty string keeps state in memory)")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")

	root.AddCommand(NewSearchCommand())
	root.AddCommand(NewPopularCommand())
	root.AddCommand(NewServeCommand())
	root.AddCommand(NewPlaylistCommand())
	root.AddCommand(NewLoginCommand())
	root.AddCommand(NewLogoutCommand())
	root.AddCommand(NewWhoAmICommand())
	root.AddCommand(NewConfigCommand())

	return root
}

// loadConfig reads the config file and environment, then applies persistent flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if cmd.Flags().Changed("db") {
		cfg.DatabasePath, _ = cmd.Flags().GetString("db")
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}
	return cfg, nil
}

// initConfigAndServices loads configuration and wires the service container
func initConfigAndServices(cmd *cobra.Command, opts services.Options) (*config.Config, *services.ServiceContainer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	container, err := services.NewServiceContainer(cfg, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	return cfg, container, nil
}

// requireUser returns the session user or a hint to log in
func requireUser(cmd *cobra.Command, sessions interfaces.SessionService) (*shared.SessionUser, error) {
	user, err := sessions.Current(cmd.Context())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: run 'tunescout login' first", shared.ErrNotAuthenticated)
	}
	return user, nil
}
