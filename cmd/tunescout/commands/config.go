package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"tunescout/internal/services"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			logger := services.NewConsoleLogger()

			created, err := services.NewConfigService().EnsureConfigExists(path)
			if err != nil {
				return err
			}
			if created {
				logger.Success("Wrote default config to %s", path)
			} else {
				logger.Warning("Config file %s already exists", path)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			shown := *cfg
			if shown.Credentials.Password != "" {
				shown.Credentials.Password = "******"
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(shown)
		},
	})

	return cmd
}
