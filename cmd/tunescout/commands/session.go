package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tunescout/internal/services"
	"tunescout/internal/shared"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with the configured credentials.",
		Args:  cobra.NoArgs,
		RunE:  runLoginCommand,
	}

	cmd.Flags().String("email", "", "Email address (prompted when empty)")
	cmd.Flags().String("password", "", "Password (prompted when empty)")

	return cmd
}

func runLoginCommand(cmd *cobra.Command, args []string) error {
	_, container, err := initConfigAndServices(cmd, services.Options{})
	if err != nil {
		return err
	}
	defer container.Close()

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if email == "" {
		email = shared.GetUserInput("Email", "")
	}
	if password == "" {
		password = shared.GetUserInput("Password", "")
	}

	user, err := container.Sessions.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	container.Logger.Success("Logged in as %s", user.Email)
	return nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, container, err := initConfigAndServices(cmd, services.Options{})
			if err != nil {
				return err
			}
			defer container.Close()

			if err := container.Sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			container.Logger.Success("Logged out")
			return nil
		},
	}
}

// NewWhoAmICommand creates the whoami command
func NewWhoAmICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, container, err := initConfigAndServices(cmd, services.Options{})
			if err != nil {
				return err
			}
			defer container.Close()

			user, err := requireUser(cmd, container.Sessions)
			if err != nil {
				return err
			}
			container.Logger.Info("%s (last login %s)", user.Email, user.LastLogin.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}
}
