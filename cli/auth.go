package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KJ-77/samihaproj/store"
)

// newLoginCmd — вход по email и паролю
func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Cognito.SignIn(email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.Email())

			// Отложенный редирект съедается ровно один раз
			if target := app.Gate.ConsumeRedirectAfterLogin(); target != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Continue to: %s\n", target)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Continue to: %s\n", app.Gate.DashboardPage())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// newLogoutCmd — выход из аккаунта
func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cognito.SignOut(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

// newSignupCmd — регистрация нового пользователя
func newSignupCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Cognito.SignUp(name, email, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created, check your email for the confirmation code")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// newWhoamiCmd — информация о текущем пользователе
func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user and role",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := app.Gate.ResolveSessionAndRole()
			if !info.LoggedIn {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}

			var user struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			}
			_ = json.Unmarshal([]byte(app.State.Get(store.KeyCognitoUser)), &user)

			fmt.Fprintf(cmd.OutOrStdout(), "Name:  %s\n", user.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Email: %s\n", user.Email)
			if info.IsAdmin {
				fmt.Fprintln(cmd.OutOrStdout(), "Role:  Admin")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Role:  User")
			}
			return nil
		},
	}
}
