package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newUsersCmd — список пользователей для администратора
func newUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List platform users (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.API.ListUsers()
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found")
				return nil
			}

			for _, u := range users {
				name := u.Name
				if name == "" {
					name = "-"
				}
				email := u.Email
				if email == "" {
					email = "-"
				}
				status := u.Status
				if status == "" {
					status = "ACTIVE"
				}
				created := u.CreatedAt
				if created == "" {
					created = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", name, email, status, created)
			}
			return nil
		},
	}
}
