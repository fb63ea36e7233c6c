package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newOpenCmd — защищенная навигация по ключу маршрута.
// Печатает страницу, на которую попал бы пользователь.
func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <route>",
		Short: "Open a protected page (test, custom, ready, makenteh-courses)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			destination := app.Gate.NavigateProtected(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "-> %s\n", destination)
			return nil
		},
	}
}
