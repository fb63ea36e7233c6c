package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KJ-77/samihaproj/api"
	"github.com/KJ-77/samihaproj/history"
)

// currentUserID возвращает идентификатор вошедшего пользователя
func currentUserID(app *App) (string, error) {
	session, err := app.Cognito.CurrentSession()
	if err != nil {
		return "", &api.AuthError{Reason: err.Error()}
	}
	if session == nil || !session.IsValid() {
		return "", &api.AuthError{Reason: "please login to see your results"}
	}
	return session.Subject(), nil
}

// newDiagnosesCmd — просмотр результатов пройденных тестов
func newDiagnosesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnoses",
		Short: "View your test results",
	}

	cmd.AddCommand(
		newDiagnosesListCmd(app),
		newDiagnosesLatestCmd(app),
		newDiagnosesExportCmd(app),
	)

	return cmd
}

// newDiagnosesListCmd — вся история результатов
func newDiagnosesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all your results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID(app)
			if err != nil {
				return err
			}

			viewer := history.NewViewer(app.API)
			diagnoses, err := viewer.Load(userID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), history.HistoryView(diagnoses))
			return nil
		},
	}
}

// newDiagnosesLatestCmd — последний результат с описанием
func newDiagnosesLatestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show your latest result",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID(app)
			if err != nil {
				return err
			}

			viewer := history.NewViewer(app.API)
			diagnoses, err := viewer.Load(userID)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), history.LatestView(history.Latest(diagnoses)))
			return nil
		},
	}
}

// newDiagnosesExportCmd — версия результата для печати
func newDiagnosesExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <number>",
		Short: "Export a result as a printable page (1 is the newest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil || number < 1 {
				return fmt.Errorf("invalid result number: %s", args[0])
			}

			userID, err := currentUserID(app)
			if err != nil {
				return err
			}

			viewer := history.NewViewer(app.API)
			diagnoses, err := viewer.Load(userID)
			if err != nil {
				return err
			}
			if number > len(diagnoses) {
				return fmt.Errorf("result %d not found, you have %d result(s)", number, len(diagnoses))
			}

			page := history.ExportPrintable(diagnoses[number-1])

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), page)
				return nil
			}

			if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the page to a file instead of stdout")

	return cmd
}
