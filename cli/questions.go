package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newQuestionsCmd — персональные вопросы для Самихи
func newQuestionsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Show your questions for Samiha",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := currentUserID(app)
			if err != nil {
				return err
			}

			questions, err := app.API.ListSamihaQuestions()
			if err != nil {
				return err
			}

			// По умолчанию показываем только вопросы этого пользователя
			shown := 0
			for _, q := range questions {
				if !all && q.UserID != userID {
					continue
				}
				shown++

				status := "Pending"
				if q.Answered() {
					status = "Answered"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d [%s] %s\n", q.ID, status, q.Question)
				if q.Answered() {
					fmt.Fprintf(cmd.OutOrStdout(), "    Answer: %s\n", q.Answer)
				}
			}

			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "You haven't asked any questions yet.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show questions of all users")

	return cmd
}
