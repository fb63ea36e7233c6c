package cli

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KJ-77/samihaproj/history"
	"github.com/KJ-77/samihaproj/runner"
)

// newTestsCmd — работа с каталогом тестов
func newTestsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tests",
		Short: "Browse and take personality tests",
	}

	cmd.AddCommand(
		newTestsListCmd(app),
		newTestsShowCmd(app),
		newTestsStartCmd(app),
	)

	return cmd
}

// newTestsListCmd — список доступных тестов
func newTestsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, err := app.API.ListTests()
			if err != nil {
				return err
			}

			if len(tests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tests available.")
				return nil
			}

			for _, t := range tests {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", t.ID, t.DisplayName())
				fmt.Fprintf(cmd.OutOrStdout(), "    Category: %s\n", t.DisplayCategory())
				if t.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", t.Description)
				}
			}
			return nil
		},
	}
}

// newTestsShowCmd — детали теста без начала попытки
func newTestsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <test-id>",
		Short: "Show test details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid test id: %s", args[0])
			}

			questions, err := app.API.GetTestQuestions(testID)
			if err != nil {
				return err
			}
			if len(questions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No questions found for this test.")
				return nil
			}

			// Первый вопрос дублирует название и описание теста
			fmt.Fprintf(cmd.OutOrStdout(), "Title: %s\n", questions[0].Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", questions[0].Description)
			fmt.Fprintf(cmd.OutOrStdout(), "Questions: %d\n", len(questions))
			return nil
		},
	}
}

// newTestsStartCmd — интерактивное прохождение теста
func newTestsStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start <test-id>",
		Short: "Take a test and get your diagnosis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid test id: %s", args[0])
			}

			r := runner.New(app.API, app.Cognito)

			if _, err := r.LoadCatalog(); err != nil {
				return fmt.Errorf("error loading tests: %w", err)
			}

			if err := r.Start(testID); err != nil {
				return err
			}
			if err := r.BeginAnswering(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			questions := r.Questions()
			fmt.Fprintf(out, "%s\n", questions[0].Name)
			if questions[0].Description != "" {
				fmt.Fprintf(out, "%s\n", questions[0].Description)
			}
			fmt.Fprintln(out)

			for i, q := range questions {
				fmt.Fprintf(out, "%d. %s\n", i+1, q.Question)

				// Варианты показываем в стабильном порядке ключей
				keys := make([]string, 0, len(q.Choices))
				for key := range q.Choices {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					fmt.Fprintf(out, "   [%s] %s\n", key, q.Choices[key])
				}

				for {
					fmt.Fprint(out, "Your choice: ")
					line, err := reader.ReadString('\n')
					if err != nil {
						return fmt.Errorf("input closed before the test was finished")
					}
					choice := strings.TrimSpace(line)

					if err := r.Answer(q.ID, choice); err != nil {
						var invalid *runner.ValidationError
						if errors.As(err, &invalid) {
							fmt.Fprintf(out, "Unknown choice %q, try again.\n", choice)
							continue
						}
						return err
					}
					break
				}
			}

			if err := r.Submit(); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nTest submitted.")

			latest, diagnoses, err := r.ShowDiagnosis()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "\n--- Your result ---")
			fmt.Fprint(out, history.LatestView(latest))
			fmt.Fprintln(out, "\n--- History ---")
			fmt.Fprint(out, history.HistoryView(diagnoses))
			return nil
		},
	}
}
