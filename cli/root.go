package cli

import (
	"github.com/spf13/cobra"

	"github.com/KJ-77/samihaproj/api"
	"github.com/KJ-77/samihaproj/auth"
	"github.com/KJ-77/samihaproj/config"
	"github.com/KJ-77/samihaproj/gate"
	"github.com/KJ-77/samihaproj/store"
)

// App собирает зависимости команд CLI
type App struct {
	Config  *config.Config
	State   *store.Store
	Cognito *auth.CognitoClient
	API     *api.Client
	Gate    *gate.Gate
}

// NewApp создает приложение с реальными клиентами
func NewApp(cfg *config.Config, state *store.Store) *App {
	cognito := auth.NewCognitoClient(cfg, state)
	return &App{
		Config:  cfg,
		State:   state,
		Cognito: cognito,
		API:     api.NewClient(cfg.APIBaseURL, cognito),
		Gate:    gate.NewGate(cognito, state, cfg.AdminGroup),
	}
}

// NewRootCmd создает корневую команду CLI
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "samihaproj",
		Short:         "Client for the Samiha life-coaching platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newSignupCmd(app),
		newWhoamiCmd(app),
		newTestsCmd(app),
		newDiagnosesCmd(app),
		newQuestionsCmd(app),
		newUsersCmd(app),
		newOpenCmd(app),
	)

	return root
}
