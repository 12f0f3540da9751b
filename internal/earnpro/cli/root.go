// Package cli is the command surface: the bare binary runs the TUI,
// subcommands give a scriptable path to the same backend.
package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/cli/commands"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/config"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/demo"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/session"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/tui"
	"github.com/ezsaad07/earnpro-frontend/pkg/logger"
)

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(svc api.Service, store *session.Store, statePath string) error {
	m := tui.NewModel(svc, store, statePath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// buildEnv loads config and wires the backend service and session
// store. Demo mode swaps the HTTP client for the in-memory server.
func buildEnv() (api.Service, *session.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, config.Config{}, err
	}
	if path, perr := config.LogPath(); perr == nil {
		logger.Init(logger.Options{Level: cfg.LogLevel, Path: path})
	}

	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, nil, cfg, err
	}
	store := session.NewStore(tokenPath)

	if cfg.DemoMode() {
		return demo.New(), store, cfg, nil
	}
	client := api.NewClient(cfg.APIURL,
		api.WithTokenSource(store),
		api.WithUnauthorizedHandler(store.Clear),
	)
	return client, store, cfg, nil
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "earnpro",
		Short: "EarnPro terminal client",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, _, err := buildEnv()
			if err != nil {
				return err
			}
			statePath, err := config.UIStatePath()
			if err != nil {
				return err
			}
			return runTUI(svc, store, statePath)
		},
	}
	root.AddCommand(
		commands.LoginCmd(buildEnv),
		commands.LogoutCmd(buildEnv),
		commands.WhoamiCmd(buildEnv),
		commands.TasksCmd(buildEnv),
		commands.TransactionsCmd(buildEnv),
		commands.VersionCmd(),
	)
	return root
}
