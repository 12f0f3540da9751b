// Package commands holds the scriptable subcommands. Each command gets
// its collaborators through an Env factory so tests can substitute the
// demo backend.
package commands

import (
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/api"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/config"
	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/session"
)

// Env builds the backend service and session store from configuration.
type Env func() (api.Service, *session.Store, config.Config, error)
