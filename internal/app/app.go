package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/outbound/jsonplaceholder"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/presentation"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/telemetry"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/usecases"
)

// NewUserDirectoryApp creates and returns a new instance of the user directory application.
func NewUserDirectoryApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&jsonplaceholder.InitUserRepository{},

			&usecases.InitListUsers{},
			&usecases.InitGetUser{},

			&presentation.InitUsersListModel{},
		).
		Host(
			&http.UserDirectoryServer{},
			&mcp.UserDirectoryMCPServer{},
			&workers.UsersViewRefresher{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
