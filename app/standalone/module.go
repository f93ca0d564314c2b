package standalone

import (
	"go.uber.org/fx"

	"github.com/webskel/webskel/handler"
	"github.com/webskel/webskel/internal/server"
	"github.com/webskel/webskel/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide routes
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
