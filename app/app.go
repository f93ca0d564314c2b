package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/webskel/webskel/config"
	"github.com/webskel/webskel/internal/shell"
	"github.com/webskel/webskel/util/conf"
	"github.com/webskel/webskel/util/logging"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
	)

	return shell.New(log, sharedModule), nil
}
