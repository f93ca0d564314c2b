package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/webskel/webskel/app"
	"github.com/webskel/webskel/app/standalone"
	"github.com/webskel/webskel/config"
	"github.com/webskel/webskel/util/conf"
)

var (
	serveCmdDescription = `The serve command starts the http server and blocks
	indefinitely, processing incoming http requests.

	Every response carries permissive cross-origin headers,
	and every request is logged as "<METHOD> <URL>" before
	it is dispatched to the route table.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http server and listen for requests.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    3000,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	// flags set on the serve command override the parsed config
	httpConfig := cfg.Server
	if ctx.IsSet("host") {
		httpConfig.Host = ctx.String("host")
	}
	if ctx.IsSet("port") {
		httpConfig.Port = ctx.Int("port")
	}
	if ctx.IsSet("h2c") {
		httpConfig.H2c = ctx.Bool("h2c")
	}

	return app.Run(ctx.Context, standalone.Module(standalone.Config{
		HttpConfig: httpConfig,
	}))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
