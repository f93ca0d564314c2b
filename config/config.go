package config

import (
	"github.com/webskel/webskel/internal/server"
	"github.com/webskel/webskel/util/conf"
)

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Server is the http server configuration
	Server server.HttpConfig `conf:"server"`
}

// DefaultConfig holds the built-in defaults. The server listens
// on port 3000 unless configured otherwise.
var DefaultConfig = conf.DefaultConfig{
	"log_level":   "",
	"log_format":  "",
	"server.host": "",
	"server.port": 3000,
	"server.h2c":  false,
}
