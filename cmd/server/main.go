package main

import (
	"github.com/geomap-asset/backend/internal/server"
	"github.com/geomap-asset/backend/internal/util"
	"github.com/geomap-asset/backend/pkg/logger"
	"github.com/geomap-asset/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
