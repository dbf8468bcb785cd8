package main

import (
	"vigil/config"
	"vigil/di"
	"vigil/shared/logger"
)

// @title Vigil API
// @version 1.0
// @description Uptime monitoring service with pluggable notification delivery.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
