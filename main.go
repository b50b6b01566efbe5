// @title Edu Agent API
// @version 1.0
// @description Personalized learning backend: student profiling, adaptive content generation and doubt resolution.

// @contact.name API Support

// @license.name MIT

// @host localhost:8080
// @BasePath /api

package main

import (
	"edu_agent_backend/internal/app"
	"edu_agent_backend/internal/config"
	"edu_agent_backend/pkg/configwatcher"
	"edu_agent_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if c, ok := newCfg.(*config.Config); ok {
			application.ApplyConfig(c)
		}
	})

	application.Run()
}
