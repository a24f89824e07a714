package main

import (
	"os"

	_ "crewlo/docs"
	"crewlo/internal/adapter/http/routes"
	"crewlo/internal/config"
	"crewlo/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Crewlo API
// @version         1.0.0
// @description     Construction business back office: projects, leads, materials, estimates and proposals.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logging.Setup(cfg.Log, os.Stdout)

	if err := routes.Run(cfg); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
