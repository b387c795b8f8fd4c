package main

import (
	"context"
	"os"

	_ "github.com/franciscosanchezn/pizza-manager/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-manager/internal/cli"
	"github.com/franciscosanchezn/pizza-manager/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

//go:generate swag init -g cmd/main.go -d ../ -o ../docs

// @title Pizza Manager Console API
// @version 1.0
// @description Screens of the pizza manager: store owner topping catalog and pizza chef workbench
// @host localhost:3000
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	os.Exit(cli.Execute(context.Background(), configuration))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the standard logger with a JSON formatter and the level of the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development")))
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Debugf("Configuration loaded: %s", conf)
	return conf
}
