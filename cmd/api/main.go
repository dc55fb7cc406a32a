package main

import (
	"os"

	"github.com/mergington/highschool/internal/pkg/logger"
	"github.com/mergington/highschool/internal/server"
)

// @title Mergington High School API
// @version 1.0
// @description API for viewing and signing up for extracurricular activities

// @contact.name Mergington High School
// @contact.email it@mergington.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
