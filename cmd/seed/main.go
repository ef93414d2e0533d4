package main

import (
	"errors"
	"fmt"
	"os"

	"fintrack/internal/database"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/services"
)

// Seeds the default admin account so a fresh deployment has a login.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	userService := services.NewUserService(dbManager.DB())

	user, err := userService.CreateUser("admin", "password123", "admin@example.com")
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == "DUPLICATE_USERNAME" {
			logger.Get().Info("Admin user already exists, nothing to do")
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Get().Infof("Created admin user with ID %d", user.ID)
	return nil
}
