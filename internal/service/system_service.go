package service

import (
	"database/sql"
	"fmt"

	"github.com/kingao12/investment-platform/internal/database"
	"github.com/kingao12/investment-platform/internal/model"
	"github.com/kingao12/investment-platform/internal/version"
)

// SystemService exposes operational information about the running service.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService with the provided database connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// HealthCheck verifies the database connection is alive.
func (s *SystemService) HealthCheck() error {
	return database.HealthCheck(s.db)
}

// GetVersionInfo returns the application version and the applied schema version.
func (s *SystemService) GetVersionInfo() (model.VersionInfo, error) {
	schemaVersion, err := database.SchemaVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to read schema version: %w", err)
	}

	return model.VersionInfo{
		Version:       version.Version,
		SchemaVersion: schemaVersion,
	}, nil
}
