// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/relay/internal/core/domain"

// ConfigLoader defines the interface for loading a workflow definition.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the workflow file at the given path.
	Load(path string) (*domain.Workflow, error)
}
