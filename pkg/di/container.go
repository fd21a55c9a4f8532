// Package di provides the dependency injection container wiring
// config -> registry -> server factory.
package di

import (
	"github.com/marcusj6/JumpSearchTree/pkg/api" //nolint:depguard
	"github.com/marcusj6/JumpSearchTree/pkg/bench"
)

// Container holds all the dependencies for the application.
type Container struct {
	registry      *bench.Registry
	serverFactory api.ServerFactory
}

// NewContainer creates a new dependency injection container.
func NewContainer() *Container {
	return &Container{
		registry:      bench.NewRegistry(),
		serverFactory: api.NewServerFactory(),
	}
}

// GetRegistry returns the named-tree registry.
func (c *Container) GetRegistry() *bench.Registry {
	return c.registry
}

// GetServerFactory returns the server factory.
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetRegistry allows overriding the registry (for testing).
func (c *Container) SetRegistry(registry *bench.Registry) {
	c.registry = registry
}
