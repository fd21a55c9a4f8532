// Package api implements the HTTP control surface over a tree registry.
package api

import "github.com/marcusj6/JumpSearchTree/pkg/dictionary"

// TreeRegistry is the subset of *bench.Registry the server depends on.
// Declared here, rather than importing pkg/bench directly into the
// handler signatures, so the handlers depend only on this method set;
// the handler tests pass a real *bench.Registry, which creates no
// Prometheus collectors.
type TreeRegistry interface {
	GetOrCreate(name string, k, b int) dictionary.Dictionary
	Get(name string) (dictionary.Dictionary, bool)
	Delete(name string) bool
	Names() []string
	Lock(name string) func()
}

// ServerFactory creates server instances, mirroring the teacher's
// dependency-injection seam for StartServer.
type ServerFactory interface {
	CreateServerStarter() ServerStarter
}

// ServerStarter starts the API server with the given configuration.
type ServerStarter interface {
	StartServer(registry TreeRegistry, config ServerConfig) error
}
