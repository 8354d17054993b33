package middleware

import "github.com/aretw0/motif/pkg/ports"

// Middleware allows wrapping a KVStore to add behavior.
type Middleware func(ports.KVStore) ports.KVStore

// Chain applies middlewares left to right: the first one listed sees the
// operation first.
func Chain(store ports.KVStore, middlewares ...Middleware) ports.KVStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
