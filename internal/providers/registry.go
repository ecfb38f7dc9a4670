package providers

import (
	"fmt"
	"log/slog"
	"sync"
)

// Registry holds references to generative clients by name.
// It supports config-driven instantiation and thread-safe access.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]GenerativeClient
	logger  *slog.Logger
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]GenerativeClient),
		logger:  slog.Default(),
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register registers a generative client by name.
func (r *Registry) Register(name string, client GenerativeClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[name] = client
	if r.logger != nil {
		r.logger.Info("registered generative client", "name", name)
	}
}

// Unregister removes a generative client by name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, name)
	if r.logger != nil {
		r.logger.Info("unregistered generative client", "name", name)
	}
}

// Get returns a generative client by name.
func (r *Registry) Get(name string) (GenerativeClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[name]
	if !ok {
		return nil, fmt.Errorf("generative client not found: %s", name)
	}
	return client, nil
}

// List returns the names of all registered clients.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}
