package restclient

import (
	"fmt"
	"sync"
)

// Registry is a thread-safe registry of named clients. Hosts register one
// client per upstream service at startup and hand the registry to
// consumers, so exactly one client instance exists per upstream.
//
//	reg := restclient.NewRegistry()
//	reg.Register(billing)
//	reg.Register(users)
//	reg.SetDefault("billing")
type Registry struct {
	mu          sync.RWMutex
	clients     map[string]*Client
	defaultName string
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Register adds a client under its configured name. The first client
// registered becomes the default.
func (r *Registry) Register(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.Name()] = c
	if r.defaultName == "" {
		r.defaultName = c.Name()
	}
}

// Get returns the client registered under the given name.
func (r *Registry) Get(name string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[name]
	return c, ok
}

// MustGet returns the client registered under the given name.
// Panics if the name is not registered.
func (r *Registry) MustGet(name string) *Client {
	c, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("restclient: client %q not registered", name))
	}
	return c
}

// SetDefault marks the named client as the default.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[name]; !ok {
		return fmt.Errorf("restclient: client %q not registered", name)
	}
	r.defaultName = name
	return nil
}

// Default returns the default client.
func (r *Registry) Default() (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[r.defaultName]
	return c, ok
}

// Names returns the registered client names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}
