package display

import (
	"fmt"
	"sync"
)

// Registry manages display backend providers and handles backend detection
type Registry struct {
	providers []Provider
	mu        sync.RWMutex
}

var (
	globalRegistry = &Registry{
		providers: make([]Provider, 0),
	}
)

// Register adds a provider to the global registry.
// Backend packages call this from init().
func Register(provider Provider) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = append(globalRegistry.providers, provider)
}

// DetectDisplay returns the available provider with the highest Info().Priority.
// Ties go to the provider registered first.
func DetectDisplay() (Provider, error) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var best Provider
	for _, p := range globalRegistry.providers {
		if !p.IsAvailable() {
			continue
		}
		if best == nil || p.Info().Priority > best.Info().Priority {
			best = p
		}
	}
	if best != nil {
		return best, nil
	}

	return nil, fmt.Errorf("no compatible display backend detected (tried %d providers)", len(globalRegistry.providers))
}

// Select returns the provider named by backend, or the detected one when backend is empty
func Select(backend string) (Provider, error) {
	if backend == "" {
		return DetectDisplay()
	}

	p := GetProvider(backend)
	if p == nil {
		return nil, fmt.Errorf("unknown display backend %q", backend)
	}
	if !p.IsAvailable() {
		return nil, fmt.Errorf("display backend %q is not available on this system", backend)
	}
	return p, nil
}

// GetAllProviders returns all registered providers
func GetAllProviders() []Provider {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	providers := make([]Provider, len(globalRegistry.providers))
	copy(providers, globalRegistry.providers)
	return providers
}

// GetProvider returns a provider by backend name, or nil if not found
func GetProvider(name string) Provider {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	for _, p := range globalRegistry.providers {
		if p.Info().Name == name {
			return p
		}
	}

	return nil
}

// ClearProviders removes all registered providers (primarily for testing)
func ClearProviders() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.providers = make([]Provider, 0)
}
