// Package registry keeps the table of dashboard component types an entry can reference.
// The table is filled once at startup; there is no runtime discovery.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrDuplicateComponent is returned when a component id is registered twice.
	ErrDuplicateComponent = errors.New("component already registered")
	// ErrInvalidComponent is returned for a component with an empty id.
	ErrInvalidComponent = errors.New("invalid component")
)

// DashboardComponent is implemented by every pluggable dashboard widget type.
type DashboardComponent interface {
	// ComponentID is the stable id stored in dashboard records.
	ComponentID() string
	// ComponentDescription is a human readable description, markdown allowed.
	ComponentDescription() string
}

// Descriptor is the id and description of a registered component.
type Descriptor struct {
	ID          string
	Description string
}

// Registry maps component ids to components.
type Registry struct {
	mu         sync.RWMutex
	components map[string]DashboardComponent
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{components: make(map[string]DashboardComponent)}
}

// Register adds a component to the table.
func (r *Registry) Register(component DashboardComponent) error {
	id := strings.TrimSpace(component.ComponentID())
	if id == "" {
		return fmt.Errorf("%w: empty component id", ErrInvalidComponent)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateComponent, id)
	}
	r.components[id] = component
	return nil
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	component, ok := r.components[id]
	if !ok {
		return Descriptor{}, false
	}
	return describe(id, component), true
}

// Components returns every registered component sorted by id.
func (r *Registry) Components() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Descriptor, 0, len(r.components))
	for id, component := range r.components {
		descriptors = append(descriptors, describe(id, component))
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].ID < descriptors[j].ID
	})
	return descriptors
}

// Descriptions returns the component id to description map.
func (r *Registry) Descriptions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptions := make(map[string]string, len(r.components))
	for id, component := range r.components {
		descriptions[id] = component.ComponentDescription()
	}
	return descriptions
}

func describe(id string, component DashboardComponent) Descriptor {
	return Descriptor{ID: id, Description: component.ComponentDescription()}
}
