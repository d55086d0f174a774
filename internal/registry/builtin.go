package registry

import (
	"errors"
	"sort"
)

// StaticComponent is a component whose id and description are fixed values.
type StaticComponent struct {
	ID          string
	Description string
}

// ComponentID implements DashboardComponent.
func (c StaticComponent) ComponentID() string { return c.ID }

// ComponentDescription implements DashboardComponent.
func (c StaticComponent) ComponentDescription() string { return c.Description }

// Builtins are the components shipped with the service.
func Builtins() []DashboardComponent {
	return []DashboardComponent{
		StaticComponent{ID: "news", Description: "Latest **news** articles"},
		StaticComponent{ID: "agenda", Description: "Upcoming events from the *agenda*"},
		StaticComponent{ID: "links", Description: "Shortcut links"},
	}
}

// NewWithComponents builds a registry from the builtins plus configured extras
// (id -> description). Extras are registered in id order.
func NewWithComponents(extra map[string]string) (*Registry, error) {
	r := New()

	var errs []error
	for _, component := range Builtins() {
		errs = append(errs, r.Register(component))
	}

	ids := make([]string, 0, len(extra))
	for id := range extra {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		errs = append(errs, r.Register(StaticComponent{ID: id, Description: extra[id]}))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return r, nil
}
