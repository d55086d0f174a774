package storage

// Dashboard represents a dashboard entry in the database.
type Dashboard struct {
	ID          int    // Assigned on insert
	Name        string // Label shown in the admin list
	ComponentID string // Registry id of the component rendered by this entry
	Position    int    // Sort key, ascending
}
