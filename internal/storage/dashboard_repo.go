package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_dashboard_store.go -package=mocks publicdashboard/internal/storage DashboardStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DashboardStore defines the interface for dashboard storage operations.
type DashboardStore interface {
	// Create inserts a dashboard after the current last position.
	// ID and Position are set on the passed record.
	Create(ctx context.Context, dashboard *Dashboard) error
	// Update writes all fields of an existing dashboard.
	// Returns ErrNotFound if no row has dashboard.ID.
	Update(ctx context.Context, dashboard *Dashboard) error
	// Delete removes a dashboard. Remaining positions are left as they are.
	// Returns ErrNotFound if no row has the id.
	Delete(ctx context.Context, id int) error
	// GetByID gets a dashboard by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int) (*Dashboard, error)
	// ListByIDs returns the dashboards matching ids, in no particular order.
	// Unknown ids are skipped.
	ListByIDs(ctx context.Context, ids []int) ([]Dashboard, error)
	// ListByPosition returns all dashboards ordered by position, then id.
	ListByPosition(ctx context.Context) ([]Dashboard, error)
	// ListIDsByPosition returns all dashboard ids ordered by position, then id.
	ListIDsByPosition(ctx context.Context) ([]int, error)
	// UpdatePositions writes the Position of every given dashboard in a single transaction.
	UpdatePositions(ctx context.Context, dashboards []Dashboard) error
}

// DashboardRepo provides methods for dashboard operations.
// It implements the DashboardStore interface.
type DashboardRepo struct {
	db *sql.DB
}

// NewDashboardRepo creates a new DashboardRepo.
func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

const dashboardColumns = "id, name, component_id, position"

// Create inserts a dashboard after the current last position.
func (r *DashboardRepo) Create(ctx context.Context, dashboard *Dashboard) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO dashboards (name, component_id, position)
		 SELECT ?, ?, COALESCE(MAX(position), 0) + 1 FROM dashboards`,
		dashboard.Name, dashboard.ComponentID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dashboard: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted dashboard id: %w", err)
	}

	created, err := r.GetByID(ctx, int(id))
	if err != nil {
		return fmt.Errorf("failed to reload inserted dashboard: %w", err)
	}
	*dashboard = *created

	return nil
}

// Update writes all fields of an existing dashboard.
func (r *DashboardRepo) Update(ctx context.Context, dashboard *Dashboard) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE dashboards SET name = ?, component_id = ?, position = ? WHERE id = ?",
		dashboard.Name, dashboard.ComponentID, dashboard.Position, dashboard.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update dashboard: %w", err)
	}
	return expectOneRow(result)
}

// Delete removes a dashboard.
func (r *DashboardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM dashboards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete dashboard: %w", err)
	}
	return expectOneRow(result)
}

// GetByID gets a dashboard by its ID.
func (r *DashboardRepo) GetByID(ctx context.Context, id int) (*Dashboard, error) {
	var dashboard Dashboard
	err := r.db.QueryRowContext(ctx,
		"SELECT "+dashboardColumns+" FROM dashboards WHERE id = ?",
		id,
	).Scan(&dashboard.ID, &dashboard.Name, &dashboard.ComponentID, &dashboard.Position)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard: %w", err)
	}

	return &dashboard, nil
}

// ListByIDs returns the dashboards matching ids, in no particular order.
func (r *DashboardRepo) ListByIDs(ctx context.Context, ids []int) ([]Dashboard, error) {
	if len(ids) == 0 {
		return []Dashboard{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	return r.queryDashboards(ctx,
		"SELECT "+dashboardColumns+" FROM dashboards WHERE id IN ("+placeholders+")",
		args...,
	)
}

// ListByPosition returns all dashboards ordered by position, then id.
func (r *DashboardRepo) ListByPosition(ctx context.Context) ([]Dashboard, error) {
	return r.queryDashboards(ctx,
		"SELECT "+dashboardColumns+" FROM dashboards ORDER BY position, id",
	)
}

// ListIDsByPosition returns all dashboard ids ordered by position, then id.
// Returns an empty slice if there are no dashboards (not an error).
func (r *DashboardRepo) ListIDsByPosition(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id FROM dashboards ORDER BY position, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dashboard ids: %w", err)
	}

	return ids, nil
}

// UpdatePositions writes the Position of every given dashboard in a single transaction.
// Either all positions are written or none is. A dashboard that no longer exists
// aborts the transaction with ErrNotFound.
func (r *DashboardRepo) UpdatePositions(ctx context.Context, dashboards []Dashboard) error {
	if len(dashboards) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, "UPDATE dashboards SET position = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare position update: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, dashboard := range dashboards {
		result, err := stmt.ExecContext(ctx, dashboard.Position, dashboard.ID)
		if err != nil {
			return fmt.Errorf("failed to update position of dashboard %d: %w", dashboard.ID, err)
		}
		if err := expectOneRow(result); err != nil {
			return fmt.Errorf("failed to update position of dashboard %d: %w", dashboard.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit position update: %w", err)
	}

	return nil
}

func (r *DashboardRepo) queryDashboards(ctx context.Context, query string, args ...any) ([]Dashboard, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	dashboards := []Dashboard{}
	for rows.Next() {
		var dashboard Dashboard
		if err := rows.Scan(&dashboard.ID, &dashboard.Name, &dashboard.ComponentID, &dashboard.Position); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard: %w", err)
		}
		dashboards = append(dashboards, dashboard)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dashboards: %w", err)
	}

	return dashboards, nil
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
