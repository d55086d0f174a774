package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_dashboard_service.go -package=mocks publicdashboard/internal/service DashboardService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"publicdashboard/internal/contextutil"
	"publicdashboard/internal/storage"
)

// DashboardService manages the ordered dashboard list.
// Operations that can change membership or order invalidate the given ListCache.
type DashboardService interface {
	// ListOrderedIDs returns all dashboard ids in position order. The store is
	// queried when refresh is set or the cache is empty; otherwise the cached
	// snapshot is returned.
	ListOrderedIDs(ctx context.Context, cache *ListCache, refresh bool) ([]int, error)
	// ResolveRecords loads the dashboards for ids, in the order of ids.
	// Ids missing from the store are dropped.
	ResolveRecords(ctx context.Context, ids []int) ([]storage.Dashboard, error)
	// MoveUp swaps the dashboard with its predecessor. Unknown ids and the
	// first dashboard are left alone.
	MoveUp(ctx context.Context, cache *ListCache, id int) error
	// MoveDown swaps the dashboard with its successor. Unknown ids and the
	// last dashboard are left alone.
	MoveDown(ctx context.Context, cache *ListCache, id int) error
	// InvalidateList clears cache.
	InvalidateList(cache *ListCache)

	// Get returns one dashboard or ErrNotFound.
	Get(ctx context.Context, id int) (*storage.Dashboard, error)
	// Create stores a new dashboard at the end of the list.
	Create(ctx context.Context, cache *ListCache, dashboard *storage.Dashboard) error
	// Update stores the name, component and position of an existing dashboard.
	Update(ctx context.Context, cache *ListCache, dashboard *storage.Dashboard) error
	// Delete removes a dashboard.
	Delete(ctx context.Context, cache *ListCache, id int) error
}

// dashboardService implements DashboardService.
type dashboardService struct {
	store storage.DashboardStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store storage.DashboardStore) DashboardService {
	return &dashboardService{store: store}
}

// ListOrderedIDs returns all dashboard ids in position order.
func (s *dashboardService) ListOrderedIDs(ctx context.Context, cache *ListCache, refresh bool) ([]int, error) {
	if !refresh && !cache.empty() {
		return cache.IDs(), nil
	}

	ids, err := s.store.ListIDsByPosition(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list dashboard ids")
	}
	cache.store(ids)

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "dashboard list loaded", "count", len(ids))
	return ids, nil
}

// ResolveRecords loads the dashboards for ids, in the order of ids.
func (s *dashboardService) ResolveRecords(ctx context.Context, ids []int) ([]storage.Dashboard, error) {
	if len(ids) == 0 {
		return []storage.Dashboard{}, nil
	}

	dashboards, err := s.store.ListByIDs(ctx, ids)
	if err != nil {
		return nil, WrapError(err, "failed to load dashboards")
	}

	rank := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}

	resolved := make([]storage.Dashboard, 0, len(dashboards))
	for _, d := range dashboards {
		if _, requested := rank[d.ID]; requested {
			resolved = append(resolved, d)
		}
	}
	slices.SortStableFunc(resolved, func(a, b storage.Dashboard) int {
		return rank[a.ID] - rank[b.ID]
	})

	return resolved, nil
}

// MoveUp swaps the dashboard with its predecessor.
func (s *dashboardService) MoveUp(ctx context.Context, cache *ListCache, id int) error {
	return s.move(ctx, cache, id, Up)
}

// MoveDown swaps the dashboard with its successor.
func (s *dashboardService) MoveDown(ctx context.Context, cache *ListCache, id int) error {
	return s.move(ctx, cache, id, Down)
}

func (s *dashboardService) move(ctx context.Context, cache *ListCache, id int, dir Direction) error {
	logger := contextutil.LoggerFromContext(ctx)
	defer cache.Invalidate()

	ordered, err := s.store.ListByPosition(ctx)
	if err != nil {
		return WrapError(err, fmt.Sprintf("failed to move dashboard %d %s", id, dir))
	}

	neighbor, target, ok := swapWithNeighbor(ordered, id, dir)
	if !ok {
		logger.DebugContext(ctx, "dashboard move skipped", "id", id, "direction", dir.String())
		return nil
	}

	if err := s.store.UpdatePositions(ctx, []storage.Dashboard{neighbor, target}); err != nil {
		logger.ErrorContext(ctx, "failed to swap dashboard positions", "id", id, "neighbor_id", neighbor.ID, "error", err)
		return WrapError(err, fmt.Sprintf("failed to move dashboard %d %s", id, dir))
	}

	logger.InfoContext(ctx, "dashboard moved",
		"id", id,
		"direction", dir.String(),
		"position", target.Position,
		"neighbor_id", neighbor.ID,
		"neighbor_position", neighbor.Position,
	)
	return nil
}

// InvalidateList clears cache.
func (s *dashboardService) InvalidateList(cache *ListCache) {
	cache.Invalidate()
}

// Get returns one dashboard or ErrNotFound.
func (s *dashboardService) Get(ctx context.Context, id int) (*storage.Dashboard, error) {
	dashboard, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, fmt.Sprintf("failed to get dashboard %d", id))
	}
	return dashboard, nil
}

// Create stores a new dashboard at the end of the list.
func (s *dashboardService) Create(ctx context.Context, cache *ListCache, dashboard *storage.Dashboard) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkRequired(dashboard); err != nil {
		logger.WarnContext(ctx, "invalid dashboard", "error", err)
		return err
	}

	if err := s.store.Create(ctx, dashboard); err != nil {
		logger.ErrorContext(ctx, "failed to create dashboard", "error", err)
		return WrapError(err, "failed to create dashboard")
	}
	cache.Invalidate()

	logger.InfoContext(ctx, "dashboard created", "id", dashboard.ID, "position", dashboard.Position, "component_id", dashboard.ComponentID)
	return nil
}

// Update stores the name, component and position of an existing dashboard.
func (s *dashboardService) Update(ctx context.Context, cache *ListCache, dashboard *storage.Dashboard) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkRequired(dashboard); err != nil {
		logger.WarnContext(ctx, "invalid dashboard", "id", dashboard.ID, "error", err)
		return err
	}

	if err := s.store.Update(ctx, dashboard); err != nil {
		return translateStoreError(err, fmt.Sprintf("failed to update dashboard %d", dashboard.ID))
	}
	cache.Invalidate()

	logger.InfoContext(ctx, "dashboard updated", "id", dashboard.ID)
	return nil
}

// Delete removes a dashboard.
func (s *dashboardService) Delete(ctx context.Context, cache *ListCache, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return translateStoreError(err, fmt.Sprintf("failed to delete dashboard %d", id))
	}
	cache.Invalidate()

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "dashboard removed", "id", id)
	return nil
}

func checkRequired(dashboard *storage.Dashboard) error {
	if strings.TrimSpace(dashboard.Name) == "" {
		return &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	if strings.TrimSpace(dashboard.ComponentID) == "" {
		return &ValidationError{Field: "component_id", Message: "cannot be empty"}
	}
	return nil
}

// translateStoreError maps storage.ErrNotFound to ErrNotFound and wraps everything else.
func translateStoreError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return WrapError(ErrNotFound, msg)
	}
	return WrapError(err, msg)
}
