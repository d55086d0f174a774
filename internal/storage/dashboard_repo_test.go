package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"slices"
	"sort"
	"testing"
)

// newTestRepo opens a migrated database in a temp dir.
func newTestRepo(t *testing.T) (*DashboardRepo, *sql.DB) {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewDashboardRepo(db), db
}

func createDashboards(t *testing.T, repo *DashboardRepo, names ...string) []Dashboard {
	t.Helper()

	created := make([]Dashboard, 0, len(names))
	for _, name := range names {
		d := &Dashboard{Name: name, ComponentID: "component-" + name}
		if err := repo.Create(context.Background(), d); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
		created = append(created, *d)
	}
	return created
}

func TestDashboardRepo_Create(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created := createDashboards(t, repo, "a", "b", "c")

	for i, d := range created {
		if d.ID == 0 {
			t.Errorf("Create() dashboard %d got no ID", i)
		}
		if d.Position != i+1 {
			t.Errorf("Create() dashboard %s position = %d, want %d", d.Name, d.Position, i+1)
		}
	}

	got, err := repo.GetByID(ctx, created[1].ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if *got != created[1] {
		t.Errorf("GetByID() = %+v, want %+v", *got, created[1])
	}
}

func TestDashboardRepo_Create_AppendsAfterMaxPosition(t *testing.T) {
	repo, db := newTestRepo(t)

	created := createDashboards(t, repo, "a")
	if _, err := db.Exec("UPDATE dashboards SET position = 40 WHERE id = ?", created[0].ID); err != nil {
		t.Fatalf("failed to move dashboard: %v", err)
	}

	next := createDashboards(t, repo, "b")[0]
	if next.Position != 41 {
		t.Errorf("Create() position = %d, want 41", next.Position)
	}
}

func TestDashboardRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
	if got != nil {
		t.Errorf("GetByID() = %+v, want nil", got)
	}
}

func TestDashboardRepo_Update(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	d := createDashboards(t, repo, "a")[0]

	tests := []struct {
		name    string
		update  Dashboard
		wantErr error
	}{
		{
			name:   "existing dashboard",
			update: Dashboard{ID: d.ID, Name: "renamed", ComponentID: "news", Position: 7},
		},
		{
			name:    "missing dashboard",
			update:  Dashboard{ID: d.ID + 100, Name: "ghost", ComponentID: "news", Position: 1},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := tt.update
			err := repo.Update(ctx, &update)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Update() unexpected error: %v", err)
			}

			got, err := repo.GetByID(ctx, update.ID)
			if err != nil {
				t.Fatalf("GetByID() error = %v", err)
			}
			if *got != update {
				t.Errorf("GetByID() after Update() = %+v, want %+v", *got, update)
			}
		})
	}
}

func TestDashboardRepo_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created := createDashboards(t, repo, "a", "b", "c")

	if err := repo.Delete(ctx, created[1].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if err := repo.Delete(ctx, created[1].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}

	// Remaining positions keep their gap.
	remaining, err := repo.ListByPosition(ctx)
	if err != nil {
		t.Fatalf("ListByPosition() error = %v", err)
	}
	var positions []int
	for _, d := range remaining {
		positions = append(positions, d.Position)
	}
	if !slices.Equal(positions, []int{1, 3}) {
		t.Errorf("positions after Delete() = %v, want [1 3]", positions)
	}
}

func TestDashboardRepo_ListByIDs(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created := createDashboards(t, repo, "a", "b", "c")

	tests := []struct {
		name    string
		ids     []int
		wantIDs []int
	}{
		{
			name:    "empty input",
			ids:     nil,
			wantIDs: []int{},
		},
		{
			name:    "subset",
			ids:     []int{created[2].ID, created[0].ID},
			wantIDs: []int{created[0].ID, created[2].ID},
		},
		{
			name:    "unknown ids skipped",
			ids:     []int{created[1].ID, 999},
			wantIDs: []int{created[1].ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListByIDs(ctx, tt.ids)
			if err != nil {
				t.Fatalf("ListByIDs() error = %v", err)
			}

			gotIDs := []int{}
			for _, d := range got {
				gotIDs = append(gotIDs, d.ID)
			}
			sort.Ints(gotIDs)
			if !slices.Equal(gotIDs, tt.wantIDs) {
				t.Errorf("ListByIDs() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestDashboardRepo_ListByPosition(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	created := createDashboards(t, repo, "a", "b", "c")

	// c first, then a and b sharing a position (ties broken by id)
	if _, err := db.Exec("UPDATE dashboards SET position = 0 WHERE id = ?", created[2].ID); err != nil {
		t.Fatalf("failed to set position: %v", err)
	}
	if _, err := db.Exec("UPDATE dashboards SET position = 5 WHERE id IN (?, ?)", created[0].ID, created[1].ID); err != nil {
		t.Fatalf("failed to set position: %v", err)
	}

	want := []int{created[2].ID, created[0].ID, created[1].ID}

	dashboards, err := repo.ListByPosition(ctx)
	if err != nil {
		t.Fatalf("ListByPosition() error = %v", err)
	}
	var gotIDs []int
	for _, d := range dashboards {
		gotIDs = append(gotIDs, d.ID)
	}
	if !slices.Equal(gotIDs, want) {
		t.Errorf("ListByPosition() ids = %v, want %v", gotIDs, want)
	}

	ids, err := repo.ListIDsByPosition(ctx)
	if err != nil {
		t.Fatalf("ListIDsByPosition() error = %v", err)
	}
	if !slices.Equal(ids, want) {
		t.Errorf("ListIDsByPosition() = %v, want %v", ids, want)
	}
}

func TestDashboardRepo_ListIDsByPosition_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	ids, err := repo.ListIDsByPosition(context.Background())
	if err != nil {
		t.Fatalf("ListIDsByPosition() error = %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("ListIDsByPosition() = %#v, want empty non-nil slice", ids)
	}
}

func TestDashboardRepo_UpdatePositions(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created := createDashboards(t, repo, "a", "b", "c")
	a, b, c := created[0], created[1], created[2]

	a.Position, b.Position = b.Position, a.Position
	if err := repo.UpdatePositions(ctx, []Dashboard{a, b}); err != nil {
		t.Fatalf("UpdatePositions() error = %v", err)
	}

	ids, err := repo.ListIDsByPosition(ctx)
	if err != nil {
		t.Fatalf("ListIDsByPosition() error = %v", err)
	}
	if want := []int{b.ID, a.ID, c.ID}; !slices.Equal(ids, want) {
		t.Errorf("ListIDsByPosition() after swap = %v, want %v", ids, want)
	}

	// Name and component are untouched.
	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "a" || got.ComponentID != "component-a" || got.Position != 2 {
		t.Errorf("GetByID() = %+v, want name a, component-a, position 2", *got)
	}
}

func TestDashboardRepo_UpdatePositions_RollsBackOnMissingRow(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a := createDashboards(t, repo, "a")[0]

	err := repo.UpdatePositions(ctx, []Dashboard{
		{ID: a.ID, Position: 99},
		{ID: a.ID + 100, Position: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdatePositions() error = %v, want ErrNotFound", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Position != a.Position {
		t.Errorf("position after rollback = %d, want %d", got.Position, a.Position)
	}
}

func TestDashboardRepo_UpdatePositions_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	if err := repo.UpdatePositions(context.Background(), nil); err != nil {
		t.Errorf("UpdatePositions(nil) error = %v", err)
	}
}
