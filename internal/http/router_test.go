package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"publicdashboard/internal/handlers"
	"publicdashboard/internal/registry"
	"publicdashboard/internal/service/mocks"
	"publicdashboard/internal/session"
	"publicdashboard/internal/storage"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockDashboardService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	components, err := registry.NewWithComponents(nil)
	if err != nil {
		t.Fatalf("NewWithComponents() error = %v", err)
	}
	svc := mocks.NewMockDashboardService(ctrl)

	router := NewRouter(&Deps{
		Dashboards: handlers.NewDashboardHandler(svc, components, 50),
		Health:     handlers.NewHealthHandler(okPinger{}),
		Sessions:   session.NewManager("sid", time.Minute),
	})
	return router, svc
}

func TestNewRouter(t *testing.T) {
	router, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router, svc := newTestRouter(t)

	svc.EXPECT().ListOrderedIDs(gomock.Any(), gomock.Any(), true).Return([]int{}, nil).AnyTimes()
	svc.EXPECT().ResolveRecords(gomock.Any(), gomock.Any()).Return([]storage.Dashboard{}, nil).AnyTimes()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "GET health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "GET root redirects", method: http.MethodGet, path: "/", wantStatus: http.StatusFound},
		{name: "GET manage", method: http.MethodGet, path: "/admin/dashboards", wantStatus: http.StatusOK},
		{name: "GET create form", method: http.MethodGet, path: "/admin/dashboards/new", wantStatus: http.StatusOK},
		{name: "POST create without token", method: http.MethodPost, path: "/admin/dashboards", wantStatus: http.StatusForbidden},
		{name: "POST modify without token", method: http.MethodPost, path: "/admin/dashboards/3", wantStatus: http.StatusForbidden},
		{name: "POST move up without token", method: http.MethodPost, path: "/admin/dashboards/3/move-up", wantStatus: http.StatusForbidden},
		{name: "POST move down without token", method: http.MethodPost, path: "/admin/dashboards/3/move-down", wantStatus: http.StatusForbidden},
		{name: "POST remove without token", method: http.MethodPost, path: "/admin/dashboards/3/remove", wantStatus: http.StatusForbidden},
		{name: "GET move up not allowed", method: http.MethodGet, path: "/admin/dashboards/3/move-up", wantStatus: http.StatusMethodNotAllowed},
		{name: "POST health not allowed", method: http.MethodPost, path: "/api/health", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/admin/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

var moveUpForm = regexp.MustCompile(`action="/admin/dashboards/(\d+)/move-up">\s*<input type="hidden" name="token" value="([^"]+)"`)

func TestRouter_MoveUpFlow(t *testing.T) {
	router, svc := newTestRouter(t)

	listed := []storage.Dashboard{
		{ID: 1, Name: "Headlines", ComponentID: "news", Position: 1},
		{ID: 2, Name: "Events", ComponentID: "agenda", Position: 2},
	}
	gomock.InOrder(
		svc.EXPECT().ListOrderedIDs(gomock.Any(), gomock.Any(), true).Return([]int{1, 2}, nil),
		svc.EXPECT().ResolveRecords(gomock.Any(), []int{1, 2}).Return(listed, nil),
		svc.EXPECT().MoveUp(gomock.Any(), gomock.Any(), 2).Return(nil),
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboards", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET manage status = %d", w.Code)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("manage view should start a session")
	}
	match := moveUpForm.FindStringSubmatch(w.Body.String())
	if match == nil || match[1] != "2" {
		t.Fatalf("manage view should offer move up for dashboard 2 only, got %v", match)
	}

	form := url.Values{"token": {match[2]}}
	req := httptest.NewRequest(http.MethodPost, "/admin/dashboards/2/move-up", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST move-up status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if loc := w.Header().Get("Location"); loc != handlers.ManagePath {
		t.Errorf("Location = %q, want %q", loc, handlers.ManagePath)
	}
}
