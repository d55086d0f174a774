package handlers

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"publicdashboard/internal/contextutil"
	"publicdashboard/internal/forms"
	"publicdashboard/internal/pagination"
	"publicdashboard/internal/registry"
	"publicdashboard/internal/service"
	"publicdashboard/internal/session"
	"publicdashboard/internal/storage"
)

// ManagePath is the manage view of the dashboards.
const ManagePath = "/admin/dashboards"

// Security token actions.
const (
	ActionCreate   = "createDashboard"
	ActionModify   = "modifyDashboard"
	ActionRemove   = "removeDashboard"
	ActionMoveUp   = "moveUpDashboard"
	ActionMoveDown = "moveDownDashboard"
)

// Flash messages.
const (
	InfoCreated = "Dashboard created"
	InfoUpdated = "Dashboard updated"
	InfoRemoved = "Dashboard removed"
)

const msgNotFound = "Resource not found"

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page carries the parts shared by every admin page.
type Page struct {
	Title  string
	Infos  []string
	Errors []string
}

type manageRow struct {
	storage.Dashboard
	Component template.HTML
	First     bool
	Last      bool
}

type managePage struct {
	Page
	Rows          []manageRow
	Pager         pagination.Paginator
	MoveUpToken   string
	MoveDownToken string
}

type formPage struct {
	Page
	Action     string
	Submit     string
	Token      string
	Form       forms.DashboardForm
	Components []registry.Descriptor
}

type removePage struct {
	Page
	Dashboard *storage.Dashboard
	Token     string
}

type errorPage struct {
	Page
	Message string
}

// DashboardHandler serves the dashboard admin pages.
type DashboardHandler struct {
	service      service.DashboardService
	components   *registry.Registry
	validator    *forms.Validator
	markdown     *markdown
	itemsPerPage int
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc service.DashboardService, components *registry.Registry, itemsPerPage int) *DashboardHandler {
	return &DashboardHandler{
		service:    svc,
		components: components,
		validator: forms.NewValidator(func(id string) bool {
			_, ok := components.Lookup(id)
			return ok
		}),
		markdown:     newMarkdown(),
		itemsPerPage: itemsPerPage,
	}
}

// Manage renders one page of the ordered dashboard list.
func (h *DashboardHandler) Manage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	sess.Draft = nil
	continuation := sess.Page.Apply(r.URL.Query(), h.itemsPerPage)

	ids, err := h.service.ListOrderedIDs(ctx, &sess.Dashboards, !continuation)
	if err != nil {
		h.serverError(w, r, "failed to list dashboards", err)
		return
	}

	pager := pagination.New(len(ids), sess.Page.PageIndex, sess.Page.ItemsPerPage)
	sess.Page.PageIndex = pager.PageIndex
	pageIDs := pagination.Page(ids, pager)

	records, err := h.service.ResolveRecords(ctx, pageIDs)
	if err != nil {
		h.serverError(w, r, "failed to load dashboards", err)
		return
	}

	rank := make(map[int]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	descriptions := h.markdown.renderAll(h.components.Descriptions())

	rows := make([]manageRow, 0, len(records))
	for _, d := range records {
		rows = append(rows, manageRow{
			Dashboard: d,
			Component: descriptions[d.ComponentID],
			First:     rank[d.ID] == 0,
			Last:      rank[d.ID] == len(ids)-1,
		})
	}

	h.render(w, r, http.StatusOK, "manage.html", managePage{
		Page:          h.page(sess, "Manage dashboards"),
		Rows:          rows,
		Pager:         pager,
		MoveUpToken:   sess.IssueToken(ActionMoveUp),
		MoveDownToken: sess.IssueToken(ActionMoveDown),
	})
}

// CreateForm renders the create form, prefilled with a rejected submission if any.
func (h *DashboardHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var form forms.DashboardForm
	if sess.Draft != nil && sess.Draft.ID == 0 {
		form = forms.FromDashboard(sess.Draft)
	}

	h.render(w, r, http.StatusOK, "form.html", formPage{
		Page:       h.page(sess, "Create a dashboard"),
		Action:     ManagePath,
		Submit:     "Create",
		Token:      sess.IssueToken(ActionCreate),
		Form:       form,
		Components: h.components.Components(),
	})
}

// Create stores a new dashboard at the end of the list.
func (h *DashboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok || !h.checkToken(w, r, sess, ActionCreate) {
		return
	}

	form, err := forms.Parse(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft := &storage.Dashboard{}
	form.Apply(draft)
	sess.Draft = draft

	if err := h.validator.Validate(form); err != nil {
		h.rejectForm(w, r, sess, ManagePath+"/new", err)
		return
	}

	if err := h.service.Create(ctx, &sess.Dashboards, draft); err != nil {
		h.rejectForm(w, r, sess, ManagePath+"/new", err)
		return
	}

	sess.Draft = nil
	sess.AddInfo(InfoCreated)
	http.Redirect(w, r, ManagePath, http.StatusSeeOther)
}

// ModifyForm renders the modify form of one dashboard.
func (h *DashboardHandler) ModifyForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	dashboard, ok := h.loadForModify(w, r, sess)
	if !ok {
		return
	}

	h.render(w, r, http.StatusOK, "form.html", formPage{
		Page:       h.page(sess, "Modify a dashboard"),
		Action:     dashboardPath(dashboard.ID, ""),
		Submit:     "Save",
		Token:      sess.IssueToken(ActionModify),
		Form:       forms.FromDashboard(dashboard),
		Components: h.components.Components(),
	})
}

// Modify stores the submitted name and component of one dashboard.
func (h *DashboardHandler) Modify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok || !h.checkToken(w, r, sess, ActionModify) {
		return
	}

	id, ok := h.dashboardID(w, r, sess)
	if !ok {
		return
	}

	// The stored record, not the draft, supplies the position.
	dashboard, err := h.service.Get(ctx, id)
	if err != nil {
		sess.Draft = nil
		h.storeError(w, r, sess, "failed to load dashboard", err)
		return
	}

	form, err := forms.Parse(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated := *dashboard
	form.Apply(&updated)
	sess.Draft = &updated

	editPath := dashboardPath(updated.ID, "/edit")
	if err := h.validator.Validate(form); err != nil {
		h.rejectForm(w, r, sess, editPath, err)
		return
	}

	if err := h.service.Update(ctx, &sess.Dashboards, &updated); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			sess.Draft = nil
			h.notFound(w, r, sess)
			return
		}
		h.rejectForm(w, r, sess, editPath, err)
		return
	}

	sess.Draft = nil
	sess.AddInfo(InfoUpdated)
	http.Redirect(w, r, ManagePath, http.StatusSeeOther)
}

// ConfirmRemove asks for confirmation before a removal.
func (h *DashboardHandler) ConfirmRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	id, ok := h.dashboardID(w, r, sess)
	if !ok {
		return
	}

	dashboard, err := h.service.Get(ctx, id)
	if err != nil {
		h.storeError(w, r, sess, "failed to load dashboard", err)
		return
	}

	h.render(w, r, http.StatusOK, "remove.html", removePage{
		Page:      h.page(sess, "Remove a dashboard"),
		Dashboard: dashboard,
		Token:     sess.IssueToken(ActionRemove),
	})
}

// Remove deletes one dashboard.
func (h *DashboardHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok || !h.checkToken(w, r, sess, ActionRemove) {
		return
	}

	id, ok := h.dashboardID(w, r, sess)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, &sess.Dashboards, id); err != nil {
		h.storeError(w, r, sess, "failed to remove dashboard", err)
		return
	}

	sess.AddInfo(InfoRemoved)
	http.Redirect(w, r, ManagePath, http.StatusSeeOther)
}

// MoveUp swaps one dashboard with its predecessor.
func (h *DashboardHandler) MoveUp(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, ActionMoveUp, h.service.MoveUp)
}

// MoveDown swaps one dashboard with its successor.
func (h *DashboardHandler) MoveDown(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, ActionMoveDown, h.service.MoveDown)
}

func (h *DashboardHandler) move(w http.ResponseWriter, r *http.Request, action string, fn func(context.Context, *service.ListCache, int) error) {
	sess, ok := h.session(w, r)
	if !ok || !h.checkToken(w, r, sess, action) {
		return
	}

	id, ok := h.dashboardID(w, r, sess)
	if !ok {
		return
	}

	if err := fn(r.Context(), &sess.Dashboards, id); err != nil {
		h.serverError(w, r, "failed to move dashboard", err)
		return
	}
	http.Redirect(w, r, ManagePath, http.StatusSeeOther)
}

// loadForModify returns the draft when it targets the requested id, otherwise the
// stored record, which becomes the new draft.
func (h *DashboardHandler) loadForModify(w http.ResponseWriter, r *http.Request, sess *session.Session) (*storage.Dashboard, bool) {
	id, ok := h.dashboardID(w, r, sess)
	if !ok {
		return nil, false
	}

	if sess.Draft != nil && sess.Draft.ID == id {
		return sess.Draft, true
	}

	dashboard, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, r, sess, "failed to load dashboard", err)
		return nil, false
	}
	sess.Draft = dashboard
	return dashboard, true
}

// rejectForm queues the validation messages and sends the operator back to the form.
// Errors other than validation failures answer 500.
func (h *DashboardHandler) rejectForm(w http.ResponseWriter, r *http.Request, sess *session.Session, formPath string, err error) {
	var formErrs forms.Errors
	var fieldErr *service.ValidationError
	switch {
	case errors.As(err, &formErrs):
		for _, msg := range formErrs.Messages() {
			sess.AddError(msg)
		}
	case errors.As(err, &fieldErr):
		sess.AddError(fieldErr.Field + " " + fieldErr.Message)
	default:
		h.serverError(w, r, "failed to save dashboard", err)
		return
	}

	contextutil.LoggerFromContext(r.Context()).InfoContext(r.Context(), "dashboard form rejected", "error", err)
	http.Redirect(w, r, formPath, http.StatusSeeOther)
}

func (h *DashboardHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		h.serverError(w, r, "no session in request context", errors.New("session middleware not installed"))
		return nil, false
	}
	return sess, true
}

func (h *DashboardHandler) checkToken(w http.ResponseWriter, r *http.Request, sess *session.Session, action string) bool {
	if err := sess.ValidateToken(action, r.PostFormValue(forms.FieldToken)); err != nil {
		contextutil.LoggerFromContext(r.Context()).WarnContext(r.Context(), "rejected security token", "action", action)
		h.render(w, r, http.StatusForbidden, "error.html", errorPage{
			Page:    h.page(sess, "Forbidden"),
			Message: "Invalid security token",
		})
		return false
	}
	return true
}

// dashboardID parses the id URL parameter. Malformed ids name no resource.
func (h *DashboardHandler) dashboardID(w http.ResponseWriter, r *http.Request, sess *session.Session) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.notFound(w, r, sess)
		return 0, false
	}
	return id, true
}

func (h *DashboardHandler) storeError(w http.ResponseWriter, r *http.Request, sess *session.Session, msg string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		h.notFound(w, r, sess)
		return
	}
	h.serverError(w, r, msg, err)
}

func (h *DashboardHandler) notFound(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	h.render(w, r, http.StatusNotFound, "error.html", errorPage{
		Page:    h.page(sess, "Not found"),
		Message: msgNotFound,
	})
}

func (h *DashboardHandler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	contextutil.LoggerFromContext(r.Context()).WarnContext(r.Context(), "bad request", "error", err)
	http.Error(w, "bad request", http.StatusBadRequest)
}

func (h *DashboardHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	contextutil.LoggerFromContext(r.Context()).ErrorContext(r.Context(), msg, "error", err)
	h.render(w, r, http.StatusInternalServerError, "error.html", errorPage{
		Page:    Page{Title: "Error"},
		Message: "An internal error occurred",
	})
}

// page pops the flash messages of sess into the shared page data.
func (h *DashboardHandler) page(sess *session.Session, title string) Page {
	if sess == nil {
		return Page{Title: title}
	}
	return Page{Title: title, Infos: sess.PopInfos(), Errors: sess.PopErrors()}
}

func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		contextutil.LoggerFromContext(r.Context()).ErrorContext(r.Context(), "failed to execute template", "template", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func dashboardPath(id int, suffix string) string {
	return fmt.Sprintf("%s/%d%s", ManagePath, id, suffix)
}
