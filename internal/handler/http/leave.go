package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/handler/http/response"
	"github.com/leavedesk/leavedesk-go/internal/service/board"
	"github.com/leavedesk/leavedesk-go/internal/service/dashboard"
	"github.com/leavedesk/leavedesk-go/internal/service/query"
)

type LeaveHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	boardService     *board.Service
	dashboardService *dashboard.Service
}

func NewLeaveHandler(boardService *board.Service, dashboardService *dashboard.Service) LeaveHandler {
	return &LeaveHandlerImpl{
		boardService:     boardService,
		dashboardService: dashboardService,
	}
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

// Login implements LeaveHandler. The passcode is memoized by the board
// session on success and reused on every collaborator call.
func (h *LeaveHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.boardService.Login(r.Context(), req.Passcode); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Authenticated", map[string]string{
		"state": string(h.boardService.State()),
	})
}

// controlsFromQuery builds the pipeline controls from the request's query
// string. Unknown values fall back to the defaults.
func controlsFromQuery(r *http.Request) query.Controls {
	q := r.URL.Query()
	return query.Controls{
		Search: strings.TrimSpace(q.Get("search")),
		Filter: query.ParseFilter(q.Get("filter")),
		Sort:   query.ParseSort(q.Get("sort"), q.Get("dir")),
	}
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboardService.View(r.Context(), controlsFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, view, &response.Meta{TotalItems: len(view)})
}

// Create implements LeaveHandler. Validation failures are local and never
// reach the collaborator.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.boardService.Add(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record submitted", nil)
}

// Delete implements LeaveHandler. The confirm query parameter carries the
// explicit confirmation step; without it nothing is sent to the collaborator.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := h.boardService.Remove(r.Context(), leave.RowID(id), confirmed); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record deleted", nil)
}

// UpdateStatus implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req leave.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.boardService.SetStatus(r.Context(), leave.RowID(id), req.Status); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave status updated", nil)
}

// UpdateType implements LeaveHandler. This is the remediation path for
// records tagged with the ineligible bereavement sentinel.
func (h *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req leave.UpdateTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.boardService.SetType(r.Context(), leave.RowID(id), req.Type); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated", nil)
}

// Refresh implements LeaveHandler.
func (h *LeaveHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.boardService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Records reloaded", nil)
}

type leaveTypesResponse struct {
	Types            []string `json:"types"`
	RemediationTypes []string `json:"remediation_types"`
}

// ListTypes implements LeaveHandler. The optional search term filters the
// closed set the way the form's type picker does.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("search"))
	response.Success(w, leaveTypesResponse{
		Types:            leave.SearchTypes(term),
		RemediationTypes: leave.RemediationTypes,
	})
}
