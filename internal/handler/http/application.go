package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/application"
	"github.com/worklane/jobboard-backend-go/internal/handler/http/response"
)

type ApplicationHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type ApplicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &ApplicationHandlerImpl{applicationService: applicationService}
}

// Apply implements ApplicationHandler. The request is multipart: form fields
// plus the resume file.
func (h *ApplicationHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Apply multipart parse error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	applyReq := application.ApplyRequest{
		JobID: r.FormValue("job_id"),
	}
	if coverLetter := r.FormValue("cover_letter"); coverLetter != "" {
		applyReq.CoverLetter = &coverLetter
	}

	file, fileHeader, err := r.FormFile("resume")
	if err == nil {
		defer file.Close()
		applyReq.File = file
		applyReq.FileHeader = fileHeader
	}

	resp, err := h.applicationService.Apply(r.Context(), applyReq)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Application submitted", "application_id", resp.ID, "job_id", resp.JobID)
	response.Created(w, "Application submitted successfully", resp)
}

// Get implements ApplicationHandler.
func (h *ApplicationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.applicationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateStatus implements ApplicationHandler.
func (h *ApplicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var updateReq application.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	resp, err := h.applicationService.UpdateStatus(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Application status updated", "application_id", resp.ID, "status", resp.Status)
	response.SuccessWithMessage(w, "Application status updated", resp)
}

func parseApplicationFilter(r *http.Request) application.ApplicationFilter {
	q := r.URL.Query()

	filter := application.ApplicationFilter{
		Page:      1,
		Limit:     20,
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if v := q.Get("job_id"); v != "" {
		filter.JobID = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	return filter
}

// List implements ApplicationHandler.
func (h *ApplicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.List(r.Context(), parseApplicationFilter(r))
	if err != nil {
		slog.Error("List applications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListMine implements ApplicationHandler.
func (h *ApplicationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.applicationService.ListMine(r.Context(), parseApplicationFilter(r))
	if err != nil {
		slog.Error("ListMine applications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ExportCSV implements ApplicationHandler.
func (h *ApplicationHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.applicationService.ExportCSV(r.Context(), parseApplicationFilter(r))
	if err != nil {
		slog.Error("ExportCSV applications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("applications-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
