package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
	"github.com/worklane/jobboard-backend-go/internal/handler/http/response"
	"github.com/worklane/jobboard-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateLocation(w http.ResponseWriter, r *http.Request)
	GetLocation(w http.ResponseWriter, r *http.Request)
	ListLocations(w http.ResponseWriter, r *http.Request)
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	DeleteLocation(w http.ResponseWriter, r *http.Request)

	GetTimeSettings(w http.ResponseWriter, r *http.Request)
	UpdateTimeSettings(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// CreateLocation implements MasterHandler.
func (h *MasterHandlerImpl) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var createReq location.CreateLocationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.CreateLocation(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateLocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Allowed location created", "location_id", resp.ID, "name", resp.Name)
	response.Created(w, "Allowed location created successfully", resp)
}

// GetLocation implements MasterHandler.
func (h *MasterHandlerImpl) GetLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.masterService.GetLocation(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListLocations implements MasterHandler.
func (h *MasterHandlerImpl) ListLocations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.masterService.ListLocations(r.Context())
	if err != nil {
		slog.Error("ListLocations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateLocation implements MasterHandler.
func (h *MasterHandlerImpl) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var updateReq location.UpdateLocationRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	resp, err := h.masterService.UpdateLocation(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateLocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allowed location updated successfully", resp)
}

// DeleteLocation implements MasterHandler.
func (h *MasterHandlerImpl) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteLocation(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Allowed location deleted", "location_id", id)
	response.SuccessWithMessage(w, "Allowed location deleted successfully", nil)
}

// GetTimeSettings implements MasterHandler.
func (h *MasterHandlerImpl) GetTimeSettings(w http.ResponseWriter, r *http.Request) {
	resp, err := h.masterService.GetTimeSettings(r.Context())
	if err != nil {
		slog.Error("GetTimeSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateTimeSettings implements MasterHandler.
func (h *MasterHandlerImpl) UpdateTimeSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq settings.UpdateTimeSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTimeSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.masterService.UpdateTimeSettings(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateTimeSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Time settings updated",
		"check_in_start_hour", resp.CheckInStartHour,
		"check_in_end_hour", resp.CheckInEndHour,
		"check_out_start_hour", resp.CheckOutStartHour,
	)
	response.SuccessWithMessage(w, "Time settings updated successfully", resp)
}
