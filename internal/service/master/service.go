package master

import (
	"context"
	"fmt"

	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
)

// MasterService groups the admin-managed reference data: allowed attendance
// locations and the attendance time windows.
type MasterService interface {
	// Allowed location operations
	CreateLocation(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error)
	GetLocation(ctx context.Context, id string) (location.LocationResponse, error)
	ListLocations(ctx context.Context) ([]location.LocationResponse, error)
	UpdateLocation(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error)
	DeleteLocation(ctx context.Context, id string) error

	// Time settings operations
	GetTimeSettings(ctx context.Context) (settings.TimeSettingsResponse, error)
	UpdateTimeSettings(ctx context.Context, req settings.UpdateTimeSettingsRequest) (settings.TimeSettingsResponse, error)
}

type masterServiceImpl struct {
	locationRepo location.LocationRepository
	settingsRepo settings.SettingsRepository
}

func NewMasterService(locationRepo location.LocationRepository, settingsRepo settings.SettingsRepository) MasterService {
	return &masterServiceImpl{
		locationRepo: locationRepo,
		settingsRepo: settingsRepo,
	}
}

// CreateLocation implements MasterService.
func (s *masterServiceImpl) CreateLocation(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	newLocation := location.AllowedLocation{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}

	created, err := s.locationRepo.Create(ctx, newLocation)
	if err != nil {
		return location.LocationResponse{}, err
	}

	return mapLocationToResponse(created), nil
}

// GetLocation implements MasterService.
func (s *masterServiceImpl) GetLocation(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return mapLocationToResponse(loc), nil
}

// ListLocations implements MasterService.
func (s *masterServiceImpl) ListLocations(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowed locations: %w", err)
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, mapLocationToResponse(loc))
	}
	return responses, nil
}

// UpdateLocation implements MasterService.
func (s *masterServiceImpl) UpdateLocation(ctx context.Context, req location.UpdateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	if err := s.locationRepo.Update(ctx, req); err != nil {
		return location.LocationResponse{}, err
	}

	updated, err := s.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return mapLocationToResponse(updated), nil
}

// DeleteLocation implements MasterService.
func (s *masterServiceImpl) DeleteLocation(ctx context.Context, id string) error {
	return s.locationRepo.Delete(ctx, id)
}

// GetTimeSettings implements MasterService.
func (s *masterServiceImpl) GetTimeSettings(ctx context.Context) (settings.TimeSettingsResponse, error) {
	ts, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.TimeSettingsResponse{}, err
	}
	return mapSettingsToResponse(ts), nil
}

// UpdateTimeSettings implements MasterService.
func (s *masterServiceImpl) UpdateTimeSettings(ctx context.Context, req settings.UpdateTimeSettingsRequest) (settings.TimeSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.TimeSettingsResponse{}, err
	}

	ts := settings.TimeSettings{
		CheckInStartHour:  req.CheckInStartHour,
		CheckInEndHour:    req.CheckInEndHour,
		CheckOutStartHour: req.CheckOutStartHour,
	}
	if err := s.settingsRepo.Update(ctx, ts); err != nil {
		return settings.TimeSettingsResponse{}, err
	}

	return mapSettingsToResponse(ts), nil
}

func mapLocationToResponse(loc location.AllowedLocation) location.LocationResponse {
	return location.LocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Address:      loc.Address,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.RadiusMeters,
	}
}

func mapSettingsToResponse(ts settings.TimeSettings) settings.TimeSettingsResponse {
	return settings.TimeSettingsResponse{
		CheckInStartHour:  ts.CheckInStartHour,
		CheckInEndHour:    ts.CheckInEndHour,
		CheckOutStartHour: ts.CheckOutStartHour,
	}
}
