package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/location"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// Create implements location.LocationRepository.
func (l *locationRepository) Create(ctx context.Context, loc location.AllowedLocation) (location.AllowedLocation, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO allowed_locations (name, address, latitude, longitude, radius_meters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		loc.Name, loc.Address, loc.Latitude, loc.Longitude, loc.RadiusMeters,
	).Scan(&loc.ID, &loc.CreatedAt, &loc.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return location.AllowedLocation{}, location.ErrLocationNameExists
		}
		return location.AllowedLocation{}, fmt.Errorf("failed to create allowed location: %w", err)
	}

	return loc, nil
}

// GetByID implements location.LocationRepository.
func (l *locationRepository) GetByID(ctx context.Context, id string) (location.AllowedLocation, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters, created_at, updated_at
		FROM allowed_locations
		WHERE id = $1
	`

	var loc location.AllowedLocation
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.Latitude, &loc.Longitude,
		&loc.RadiusMeters, &loc.CreatedAt, &loc.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return location.AllowedLocation{}, location.ErrLocationNotFound
		}
		return location.AllowedLocation{}, fmt.Errorf("failed to get allowed location: %w", err)
	}

	return loc, nil
}

// GetAll implements location.LocationRepository. Order is stable so geofence
// tie-breaking is deterministic across requests.
func (l *locationRepository) GetAll(ctx context.Context) ([]location.AllowedLocation, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters, created_at, updated_at
		FROM allowed_locations
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query allowed locations: %w", err)
	}
	defer rows.Close()

	var locations []location.AllowedLocation
	for rows.Next() {
		var loc location.AllowedLocation
		err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address, &loc.Latitude, &loc.Longitude,
			&loc.RadiusMeters, &loc.CreatedAt, &loc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allowed location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// Update implements location.LocationRepository. Only the fields present in
// the request are touched.
func (l *locationRepository) Update(ctx context.Context, req location.UpdateLocationRequest) error {
	q := GetQuerier(ctx, l.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Address != nil {
		setClauses = append(setClauses, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Latitude != nil {
		setClauses = append(setClauses, fmt.Sprintf("latitude = $%d", argIdx))
		args = append(args, *req.Latitude)
		argIdx++
	}
	if req.Longitude != nil {
		setClauses = append(setClauses, fmt.Sprintf("longitude = $%d", argIdx))
		args = append(args, *req.Longitude)
		argIdx++
	}
	if req.RadiusMeters != nil {
		setClauses = append(setClauses, fmt.Sprintf("radius_meters = $%d", argIdx))
		args = append(args, *req.RadiusMeters)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE allowed_locations SET %s WHERE id = $1`, strings.Join(setClauses, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return location.ErrLocationNameExists
		}
		return fmt.Errorf("failed to update allowed location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

// Delete implements location.LocationRepository. Attendance snapshots are
// denormalized, so deleting a location never touches historical records.
func (l *locationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, l.db)

	tag, err := q.Exec(ctx, `DELETE FROM allowed_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete allowed location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}
