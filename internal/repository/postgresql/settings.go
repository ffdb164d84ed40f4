package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklane/jobboard-backend-go/internal/domain/settings"
	"github.com/worklane/jobboard-backend-go/internal/pkg/database"
)

// time_settings is a single-row table keyed by a fixed id.
const timeSettingsRowID = 1

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (s *settingsRepository) Get(ctx context.Context) (settings.TimeSettings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT check_in_start_hour, check_in_end_hour, check_out_start_hour, updated_at
		FROM time_settings
		WHERE id = $1
	`

	var ts settings.TimeSettings
	err := q.QueryRow(ctx, query, timeSettingsRowID).Scan(
		&ts.CheckInStartHour, &ts.CheckInEndHour, &ts.CheckOutStartHour, &ts.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Defaults(), nil
		}
		return settings.TimeSettings{}, fmt.Errorf("failed to get time settings: %w", err)
	}

	return ts, nil
}

// Update implements settings.SettingsRepository.
func (s *settingsRepository) Update(ctx context.Context, ts settings.TimeSettings) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO time_settings (id, check_in_start_hour, check_in_end_hour, check_out_start_hour, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
		SET check_in_start_hour = EXCLUDED.check_in_start_hour,
			check_in_end_hour = EXCLUDED.check_in_end_hour,
			check_out_start_hour = EXCLUDED.check_out_start_hour,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, timeSettingsRowID, ts.CheckInStartHour, ts.CheckInEndHour, ts.CheckOutStartHour)
	if err != nil {
		return fmt.Errorf("failed to update time settings: %w", err)
	}

	return nil
}
