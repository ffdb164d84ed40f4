package settings

import "context"

type SettingsRepository interface {
	// Get returns the current time settings, or Defaults() when none were
	// configured yet.
	Get(ctx context.Context) (TimeSettings, error)
	Update(ctx context.Context, s TimeSettings) error
}
