package location

import "context"

type LocationRepository interface {
	Create(ctx context.Context, loc AllowedLocation) (AllowedLocation, error)
	GetByID(ctx context.Context, id string) (AllowedLocation, error)
	GetAll(ctx context.Context) ([]AllowedLocation, error)
	Update(ctx context.Context, req UpdateLocationRequest) error
	Delete(ctx context.Context, id string) error
}
