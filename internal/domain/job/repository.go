package job

import (
	"context"
)

type JobRepository interface {
	Create(ctx context.Context, job Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	Update(ctx context.Context, job Job) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter JobFilter) ([]Job, int64, error)
}
