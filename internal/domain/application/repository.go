package application

import (
	"context"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*Application, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	List(ctx context.Context, filter ApplicationFilter) ([]Application, int64, error)
	ListByCandidate(ctx context.Context, candidateID string, filter ApplicationFilter) ([]Application, int64, error)
}
