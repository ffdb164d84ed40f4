package job

import "context"

type JobService interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	Get(ctx context.Context, id string) (JobResponse, error)
	Update(ctx context.Context, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter JobFilter) (ListJobsResponse, error)
}
