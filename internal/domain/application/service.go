package application

import "context"

type ApplicationService interface {
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	Get(ctx context.Context, id string) (ApplicationResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (ApplicationResponse, error)
	List(ctx context.Context, filter ApplicationFilter) (ListApplicationsResponse, error)
	ListMine(ctx context.Context, filter ApplicationFilter) (ListApplicationsResponse, error)
	ExportCSV(ctx context.Context, filter ApplicationFilter) ([]byte, error)
}
