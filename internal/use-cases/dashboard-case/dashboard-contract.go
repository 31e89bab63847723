package dashboard_case

import (
	"context"

	dashboard_dto "github.com/nuwan-labs/project-buddy/internal/dtos/dashboard-dto"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

type DashboardServiceContract interface {
	GetDashboard(ctx context.Context) (*dashboard_dto.DashboardResponse, *app_errors.AppError)
}
