package dashboard_case

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/config"
	analysis_dto "github.com/nuwan-labs/project-buddy/internal/dtos/analysis-dto"
	dashboard_dto "github.com/nuwan-labs/project-buddy/internal/dtos/dashboard-dto"
	project_dto "github.com/nuwan-labs/project-buddy/internal/dtos/project-dto"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	plan_repo "github.com/nuwan-labs/project-buddy/internal/repo/plan-repo"
	project_repo "github.com/nuwan-labs/project-buddy/internal/repo/project-repo"
	summary_repo "github.com/nuwan-labs/project-buddy/internal/repo/summary-repo"
	worklog_repo "github.com/nuwan-labs/project-buddy/internal/repo/worklog-repo"
	"github.com/nuwan-labs/project-buddy/internal/utils"
)

const dashboardCacheTTL = 30 * time.Second

type DashboardService struct {
	plans     plan_repo.PlanRepoContract
	projects  project_repo.ProjectRepoContract
	logs      worklog_repo.WorkLogRepoContract
	summaries summary_repo.SummaryRepoContract
	redis     *redis.Client
	location  *time.Location
	now       func() time.Time
}

func NewDashboardService(db *pgxpool.Pool, rdb *redis.Client, cfg *config.AppConfig) DashboardServiceContract {
	loc := time.Local
	if cfg.SCHEDULER.Timezone != "" && cfg.SCHEDULER.Timezone != "Local" {
		if parsed, err := time.LoadLocation(cfg.SCHEDULER.Timezone); err == nil {
			loc = parsed
		}
	}

	return &DashboardService{
		plans:     plan_repo.NewPlanRepo(db),
		projects:  project_repo.NewProjectRepo(db),
		logs:      worklog_repo.NewWorkLogRepo(db),
		summaries: summary_repo.NewSummaryRepo(db),
		redis:     rdb,
		location:  loc,
		now:       time.Now,
	}
}

// GetDashboard assembles the active plan overview: projects with completion,
// the sprint selection, today's logs and summary. The result is cached
// briefly since the frontend polls it.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dashboard_dto.DashboardResponse, *app_errors.AppError) {
	today := s.now().In(s.location).Format("2006-01-02")
	cacheKey := fmt.Sprintf("pb:dashboard:%s", today)

	if s.redis != nil {
		cached, err := utils.GetCacheData[dashboard_dto.DashboardResponse](ctx, s.redis, cacheKey)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	resp := &dashboard_dto.DashboardResponse{
		Projects:  []dashboard_dto.DashboardProject{},
		TodayLogs: []entity.WorkLogDetail{},
	}

	plan, err := s.plans.GetActivePlan(ctx)
	if err != nil && err.Code != fiber.StatusNotFound {
		return nil, err
	}

	if plan != nil && err == nil {
		resp.Plan = plan
		resp.DaysRemaining = plan.DaysRemaining(s.now().In(s.location))

		projects, err := s.projects.ListProjects(ctx, &project_dto.ProjectListFilter{PlanID: &plan.ID})
		if err != nil {
			return nil, err
		}
		for i := range projects {
			stats, err := s.projects.GetProjectStats(ctx, projects[i].ID)
			if err != nil {
				return nil, err
			}
			resp.Projects = append(resp.Projects, dashboard_dto.DashboardProject{
				ID:                projects[i].ID,
				Name:              projects[i].Name,
				Status:            string(projects[i].Status),
				ColorTag:          projects[i].ColorTag,
				CompletionPercent: stats.CompletionPercent,
			})
		}

		selections, err := s.plans.ListSprintSelections(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		resp.SprintActivity = selections
	}

	logs, err := s.logs.ListWorkLogsByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	resp.TodayLogs = logs
	resp.TodayHours = entity.TotalHoursFromLogs(logs)

	if summary, err := s.summaries.GetSummaryByDate(ctx, today); err == nil {
		converted := analysis_dto.ToSummaryResponse(summary)
		resp.TodaySummary = &converted
	}

	if s.redis != nil {
		if err := utils.SetCacheData(ctx, s.redis, cacheKey, resp, dashboardCacheTTL); err != nil {
			log.Warn().Str("key", cacheKey).Msg("dashboard: cache write failed")
		}
	}

	return resp, nil
}
