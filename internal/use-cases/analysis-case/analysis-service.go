package analysis_case

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/nuwan-labs/project-buddy/internal/config"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
	plan_repo "github.com/nuwan-labs/project-buddy/internal/repo/plan-repo"
	summary_repo "github.com/nuwan-labs/project-buddy/internal/repo/summary-repo"
	worklog_repo "github.com/nuwan-labs/project-buddy/internal/repo/worklog-repo"
)

type AnalysisService struct {
	summaries summary_repo.SummaryRepoContract
	logs      worklog_repo.WorkLogRepoContract
	plans     plan_repo.PlanRepoContract
	client    ollama.Client
	enabled   bool
}

func NewAnalysisService(db *pgxpool.Pool, cfg *config.AppConfig, client ollama.Client) AnalysisServiceContract {
	return &AnalysisService{
		summaries: summary_repo.NewSummaryRepo(db),
		logs:      worklog_repo.NewWorkLogRepo(db),
		plans:     plan_repo.NewPlanRepo(db),
		client:    client,
		enabled:   cfg.OLLAMA.AnalysisEnabled,
	}
}

func (s *AnalysisService) AnalyzeDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	if !s.enabled {
		log.Info().Str("date", date).Msg("analysis: disabled in configuration")
		return s.store(ctx, date, &AnalysisResult{
			Summary:     "Analysis is disabled in configuration.",
			Blockers:    entity.EmptyJSONArray,
			Highlights:  entity.EmptyJSONArray,
			Suggestions: entity.EmptyJSONArray,
			Patterns:    entity.EmptyJSONArray,
		})
	}

	logs, err := s.logs.ListWorkLogsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	if len(logs) == 0 {
		return s.store(ctx, date, &AnalysisResult{
			Summary:     fmt.Sprintf("No activity logs for %s.", date),
			Blockers:    entity.EmptyJSONArray,
			Highlights:  entity.EmptyJSONArray,
			Suggestions: entity.EmptyJSONArray,
			Patterns:    entity.EmptyJSONArray,
		})
	}

	log.Info().Str("date", date).Int("logs", len(logs)).Msg("analysis: sending logs to model")

	raw, genErr := s.client.Generate(ctx, BuildPrompt(date, logs))
	if genErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusServiceUnavailable, app_errors.ErrUpstream, "upstream_unavailable", genErr)
	}

	result := ParseAnalysis(raw)
	if result.Degraded {
		log.Warn().Str("date", date).Msg("analysis: model reply unparseable, storing raw snippet")
	}

	return s.store(ctx, date, result)
}

func (s *AnalysisService) RunScheduledAnalysis(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	summary, err := s.AnalyzeDate(ctx, date)
	if err == nil {
		return summary, nil
	}
	if err.Type != app_errors.ErrUpstream {
		return nil, err
	}

	log.Error().Str("date", date).Str("error", err.Error()).Msg("analysis: model unavailable, storing fallback summary")

	return s.store(ctx, date, &AnalysisResult{
		Summary:     fmt.Sprintf("Analysis could not be completed: %s", err.Error()),
		Blockers:    entity.EmptyJSONArray,
		Highlights:  entity.EmptyJSONArray,
		Suggestions: entity.EmptyJSONArray,
		Patterns:    entity.EmptyJSONArray,
		Degraded:    true,
	})
}

func (s *AnalysisService) store(ctx context.Context, date string, result *AnalysisResult) (*entity.DailySummaryEntity, *app_errors.AppError) {
	var planID *int64
	if plan, err := s.plans.GetActivePlan(ctx); err == nil {
		planID = &plan.ID
	}

	return s.summaries.UpsertSummary(ctx, &entity.DailySummaryEntity{
		PlanID:      planID,
		Date:        date,
		SummaryText: result.Summary,
		Blockers:    result.Blockers,
		Highlights:  result.Highlights,
		Suggestions: result.Suggestions,
		Patterns:    result.Patterns,
	})
}

func (s *AnalysisService) GetSummaryByDate(ctx context.Context, date string) (*entity.DailySummaryEntity, *app_errors.AppError) {
	return s.summaries.GetSummaryByDate(ctx, date)
}

func (s *AnalysisService) ListSummaries(ctx context.Context, limit int) ([]entity.DailySummaryEntity, *app_errors.AppError) {
	return s.summaries.ListSummaries(ctx, limit)
}

func (s *AnalysisService) OllamaStatus(ctx context.Context) *ollama.HealthStatus {
	return s.client.Health(ctx)
}
