package cascade_case

import (
	"context"

	"github.com/nuwan-labs/project-buddy/internal/abstraction/tx"
	"github.com/nuwan-labs/project-buddy/internal/entity"
	app_errors "github.com/nuwan-labs/project-buddy/internal/errors"
)

// CascadeServiceContract recomputes a project's status from its activities.
// It must run inside the same transaction as the write that triggered it.
// The returned status is non-nil only when the project actually changed.
type CascadeServiceContract interface {
	RecomputeProjectStatus(ctx context.Context, t tx.Tx, activityID int64) (*entity.ProjectStatus, *app_errors.AppError)

	// RecomputeProject is the same pass keyed by project, for writes where
	// the triggering activity no longer exists.
	RecomputeProject(ctx context.Context, t tx.Tx, projectID int64) (*entity.ProjectStatus, *app_errors.AppError)
}
