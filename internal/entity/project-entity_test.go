package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextProjectStatus_NoChildren(t *testing.T) {
	next, changed := NextProjectStatus(ProjectNotStarted, nil, true)

	assert.False(t, changed)
	assert.Equal(t, ProjectNotStarted, next)
}

func TestNextProjectStatus_WorkStarted(t *testing.T) {
	children := []ActivityStatus{ActivityInProgress, ActivityNotStarted}

	next, changed := NextProjectStatus(ProjectNotStarted, children, false)

	assert.True(t, changed)
	assert.Equal(t, ProjectActive, next)
}

func TestNextProjectStatus_AllNotStarted(t *testing.T) {
	children := []ActivityStatus{ActivityNotStarted, ActivityNotStarted}

	next, changed := NextProjectStatus(ProjectNotStarted, children, true)

	assert.False(t, changed)
	assert.Equal(t, ProjectNotStarted, next)
}

func TestNextProjectStatus_AllCompleteWithAutoComplete(t *testing.T) {
	children := []ActivityStatus{ActivityComplete, ActivityComplete}

	next, changed := NextProjectStatus(ProjectActive, children, true)

	assert.True(t, changed)
	assert.Equal(t, ProjectComplete, next)
}

func TestNextProjectStatus_AllCompleteWithoutAutoComplete(t *testing.T) {
	children := []ActivityStatus{ActivityComplete, ActivityComplete}

	// Auto-complete disabled: completed children only keep the project Active.
	next, changed := NextProjectStatus(ProjectActive, children, false)

	assert.False(t, changed)
	assert.Equal(t, ProjectActive, next)

	next, changed = NextProjectStatus(ProjectNotStarted, children, false)

	assert.True(t, changed)
	assert.Equal(t, ProjectActive, next)
}

func TestNextProjectStatus_AdministrativeStatusWins(t *testing.T) {
	children := []ActivityStatus{ActivityComplete, ActivityComplete}

	for _, current := range []ProjectStatus{ProjectOnHold, ProjectArchived} {
		next, changed := NextProjectStatus(current, children, true)

		assert.False(t, changed)
		assert.Equal(t, current, next)
	}
}

func TestNextProjectStatus_CompleteNotDowngraded(t *testing.T) {
	children := []ActivityStatus{ActivityInProgress, ActivityNotStarted}

	next, changed := NextProjectStatus(ProjectComplete, children, false)

	assert.False(t, changed)
	assert.Equal(t, ProjectComplete, next)
}

func TestNextProjectStatus_BlockedAutoActivates(t *testing.T) {
	children := []ActivityStatus{ActivityInProgress}

	next, changed := NextProjectStatus(ProjectBlocked, children, false)

	assert.True(t, changed)
	assert.Equal(t, ProjectActive, next)
}
