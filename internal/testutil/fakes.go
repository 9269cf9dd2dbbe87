package testutil

import (
	"context"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

// FailingActivityRepo satisfies repository.ActivityRepo and fails every
// call with Err. It lets service tests exercise error wrapping and
// failure observability without touching the filesystem.
type FailingActivityRepo struct {
	Err error
}

func (r *FailingActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	return nil, r.Err
}

func (r *FailingActivityRepo) SaveAll(ctx context.Context, activities []domain.Activity) error {
	return r.Err
}

// FailingPlanRepo satisfies repository.PlanRepo and fails every call
// with Err.
type FailingPlanRepo struct {
	Err error
}

func (r *FailingPlanRepo) List(ctx context.Context) ([]*domain.WeekPlan, error) {
	return nil, r.Err
}

func (r *FailingPlanRepo) GetByDate(ctx context.Context, date time.Time) (*domain.WeekPlan, error) {
	return nil, r.Err
}

func (r *FailingPlanRepo) Save(ctx context.Context, plan *domain.WeekPlan) error {
	return r.Err
}
