package repository

import (
	"context"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

type ActivityRepo interface {
	// List returns every stored activity in file order. A missing file
	// is an empty collection, not an error.
	List(ctx context.Context) ([]domain.Activity, error)
	// SaveAll replaces the whole store with the given activities.
	SaveAll(ctx context.Context, activities []domain.Activity) error
}

type PlanRepo interface {
	// List returns every stored week plan, oldest first.
	List(ctx context.Context) ([]*domain.WeekPlan, error)
	// GetByDate returns the plan exported on the given date, or an
	// error wrapping ErrNotFound.
	GetByDate(ctx context.Context, date time.Time) (*domain.WeekPlan, error)
	// Save writes the plan to its date-derived file, overwriting any
	// previous export for the same date.
	Save(ctx context.Context, plan *domain.WeekPlan) error
}
