package service

import (
	"context"
	"errors"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

// ErrDuplicateActivity is returned when creating an activity whose name
// is already taken. Edits address activities by name, so the set must
// stay unique.
var ErrDuplicateActivity = errors.New("activity already exists")

type ActivityService interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Get(ctx context.Context, name string) (domain.Activity, error)
	Create(ctx context.Context, a domain.Activity) error
	SetPriority(ctx context.Context, name string, priority int) error
	Delete(ctx context.Context, name string) error
}

type PlanService interface {
	List(ctx context.Context) ([]*domain.WeekPlan, error)
	GetByDate(ctx context.Context, date time.Time) (*domain.WeekPlan, error)
	// Export writes a plan dated today from one activity pick per
	// weekday and returns the exported file name.
	Export(ctx context.Context, picks []string) (string, error)
}

type SuggestService interface {
	// Pick draws one history-weighted random activity.
	Pick(ctx context.Context) (string, error)
	// PickWeek draws one activity per weekday, each an independent
	// weighted draw.
	PickWeek(ctx context.Context) ([]string, error)
}
