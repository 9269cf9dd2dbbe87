package service

import (
	"context"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/repository"
)

type planService struct {
	plans    repository.PlanRepo
	now      func() time.Time
	observer UseCaseObserver
}

func NewPlanService(plans repository.PlanRepo, observers ...UseCaseObserver) PlanService {
	return &planService{
		plans:    plans,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) List(ctx context.Context) ([]*domain.WeekPlan, error) {
	return s.plans.List(ctx)
}

func (s *planService) GetByDate(ctx context.Context, date time.Time) (*domain.WeekPlan, error) {
	return s.plans.GetByDate(ctx, date)
}

func (s *planService) Export(ctx context.Context, picks []string) (filename string, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan.export",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"file": filename},
		})
	}()

	plan, err := domain.NewWeekPlan(s.now(), picks)
	if err != nil {
		return "", err
	}
	if err = s.plans.Save(ctx, plan); err != nil {
		return "", err
	}
	return repository.PlanFileName(plan.Date), nil
}
