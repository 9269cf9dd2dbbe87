package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/repository"
	"github.com/Eatkin/week-planner-cli/internal/scheduler"
)

type suggestService struct {
	activities repository.ActivityRepo
	plans      repository.PlanRepo
	rng        *rand.Rand
	observer   UseCaseObserver
}

// NewSuggestService wires the history-weighted scheduler over the
// activity and plan stores. The caller owns the rng seed, which keeps
// draws reproducible under test.
func NewSuggestService(activities repository.ActivityRepo, plans repository.PlanRepo, rng *rand.Rand, observers ...UseCaseObserver) SuggestService {
	return &suggestService{
		activities: activities,
		plans:      plans,
		rng:        rng,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *suggestService) Pick(ctx context.Context) (name string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		fields["activity"] = name
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "suggest.pick",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	pool, err := s.buildPool(ctx, fields)
	if err != nil {
		return "", err
	}
	return pool[s.rng.Intn(len(pool))], nil
}

func (s *suggestService) PickWeek(ctx context.Context) (picks []string, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "suggest.pick_week",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	pool, err := s.buildPool(ctx, fields)
	if err != nil {
		return nil, err
	}

	days := domain.Weekdays()
	picks = make([]string, len(days))
	for i := range days {
		picks[i] = pool[s.rng.Intn(len(pool))]
	}
	return picks, nil
}

// buildPool loads the current activities and plan history, applies the
// recency adjustment, and flattens into a draw pool. The scan counts go
// into fields for the use-case log.
func (s *suggestService) buildPool(ctx context.Context, fields map[string]any) ([]string, error) {
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	adjusted := scheduler.AdjustPriorities(activities, plans)
	pool := scheduler.BuildPool(adjusted)

	fields["activities"] = len(activities)
	fields["plans_scanned"] = len(plans)
	fields["pool_size"] = len(pool)

	if len(pool) == 0 {
		return nil, scheduler.ErrNoEligibleActivity
	}
	return pool, nil
}
