package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	observer   UseCaseObserver
}

func NewActivityService(activities repository.ActivityRepo, observers ...UseCaseObserver) ActivityService {
	return &activityService{
		activities: activities,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *activityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *activityService) Get(ctx context.Context, name string) (domain.Activity, error) {
	all, err := s.activities.List(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	for _, a := range all {
		if a.Name == name {
			return a, nil
		}
	}
	return domain.Activity{}, fmt.Errorf("activity %q: %w", name, repository.ErrNotFound)
}

func (s *activityService) Create(ctx context.Context, a domain.Activity) (err error) {
	defer s.observe(ctx, "activity.create", time.Now().UTC(), map[string]any{
		"activity": a.Name,
		"priority": a.Priority,
	}, &err)

	a.Name = strings.TrimSpace(a.Name)
	if err = a.Validate(); err != nil {
		return err
	}

	all, err := s.activities.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.Name == a.Name {
			return fmt.Errorf("%q: %w", a.Name, ErrDuplicateActivity)
		}
	}

	return s.activities.SaveAll(ctx, append(all, a))
}

func (s *activityService) SetPriority(ctx context.Context, name string, priority int) (err error) {
	defer s.observe(ctx, "activity.set_priority", time.Now().UTC(), map[string]any{
		"activity": name,
		"priority": priority,
	}, &err)

	if priority < 0 {
		return fmt.Errorf("priority %d must be zero or greater", priority)
	}

	all, err := s.activities.List(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Name == name {
			all[i].Priority = priority
			return s.activities.SaveAll(ctx, all)
		}
	}
	return fmt.Errorf("activity %q: %w", name, repository.ErrNotFound)
}

func (s *activityService) Delete(ctx context.Context, name string) (err error) {
	defer s.observe(ctx, "activity.delete", time.Now().UTC(), map[string]any{
		"activity": name,
	}, &err)

	all, err := s.activities.List(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].Name == name {
			return s.activities.SaveAll(ctx, append(all[:i:i], all[i+1:]...))
		}
	}
	return fmt.Errorf("activity %q: %w", name, repository.ErrNotFound)
}

func (s *activityService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err *error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    fields,
	})
}
