package scheduler

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

// ErrNoEligibleActivity is returned when every activity in the pool has
// zero priority, so there is nothing to draw.
var ErrNoEligibleActivity = errors.New("no eligible activity")

// AdjustPriorities returns a copy of activities with priorities bumped
// according to exported plan history. Plans are scanned most recent
// first; each scanned plan marks the activities it mentions as "found",
// and every activity still unfound after a plan gets +1 priority. The
// bump therefore stacks across plans: an activity absent from the last
// N plans arrives with priority+N. Scanning stops once every current
// activity has been found. The caller's slice is never mutated.
func AdjustPriorities(activities []domain.Activity, plans []*domain.WeekPlan) []domain.Activity {
	adjusted := make([]domain.Activity, len(activities))
	copy(adjusted, activities)

	if len(plans) == 0 {
		return adjusted
	}

	sorted := make([]*domain.WeekPlan, len(plans))
	copy(sorted, plans)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	remaining := make(map[string]bool, len(adjusted))
	for _, a := range adjusted {
		remaining[a.Name] = true
	}
	found := make(map[string]bool, len(adjusted))

	for _, plan := range sorted {
		for _, entry := range plan.Entries {
			if remaining[entry.Activity] {
				delete(remaining, entry.Activity)
				found[entry.Activity] = true
			}
		}

		for i := range adjusted {
			if !found[adjusted[i].Name] {
				adjusted[i].Priority++
			}
		}

		if len(remaining) == 0 {
			break
		}
	}

	return adjusted
}

// BuildPool flattens activities into a draw pool where each name
// appears Priority times. Zero-priority activities never appear.
func BuildPool(activities []domain.Activity) []string {
	var pool []string
	for _, a := range activities {
		for i := 0; i < a.Priority; i++ {
			pool = append(pool, a.Name)
		}
	}
	return pool
}

// PickWeighted draws one activity name at random, weighted by priority
// after history adjustment. An empty pool is ErrNoEligibleActivity.
func PickWeighted(rng *rand.Rand, activities []domain.Activity, plans []*domain.WeekPlan) (string, error) {
	pool := BuildPool(AdjustPriorities(activities, plans))
	if len(pool) == 0 {
		return "", ErrNoEligibleActivity
	}
	return pool[rng.Intn(len(pool))], nil
}
