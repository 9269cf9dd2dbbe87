package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func fullWeekPlan(date time.Time, activity string) *domain.WeekPlan {
	var entries []domain.PlanEntry
	for _, d := range domain.Weekdays() {
		entries = append(entries, domain.PlanEntry{Day: d, Activity: activity})
	}
	return &domain.WeekPlan{Date: date, Entries: entries}
}

func TestAdjustPriorities_NoPlansLeavesPrioritiesAlone(t *testing.T) {
	activities := []domain.Activity{
		{Name: "Reading", Priority: 1},
		{Name: "Gaming", Priority: 3},
	}

	adjusted := AdjustPriorities(activities, nil)

	assert.Equal(t, activities, adjusted)
}

func TestAdjustPriorities_UnusedActivityGainsOverUsed(t *testing.T) {
	activities := []domain.Activity{
		{Name: "X", Priority: 1},
		{Name: "Y", Priority: 1},
	}
	plans := []*domain.WeekPlan{fullWeekPlan(day(0), "X")}

	adjusted := AdjustPriorities(activities, plans)

	// X was found in the most recent plan so keeps its priority;
	// Y was not, so it gets bumped.
	assert.Equal(t, 1, adjusted[0].Priority)
	assert.Equal(t, 2, adjusted[1].Priority)
	assert.Greater(t, adjusted[1].Priority, adjusted[0].Priority)
}

func TestAdjustPriorities_BumpStacksAcrossPlans(t *testing.T) {
	activities := []domain.Activity{
		{Name: "X", Priority: 1},
		{Name: "Y", Priority: 1},
		{Name: "Z", Priority: 1},
	}
	// Most recent plan names X, the one before names Y, Z is in neither.
	plans := []*domain.WeekPlan{
		fullWeekPlan(day(-7), "Y"),
		fullWeekPlan(day(0), "X"),
	}

	adjusted := AdjustPriorities(activities, plans)

	// X found in round one, never bumped. Y missed round one (+1) and
	// was found in round two. Z missed both rounds (+2). The cumulative
	// stacking across rounds is deliberate.
	assert.Equal(t, 1, adjusted[0].Priority)
	assert.Equal(t, 2, adjusted[1].Priority)
	assert.Equal(t, 3, adjusted[2].Priority)
}

func TestAdjustPriorities_StopsOnceAllActivitiesFound(t *testing.T) {
	activities := []domain.Activity{
		{Name: "X", Priority: 1},
		{Name: "Y", Priority: 1},
	}
	// Both found in the most recent plan; the stack of older plans must
	// contribute nothing.
	plans := []*domain.WeekPlan{
		fullWeekPlan(day(-21), "Y"),
		fullWeekPlan(day(-14), "Y"),
		{Date: day(0), Entries: []domain.PlanEntry{
			{Day: "Monday", Activity: "X"},
			{Day: "Tuesday", Activity: "Y"},
		}},
	}

	adjusted := AdjustPriorities(activities, plans)

	assert.Equal(t, 1, adjusted[0].Priority)
	assert.Equal(t, 1, adjusted[1].Priority)
}

func TestAdjustPriorities_DoesNotMutateCaller(t *testing.T) {
	activities := []domain.Activity{
		{Name: "X", Priority: 1},
		{Name: "Y", Priority: 1},
	}
	plans := []*domain.WeekPlan{fullWeekPlan(day(0), "X")}

	_ = AdjustPriorities(activities, plans)

	assert.Equal(t, 1, activities[0].Priority)
	assert.Equal(t, 1, activities[1].Priority)
}

func TestBuildPool_RepeatsNamesByPriority(t *testing.T) {
	pool := BuildPool([]domain.Activity{
		{Name: "Reading", Priority: 1},
		{Name: "Gaming", Priority: 3},
	})

	assert.Equal(t, []string{"Reading", "Gaming", "Gaming", "Gaming"}, pool)
}

func TestBuildPool_ZeroPriorityExcluded(t *testing.T) {
	pool := BuildPool([]domain.Activity{
		{Name: "Ironing", Priority: 0},
		{Name: "Reading", Priority: 2},
	})

	assert.Equal(t, []string{"Reading", "Reading"}, pool)
}

func TestPickWeighted_EmptyPoolIsAnError(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	_, err := PickWeighted(rng, []domain.Activity{{Name: "Ironing", Priority: 0}}, nil)

	require.ErrorIs(t, err, ErrNoEligibleActivity)
}

func TestPickWeighted_NoActivitiesIsAnError(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	_, err := PickWeighted(rng, nil, nil)

	require.ErrorIs(t, err, ErrNoEligibleActivity)
}

func TestPickWeighted_ZeroPriorityNeverDrawn(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	activities := []domain.Activity{
		{Name: "Reading", Priority: 1},
		{Name: "Ironing", Priority: 0},
	}

	for trial := 0; trial < 10000; trial++ {
		name, err := PickWeighted(rng, activities, nil)
		require.NoError(t, err)
		assert.NotEqual(t, "Ironing", name, "trial %d drew a zero-priority activity", trial)
	}
}

func TestPickWeighted_DrawsOnlyFromPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	activities := []domain.Activity{
		{Name: "Reading", Priority: 1},
		{Name: "Gaming", Priority: 3},
	}

	seen := make(map[string]int)
	for trial := 0; trial < 1000; trial++ {
		name, err := PickWeighted(rng, activities, nil)
		require.NoError(t, err)
		assert.Contains(t, []string{"Reading", "Gaming"}, name)
		seen[name]++
	}

	// With a 3:1 weighting both names should show up over 1000 draws.
	assert.Greater(t, seen["Gaming"], seen["Reading"])
	assert.Greater(t, seen["Reading"], 0)
}

func TestPickWeighted_HistoryShiftsTheOdds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	activities := []domain.Activity{
		{Name: "X", Priority: 1},
		{Name: "Y", Priority: 1},
	}
	plans := []*domain.WeekPlan{fullWeekPlan(day(0), "X")}

	seen := make(map[string]int)
	for trial := 0; trial < 3000; trial++ {
		name, err := PickWeighted(rng, activities, plans)
		require.NoError(t, err)
		seen[name]++
	}

	// Y's post-adjustment weight is 2 against X's 1.
	assert.Greater(t, seen["Y"], seen["X"])
}
