package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/repository"
	"github.com/Eatkin/week-planner-cli/internal/scheduler"
	"github.com/Eatkin/week-planner-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuggestFixture(t *testing.T) (SuggestService, *repository.FileActivityRepo, string) {
	t.Helper()
	activitiesPath, plansDir := testutil.NewDataDir(t)
	activityRepo := repository.NewFileActivityRepo(activitiesPath)
	planRepo := repository.NewFilePlanRepo(plansDir)
	rng := rand.New(rand.NewSource(42))
	return NewSuggestService(activityRepo, planRepo, rng), activityRepo, plansDir
}

func TestSuggestService_PickFromFlatFile(t *testing.T) {
	// File written the way the editor writes it: "name,priority" lines.
	path := testutil.WriteActivitiesFile(t, "Reading,1\nGaming,3\n")
	repo := repository.NewFileActivityRepo(path)
	_, plansDir := testutil.NewDataDir(t)
	svc := NewSuggestService(repo, repository.NewFilePlanRepo(plansDir), rand.New(rand.NewSource(42)))

	name, err := svc.Pick(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []string{"Reading", "Gaming"}, name)
}

func TestSuggestService_PickNoActivities(t *testing.T) {
	svc, _, _ := newSuggestFixture(t)

	_, err := svc.Pick(context.Background())
	require.ErrorIs(t, err, scheduler.ErrNoEligibleActivity)
}

func TestSuggestService_PickAllZeroPriorities(t *testing.T) {
	svc, activityRepo, _ := newSuggestFixture(t)
	ctx := context.Background()
	require.NoError(t, activityRepo.SaveAll(ctx, []domain.Activity{
		{Name: "Ironing", Priority: 0},
	}))

	_, err := svc.Pick(ctx)
	require.ErrorIs(t, err, scheduler.ErrNoEligibleActivity)
}

func TestSuggestService_HistoryBiasesAwayFromRecentPicks(t *testing.T) {
	svc, activityRepo, plansDir := newSuggestFixture(t)
	ctx := context.Background()
	require.NoError(t, activityRepo.SaveAll(ctx, []domain.Activity{
		{Name: "X", Priority: 1},
		{Name: "Y", Priority: 1},
	}))
	testutil.WritePlanFile(t, plansDir, "2025-03-10",
		"Monday: X", "Tuesday: X", "Wednesday: X", "Thursday: X",
		"Friday: X", "Saturday: X", "Sunday: X")

	seen := make(map[string]int)
	for trial := 0; trial < 2000; trial++ {
		name, err := svc.Pick(ctx)
		require.NoError(t, err)
		seen[name]++
	}

	assert.Greater(t, seen["Y"], seen["X"])
}

func TestSuggestService_PickWeekFillsEveryDay(t *testing.T) {
	svc, activityRepo, _ := newSuggestFixture(t)
	ctx := context.Background()
	require.NoError(t, activityRepo.SaveAll(ctx, testutil.NewTestActivities()))

	picks, err := svc.PickWeek(ctx)
	require.NoError(t, err)
	require.Len(t, picks, len(domain.Weekdays()))
	for i, pick := range picks {
		assert.NotEmpty(t, pick, "day %d has no pick", i)
		assert.NotEqual(t, "Ironing", pick, "day %d drew a zero-priority activity", i)
	}
}

func TestSuggestService_PlanHistoryFailurePropagates(t *testing.T) {
	path := testutil.WriteActivitiesFile(t, "Reading,1\n")
	boom := assert.AnError
	svc := NewSuggestService(
		repository.NewFileActivityRepo(path),
		&testutil.FailingPlanRepo{Err: boom},
		rand.New(rand.NewSource(42)),
	)

	_, err := svc.Pick(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSuggestService_PickIsObserved(t *testing.T) {
	activitiesPath, plansDir := testutil.NewDataDir(t)
	activityRepo := repository.NewFileActivityRepo(activitiesPath)
	obs := &recordingObserver{}
	svc := NewSuggestService(activityRepo, repository.NewFilePlanRepo(plansDir), rand.New(rand.NewSource(42)), obs)
	ctx := context.Background()
	require.NoError(t, activityRepo.SaveAll(ctx, []domain.Activity{
		{Name: "Reading", Priority: 2},
	}))

	name, err := svc.Pick(ctx)
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "suggest.pick", obs.events[0].Name)
	assert.Equal(t, name, obs.events[0].Fields["activity"])
	assert.Equal(t, 2, obs.events[0].Fields["pool_size"])
}

func TestSuggestService_EmptyPoolIsObservedAsFailure(t *testing.T) {
	activitiesPath, plansDir := testutil.NewDataDir(t)
	obs := &recordingObserver{}
	svc := NewSuggestService(repository.NewFileActivityRepo(activitiesPath), repository.NewFilePlanRepo(plansDir), rand.New(rand.NewSource(42)), obs)

	_, err := svc.Pick(context.Background())
	require.ErrorIs(t, err, scheduler.ErrNoEligibleActivity)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}
