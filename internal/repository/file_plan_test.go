package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
	"github.com/Eatkin/week-planner-cli/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFileName(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "week_plan_2025-03-10.txt", PlanFileName(date))
}

func TestFilePlanRepo_Save_WritesCanonicalFile(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	repo := NewFilePlanRepo(plansDir)
	ctx := context.Background()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	plan, err := domain.NewWeekPlan(date, []string{
		"Reading", "Gaming", "Gym", "Reading", "Cooking", "Gaming", "Reading",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, plan))

	data, err := os.ReadFile(filepath.Join(plansDir, "week_plan_2025-03-10.txt"))
	require.NoError(t, err)
	assert.Equal(t,
		"Monday: Reading\n"+
			"Tuesday: Gaming\n"+
			"Wednesday: Gym\n"+
			"Thursday: Reading\n"+
			"Friday: Cooking\n"+
			"Saturday: Gaming\n"+
			"Sunday: Reading\n",
		string(data))
}

func TestFilePlanRepo_Save_CreatesDirectory(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	repo := NewFilePlanRepo(plansDir)

	plan, err := domain.NewWeekPlan(time.Now(), []string{"a", "b", "c", "d", "e", "f", "g"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), plan))

	info, err := os.Stat(plansDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFilePlanRepo_List_MissingDirIsEmpty(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	repo := NewFilePlanRepo(plansDir)

	plans, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestFilePlanRepo_List_OldestFirst(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	testutil.WritePlanFile(t, plansDir, "2025-03-17", "Monday: Gaming")
	testutil.WritePlanFile(t, plansDir, "2025-03-10", "Monday: Reading")
	repo := NewFilePlanRepo(plansDir)

	plans, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "2025-03-10", plans[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-03-17", plans[1].Date.Format("2006-01-02"))
	assert.Equal(t, "Reading", plans[0].ActivityFor("Monday"))
}

func TestFilePlanRepo_List_IgnoresUnrelatedFiles(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	testutil.WritePlanFile(t, plansDir, "2025-03-10", "Monday: Reading")
	require.NoError(t, os.WriteFile(filepath.Join(plansDir, "notes.txt"), []byte("scratch"), 0o644))
	repo := NewFilePlanRepo(plansDir)

	plans, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
}

func TestFilePlanRepo_List_MalformedLine(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	testutil.WritePlanFile(t, plansDir, "2025-03-10", "Monday Reading")
	repo := NewFilePlanRepo(plansDir)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestFilePlanRepo_GetByDate(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	testutil.WritePlanFile(t, plansDir, "2025-03-10",
		"Monday: Reading", "Tuesday: Gaming")
	repo := NewFilePlanRepo(plansDir)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	plan, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)
	assert.True(t, plan.Date.Equal(date))
	assert.Equal(t, "Gaming", plan.ActivityFor("Tuesday"))
}

func TestFilePlanRepo_GetByDate_NotFound(t *testing.T) {
	_, plansDir := testutil.NewDataDir(t)
	repo := NewFilePlanRepo(plansDir)

	_, err := repo.GetByDate(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
