package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

// NewTestActivities returns a small activity set with a spread of
// priorities, including one that should never be drawn.
func NewTestActivities() []domain.Activity {
	return []domain.Activity{
		{Name: "Reading", Priority: 3},
		{Name: "Gaming", Priority: 2},
		{Name: "Gym", Priority: 1},
		{Name: "Ironing", Priority: 0},
	}
}

// WriteActivitiesFile writes raw activities file content under a fresh
// temp directory and returns the file path.
func WriteActivitiesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write activities fixture: %v", err)
	}
	return path
}

// WritePlanFile writes a week plan file named for the given date
// (YYYY-MM-DD) into dir, creating dir if needed. Each line is one
// "Day: activity" entry.
func WritePlanFile(t *testing.T, dir, date string, lines ...string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create plans fixture dir: %v", err)
	}
	path := filepath.Join(dir, "week_plan_"+date+".txt")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write plan fixture: %v", err)
	}
	return path
}

// NewDataDir returns an activities file path and a plans directory path
// under one fresh temp root. Neither exists yet.
func NewDataDir(t *testing.T) (activitiesPath string, plansDir string) {
	t.Helper()
	root := t.TempDir()
	return filepath.Join(root, "activities.txt"), filepath.Join(root, "plans")
}
