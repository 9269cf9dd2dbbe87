package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

const dateLayout = "2006-01-02"

const (
	planFilePrefix = "week_plan_"
	planFileSuffix = ".txt"
)

// PlanFileName returns the canonical file name for a plan exported on
// the given date, e.g. "week_plan_2025-03-10.txt".
func PlanFileName(date time.Time) string {
	return planFilePrefix + date.Format(dateLayout) + planFileSuffix
}

// FilePlanRepo implements PlanRepo on a directory of plan files, one
// file per exported week. Each line reads "DayName: activity".
type FilePlanRepo struct {
	dir string
}

// NewFilePlanRepo creates a new FilePlanRepo backed by the given
// directory. The directory is created on the first Save.
func NewFilePlanRepo(dir string) *FilePlanRepo {
	return &FilePlanRepo{dir: dir}
}

// Dir returns the plans directory location.
func (r *FilePlanRepo) Dir() string {
	return r.dir
}

func (r *FilePlanRepo) List(ctx context.Context) ([]*domain.WeekPlan, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plans directory: %w", err)
	}

	// ReadDir sorts by name and the date sits in the name, so plans
	// come back oldest first.
	var plans []*domain.WeekPlan
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		date, ok := parsePlanFileName(entry.Name())
		if !ok {
			continue
		}
		plan, err := r.readPlanFile(entry.Name(), date)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func (r *FilePlanRepo) GetByDate(ctx context.Context, date time.Time) (*domain.WeekPlan, error) {
	plan, err := r.readPlanFile(PlanFileName(date), date)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("week plan %s: %w", date.Format(dateLayout), ErrNotFound)
		}
		return nil, err
	}
	return plan, nil
}

func (r *FilePlanRepo) Save(ctx context.Context, plan *domain.WeekPlan) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating plans directory: %w", err)
	}
	var b strings.Builder
	for _, e := range plan.Entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Day, e.Activity)
	}
	path := filepath.Join(r.dir, PlanFileName(plan.Date))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}

func (r *FilePlanRepo) readPlanFile(name string, date time.Time) (*domain.WeekPlan, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading plan file %s: %w", name, err)
	}

	var plan domain.WeekPlan
	plan.Date = date
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cut := strings.Index(line, ":")
		if cut < 0 {
			return nil, fmt.Errorf("plan file %s line %d: %q has no day separator", name, i+1, line)
		}
		plan.Entries = append(plan.Entries, domain.PlanEntry{
			Day:      line[:cut],
			Activity: strings.TrimSpace(line[cut+1:]),
		})
	}
	return &plan, nil
}

func parsePlanFileName(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, planFilePrefix) || !strings.HasSuffix(name, planFileSuffix) {
		return time.Time{}, false
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(name, planFilePrefix), planFileSuffix)
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
