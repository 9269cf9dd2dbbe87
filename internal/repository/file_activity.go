package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Eatkin/week-planner-cli/internal/domain"
)

// FileActivityRepo implements ActivityRepo on a plain text file, one
// activity per line as "name,priority". Only the text after the final
// comma is the priority, so names may contain commas.
type FileActivityRepo struct {
	path string
}

// NewFileActivityRepo creates a new FileActivityRepo backed by the file
// at path. The file does not need to exist yet.
func NewFileActivityRepo(path string) *FileActivityRepo {
	return &FileActivityRepo{path: path}
}

// Path returns the backing file location.
func (r *FileActivityRepo) Path() string {
	return r.path
}

func (r *FileActivityRepo) List(ctx context.Context) ([]domain.Activity, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading activities file: %w", err)
	}
	return parseActivities(string(data))
}

func (r *FileActivityRepo) SaveAll(ctx context.Context, activities []domain.Activity) error {
	var b strings.Builder
	for _, a := range activities {
		fmt.Fprintf(&b, "%s,%d\n", a.Name, a.Priority)
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing activities file: %w", err)
	}
	return nil
}

func parseActivities(data string) ([]domain.Activity, error) {
	var activities []domain.Activity
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cut := strings.LastIndex(line, ",")
		if cut < 0 {
			return nil, fmt.Errorf("activities file line %d: %q has no priority field", i+1, line)
		}
		priority, err := strconv.Atoi(strings.TrimSpace(line[cut+1:]))
		if err != nil {
			return nil, fmt.Errorf("activities file line %d: parsing priority: %w", i+1, err)
		}
		activities = append(activities, domain.Activity{Name: line[:cut], Priority: priority})
	}
	return activities, nil
}
