package cli

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/Eatkin/week-planner-cli/internal/repository"
	"github.com/Eatkin/week-planner-cli/internal/service"
	"github.com/Eatkin/week-planner-cli/internal/teatest"
)

// testApp builds an App on real file repositories under a fresh temp
// dir. activityLines seeds the activities file when non-empty. The
// suggest RNG is seeded so draws are reproducible.
func testApp(t *testing.T, activityLines string) (*App, string) {
	t.Helper()
	dir := t.TempDir()

	if activityLines != "" {
		path := filepath.Join(dir, "activities.txt")
		if err := os.WriteFile(path, []byte(activityLines), 0o644); err != nil {
			t.Fatalf("failed to seed activities: %v", err)
		}
	}

	activityRepo := repository.NewFileActivityRepo(filepath.Join(dir, "activities.txt"))
	planRepo := repository.NewFilePlanRepo(dir)
	rng := rand.New(rand.NewSource(42))

	return &App{
		Activities: service.NewActivityService(activityRepo),
		Plans:      service.NewPlanService(planRepo),
		Suggest:    service.NewSuggestService(activityRepo, planRepo, rng),
	}, dir
}

// TestDriver wraps teatest.Driver with planner-specific inspection
// methods for the navigation stack and active screen.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and
// drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(80, 24))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() *appModel {
	return d.Model.(*appModel)
}

// ActiveView returns the currently rendered screen.
func (d *TestDriver) ActiveView() View {
	return d.appModel().current
}

// ActiveViewID returns the ViewID of the active screen.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().current.ID()
}

// StackLen returns the navigation stack depth.
func (d *TestDriver) StackLen() int {
	return d.appModel().state.Nav.Len()
}

// StackBottom returns the screen anchoring the stack.
func (d *TestDriver) StackBottom() View {
	return d.appModel().state.Nav.Screens()[0]
}

// IsQuitting reports whether the app has signaled a quit, either via
// the model's own flag or a tea.QuitMsg seen by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
