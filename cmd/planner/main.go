package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/Eatkin/week-planner-cli/internal/cli"
	"github.com/Eatkin/week-planner-cli/internal/repository"
	"github.com/Eatkin/week-planner-cli/internal/service"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	logFile, err := openLogFile(dataDir)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	if closer, ok := logFile.(io.Closer); ok {
		defer closer.Close()
	}
	observer := service.NewLogUseCaseObserver(logFile)

	activityRepo := repository.NewFileActivityRepo(filepath.Join(dataDir, "activities.txt"))
	planRepo := repository.NewFilePlanRepo(filepath.Join(dataDir, "plans"))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := &cli.App{
		Activities: service.NewActivityService(activityRepo, observer),
		Plans:      service.NewPlanService(planRepo, observer),
		Suggest:    service.NewSuggestService(activityRepo, planRepo, rng, observer),
	}

	// The bare command opens the TUI only on a real terminal; piped
	// invocations get help text instead of alt-screen escape codes.
	app.IsInteractive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// resolveDataDir picks where activities and plans live: PLANNER_DATA
// when set, the current directory when it already holds an activities
// file, otherwise ~/.week-planner.
func resolveDataDir() (string, error) {
	if dir := os.Getenv("PLANNER_DATA"); dir != "" {
		return dir, nil
	}
	if _, err := os.Stat("activities.txt"); err == nil {
		return ".", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".week-planner"), nil
}

// openLogFile creates a per-run log file under the log directory
// (PLANNER_LOG when set, else <data>/logs). The name carries a
// timestamp plus a short run id so concurrent runs never collide.
func openLogFile(dataDir string) (io.Writer, error) {
	logDir := os.Getenv("PLANNER_LOG")
	if logDir == "" {
		logDir = filepath.Join(dataDir, "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	runID := uuid.NewString()[:8]
	name := fmt.Sprintf("planner_%s_%s.log", time.Now().Format("20060102-150405"), runID)
	return os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
