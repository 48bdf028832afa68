package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alexanderramin/itinera/internal/cache"
	"github.com/alexanderramin/itinera/internal/cli"
	"github.com/alexanderramin/itinera/internal/db"
	"github.com/alexanderramin/itinera/internal/feed"
	"github.com/alexanderramin/itinera/internal/places"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/alexanderramin/itinera/internal/scheduler"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.itinera/itinera.db
	dbPath := os.Getenv("ITINERA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".itinera", "itinera.db")
	}

	// Day-start policy for derived schedules, e.g. ITINERA_DAY_START=08:30
	dayStart := scheduler.DefaultDayStart
	if raw := os.Getenv("ITINERA_DAY_START"); raw != "" {
		parsed, ok := scheduler.ParseClock(raw)
		if !ok {
			return fmt.Errorf("invalid ITINERA_DAY_START %q, expected HH:MM", raw)
		}
		dayStart = parsed
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	tripRepo := repository.NewSQLiteTripRepo(database)
	itemRepo := repository.NewSQLiteItemRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Snapshot feed connecting persisted writes back to open sessions
	hub := feed.NewHub()

	// Persistence telemetry goes to stderr when enabled
	var observer service.UseCaseObserver
	if os.Getenv("ITINERA_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	itinerarySvc := service.NewItineraryServiceWithDayStart(itemRepo, uow, hub, dayStart, observer)
	defer itinerarySvc.Flush()

	// Favorite search with the memoizing cache in front
	searcher := places.NewCachedSearcher(
		places.NewFavoriteSearcher(itemRepo),
		cache.NewLRU(envInt("ITINERA_CACHE_SIZE", 256), envDuration("ITINERA_CACHE_TTL", 10*time.Minute)),
		0,
	)

	app := &cli.App{
		Trips:     service.NewTripService(tripRepo),
		Itinerary: itinerarySvc,
		Search:    searcher,
	}

	// Detect interactive terminal for forms and the planner TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func envInt(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
