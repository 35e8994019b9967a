// Command coverage.report turns wireless survey captures into heat maps.
//
// It loads JSON records produced by the telemetry collector, optionally
// persists them as a session in SQLite, and either renders heat map PNGs
// for the requested metrics (-out) or serves them over HTTP (-listen).
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/heatmaphero/coverage.report/internal/config"
	"github.com/heatmaphero/coverage.report/internal/db"
	"github.com/heatmaphero/coverage.report/internal/heatmap"
	"github.com/heatmaphero/coverage.report/internal/render"
	"github.com/heatmaphero/coverage.report/internal/survey"
	"github.com/heatmaphero/coverage.report/internal/version"
)

var (
	dataDir     = flag.String("data", "", "Directory of survey JSON files to load")
	dbFile      = flag.String("db", "survey.db", "SQLite database path (empty disables persistence)")
	migrations  = flag.String("migrations", "migrations", "Schema migrations directory")
	sessionID   = flag.String("session", "", "Load records from a stored session instead of -data")
	sessionName = flag.String("session-name", "", "Name for the session created from -data")
	listen      = flag.String("listen", ":8080", "Listen address")
	outDir      = flag.String("out", "", "Render PNGs into this directory and exit")
	metricFlag  = flag.String("metric", "all", "Metric to render with -out (or 'all')")
	tuningFile  = flag.String("config", "", "Engine tuning overrides (JSON)")
	bgFile      = flag.String("background", "", "Floor plan image drawn under the heat map")
	darkMode    = flag.Bool("dark", false, "Render with the dark theme")
	debugRoutes = flag.Bool("debug", false, "Expose /debug admin routes (tailsql, backup)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 7 * vg.Inch
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("coverage.report %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	cfg := heatmap.DefaultConfig()
	if *tuningFile != "" {
		tuning, err := config.LoadTuning(*tuningFile)
		if err != nil {
			log.Fatalf("load tuning: %v", err)
		}
		if cfg, err = tuning.Apply(cfg); err != nil {
			log.Fatalf("apply tuning: %v", err)
		}
	}
	engine, err := heatmap.NewEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var style render.StylePolicy
	if *darkMode {
		style = render.DarkStyle{}
	}
	renderer := render.New(style)

	var background image.Image
	if *bgFile != "" {
		if background, err = render.LoadBackground(*bgFile); err != nil {
			log.Fatalf("load background: %v", err)
		}
	}

	var database *db.DB
	if *dbFile != "" {
		if database, err = db.NewDB(*dbFile); err != nil {
			log.Fatalf("open database: %v", err)
		}
		if err := database.MigrateUp(*migrations); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
	}

	records, err := loadRecords(database)
	if err != nil {
		log.Fatal(err)
	}

	if *outDir != "" {
		if err := renderAll(engine, renderer, records, background); err != nil {
			log.Fatal(err)
		}
		return
	}

	srv := NewServer(engine, renderer, database, records, background)
	mux := srv.ServeMux()
	if *debugRoutes && database != nil {
		database.AttachAdminRoutes(mux)
	}

	log.Printf("listening on %s", *listen)
	log.Fatal(http.ListenAndServe(*listen, mux))
}

// loadRecords resolves the record source: a stored session, a JSON
// directory (persisted as a new session when the database is open), or
// nothing, which is still a servable state.
func loadRecords(database *db.DB) ([]survey.Record, error) {
	if *sessionID != "" {
		if database == nil {
			return nil, fmt.Errorf("-session requires -db")
		}
		records, err := database.Records(*sessionID)
		if err != nil {
			return nil, fmt.Errorf("load session %s: %w", *sessionID, err)
		}
		log.Printf("loaded %d records from session %s", len(records), *sessionID)
		return records, nil
	}

	if *dataDir == "" {
		return nil, nil
	}
	records, err := survey.LoadDir(*dataDir)
	if err != nil {
		return nil, err
	}

	if database != nil && len(records) > 0 {
		name := *sessionName
		if name == "" {
			name = filepath.Base(*dataDir)
		}
		id, err := database.CreateSession(name)
		if err != nil {
			return nil, err
		}
		if err := database.InsertRecords(id, records); err != nil {
			return nil, err
		}
		log.Printf("stored %d records as session %s (%q)", len(records), id, name)
	}
	return records, nil
}

// renderAll writes one PNG per requested metric into -out.
func renderAll(engine *heatmap.Engine, renderer *render.Renderer, records []survey.Record, background image.Image) error {
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var infos []survey.MetricInfo
	if strings.EqualFold(*metricFlag, "all") {
		infos = survey.Metrics()
	} else {
		info, err := survey.Lookup(survey.Metric(*metricFlag))
		if err != nil {
			return err
		}
		infos = []survey.MetricInfo{info}
	}

	for _, info := range infos {
		samples := survey.Samples(records, info)
		scene, err := engine.Compose(samples, info.Meta(), background)
		if err != nil {
			return fmt.Errorf("compose %s: %w", info.Metric, err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("%s.png", info.Metric))
		if err := renderer.SavePNG(path, scene, plotWidth, plotHeight); err != nil {
			return err
		}
		log.Printf("wrote %s (%s, %d samples)", path, sceneKindName(scene.Kind), len(samples))
	}
	return nil
}

func sceneKindName(k heatmap.SceneKind) string {
	switch k {
	case heatmap.SceneEmpty:
		return "empty"
	case heatmap.SceneSinglePoint:
		return "single-point"
	default:
		return "heatmap"
	}
}
