package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/meltforce/repwise/internal/importer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "Repwise server URL (e.g. https://repwise.tail1234.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("REPWISE_AUTH_API_KEY"), "ingest API key (default: REPWISE_AUTH_API_KEY)")
	dir := flag.String("dir", "", "directory containing training-log JSON exports")
	stateDir := flag.String("state-dir", defaultStateDir(), "directory for the import state database")
	dryRun := flag.Bool("dry-run", false, "parse files but don't send to server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("repwise-import", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *dir == "" {
		fmt.Fprintf(os.Stderr, "Usage: repwise-import -server <URL> -dir <export dir> [-dry-run]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *serverURL == "" && !*dryRun {
		fmt.Fprintf(os.Stderr, "Error: -server is required (or use -dry-run)\n")
		os.Exit(1)
	}
	*serverURL = strings.TrimRight(*serverURL, "/")

	state, err := importer.OpenStateDB(*stateDir)
	if err != nil {
		log.Error("opening state db", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	client := importer.NewClient(*serverURL, *apiKey)
	im := importer.New(client, state, *dir, *dryRun, log)

	stats, err := im.Run()
	if err != nil {
		log.Error("import run failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete",
		"total", stats.FilesTotal,
		"imported", stats.FilesImported,
		"skipped", stats.FilesSkipped,
		"errored", stats.FilesErrored,
		"sessions", stats.SessionsInserted,
		"sets", stats.SetsInserted,
	)
	if stats.FilesErrored > 0 {
		os.Exit(1)
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repwise-import"
	}
	return filepath.Join(home, ".repwise-import")
}
