// Package importer walks a directory of training-log JSON exports and sends
// new files to the Repwise server, tracking what was already imported in a
// local SQLite state database.
package importer

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meltforce/repwise/internal/models"
)

// Stats tracks import progress.
type Stats struct {
	FilesTotal       int
	FilesImported    int
	FilesSkipped     int
	FilesErrored     int
	SessionsInserted int
	SetsInserted     int
}

// Importer processes one export directory.
type Importer struct {
	client *Client
	state  *StateDB
	dir    string
	dryRun bool
	log    *slog.Logger
	stats  Stats
}

// New creates a new Importer.
func New(client *Client, state *StateDB, dir string, dryRun bool, log *slog.Logger) *Importer {
	return &Importer{
		client: client,
		state:  state,
		dir:    dir,
		dryRun: dryRun,
		log:    log,
	}
}

// Run walks the export directory in name order and imports every new .json
// file. Individual file failures are logged and counted, not fatal; a partial
// import can be rerun.
func (im *Importer) Run() (*Stats, error) {
	var files []string
	err := filepath.WalkDir(im.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return &im.stats, fmt.Errorf("walking %s: %w", im.dir, err)
	}
	sort.Strings(files)
	im.stats.FilesTotal = len(files)

	for _, path := range files {
		if err := im.processFile(path); err != nil {
			im.log.Error("import failed", "file", path, "error", err)
			im.stats.FilesErrored++
		}
	}
	return &im.stats, nil
}

func (im *Importer) processFile(path string) error {
	rel, err := filepath.Rel(im.dir, path)
	if err != nil {
		rel = path
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	hash, err := HashFile(path)
	if err != nil {
		return fmt.Errorf("hashing: %w", err)
	}

	done, err := im.state.IsImported(rel, info.Size(), hash)
	if err != nil {
		return fmt.Errorf("checking state: %w", err)
	}
	if done {
		im.stats.FilesSkipped++
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}
	var payload models.ExportPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("parsing export: %w", err)
	}
	if len(payload.Sessions) == 0 {
		im.log.Warn("export contains no sessions", "file", rel)
	}

	if im.dryRun {
		im.log.Info("dry-run: would import", "file", rel, "sessions", len(payload.Sessions))
		im.stats.FilesImported++
		return nil
	}

	result, err := im.client.SendPayload(payload)
	if err != nil {
		return err
	}

	if err := im.state.MarkImported(rel, info.Size(), hash); err != nil {
		return fmt.Errorf("recording state: %w", err)
	}

	im.stats.FilesImported++
	im.stats.SessionsInserted += result.SessionsInserted
	im.stats.SetsInserted += result.SetsInserted
	im.log.Info("imported", "file", rel,
		"sessions", result.SessionsInserted, "skipped", result.SessionsSkipped)
	return nil
}
