package organize

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"tidy/internal/category"
	"tidy/internal/dupes"
	"tidy/internal/fileutil"
	"tidy/internal/logging"
	"tidy/internal/plan"
	"tidy/internal/services"
)

// Request describes one organize run.
type Request struct {
	Source string
	// Destination defaults to Source when empty.
	Destination string
	Preview     bool
	IncludeDate bool
	Strategy    dupes.Strategy
}

// Organizer walks a source tree and relocates files into category folders.
// It owns the per-run mutable state (stats, duplicate index) and processes
// files strictly one at a time.
type Organizer struct {
	table   *category.Table
	exclude []string
	logger  *slog.Logger
}

// New constructs an organizer. excludeGlobs are doublestar patterns matched
// against source-relative paths.
func New(table *category.Table, excludeGlobs []string, logger *slog.Logger) *Organizer {
	return &Organizer{
		table:   table,
		exclude: excludeGlobs,
		logger:  logging.WithComponent(logger, "organize"),
	}
}

// Run executes one organize pass and returns the accumulated stats. Per-file
// failures are logged and counted but never abort the traversal; only an
// invalid source directory or context cancellation does.
func (o *Organizer) Run(ctx context.Context, req Request) (*Stats, error) {
	logger := logging.WithContext(ctx, o.logger)

	source, err := filepath.Abs(req.Source)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "resolve source", req.Source, err)
	}
	info, err := os.Stat(source)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "validate source", "source directory does not exist", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "validate source", source+" is not a directory", nil)
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		destination = source
	} else if destination, err = filepath.Abs(destination); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "organizing", "resolve destination", req.Destination, err)
	}

	stats := NewStats()
	planner := plan.NewPlanner(destination, req.IncludeDate, req.Preview)
	resolver := dupes.NewResolver(req.Strategy, logger)

	logger.Info("starting organize run",
		logging.String("source", source),
		logging.String("destination", destination),
		logging.Bool("preview", req.Preview),
		logging.Bool("include_date", req.IncludeDate),
		logging.String("strategy", string(req.Strategy)),
	)

	if !req.Preview {
		o.ensureCategoryDirs(destination, logger)
	}

	walkErr := filepath.WalkDir(source, func(path string, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == source {
				return services.Wrap(services.ErrConfiguration, "organizing", "read source", source, err)
			}
			stats.Errored++
			logger.Error("cannot read entry", logging.String("path", path), logging.Error(err))
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		o.processFile(logger, planner, resolver, stats, source, path, entry, req.Preview)
		return nil
	})
	if walkErr != nil {
		return stats, walkErr
	}

	logger.Info("organize run finished",
		logging.Int("moved", stats.Moved),
		logging.Int("skipped", stats.Skipped),
		logging.Int("errored", stats.Errored),
	)
	return stats, nil
}

// processFile runs the classify → plan → resolve → move sequence for a
// single file. Failures are downgraded to counter increments here; nothing
// escapes to abort the walk.
func (o *Organizer) processFile(logger *slog.Logger, planner *plan.Planner, resolver *dupes.Resolver, stats *Stats, source, path string, entry fs.DirEntry, preview bool) {
	rel, err := filepath.Rel(source, path)
	if err != nil {
		stats.Errored++
		logger.Error("cannot relativize path", logging.String("path", path), logging.Error(err))
		return
	}

	if o.underCategoryDir(rel) {
		stats.Skipped++
		logger.Debug("skipping already-organized file", logging.String("path", rel))
		return
	}
	if pattern, ok := o.matchesExclude(rel); ok {
		stats.Skipped++
		logger.Debug("skipping excluded file", logging.String("path", rel), logging.String("pattern", pattern))
		return
	}

	fileInfo, err := entry.Info()
	if err != nil {
		stats.Errored++
		logger.Error("cannot stat file", logging.String("path", path), logging.Error(err))
		return
	}

	rec := plan.FileRecord{
		SourcePath: path,
		Name:       entry.Name(),
		Ext:        filepath.Ext(entry.Name()),
		ModTime:    fileInfo.ModTime(),
	}
	categoryName := o.table.Classify(rec.Ext)

	target, err := planner.Plan(rec, categoryName)
	if err != nil {
		stats.Errored++
		logger.Error("cannot plan target", logging.String("path", path), logging.Error(err))
		return
	}

	finalPath := target.Path
	if _, statErr := os.Stat(target.Path); statErr == nil {
		resolution := resolver.Resolve(target.Path, path)
		if resolution.HashFailed {
			stats.Errored++
		}
		switch resolution.Action {
		case dupes.ActionSkip:
			stats.Skipped++
			logger.Info(collisionMessage("skipped", resolution.Duplicate),
				logging.String("file", rec.Name),
				logging.String("target", target.Path),
			)
			return
		case dupes.ActionRename:
			finalPath = resolution.Path
			logger.Info(collisionMessage("renamed", resolution.Duplicate),
				logging.String("file", rec.Name),
				logging.String("new_name", filepath.Base(finalPath)),
			)
		case dupes.ActionReplace:
			logger.Info("replacing existing file",
				logging.String("file", rec.Name),
				logging.String("target", target.Path),
			)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		stats.Errored++
		logger.Error("cannot check target", logging.String("target", target.Path), logging.Error(statErr))
		return
	}

	if preview {
		stats.Moved++
		stats.Categories[categoryName]++
		logger.Info("preview: would move",
			logging.String("source", path),
			logging.String("target", finalPath),
		)
		return
	}

	if err := fileutil.MoveFile(path, finalPath); err != nil {
		stats.Errored++
		wrapped := services.Wrap(services.ErrIO, "organizing", "move file", path, err)
		logger.Error("move failed", logging.Error(wrapped))
		return
	}
	stats.Moved++
	stats.Categories[categoryName]++
	logger.Info("moved",
		logging.String("file", rec.Name),
		logging.String("category", categoryName),
	)
}

// ensureCategoryDirs pre-creates the top-level category directories. A
// failure here is deferred: planning will surface it per file.
func (o *Organizer) ensureCategoryDirs(destination string, logger *slog.Logger) {
	for _, name := range o.table.Names() {
		dir := filepath.Join(destination, name)
		created, err := plan.EnsureDir(dir)
		if err != nil {
			logger.Warn("cannot create category directory", logging.String("dir", dir), logging.Error(err))
			continue
		}
		if created {
			logger.Info("directory created", logging.String("dir", dir))
		}
	}
}

// underCategoryDir reports whether any directory segment of the
// source-relative path matches a declared category name. Such files were
// sorted by a prior run and must not be reprocessed.
func (o *Organizer) underCategoryDir(rel string) bool {
	dir := filepath.Dir(rel)
	if dir == "." {
		return false
	}
	for _, segment := range strings.Split(filepath.ToSlash(dir), "/") {
		if o.table.IsCategory(segment) {
			return true
		}
	}
	return false
}

func (o *Organizer) matchesExclude(rel string) (string, bool) {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range o.exclude {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}

func collisionMessage(action string, duplicate bool) string {
	if duplicate {
		return "duplicate " + action
	}
	return "name clash " + action
}
