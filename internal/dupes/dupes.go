package dupes

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"tidy/internal/logging"
	"tidy/internal/services"
)

// Strategy is the configured policy for resolving destination collisions.
type Strategy string

const (
	StrategyRename  Strategy = "rename"
	StrategySkip    Strategy = "skip"
	StrategyReplace Strategy = "replace"
)

// ParseStrategy validates a strategy value from config or flags. An empty
// value selects the rename default.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(value))) {
	case StrategyRename, "":
		return StrategyRename, nil
	case StrategySkip:
		return StrategySkip, nil
	case StrategyReplace:
		return StrategyReplace, nil
	default:
		return "", fmt.Errorf("unknown duplicate strategy %q (want rename, skip, or replace)", value)
	}
}

// Action describes how a collision was resolved.
type Action int

const (
	// ActionRename moves the source under a timestamp-suffixed name.
	ActionRename Action = iota
	// ActionSkip leaves the source in place.
	ActionSkip
	// ActionReplace overwrites the existing destination with the source.
	ActionReplace
)

func (a Action) String() string {
	switch a {
	case ActionRename:
		return "rename"
	case ActionSkip:
		return "skip"
	case ActionReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving one collision.
type Resolution struct {
	Action Action
	// Path is the final destination (the renamed path for ActionRename,
	// otherwise the originally planned path).
	Path string
	// Duplicate reports that the source content hash was already recorded
	// this run, i.e. the collision is a confirmed content duplicate rather
	// than a same-name clash.
	Duplicate bool
	// HashFailed reports that hashing failed and the resolver fell back to
	// rename semantics regardless of the configured strategy.
	HashFailed bool
}

// timeNow is swapped in tests to pin rename suffixes.
var timeNow = time.Now

// SetClockForTests overrides the clock used for rename suffixes and returns
// a restore function.
func SetClockForTests(now func() time.Time) (restore func()) {
	previous := timeNow
	timeNow = now
	return func() { timeNow = previous }
}

// Resolver applies a duplicate strategy to destination collisions. The
// content-hash index it keeps is scoped to a single run and consulted only
// once a collision at the planned path has been detected.
type Resolver struct {
	strategy Strategy
	index    map[string]string
	logger   *slog.Logger
}

// NewResolver constructs a resolver for one run. The logger is only used to
// report hash failures; pass the traversal's component logger.
func NewResolver(strategy Strategy, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		strategy: strategy,
		index:    make(map[string]string),
		logger:   logger,
	}
}

// Resolve decides what to do with sourcePath given that plannedPath already
// exists. When hashing fails the strategy is ignored and the file is renamed:
// without a confirmed content match, overwriting or dropping the file would
// risk silent loss.
func (r *Resolver) Resolve(plannedPath, sourcePath string) Resolution {
	hash, err := hashFile(sourcePath)
	if err != nil {
		wrapped := services.Wrap(services.ErrHash, "resolving", "hash source file", sourcePath, err)
		r.logger.Error("content hash failed, falling back to rename", logging.Error(wrapped))
		return Resolution{
			Action:     ActionRename,
			Path:       renamedPath(plannedPath),
			HashFailed: true,
		}
	}

	_, seen := r.index[hash]
	if !seen {
		r.index[hash] = plannedPath
	}

	switch r.strategy {
	case StrategySkip:
		return Resolution{Action: ActionSkip, Path: plannedPath, Duplicate: seen}
	case StrategyReplace:
		return Resolution{Action: ActionReplace, Path: plannedPath, Duplicate: seen}
	default:
		return Resolution{Action: ActionRename, Path: renamedPath(plannedPath), Duplicate: seen}
	}
}

// renamedPath derives "{stem}_{unixSeconds}{ext}" next to the planned path.
// The new name is not re-checked for existence; the timestamp component makes
// a second collision within one run effectively impossible.
func renamedPath(plannedPath string) string {
	dir := filepath.Dir(plannedPath)
	base := filepath.Base(plannedPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, timeNow().Unix(), ext))
}
