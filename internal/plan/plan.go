package plan

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"tidy/internal/services"
)

// dateBucketLayout formats modification times into YYYY-MM bucket names.
const dateBucketLayout = "2006-01"

// FileRecord describes one filesystem entry being processed. It is created
// per file during traversal and discarded afterwards.
type FileRecord struct {
	SourcePath string
	Name       string
	Ext        string
	ModTime    time.Time
}

// TargetPlan is the computed destination for a FileRecord. Path carries the
// original filename; renaming on collision happens later in resolution.
type TargetPlan struct {
	Category   string
	DateBucket string
	Dir        string
	Path       string
}

// Planner computes destination paths under a fixed root. In preview mode it
// never touches the filesystem.
type Planner struct {
	destRoot    string
	includeDate bool
	preview     bool
}

// NewPlanner constructs a planner for one run.
func NewPlanner(destRoot string, includeDate, preview bool) *Planner {
	return &Planner{destRoot: destRoot, includeDate: includeDate, preview: preview}
}

// Plan computes the target path for rec under the given category and, outside
// preview mode, ensures the directory chain exists.
func (p *Planner) Plan(rec FileRecord, categoryName string) (TargetPlan, error) {
	tp := TargetPlan{
		Category: categoryName,
		Dir:      filepath.Join(p.destRoot, categoryName),
	}
	if p.includeDate {
		tp.DateBucket = rec.ModTime.Local().Format(dateBucketLayout)
		tp.Dir = filepath.Join(tp.Dir, tp.DateBucket)
	}
	tp.Path = filepath.Join(tp.Dir, rec.Name)

	if !p.preview {
		if _, err := EnsureDir(tp.Dir); err != nil {
			return TargetPlan{}, services.Wrap(services.ErrIO, "planning", "ensure target directory", tp.Dir, err)
		}
	}
	return tp, nil
}

// EnsureDir creates the directory chain if missing. It is idempotent: the
// second call on the same path is a no-op. The returned flag reports whether
// the directory was created by this call.
func EnsureDir(dir string) (bool, error) {
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, errors.New("path exists and is not a directory")
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	return true, nil
}
