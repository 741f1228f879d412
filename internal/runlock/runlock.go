// Package runlock serializes organize runs per destination tree. Two
// concurrent runs moving files into the same destination would race on
// collision detection, so each run holds a flock for its duration.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"tidy/internal/config"
	"tidy/internal/services"
)

// Lock guards one destination tree against concurrent organize runs.
type Lock struct {
	path string
	fl   *flock.Flock
}

// New creates a lock for the given destination. The lock file lives in the
// state directory, named by a digest of the destination path. The destination
// is normalized first so different spellings of the same directory (relative
// vs absolute, trailing slash) contend on one lock file.
func New(stateDir, destination string) *Lock {
	if expanded, err := config.ExpandPath(destination); err == nil {
		destination = expanded
	} else {
		destination = filepath.Clean(destination)
	}
	digest := sha256.Sum256([]byte(destination))
	name := fmt.Sprintf("organize-%s.lock", hex.EncodeToString(digest[:8]))
	path := filepath.Join(stateDir, "locks", name)
	return &Lock{path: path, fl: flock.New(path)}
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. A held lock is a configuration
// error: the caller must not start organizing.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return services.Wrap(services.ErrConfiguration, "locking", "ensure lock directory", l.path, err)
	}
	ok, err := l.fl.TryLock()
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "locking", "acquire run lock", l.path, err)
	}
	if !ok {
		return services.Wrap(services.ErrConfiguration, "locking", "acquire run lock", "another tidy run is organizing this destination", nil)
	}
	return nil
}

// Release drops the lock.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
