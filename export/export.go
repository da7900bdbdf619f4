// Package export writes generated passwords to timestamped text files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avahowell/passgen/filelock"
)

// TimestampLayout is the time format used in exported file names.
const TimestampLayout = "20060102-150405"

// Clock provides the time used to name exported files.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FileName returns the name of a password file exported at t.
func FileName(t time.Time) string {
	return "passwords_" + t.Format(TimestampLayout) + ".txt"
}

// Writer writes password batches into a directory.
type Writer struct {
	dir   string
	clock Clock
}

// NewWriter returns a Writer for `dir`. A nil clock uses the system time.
func NewWriter(dir string, clock Clock) *Writer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Writer{dir: dir, clock: clock}
}

// Dir returns the directory files are written to.
func (w *Writer) Dir() string {
	return w.dir
}

// Write stores `passwords` one per line, each terminated by a newline, and
// returns the path of the file. The target is locked while it is written; a
// concurrent Write to the same file fails with filelock.ErrLocked.
func (w *Writer) Write(passwords []string) (string, error) {
	path := filepath.Join(w.dir, FileName(w.clock.Now()))

	lock, err := filelock.Lock(path)
	if err != nil {
		return "", fmt.Errorf("locking %v: %w", path, err)
	}
	defer lock.Unlock()

	var b strings.Builder
	for _, p := range passwords {
		b.WriteString(p)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return "", fmt.Errorf("writing %v: %w", path, err)
	}
	return path, nil
}
