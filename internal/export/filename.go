package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DateSuffix returns the date portion in "02.01.2006" format.
func DateSuffix(t time.Time) string {
	return t.Format("02.01.2006")
}

// BuildPath returns a file path of the form base + suffix + "_" + date + ext.
// Files are appended to (not duplicated) on subsequent writes, so no collision
// counter is needed.
func BuildPath(base, suffix, ext string, t time.Time) string {
	date := DateSuffix(t)
	return fmt.Sprintf("%s%s_%s%s", base, suffix, date, ext)
}

// TXTPath returns the text report path paired with a CSV path.
func TXTPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".txt"
}

// EnsureDir creates the directory component of path (equivalent to mkdir -p)
// with mode 0755. It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// hasContent reports whether path is a regular file with at least one byte.
// A file created empty (as a save dialog does) has no content yet.
func hasContent(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
