package ui

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

// ReportList displays the report files found under the report directory.
type ReportList struct {
	mu        sync.Mutex
	dir       string
	files     []ReportFile
	list      *widget.List
	container *fyne.Container
}

// ReportFile holds metadata about a saved report.
type ReportFile struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// NewReportList creates a list of the reports under dir.
func NewReportList(dir string) *ReportList {
	rl := &ReportList{dir: dir}

	rl.list = widget.NewList(
		func() int {
			rl.mu.Lock()
			defer rl.mu.Unlock()
			return len(rl.files)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			rl.mu.Lock()
			defer rl.mu.Unlock()
			if id >= len(rl.files) {
				return
			}
			obj.(*widget.Label).SetText(formatReportItem(rl.files[id], time.Now()))
		},
	)

	rl.list.OnSelected = func(id widget.ListItemID) {
		rl.mu.Lock()
		if id >= len(rl.files) {
			rl.mu.Unlock()
			return
		}
		path := rl.files[id].Path
		rl.mu.Unlock()

		openFile(path)

		// Deselect so the same row can be opened again.
		rl.list.UnselectAll()
	}

	header := widget.NewLabel(fmt.Sprintf("Reports in %s", dir))
	header.TextStyle = fyne.TextStyle{Bold: true}

	rl.container = container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		rl.list,
	)

	rl.Refresh()
	return rl
}

// Container returns the container widget.
func (rl *ReportList) Container() *fyne.Container {
	return rl.container
}

// Dir returns the scanned directory.
func (rl *ReportList) Dir() string {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.dir
}

// Files returns a copy of the current file list.
func (rl *ReportList) Files() []ReportFile {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	out := make([]ReportFile, len(rl.files))
	copy(out, rl.files)
	return out
}

// Refresh rescans the directory and updates the list.
func (rl *ReportList) Refresh() {
	files, err := scanReports(rl.Dir())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("dir", rl.Dir()).Msg("scan reports")
			return
		}
		files = nil
	}

	rl.mu.Lock()
	rl.files = files
	rl.mu.Unlock()

	rl.list.Refresh()
}

// scanReports finds CSV and TXT files under dir (recursive), newest first.
func scanReports(dir string) ([]ReportFile, error) {
	var files []ReportFile

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".csv" && ext != ".txt" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		files = append(files, ReportFile{
			Name:     rel,
			Path:     path,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})

	return files, nil
}

// formatReportItem shows the size and, for files not modified today, the date.
func formatReportItem(f ReportFile, now time.Time) string {
	var size string
	switch {
	case f.Size < 1024:
		size = fmt.Sprintf("%d B", f.Size)
	case f.Size < 1024*1024:
		size = fmt.Sprintf("%.1f KB", float64(f.Size)/1024)
	default:
		size = fmt.Sprintf("%.1f MB", float64(f.Size)/(1024*1024))
	}

	when := f.Modified.Format("2006-01-02")
	if f.Modified.Year() == now.Year() && f.Modified.YearDay() == now.YearDay() {
		when = f.Modified.Format("15:04:05")
	}

	return fmt.Sprintf("%s  (%s, %s)", f.Name, size, when)
}

// openFile opens a file with the system default application.
func openFile(path string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		log.Warn().Str("os", runtime.GOOS).Msg("opening files is not supported on this platform")
		return
	}

	if err := cmd.Start(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("open report")
	}
}
