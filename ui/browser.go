package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"sampan/ds"
	"sampan/logging"
	"sampan/sef"
	"sampan/sef/serr"
)

type (
	FileEntry struct {
		Name          string
		Size          int64
		NumEntries    int64
		PayloadLength int64
		Kind          serr.Kind
		Err           error
	}
	Browser struct {
		ctx     context.Context
		dir     string
		force   bool
		entries []FileEntry
		cursor  int
		err     error
	}
)

var jpegExtensions = []string{".jpg", ".jpeg"}

func IsJPEGName(name string) bool {
	return lo.Contains(jpegExtensions, strings.ToLower(filepath.Ext(name)))
}

func inspectFile(path string, force bool) (FileEntry, error) {
	entry := FileEntry{Name: filepath.Base(path)}
	file, err := os.Open(path)
	if err != nil {
		return entry, err
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return entry, err
	}
	entry.Size = stat.Size()
	entry.PayloadLength = entry.Size
	if !sef.IsPanorama(file, entry.Size) {
		entry.Kind = serr.KindNotPanorama
		return entry, nil
	}

	entry.NumEntries, entry.PayloadLength, err = sef.PayloadLength(file, entry.Size, force)
	if err != nil {
		if !serr.IsStructural(err) {
			return entry, err
		}
		entry.PayloadLength = entry.Size
		entry.Kind = serr.KindOf(err)
		entry.Err = err
	}
	return entry, nil
}

// ScanDirectory resolves the trailer of every JPEG file directly inside dir.
func ScanDirectory(dir string, force bool) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "ScanDirectory error")
	}
	jpegEntries := lo.Filter(
		dirEntries,
		func(dirEntry os.DirEntry, _ int) bool {
			return !dirEntry.IsDir() && IsJPEGName(dirEntry.Name())
		},
	)
	names := lo.Map(
		jpegEntries,
		func(dirEntry os.DirEntry, _ int) string {
			return dirEntry.Name()
		},
	)

	entries := make([]FileEntry, 0, len(names))
	for _, name := range names {
		entry, err := inspectFile(filepath.Join(dir, name), force)
		if err != nil {
			return nil, errors.Wrapf(err, "ScanDirectory error reading %s", name)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func CreateBrowser(ctx context.Context, dir string, force bool) (Browser, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Browser{}, errors.Wrap(err, "CreateBrowser get current working directory error")
		}
		dir = cwd
	}
	browser := Browser{ctx: ctx, dir: dir, force: force}
	browser.entries, browser.err = ScanDirectory(dir, force)
	return browser, browser.err
}

// Savings is the number of bytes stripping every panorama would free.
func (s Browser) Savings() int64 {
	return lo.Reduce(
		s.entries,
		func(acc int64, entry FileEntry, _ int) int64 {
			return acc + entry.Size - entry.PayloadLength
		},
		0,
	)
}

func describe(entry FileEntry) string {
	switch entry.Kind {
	case serr.KindNone:
		return fmt.Sprintf(
			"panorama, %d entries, %.1f of %.1f MB are JPEG data",
			entry.NumEntries,
			float64(entry.PayloadLength)/1_000_000,
			float64(entry.Size)/1_000_000,
		)
	case serr.KindNotPanorama:
		return "not a panorama"
	case serr.KindUnsupportedVersion, serr.KindTypeMismatch, serr.KindOutOfBounds:
		return "skipped: " + serr.Message(entry.Err)
	}
	return ds.ErrUnreachableCode{Caller: "ui.describe"}.Error()
}

func (s Browser) View() string {
	output := "SAMPAN\n\n"
	output += "Current directory: " + s.dir + "\n\n"

	if s.err != nil {
		output += "Error: " + s.err.Error() + "\n"
	} else if len(s.entries) == 0 {
		output += "No JPEG files in this folder\n"
	}
	for i, entry := range s.entries {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		output += marker + entry.Name + "  " + describe(entry) + "\n"
	}

	output += fmt.Sprintf("\nStripping would save %.1f MB\n", float64(s.Savings())/1_000_000)
	output += "up/down: move  r: rescan  q: quit\n"
	return output
}

func (s Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case "r":
		s.entries, s.err = ScanDirectory(s.dir, s.force)
		if s.err != nil {
			logging.FromContext(s.ctx).Warn("rescan failed", "dir", s.dir, "err", s.err)
		}
		if s.cursor >= len(s.entries) {
			s.cursor = 0
		}
	}
	return s, nil
}

func (s Browser) Init() tea.Cmd {
	return nil
}
