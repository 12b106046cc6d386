// Package storage хранит вложения тикетов. Путь файла: <owner>/<unixms><ext>.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

var ErrNotFound = errors.New("attachment not found")

var unsafeOwnerChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

type Storage struct {
	fs  afero.Fs
	now func() time.Time
}

func New(fs afero.Fs) *Storage {
	return &Storage{fs: fs, now: time.Now}
}

// NewOnDisk корень хранилища ограничен root через BasePathFs.
func NewOnDisk(root string) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root %q: %w", root, err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), root)), nil
}

// Save возвращает относительный путь, который сохраняется в тикете.
func (s *Storage) Save(owner, filename string, r io.Reader) (string, int64, error) {
	owner = sanitizeOwner(owner)
	if err := s.fs.MkdirAll(owner, 0o755); err != nil {
		return "", 0, fmt.Errorf("create dir %q: %w", owner, err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := path.Join(owner, strconv.FormatInt(s.now().UnixMilli(), 10)+ext)

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create %q: %w", name, err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		_ = s.fs.Remove(name)
		return "", 0, fmt.Errorf("write %q: %w", name, err)
	}

	return name, n, nil
}

func (s *Storage) Open(name string) (io.ReadCloser, error) {
	clean := path.Clean("/" + name)[1:]
	f, err := s.fs.Open(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open %q: %w", clean, err)
	}
	return f, nil
}

func sanitizeOwner(owner string) string {
	owner = unsafeOwnerChars.ReplaceAllString(owner, "_")
	if owner == "" || owner == "_" {
		return "anonymous"
	}
	return owner
}
