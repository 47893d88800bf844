package utils

import (
	"path/filepath"
	"strings"

	"github.com/aquilax/truncate"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func PathAbs(path string) (string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}

	path, err = filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return path, nil
}

// PathAbsFrom resolves path relative to base, unless it is already absolute.
func PathAbsFrom(base, path string) (string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	return filepath.Clean(path), nil
}

// RelOrAbs returns path relative to base when it is inside base.
func RelOrAbs(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	return rel
}

func FileExists(fs afero.Fs, path string) (bool, error) {
	if _, err := fs.Stat(path); err == nil {
		return true, nil

	} else if errors.Is(err, afero.ErrFileNotFound) {
		return false, nil

	} else {
		return false, err
	}
}

func TruncateFilename(name string) string {
	return truncate.Truncate(name, 40, "...", truncate.PositionMiddle)
}
