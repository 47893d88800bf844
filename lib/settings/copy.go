package settings

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/templates"
)

// copyTemplate copies a template to dst, overwriting it.
// It keeps the template permissions, plus owner write so the next run can replace the file.
func copyTemplate(fs afero.Fs, t *templates.Template, dst string) (n int64, err error) {
	sourceFile, err := t.Source.Open(t.Name)
	if err != nil {
		return 0, err
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return 0, err
	}

	if !sourceInfo.Mode().IsRegular() {
		return 0, errors.Errorf("%v is not a regular file", t.Name)
	}

	mode := sourceInfo.Mode().Perm() | 0o200

	destFile, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}

	defer func() {
		cerr := destFile.Close()
		if err == nil {
			err = cerr
		}
	}()

	n, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return n, err
	}

	if err = destFile.Sync(); err != nil {
		return n, err
	}

	// OpenFile only applies the mode to new files
	if err = fs.Chmod(dst, mode); err != nil {
		return n, err
	}

	return n, nil
}
