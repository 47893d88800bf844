package templates

import (
	"bufio"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/utils"
)

var ErrSourceNotFound = errors.New("template source not found")

// IgnoreFile lists, in gitignore syntax, the entries of a template dir that must not be copied.
const IgnoreFile = ".templateignore"

const BuiltinName = "<builtin>"

type Source struct {
	name    string
	fs      afero.Fs
	root    string
	builtin bool
}

func NewDirSource(fs afero.Fs, dir string) *Source {
	return &Source{
		name: dir,
		fs:   fs,
		root: dir,
	}
}

func NewBuiltinSource() *Source {
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		panic(err)
	}

	return &Source{
		name:    BuiltinName,
		fs:      afero.FromIOFS{FS: sub},
		root:    ".",
		builtin: true,
	}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) IsBuiltin() bool {
	return s.builtin
}

func (s *Source) Exists() (bool, error) {
	if s.builtin {
		return true, nil
	}

	return afero.DirExists(s.fs, s.root)
}

// List returns the top level regular files of the source, the same set `cp <dir>/* dest/` copies.
func (s *Source) List() (*Listing, error) {
	exists, err := s.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Wrapf(ErrSourceNotFound, "%v", s.name)
	}

	ignored, err := s.loadIgnoreRules()
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, errors.Wrapf(err, "error listing templates in %v", s.name)
	}

	result := &Listing{
		Sources: []*Source{s},
	}

	for _, entry := range entries {
		name := entry.Name()

		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := s.fs.Stat(s.path(name))
			if err != nil {
				return nil, errors.Wrapf(err, "error reading template %v", name)
			}
			entry = target
		}

		switch {
		case strings.HasPrefix(name, "."):
			result.Skipped = append(result.Skipped, &Skipped{Name: name, Source: s, Reason: SkippedHidden})

		case entry.IsDir():
			result.Skipped = append(result.Skipped, &Skipped{Name: name, Source: s, Reason: SkippedDirectory})

		case ignored != nil && ignored.MatchesPath(name):
			result.Skipped = append(result.Skipped, &Skipped{Name: name, Source: s, Reason: SkippedIgnored})

		default:
			result.Templates = append(result.Templates, &Template{
				Name:   name,
				Size:   entry.Size(),
				Mode:   entry.Mode().Perm(),
				Source: s,
			})
		}
	}

	return result, nil
}

func (s *Source) Open(name string) (afero.File, error) {
	return s.fs.Open(s.path(name))
}

func (s *Source) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(s.fs, s.path(name))
}

// SameFile reports if the template name is the file at path in fs. Copying a file onto
// itself would truncate it before it is read.
func (s *Source) SameFile(name string, fs afero.Fs, path string) (bool, error) {
	if s.builtin {
		return false, nil
	}

	src := s.path(name)
	if fs == s.fs && filepath.Clean(src) == filepath.Clean(path) {
		return true, nil
	}

	dstInfo, err := fs.Stat(path)
	if errors.Is(err, afero.ErrFileNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	srcInfo, err := s.fs.Stat(src)
	if err != nil {
		return false, err
	}

	// Only meaningful for files from the OS, other fs implementations never match
	return os.SameFile(srcInfo, dstInfo), nil
}

func (s *Source) path(name string) string {
	if s.builtin {
		return path.Join(s.root, name)
	}
	return filepath.Join(s.root, filepath.FromSlash(name))
}

func (s *Source) loadIgnoreRules() (*ignore.GitIgnore, error) {
	file := s.path(IgnoreFile)

	exists, err := utils.FileExists(s.fs, file)
	if err != nil || !exists {
		return nil, err
	}

	f, err := s.fs.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading %v", file)
	}

	return ignore.CompileIgnoreLines(lines...), nil
}
