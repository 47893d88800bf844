package workspace

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/common"
	"github.com/pescuma/eclipse-settings/lib/consoles"
	"github.com/pescuma/eclipse-settings/lib/filters"
	"github.com/pescuma/eclipse-settings/lib/settings"
	"github.com/pescuma/eclipse-settings/lib/templates"
	"github.com/pescuma/eclipse-settings/lib/utils"
)

const (
	DefaultTemplatesDir = "scripts/templates/eclipse-settings/files"
	DefaultSettingsDir  = ".settings"
)

type Workspace struct {
	console   consoles.Console
	fs        afero.Fs
	root      string
	module    string
	installer *settings.Installer
}

type TemplateOptions struct {
	// Dirs are the template directories, relative to the project root. Later ones override earlier ones.
	Dirs        []string
	Builtin     bool
	Includes    []string
	Excludes    []string
	SettingsDir string
}

// NewWorkspace opens the project at dir. An empty dir means the git work tree containing the
// current directory, or the current directory itself when it is not inside one.
func NewWorkspace(console consoles.Console, fs afero.Fs, dir string, module string) (*Workspace, error) {
	root, err := findRoot(dir)
	if err != nil {
		return nil, err
	}

	if module == "" {
		module = common.ModuleName(root)
	}

	return &Workspace{
		console:   console,
		fs:        fs,
		root:      root,
		module:    module,
		installer: settings.NewInstaller(console, fs, root),
	}, nil
}

func findRoot(dir string) (string, error) {
	if dir != "" {
		return utils.PathAbs(dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return findGitRoot(cwd)
}

func findGitRoot(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return dir, nil
	} else if err != nil {
		return "", errors.Wrapf(err, "error opening git repository at %v", dir)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return dir, nil
	} else if err != nil {
		return "", err
	}

	return filepath.Clean(wt.Filesystem.Root()), nil
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) Module() string {
	return w.module
}

// Setup generates the Eclipse settings of the module: creates the settings directory when it
// is missing and copies all templates into it.
func (w *Workspace) Setup(topts *TemplateOptions, opts *settings.Options) (*settings.Report, error) {
	w.console.Printf("[green]Generating eclipse files for the module: [bold] %v [reset]\n", w.module)

	listing, err := w.ListTemplates(topts)
	if err != nil {
		return nil, err
	}

	if len(listing.Templates) == 0 {
		w.console.Printf("\t[yellow]No template files found[reset]\n")
	}

	report, err := w.installer.Install(listing, w.SettingsDir(topts), opts)
	if report != nil {
		w.console.Printf("\t%v\n", report.Summary())
	}

	return report, err
}

func (w *Workspace) ListTemplates(topts *TemplateOptions) (*templates.Listing, error) {
	if topts == nil {
		topts = &TemplateOptions{}
	}

	filter, err := filters.NewTemplateFilter(topts.Includes, topts.Excludes)
	if err != nil {
		return nil, err
	}

	sources, err := w.resolveSources(topts)
	if err != nil {
		return nil, err
	}

	return templates.Collect(filter, sources...)
}

func (w *Workspace) Diff(topts *TemplateOptions) ([]*settings.FileDiff, error) {
	listing, err := w.ListTemplates(topts)
	if err != nil {
		return nil, err
	}

	return w.installer.Diff(listing, w.SettingsDir(topts))
}

func (w *Workspace) Clean(topts *TemplateOptions, opts *settings.Options) (*settings.Report, error) {
	listing, err := w.ListTemplates(topts)
	if err != nil {
		return nil, err
	}

	report, err := w.installer.Clean(listing, w.SettingsDir(topts), opts)
	if report != nil {
		w.console.Printf("%v\n", report.Summary())
	}

	return report, err
}

// SettingsDir returns the absolute path of the settings directory.
func (w *Workspace) SettingsDir(topts *TemplateOptions) string {
	dir := DefaultSettingsDir
	if topts != nil && topts.SettingsDir != "" {
		dir = topts.SettingsDir
	}

	result, err := utils.PathAbsFrom(w.root, dir)
	if err != nil {
		return filepath.Join(w.root, dir)
	}
	return result
}

func (w *Workspace) resolveSources(topts *TemplateOptions) ([]*templates.Source, error) {
	if topts.Builtin {
		return []*templates.Source{templates.NewBuiltinSource()}, nil
	}

	dirs := topts.Dirs
	if len(dirs) == 0 {
		dirs = []string{DefaultTemplatesDir}
	}

	result := make([]*templates.Source, 0, len(dirs))
	for _, dir := range dirs {
		path, err := utils.PathAbsFrom(w.root, dir)
		if err != nil {
			return nil, err
		}

		source := templates.NewDirSource(w.fs, path)

		exists, err := source.Exists()
		if err != nil {
			return nil, err
		}

		if !exists {
			if len(dirs) == 1 && filepath.ToSlash(dir) == DefaultTemplatesDir {
				w.console.Printf("\tNo templates at %v, using built-in Eclipse settings\n", dir)
				return []*templates.Source{templates.NewBuiltinSource()}, nil
			}

			return nil, errors.Wrapf(templates.ErrSourceNotFound, "%v", utils.RelOrAbs(w.root, path))
		}

		result = append(result, source)
	}

	return result, nil
}
