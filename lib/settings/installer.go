package settings

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/consoles"
	"github.com/pescuma/eclipse-settings/lib/templates"
	"github.com/pescuma/eclipse-settings/lib/utils"
)

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrSameFile     = errors.New("template and destination are the same file")
)

type Installer struct {
	console consoles.Console
	fs      afero.Fs
	root    string
}

type Options struct {
	// SkipExisting keeps files that are already in the settings directory
	SkipExisting bool
	DryRun       bool
	Verbose      bool
	Progress     bool
}

// NewInstaller creates an installer. Paths inside root are shown relative to it.
func NewInstaller(console consoles.Console, fs afero.Fs, root string) *Installer {
	return &Installer{
		console: console,
		fs:      fs,
		root:    root,
	}
}

// EnsureDirectory creates dir when it does not exist. It does nothing if dir is already there.
func (i *Installer) EnsureDirectory(dir string) (bool, error) {
	exists, err := i.checkDirectory(dir)
	if err != nil || exists {
		return false, err
	}

	i.console.Printf("\tCreating Directory\n")

	err = i.fs.MkdirAll(dir, 0o755)
	if err != nil {
		return false, errors.Wrapf(err, "error creating %v", i.display(dir))
	}

	return true, nil
}

func (i *Installer) checkDirectory(dir string) (bool, error) {
	info, err := i.fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return true, nil
	case err == nil:
		return false, errors.Wrapf(ErrNotDirectory, "%v", i.display(dir))
	case errors.Is(err, afero.ErrFileNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Install copies the templates into dir, creating it if needed.
// A failure to copy one file does not stop the others, all failures are returned together.
func (i *Installer) Install(listing *templates.Listing, dir string, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}

	report := &Report{
		Directory: i.display(dir),
		DryRun:    opts.DryRun,
	}

	if opts.DryRun {
		exists, err := i.checkDirectory(dir)
		if err != nil {
			return nil, err
		}
		if !exists {
			i.console.Printf("\tCreating Directory\n")
			report.CreatedDirectory = true
		}
	} else {
		created, err := i.EnsureDirectory(dir)
		if err != nil {
			return nil, err
		}
		report.CreatedDirectory = created
	}

	for _, source := range i.usedSources(listing) {
		i.console.Printf("\tcp %v* %v\n", i.displaySource(source), i.displayDir(dir))
	}

	var bar *progressbar.ProgressBar
	if opts.Progress && len(listing.Templates) > 0 {
		bar = utils.NewProgressBar(i.console.Writer(), len(listing.Templates))
	}

	var errs *multierror.Error
	for _, t := range listing.Templates {
		if bar != nil {
			bar.Describe(utils.TruncateFilename(t.Name))
		}

		dst := filepath.Join(dir, filepath.FromSlash(t.Name))

		copied, err := i.installOne(t, dst, opts, report)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "error copying %v", t.Name))
		} else if copied {
			report.Copied = append(report.Copied, t.Name)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return report, errs.ErrorOrNil()
}

func (i *Installer) installOne(t *templates.Template, dst string, opts *Options, report *Report) (bool, error) {
	same, err := t.Source.SameFile(t.Name, i.fs, dst)
	if err != nil {
		return false, err
	}
	if same {
		return false, errors.Wrapf(ErrSameFile, "%v", filepath.ToSlash(i.display(dst)))
	}

	if opts.SkipExisting {
		exists, err := utils.FileExists(i.fs, dst)
		if err != nil {
			return false, err
		}

		if exists {
			if opts.Verbose {
				i.console.Printf("\t\tkeeping existing %v\n", t.Name)
			}
			report.Skipped = append(report.Skipped, t.Name)
			return false, nil
		}
	}

	if opts.Verbose {
		i.console.Printf("\t\t%v\n", t.Name)
	}

	if opts.DryRun {
		report.Bytes += t.Size
		return true, nil
	}

	n, err := copyTemplate(i.fs, t, dst)
	if err != nil {
		return false, err
	}

	report.Bytes += n
	return true, nil
}

// usedSources returns, in order, the sources that have at least one template to copy.
func (i *Installer) usedSources(listing *templates.Listing) []*templates.Source {
	used := lo.Uniq(lo.Map(listing.Templates, func(t *templates.Template, _ int) *templates.Source { return t.Source }))
	return lo.Filter(listing.Sources, func(s *templates.Source, _ int) bool { return lo.Contains(used, s) })
}

func (i *Installer) display(path string) string {
	if i.root == "" {
		return path
	}
	return utils.RelOrAbs(i.root, path)
}

func (i *Installer) displayDir(path string) string {
	return filepath.ToSlash(i.display(path)) + "/"
}

func (i *Installer) displaySource(source *templates.Source) string {
	if source.IsBuiltin() {
		return source.Name() + "/"
	}
	return i.displayDir(source.Name())
}

func (i *Installer) remove(path string) error {
	err := i.fs.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
