package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/eclipse-settings/lib/consoles"
	"github.com/pescuma/eclipse-settings/lib/templates"
)

const (
	root      = "/proj"
	tmplDir   = "/proj/t"
	settings  = "/proj/.settings"
	corePrefs = "org.eclipse.jdt.core.prefs"
	uiPrefs   = "org.eclipse.jdt.ui.prefs"
)

type fixture struct {
	fs        afero.Fs
	out       *bytes.Buffer
	installer *Installer
	listing   *templates.Listing
}

func newFixture(t *testing.T) *fixture {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, tmplDir+"/"+corePrefs, []byte("a=1\nb=2\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, tmplDir+"/"+uiPrefs, []byte("c=3\n"), 0o444))

	listing, err := templates.Collect(nil, templates.NewDirSource(fs, tmplDir))
	require.NoError(t, err)

	out := &bytes.Buffer{}

	return &fixture{
		fs:        fs,
		out:       out,
		installer: NewInstaller(consoles.NewWriterConsole(out, consoles.Options{}), fs, root),
		listing:   listing,
	}
}

func (f *fixture) read(t *testing.T, name string) string {
	data, err := afero.ReadFile(f.fs, settings+"/"+name)
	require.NoError(t, err)
	return string(data)
}

func TestInstallCreatesDirectoryAndCopies(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	report, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	assert.Equal(t, "\tCreating Directory\n\tcp t/* .settings/\n", f.out.String())
	assert.True(t, report.CreatedDirectory)
	assert.Equal(t, []string{corePrefs, uiPrefs}, report.Copied)
	assert.Equal(t, int64(12), report.Bytes)
	assert.Equal(t, "Copied 2 files (12 B) to .settings", report.Summary())

	assert.Equal(t, "a=1\nb=2\n", f.read(t, corePrefs))
	assert.Equal(t, "c=3\n", f.read(t, uiPrefs))
}

func TestInstallTwiceDoesNotFail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	f.out.Reset()

	report, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	assert.False(t, report.CreatedDirectory)
	assert.Equal(t, "\tcp t/* .settings/\n", f.out.String())
	assert.Len(t, report.Copied, 2)
}

func TestInstallKeepsOwnerWrite(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	info, err := f.fs.Stat(settings + "/" + uiPrefs)
	require.NoError(t, err)
	assert.Equal(t, "-rw-r--r--", info.Mode().Perm().String())
}

func TestInstallOverwritesByDefault(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, settings+"/"+corePrefs, []byte("old contents that are longer\n"), 0o644))
	require.NoError(t, afero.WriteFile(f.fs, settings+"/other.prefs", []byte("x"), 0o644))

	_, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	assert.Equal(t, "a=1\nb=2\n", f.read(t, corePrefs))
	assert.Equal(t, "x", f.read(t, "other.prefs"))
}

func TestInstallSkipExisting(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, settings+"/"+corePrefs, []byte("mine\n"), 0o644))

	report, err := f.installer.Install(f.listing, settings, &Options{SkipExisting: true, Verbose: true})
	require.NoError(t, err)

	assert.Equal(t, "mine\n", f.read(t, corePrefs))
	assert.Equal(t, "c=3\n", f.read(t, uiPrefs))
	assert.Equal(t, []string{corePrefs}, report.Skipped)
	assert.Equal(t, []string{uiPrefs}, report.Copied)
	assert.Equal(t, "Copied 1 file (4 B) to .settings, kept 1 existing file", report.Summary())
	assert.Contains(t, f.out.String(), "\t\tkeeping existing "+corePrefs+"\n")
	assert.Contains(t, f.out.String(), "\t\t"+uiPrefs+"\n")
}

func TestInstallDryRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	report, err := f.installer.Install(f.listing, settings, &Options{DryRun: true})
	require.NoError(t, err)

	exists, err := afero.DirExists(f.fs, settings)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.True(t, report.CreatedDirectory)
	assert.Equal(t, "Would copy 2 files (12 B) to .settings", report.Summary())
	assert.Equal(t, "\tCreating Directory\n\tcp t/* .settings/\n", f.out.String())
}

func TestInstallFailsWhenSettingsIsAFile(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, settings, []byte("x"), 0o644))

	_, err := f.installer.Install(f.listing, settings, nil)

	assert.True(t, errors.Is(err, ErrNotDirectory))
}

func TestInstallAggregatesErrors(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.fs.MkdirAll(settings, 0o755))

	installer := NewInstaller(consoles.NewWriterConsole(&bytes.Buffer{}, consoles.Options{}), afero.NewReadOnlyFs(f.fs), root)

	report, err := installer.Install(f.listing, settings, nil)
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Empty(t, report.Copied)
}

func TestInstallWithProgress(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	report, err := f.installer.Install(f.listing, settings, &Options{Progress: true})
	require.NoError(t, err)

	assert.Len(t, report.Copied, 2)
}

func TestInstallBuiltin(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	out := &bytes.Buffer{}
	installer := NewInstaller(consoles.NewWriterConsole(out, consoles.Options{}), fs, root)

	listing, err := templates.Collect(nil, templates.NewBuiltinSource())
	require.NoError(t, err)

	report, err := installer.Install(listing, settings, nil)
	require.NoError(t, err)

	assert.Len(t, report.Copied, len(listing.Templates))
	assert.Contains(t, out.String(), "\tcp <builtin>/* .settings/\n")

	for _, tmpl := range listing.Templates {
		exists, err := afero.Exists(fs, settings+"/"+tmpl.Name)
		require.NoError(t, err)
		assert.True(t, exists, tmpl.Name)
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, afero.WriteFile(f.fs, settings+"/"+corePrefs, []byte("a=1\nb=5\n"), 0o644))

	diffs, err := f.installer.Diff(f.listing, settings)
	require.NoError(t, err)
	require.Len(t, diffs, 2)

	assert.Equal(t, corePrefs, diffs[0].Template.Name)
	assert.Equal(t, Changed, diffs[0].State)
	assert.Equal(t, 1, diffs[0].Stats.Inserted)
	assert.Equal(t, 1, diffs[0].Stats.Deleted)

	assert.Equal(t, uiPrefs, diffs[1].Template.Name)
	assert.Equal(t, Missing, diffs[1].State)
	assert.Equal(t, 1, diffs[1].Stats.Inserted)

	_, err = f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	diffs, err = f.installer.Diff(f.listing, settings)
	require.NoError(t, err)
	assert.Equal(t, Equal, diffs[0].State)
	assert.Equal(t, Equal, diffs[1].State)
}

func TestCleanRemovesOnlyTemplates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(f.fs, settings+"/other.prefs", []byte("x"), 0o644))

	report, err := f.installer.Clean(f.listing, settings, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{corePrefs, uiPrefs}, report.Removed)
	assert.False(t, report.RemovedDirectory)
	assert.Equal(t, "x", f.read(t, "other.prefs"))
	assert.Equal(t, "Removed 2 files from .settings", report.Summary())
}

func TestCleanRemovesEmptyDirectory(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	report, err := f.installer.Clean(f.listing, settings, nil)
	require.NoError(t, err)

	assert.True(t, report.RemovedDirectory)

	exists, err := afero.DirExists(f.fs, settings)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCleanWithoutDirectory(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	report, err := f.installer.Clean(f.listing, settings, nil)
	require.NoError(t, err)

	assert.Empty(t, report.Removed)
}

func TestCleanDryRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	_, err := f.installer.Install(f.listing, settings, nil)
	require.NoError(t, err)

	report, err := f.installer.Clean(f.listing, settings, &Options{DryRun: true})
	require.NoError(t, err)

	assert.Len(t, report.Removed, 2)
	assert.Equal(t, "c=3\n", f.read(t, uiPrefs))
}

func TestCleanSummaryWithNothingToRemove(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	report, err := f.installer.Clean(f.listing, settings, nil)
	require.NoError(t, err)

	assert.Equal(t, "Removed 0 files from .settings", report.Summary())
}

func TestInstallRefusesToCopyOntoItself(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	report, err := f.installer.Install(f.listing, tmplDir, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSameFile))
	assert.Empty(t, report.Copied)

	data, err := afero.ReadFile(f.fs, tmplDir+"/"+corePrefs)
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\n", string(data))
}

func TestInstallRefusesToCopyThroughSymlink(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	tmpl := filepath.Join(base, "templates")
	link := filepath.Join(base, ".settings")
	require.NoError(t, os.MkdirAll(tmpl, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, corePrefs), []byte("a=1\nb=2\n"), 0o644))
	require.NoError(t, os.Symlink(tmpl, link))

	fs := afero.NewOsFs()
	listing, err := templates.Collect(nil, templates.NewDirSource(fs, tmpl))
	require.NoError(t, err)

	installer := NewInstaller(consoles.NewWriterConsole(&bytes.Buffer{}, consoles.Options{}), fs, base)

	_, err = installer.Install(listing, link, nil)
	assert.True(t, errors.Is(err, ErrSameFile))

	data, err := os.ReadFile(filepath.Join(tmpl, corePrefs))
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\n", string(data))
}
