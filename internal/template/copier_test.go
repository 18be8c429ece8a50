package template

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/logger"
	"github.com/cordova-labs/cordovagen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCopier(t *testing.T) (*Copier, string) {
	t.Helper()
	root := testutil.NewFramework(t)
	dest := filepath.Join(t.TempDir(), "App")
	return NewCopier(NewLayout(root), logger.Discard()), dest
}

func TestLayoutPaths(t *testing.T) {
	l := NewLayout("/opt/cordova-android")
	assert.Equal(t, filepath.Join("/opt/cordova-android", "framework"), l.FrameworkDir())
	assert.Equal(t, filepath.Join("/opt/cordova-android", "bin", "templates", "project"), l.ProjectTemplateDir())
	assert.Equal(t, filepath.Join("/opt/cordova-android", "bin", "templates", "cordova"), l.ScriptsTemplateDir())
	assert.Equal(t, filepath.Join("/opt/cordova-android", "framework"), l.LibraryDir("/work/App", true))
	assert.Equal(t, filepath.Join("/work/App", "CordovaLib"), l.LibraryDir("/work/App", false))
}

func TestCopyTemplate(t *testing.T) {
	c, dest := newCopier(t)

	require.NoError(t, c.CopyTemplate(dest, c.Layout.ProjectTemplateDir(), false))

	assert.FileExists(t, filepath.Join(dest, "assets", "www", "index.html"))
	assert.FileExists(t, filepath.Join(dest, "res", "values", "strings.xml"))
	assert.FileExists(t, filepath.Join(dest, "res", "xml", "config.xml"))
	assert.DirExists(t, filepath.Join(dest, "libs"))
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dest, ".project")), "<name>__NAME__</name></projectDescription>")
	assert.NoFileExists(t, filepath.Join(dest, "assets", WhereIsWWWFile))
}

func TestCopyTemplateCLIVariant(t *testing.T) {
	c, dest := newCopier(t)

	require.NoError(t, c.CopyTemplate(dest, c.Layout.ProjectTemplateDir(), true))

	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dest, ".project")), "<filteredResources/>")
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dest, "assets", WhereIsWWWFile)), "Resource Filters")
}

func TestCopyTemplateMissingTemplate(t *testing.T) {
	c, dest := newCopier(t)

	err := c.CopyTemplate(dest, filepath.Join(t.TempDir(), "nope"), false)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Filesystem))
}

func TestCopyJsAndLibraryNested(t *testing.T) {
	c, dest := newCopier(t)
	require.NoError(t, c.CopyTemplate(dest, c.Layout.ProjectTemplateDir(), false))
	testutil.WriteFile(t, filepath.Join(dest, "libs", "cordova-2.9.0.jar"), "jar")
	testutil.WriteFile(t, filepath.Join(dest, "libs", "guava.jar"), "jar")
	testutil.WriteFile(t, filepath.Join(dest, "CordovaLib", "src", "Stale.java"), "old")

	require.NoError(t, c.CopyJsAndLibrary(dest, false, "MyApp"))

	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dest, "assets", "www", "cordova.js")), "cordova bridge")
	assert.NoFileExists(t, filepath.Join(dest, "libs", "cordova-2.9.0.jar"))
	assert.FileExists(t, filepath.Join(dest, "libs", "guava.jar"))

	lib := filepath.Join(dest, "CordovaLib")
	assert.NoFileExists(t, filepath.Join(lib, "src", "Stale.java"))
	assert.FileExists(t, filepath.Join(lib, "src", "org", "apache", "cordova", "CordovaActivity.java"))
	assert.FileExists(t, filepath.Join(lib, "AndroidManifest.xml"))
	assert.FileExists(t, filepath.Join(lib, "project.properties"))
	assert.Equal(t,
		`<?xml version="1.0" encoding="UTF-8"?><projectDescription><name>MyApp-CordovaLib</name></projectDescription>`,
		testutil.ReadFile(t, filepath.Join(lib, ".project")))
}

func TestCopyJsAndLibraryKeepsExistingEclipseProject(t *testing.T) {
	c, dest := newCopier(t)
	require.NoError(t, c.CopyTemplate(dest, c.Layout.ProjectTemplateDir(), false))
	testutil.WriteFile(t, filepath.Join(dest, "CordovaLib", ".project"), "custom")

	require.NoError(t, c.CopyJsAndLibrary(dest, false, "MyApp"))

	assert.Equal(t, "custom", testutil.ReadFile(t, filepath.Join(dest, "CordovaLib", ".project")))
}

func TestCopyJsAndLibraryShared(t *testing.T) {
	c, dest := newCopier(t)
	require.NoError(t, c.CopyTemplate(dest, c.Layout.ProjectTemplateDir(), false))
	testutil.WriteFile(t, filepath.Join(dest, "CordovaLib", ".project"), "custom")

	require.NoError(t, c.CopyJsAndLibrary(dest, true, "MyApp"))

	assert.FileExists(t, filepath.Join(dest, "assets", "www", "cordova.js"))
	assert.NoDirExists(t, filepath.Join(dest, "CordovaLib"))
}

func TestCopyJsAndLibraryWithoutLibsDir(t *testing.T) {
	c, dest := newCopier(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "assets", "www"), 0755))

	// No libs/ and no CordovaLib/: cleanup has nothing to do and must not fail.
	require.NoError(t, c.CopyJsAndLibrary(dest, false, "MyApp"))
	assert.DirExists(t, filepath.Join(dest, "CordovaLib", "src"))
}

func TestCopyScriptsReplacesDirectory(t *testing.T) {
	c, dest := newCopier(t)
	testutil.WriteFile(t, filepath.Join(dest, "cordova", "obsolete"), "old")

	require.NoError(t, c.CopyScripts(dest))

	scripts := filepath.Join(dest, "cordova")
	assert.NoFileExists(t, filepath.Join(scripts, "obsolete"))
	for _, f := range []string{
		"build", "run", "lib/build.js", "node_modules/shelljs/package.json",
		"check_reqs", "lib/check_reqs.js", "android_sdk_version", "lib/android_sdk_version.js",
	} {
		assert.FileExists(t, filepath.Join(scripts, filepath.FromSlash(f)))
	}
	assert.Equal(t, testutil.FrameworkVersion+"\n", testutil.ReadFile(t, filepath.Join(scripts, VersionFile)))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(scripts, "check_reqs"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode().Perm()&0100, "check_reqs should be executable")
	}
}

func TestCopyScriptsIdempotent(t *testing.T) {
	c, dest := newCopier(t)

	require.NoError(t, c.CopyScripts(dest))
	first := testutil.ReadFile(t, filepath.Join(dest, "cordova", "lib", "check_reqs.js"))
	require.NoError(t, c.CopyScripts(dest))

	assert.Equal(t, first, testutil.ReadFile(t, filepath.Join(dest, "cordova", "lib", "check_reqs.js")))
}

func TestCopyBuildRules(t *testing.T) {
	c, dest := newCopier(t)
	testutil.WriteFile(t, filepath.Join(dest, "custom_rules.xml"), "stale")

	require.NoError(t, c.CopyBuildRules(dest))

	assert.Equal(t, "<project name=\"custom_rules\" />\n", testutil.ReadFile(t, filepath.Join(dest, "custom_rules.xml")))
}

func TestCopyActivityAndManifest(t *testing.T) {
	c, dest := newCopier(t)
	tmpl := c.Layout.ProjectTemplateDir()

	activity, err := c.CopyActivity(dest, tmpl, filepath.Join("com", "example", "app"), "MyApp")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "src", "com", "example", "app", "MyApp.java"), activity)
	assert.Contains(t, testutil.ReadFile(t, activity), "class __ACTIVITY__")

	manifest, err := c.CopyManifest(dest, tmpl)
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, manifest), `package="__PACKAGE__"`)
}
