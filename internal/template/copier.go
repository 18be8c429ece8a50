package template

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/fsutil"
	"github.com/cordova-labs/cordovagen/internal/platform"
)

const whereIsWWWNote = "To show `assets/www` or `res/xml/config.xml`, go to:\n" +
	"    Project -> Properties -> Resource -> Resource Filters\n" +
	"And delete the exclusion filter.\n"

// Copier stages files from a framework installation into project trees.
type Copier struct {
	Layout Layout
	Logger *slog.Logger
}

// NewCopier returns a Copier reading from layout.
func NewCopier(layout Layout, logger *slog.Logger) *Copier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Copier{Layout: layout, Logger: logger}
}

// CopyTemplate copies the template's assets and res trees plus the
// framework's res/xml into dest, creates the empty libs directory and
// installs the Eclipse project file. With cliTemplate the CLI variant of the
// project file is used and a note explaining the hidden www folder is left
// in assets.
func (c *Copier) CopyTemplate(dest, templateDir string, cliTemplate bool) error {
	const op = "copy template"

	for _, sub := range []string{"assets", "res"} {
		if err := fsutil.CopyDir(filepath.Join(templateDir, sub), filepath.Join(dest, sub)); err != nil {
			return errs.New(errs.Filesystem, op, fmt.Errorf("copying %s: %w", sub, err))
		}
	}
	xmlDir := filepath.Join(c.Layout.FrameworkDir(), "res", "xml")
	if err := fsutil.CopyInto(xmlDir, filepath.Join(dest, "res")); err != nil {
		return errs.New(errs.Filesystem, op, fmt.Errorf("copying framework res/xml: %w", err))
	}

	// Git does not track empty directories, so libs is never in the template.
	if err := os.MkdirAll(filepath.Join(dest, "libs"), 0755); err != nil {
		return errs.New(errs.Filesystem, op, err)
	}

	eclipseSrc := filepath.Join(templateDir, "eclipse-project")
	if cliTemplate {
		eclipseSrc = filepath.Join(templateDir, "eclipse-project-CLI")
	}
	if err := fsutil.CopyFile(eclipseSrc, filepath.Join(dest, EclipseFile)); err != nil {
		return errs.New(errs.Filesystem, op, fmt.Errorf("copying eclipse project file: %w", err))
	}
	if cliTemplate {
		note := filepath.Join(dest, "assets", WhereIsWWWFile)
		if err := os.WriteFile(note, []byte(whereIsWWWNote), 0644); err != nil {
			return errs.New(errs.Filesystem, op, err)
		}
	}

	return nil
}

// CopyJsAndLibrary installs the bridge script and the library project.
//
// Old cordova-*.jar files are removed on a best-effort basis. When shared is
// true the nested CordovaLib is deleted because the project references the
// installation's framework directly. Otherwise only CordovaLib/src is
// replaced, keeping an existing .project file that an IDE may hold on to,
// and a .project naming the library "<name>-CordovaLib" is written if none
// exists.
func (c *Copier) CopyJsAndLibrary(dest string, shared bool, name string) error {
	const op = "copy framework"

	framework := c.Layout.FrameworkDir()
	nested := c.Layout.LibraryDir(dest, false)

	bridge := filepath.Join(framework, "assets", "www", BridgeScriptFile)
	if err := fsutil.CopyFile(bridge, filepath.Join(dest, "assets", "www", BridgeScriptFile)); err != nil {
		return errs.New(errs.Filesystem, op, fmt.Errorf("copying %s: %w", BridgeScriptFile, err))
	}

	fsutil.BestEffort(c.Logger,
		fsutil.Step{Name: "remove old jars", Run: func() error {
			removed, err := fsutil.RemoveGlob(filepath.Join(dest, "libs", "cordova-*.jar"))
			for _, jar := range removed {
				c.Logger.Info("Deleting " + jar)
			}
			return err
		}},
		fsutil.Step{Name: "remove old library project", Run: func() error {
			if shared {
				return fsutil.RemoveAll(nested)
			}
			return fsutil.RemoveAll(filepath.Join(nested, "src"))
		}},
	)

	if shared {
		return nil
	}

	if err := os.MkdirAll(nested, 0755); err != nil {
		return errs.New(errs.Filesystem, op, err)
	}
	for _, f := range []string{ManifestFile, PropertiesFile} {
		if err := fsutil.CopyFile(filepath.Join(framework, f), filepath.Join(nested, f)); err != nil {
			return errs.New(errs.Filesystem, op, fmt.Errorf("copying %s: %w", f, err))
		}
	}
	if err := fsutil.CopyInto(filepath.Join(framework, "src"), nested); err != nil {
		return errs.New(errs.Filesystem, op, fmt.Errorf("copying framework sources: %w", err))
	}

	// Without a unique name several CordovaLib projects cannot be imported
	// into one Eclipse workspace.
	eclipse := filepath.Join(nested, EclipseFile)
	if !fsutil.Exists(eclipse) {
		data := `<?xml version="1.0" encoding="UTF-8"?><projectDescription><name>` +
			name + `-CordovaLib</name></projectDescription>`
		if err := os.WriteFile(eclipse, []byte(data), 0644); err != nil {
			return errs.New(errs.Filesystem, op, err)
		}
	}

	return nil
}

// CopyScripts replaces <dest>/cordova with the installation's helper
// scripts, their node modules and the check_reqs and android_sdk_version
// utilities.
func (c *Copier) CopyScripts(dest string) error {
	const op = "copy scripts"

	bin := c.Layout.BinDir()
	scripts := filepath.Join(dest, ScriptsDir)

	if err := fsutil.RemoveAll(scripts); err != nil {
		return errs.New(errs.Filesystem, op, err)
	}
	if err := fsutil.CopyDir(c.Layout.ScriptsTemplateDir(), scripts); err != nil {
		return errs.New(errs.Filesystem, op, fmt.Errorf("copying helper scripts: %w", err))
	}
	if err := fsutil.CopyDir(filepath.Join(bin, "node_modules"), filepath.Join(scripts, "node_modules")); err != nil {
		return errs.New(errs.Filesystem, op, fmt.Errorf("copying node_modules: %w", err))
	}

	files := []struct{ src, dst string }{
		{filepath.Join(bin, "check_reqs"), filepath.Join(scripts, "check_reqs")},
		{filepath.Join(bin, "lib", "check_reqs.js"), filepath.Join(scripts, "lib", "check_reqs.js")},
		{filepath.Join(bin, "android_sdk_version"), filepath.Join(scripts, "android_sdk_version")},
		{filepath.Join(bin, "lib", "android_sdk_version.js"), filepath.Join(scripts, "lib", "android_sdk_version.js")},
	}
	for _, f := range files {
		if err := fsutil.CopyFile(f.src, f.dst); err != nil {
			return errs.New(errs.Filesystem, op, fmt.Errorf("copying %s: %w", filepath.Base(f.src), err))
		}
	}

	if err := platform.MakeExecutable(
		filepath.Join(scripts, "check_reqs"),
		filepath.Join(scripts, "android_sdk_version"),
	); err != nil {
		return errs.New(errs.Filesystem, op, err)
	}

	if fsutil.Exists(c.Layout.VersionPath()) {
		if err := fsutil.CopyFile(c.Layout.VersionPath(), filepath.Join(scripts, VersionFile)); err != nil {
			return errs.New(errs.Filesystem, op, fmt.Errorf("recording version: %w", err))
		}
	}

	return nil
}

// CopyBuildRules installs custom_rules.xml at the project root.
func (c *Copier) CopyBuildRules(dest string) error {
	src := filepath.Join(c.Layout.ProjectTemplateDir(), BuildRulesFile)
	if err := fsutil.CopyFile(src, filepath.Join(dest, BuildRulesFile)); err != nil {
		return errs.New(errs.Filesystem, "copy build rules", err)
	}
	return nil
}

// CopyActivity copies the activity template to
// <dest>/src/<packagePath>/<activity>.java and returns the new path.
func (c *Copier) CopyActivity(dest, templateDir, packagePath, activity string) (string, error) {
	dir := filepath.Join(dest, "src", packagePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errs.New(errs.Filesystem, "copy activity", err)
	}
	path := filepath.Join(dir, activity+".java")
	if err := fsutil.CopyFile(filepath.Join(templateDir, ActivityTemplate), path); err != nil {
		return "", errs.New(errs.Filesystem, "copy activity", err)
	}
	return path, nil
}

// CopyManifest copies the template's AndroidManifest.xml into dest and
// returns the new path.
func (c *Copier) CopyManifest(dest, templateDir string) (string, error) {
	path := filepath.Join(dest, ManifestFile)
	if err := fsutil.CopyFile(filepath.Join(templateDir, ManifestFile), path); err != nil {
		return "", errs.New(errs.Filesystem, "copy manifest", err)
	}
	return path, nil
}
