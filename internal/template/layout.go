package template

import "path/filepath"

// Names of files and directories inside a generated project.
const (
	NestedLibDir     = "CordovaLib"
	ScriptsDir       = "cordova"
	ManifestFile     = "AndroidManifest.xml"
	EclipseFile      = ".project"
	BuildRulesFile   = "custom_rules.xml"
	BridgeScriptFile = "cordova.js"
	VersionFile      = "VERSION"
	ActivityTemplate = "Activity.java"
	PropertiesFile   = "project.properties"
	WhereIsWWWFile   = "_where-is-www.txt"
)

// Layout resolves paths inside a framework installation rooted at Root.
type Layout struct {
	Root string
}

// NewLayout returns a Layout for the installation at root.
func NewLayout(root string) Layout {
	return Layout{Root: root}
}

// FrameworkDir is the shared framework library project.
func (l Layout) FrameworkDir() string { return filepath.Join(l.Root, "framework") }

// BinDir holds the create/update tooling and its templates.
func (l Layout) BinDir() string { return filepath.Join(l.Root, "bin") }

// ProjectTemplateDir is the default project template.
func (l Layout) ProjectTemplateDir() string {
	return filepath.Join(l.BinDir(), "templates", "project")
}

// ScriptsTemplateDir holds the helper scripts copied into <project>/cordova.
func (l Layout) ScriptsTemplateDir() string {
	return filepath.Join(l.BinDir(), "templates", ScriptsDir)
}

// VersionPath is the installation's VERSION file.
func (l Layout) VersionPath() string { return filepath.Join(l.Root, VersionFile) }

// FrameworkProperties is the framework's project.properties, which names the
// SDK target the framework builds against.
func (l Layout) FrameworkProperties() string {
	return filepath.Join(l.FrameworkDir(), PropertiesFile)
}

// LibraryDir returns the framework directory a project at dest links
// against: the shared framework, or the project's own CordovaLib copy.
func (l Layout) LibraryDir(dest string, shared bool) string {
	if shared {
		return l.FrameworkDir()
	}
	return filepath.Join(dest, NestedLibDir)
}
