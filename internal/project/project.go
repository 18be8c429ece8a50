package project

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/fsutil"
	"github.com/cordova-labs/cordovagen/internal/names"
	"github.com/cordova-labs/cordovagen/internal/placeholder"
	"github.com/cordova-labs/cordovagen/internal/sdk"
	"github.com/cordova-labs/cordovagen/internal/template"
	"github.com/cordova-labs/cordovagen/internal/version"
)

// Defaults applied to an empty Request.
const (
	DefaultPath    = "CordovaExample"
	DefaultPackage = "my.cordova.project"
	DefaultName    = "CordovaExample"
)

// Request describes a project to create.
type Request struct {
	Path    string
	Package string
	Name    string
	// TemplateDir overrides the installation's project template.
	TemplateDir string
	// Shared links against the installation's framework instead of a
	// per-project CordovaLib copy.
	Shared bool
	// CLITemplate selects the Eclipse project file used by CLI-managed
	// projects.
	CLITemplate bool
}

// WithDefaults fills empty fields.
func (r Request) WithDefaults(layout template.Layout) Request {
	if r.Path == "" {
		r.Path = DefaultPath
	}
	if r.Package == "" {
		r.Package = DefaultPackage
	}
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.TemplateDir == "" {
		r.TemplateDir = layout.ProjectTemplateDir()
	}
	return r
}

// Result describes a created project.
type Result struct {
	Path     string
	Package  string
	Name     string
	Activity string
	Target   string
	Version  string
}

// UpdateResult describes an updated project.
type UpdateResult struct {
	Path     string
	Activity string
	Target   string
	Version  string
	// Previous is the version recorded by the last create or update, or
	// empty if the project predates version recording.
	Previous string
}

// ProjectLinker registers a project with the SDK build configuration.
type ProjectLinker interface {
	UpdateProject(ctx context.Context, dest, target string, shared bool) (string, error)
}

// Service runs the create and update flows against one framework
// installation.
type Service struct {
	Layout  template.Layout
	Copier  *template.Copier
	Checker sdk.Checker
	Linker  ProjectLinker
	Logger  *slog.Logger
}

// NewService wires a Service for the installation described by layout.
func NewService(layout template.Layout, checker sdk.Checker, linker ProjectLinker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		Layout:  layout,
		Copier:  template.NewCopier(layout, logger),
		Checker: checker,
		Linker:  linker,
		Logger:  logger,
	}
}

// Create generates a new project.
func (s *Service) Create(ctx context.Context, req Request) (*Result, error) {
	req = req.WithDefaults(s.Layout)
	activity := names.SafeActivityName(req.Name)
	packagePath := names.PackageAsPath(req.Package)

	if fsutil.Exists(req.Path) {
		return nil, errs.Newf(errs.Precondition, "create project",
			"project already exists at %s! Delete and recreate", req.Path)
	}

	if err := names.ValidatePackage(req.Package); err != nil {
		return nil, err
	}
	if err := names.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if activity == "" {
		return nil, errs.New(errs.InputValidation, "validate name", names.ErrNoIdentifier)
	}

	ver, target, apiLevel, err := s.checkEnvironment(ctx)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Creating Cordova project for the Android platform",
		"path", req.Path,
		"package", req.Package,
		"name", req.Name,
		"target", target)
	s.Logger.Info("Copying template files...")

	if err := s.Copier.CopyTemplate(req.Path, req.TemplateDir, req.CLITemplate); err != nil {
		return nil, err
	}
	if err := s.Copier.CopyJsAndLibrary(req.Path, req.Shared, activity); err != nil {
		return nil, err
	}

	activityPath, err := s.Copier.CopyActivity(req.Path, req.TemplateDir, packagePath, activity)
	if err != nil {
		return nil, err
	}
	if err := placeholder.ApplyAll([]placeholder.Substitution{
		{File: activityPath, Token: "ACTIVITY", Replacement: activity},
		{File: filepath.Join(req.Path, "res", "values", "strings.xml"), Token: "NAME", Replacement: req.Name},
		{File: filepath.Join(req.Path, template.EclipseFile), Token: "NAME", Replacement: req.Name},
		{File: activityPath, Token: "ID", Replacement: req.Package},
	}); err != nil {
		return nil, err
	}

	manifestPath, err := s.Copier.CopyManifest(req.Path, req.TemplateDir)
	if err != nil {
		return nil, err
	}
	if err := placeholder.ApplyAll([]placeholder.Substitution{
		{File: manifestPath, Token: "ACTIVITY", Replacement: activity},
		{File: manifestPath, Token: "PACKAGE", Replacement: req.Package},
		{File: manifestPath, Token: "APILEVEL", Replacement: apiLevel},
	}); err != nil {
		return nil, err
	}

	if err := s.Copier.CopyScripts(req.Path); err != nil {
		return nil, err
	}
	if err := s.Copier.CopyBuildRules(req.Path); err != nil {
		return nil, err
	}

	if _, err := s.Linker.UpdateProject(ctx, req.Path, target, req.Shared); err != nil {
		return nil, err
	}

	s.Logger.Info("Project successfully created.")
	return &Result{
		Path:     req.Path,
		Package:  req.Package,
		Name:     req.Name,
		Activity: activity,
		Target:   target,
		Version:  ver,
	}, nil
}

// Update refreshes the framework copy, helper scripts and build rules of the
// project at path and links it again. It never uses the shared framework.
func (s *Service) Update(ctx context.Context, path string) (*UpdateResult, error) {
	ver, err := s.frameworkVersion()
	if err != nil {
		return nil, err
	}
	if err := s.runChecker(ctx); err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(path, template.ManifestFile)
	activity, err := ActivityName(manifestPath)
	if err != nil {
		return nil, err
	}

	target, err := s.target()
	if err != nil {
		return nil, err
	}

	previous := s.recordedVersion(path)

	if err := s.Copier.CopyJsAndLibrary(path, false, activity); err != nil {
		return nil, err
	}
	if err := s.Copier.CopyScripts(path); err != nil {
		return nil, err
	}
	if err := s.Copier.CopyBuildRules(path); err != nil {
		return nil, err
	}
	if err := RemoveDebuggable(manifestPath); err != nil {
		return nil, err
	}

	if _, err := s.Linker.UpdateProject(ctx, path, target, false); err != nil {
		return nil, err
	}

	if previous != "" {
		if down, err := version.IsDowngrade(previous, ver); err == nil && down {
			s.Logger.Warn("project was created by a newer framework", "previous", previous, "version", ver)
		}
	}
	s.Logger.Info("Android project is now at version " + ver)
	s.Logger.Info(`If you updated from a pre-3.2.0 version and use an IDE, we now require that you import the "CordovaLib" library project.`)

	return &UpdateResult{
		Path:     path,
		Activity: activity,
		Target:   target,
		Version:  ver,
		Previous: previous,
	}, nil
}

// checkEnvironment reads the framework version, runs the requirements
// check and resolves the target and its API level. It writes nothing.
func (s *Service) checkEnvironment(ctx context.Context) (ver, target, apiLevel string, err error) {
	if ver, err = s.frameworkVersion(); err != nil {
		return "", "", "", err
	}
	if err = s.runChecker(ctx); err != nil {
		return "", "", "", err
	}
	if target, err = s.target(); err != nil {
		return "", "", "", err
	}
	if apiLevel, err = sdk.APILevel(target); err != nil {
		return "", "", "", err
	}
	return ver, target, apiLevel, nil
}

func (s *Service) frameworkVersion() (string, error) {
	v, err := version.Read(s.Layout.VersionPath())
	if err != nil {
		return "", errs.New(errs.Environment, "read framework version", err)
	}
	return v, nil
}

func (s *Service) runChecker(ctx context.Context) error {
	if err := s.Checker.Run(ctx); err != nil {
		return classify(errs.Environment, "check requirements", err)
	}
	return nil
}

func (s *Service) target() (string, error) {
	target, err := s.Checker.Target()
	if err != nil {
		return "", classify(errs.Environment, "read target", err)
	}
	return target, nil
}

// recordedVersion returns the framework version stored in the project's
// scripts directory, or "" when there is none.
func (s *Service) recordedVersion(path string) string {
	v, err := version.Read(filepath.Join(path, template.ScriptsDir, template.VersionFile))
	if err != nil {
		return ""
	}
	return v
}

// classify gives err a kind unless it already carries one.
func classify(kind errs.Kind, op string, err error) error {
	if errs.KindOf(err) != errs.Unknown {
		return err
	}
	return errs.New(kind, op, err)
}
