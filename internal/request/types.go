package request

import "github.com/cordova-labs/cordovagen/internal/project"

// File is the decoded form of a request file.
type File struct {
	Path     string `yaml:"path"`
	Package  string `yaml:"package"`
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	Shared   bool   `yaml:"shared"`
	CLI      bool   `yaml:"cli"`
}

// Request converts f into a project request. Empty fields stay empty and
// receive the usual defaults when the project is created.
func (f *File) Request() project.Request {
	return project.Request{
		Path:        f.Path,
		Package:     f.Package,
		Name:        f.Name,
		TemplateDir: f.Template,
		Shared:      f.Shared,
		CLITemplate: f.CLI,
	}
}
