package request

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/project"
)

func TestLoad(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)

	assert.Equal(t, project.Request{
		Path:        "out/MyApp",
		Package:     "com.example.myapp",
		Name:        "My App",
		TemplateDir: "/opt/templates/project",
		Shared:      true,
		CLITemplate: true,
	}, f.Request())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errs.Filesystem, errs.KindOf(err))
}

func TestParsePartial(t *testing.T) {
	f, err := Parse([]byte("name: Demo\n"))
	require.NoError(t, err)
	assert.Equal(t, project.Request{Name: "Demo"}, f.Request())
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, project.Request{}, f.Request())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
		path    string
	}{
		{"unknown key", "pakage: com.example.app\n", "additionalProperties", ""},
		{"bad package", "package: myapp\n", "pattern", "/package"},
		{"empty name", "name: \"\"\n", "minLength", "/name"},
		{"shared not a bool", "shared: maybe\n", "type", "/shared"},
		{"not a mapping", "- a\n- b\n", "type", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			require.NoError(t, err)
			require.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)
			assert.Equal(t, tt.keyword, result.Issues[0].Keyword)
			assert.Equal(t, tt.path, result.Issues[0].Path)

			_, err = Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, errs.InputValidation, errs.KindOf(err))
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated\n"))
	require.Error(t, err)
	assert.Equal(t, errs.InputValidation, errs.KindOf(err))
}
