//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/cordova-labs/cordovagen/internal/logger"
	"github.com/cordova-labs/cordovagen/internal/project"
	"github.com/cordova-labs/cordovagen/internal/sdk"
	"github.com/cordova-labs/cordovagen/internal/template"
	"github.com/cordova-labs/cordovagen/internal/testutil"
)

// testEnv holds the paths of one sandboxed run.
type testEnv struct {
	Root    string // framework installation
	ToolDir string // stub java, ant and android scripts, first on PATH
	WorkDir string // where projects are created
	CallLog string // every android invocation is appended here
}

// androidStub answers `list targets` and records `update project` calls.
const androidStub = `#!/bin/sh
echo "$@" >> "$CALL_LOG"
case "$1" in
  list)
    echo 'Available Android targets:'
    echo 'id: 1 or "android-19"'
    ;;
  update)
    if [ -n "$ANDROID_STUB_FAIL" ]; then
      echo "Error: Target id 'android-19' is not valid." >&2
      exit 1
    fi
    echo "Updated project.properties"
    ;;
esac
`

// setupTestEnv builds a framework installation and a PATH holding stub
// build tools. PATH is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}

	env := &testEnv{
		Root:    testutil.NewFramework(t),
		ToolDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.CallLog = filepath.Join(env.WorkDir, "android-calls.log")

	writeTool(t, env.ToolDir, "java", "#!/bin/sh\nexit 0\n")
	writeTool(t, env.ToolDir, "ant", "#!/bin/sh\nexit 0\n")
	writeTool(t, env.ToolDir, "android", androidStub)

	t.Setenv("PATH", env.ToolDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("CALL_LOG", env.CallLog)
	t.Setenv("ANDROID_STUB_FAIL", "")
	return env
}

// service wires the real runner, checker and linker.
func (e *testEnv) service() *project.Service {
	layout := template.NewLayout(e.Root)
	runner := &sdk.ExecRunner{}
	log := logger.Discard()
	return project.NewService(layout,
		sdk.NewSDKChecker(runner, layout, sdk.DefaultTool),
		sdk.NewLinker(runner, sdk.DefaultTool, layout, log),
		log)
}

func writeTool(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s to not exist", path)
	}
}
