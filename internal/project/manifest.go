package project

import (
	"os"
	"regexp"

	"github.com/cordova-labs/cordovagen/internal/errs"
	"github.com/cordova-labs/cordovagen/internal/placeholder"
)

var (
	activityNamePattern = regexp.MustCompile(`(?i)<activity[\s\S]*?android:name\s*=\s*"(.*?)"`)
	// android:debuggable was dropped from the template in 3.3; Ant sets it
	// per build type.
	debuggablePattern = regexp.MustCompile(`\s*android:debuggable="true"`)
)

// ActivityName returns the android:name of the first <activity> in the
// manifest at path.
func ActivityName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errs.New(errs.Filesystem, "read manifest", err)
	}
	m := activityNamePattern.FindSubmatch(data)
	if m == nil {
		return "", errs.Newf(errs.ManifestParse, "read manifest", "could not find activity name in %s", path)
	}
	return string(m[1]), nil
}

// RemoveDebuggable strips android:debuggable="true" from the manifest. A
// manifest without the attribute is left as is.
func RemoveDebuggable(path string) error {
	return placeholder.ReplaceFirst(path, debuggablePattern, "")
}
