// Package testutil builds synthetic framework installations for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// FrameworkVersion is the VERSION written by NewFramework.
const FrameworkVersion = "3.3.0"

// FrameworkTarget is the SDK target named in the synthetic framework's
// project.properties.
const FrameworkTarget = "android-19"

// ManifestTemplate mirrors the shape of the real project template manifest.
const ManifestTemplate = `<?xml version='1.0' encoding='utf-8'?>
<manifest android:hardwareAccelerated="true" android:versionCode="1" android:versionName="0.0.1" android:windowSoftInputMode="adjustPan" package="__PACKAGE__" xmlns:android="http://schemas.android.com/apk/res/android">
    <supports-screens android:anyDensity="true" android:largeScreens="true" android:normalScreens="true" android:resizeable="true" android:smallScreens="true" android:xlargeScreens="true" />
    <uses-permission android:name="android.permission.INTERNET" />
    <application android:hardwareAccelerated="true" android:icon="@drawable/icon" android:label="@string/app_name">
        <activity android:configChanges="orientation|keyboardHidden|keyboard|screenSize|locale" android:label="@string/app_name" android:name="__ACTIVITY__" android:theme="@android:style/Theme.Black.NoTitleBar">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
    </application>
    <uses-sdk android:minSdkVersion="10" android:targetSdkVersion="__APILEVEL__" />
</manifest>
`

// ActivityTemplate mirrors the project template's Activity.java.
const ActivityTemplate = `package __ID__;

import android.os.Bundle;
import org.apache.cordova.*;

public class __ACTIVITY__ extends CordovaActivity
{
    @Override
    public void onCreate(Bundle savedInstanceState)
    {
        super.onCreate(savedInstanceState);
        super.init();
        super.loadUrl(Config.getStartUrl());
    }
}
`

var frameworkFiles = []struct{ path, content string }{
	{"VERSION", FrameworkVersion + "\n"},
	{"framework/assets/www/cordova.js", "// cordova bridge " + FrameworkVersion + "\n"},
	{"framework/AndroidManifest.xml", `<manifest package="org.apache.cordova" />` + "\n"},
	{"framework/project.properties", "# Project target.\ntarget=" + FrameworkTarget + "\nandroid.library=true\n"},
	{"framework/src/org/apache/cordova/CordovaActivity.java", "package org.apache.cordova;\npublic class CordovaActivity {}\n"},
	{"framework/res/xml/config.xml", "<widget><access origin=\"*\" /></widget>\n"},

	{"bin/templates/project/assets/www/index.html", "<html><body>Hello</body></html>\n"},
	{"bin/templates/project/res/values/strings.xml", "<resources><string name=\"app_name\">__NAME__</string></resources>\n"},
	{"bin/templates/project/res/drawable/icon.png", "png"},
	{"bin/templates/project/eclipse-project", "<projectDescription><name>__NAME__</name></projectDescription>\n"},
	{"bin/templates/project/eclipse-project-CLI", "<projectDescription><name>__NAME__</name><filteredResources/></projectDescription>\n"},
	{"bin/templates/project/Activity.java", ActivityTemplate},
	{"bin/templates/project/AndroidManifest.xml", ManifestTemplate},
	{"bin/templates/project/custom_rules.xml", "<project name=\"custom_rules\" />\n"},
	{"bin/templates/cordova/build", "#!/bin/sh\n"},
	{"bin/templates/cordova/run", "#!/bin/sh\n"},
	{"bin/templates/cordova/lib/build.js", "module.exports = {};\n"},
	{"bin/node_modules/shelljs/package.json", "{\"name\":\"shelljs\"}\n"},
	{"bin/check_reqs", "#!/bin/sh\n"},
	{"bin/lib/check_reqs.js", "exports.run = function() {};\n"},
	{"bin/android_sdk_version", "#!/bin/sh\n"},
	{"bin/lib/android_sdk_version.js", "exports.run = function() {};\n"},
}

// NewFramework writes a minimal but complete framework installation into a
// temporary directory and returns its root.
func NewFramework(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "cordova-android")
	for _, f := range frameworkFiles {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(f.path)), f.content)
	}
	return root
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the contents of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
