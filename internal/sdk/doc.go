// Package sdk talks to the Android SDK command-line tool. The Linker runs
// `android update project` to wire a generated project to its library
// project and platform target. The SDKChecker verifies that java, ant and
// the SDK tool are installed and that the framework's target platform is
// available.
package sdk
