package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/heyps/pkg/paths"
)

// Isolate points the heyps config, data and state directories at a fresh
// temporary tree and disables the log file. It returns the tree's root.
func Isolate(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv(paths.EnvConfigDir, filepath.Join(root, "config"))
	t.Setenv(paths.EnvDataDir, filepath.Join(root, "data"))
	t.Setenv(paths.EnvStateDir, filepath.Join(root, "state"))
	t.Setenv("HEYPS_LOG_FILE", "false")
	return root
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// InfoPlist returns a minimal XML Info.plist declaring version
func InfoPlist(bundleID, version string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleIdentifier</key>
	<string>%s</string>
	<key>CFBundleShortVersionString</key>
	<string>%s</string>
</dict>
</plist>
`, bundleID, version)
}

// CreateBundle creates dir/name.app with a Contents/Info.plist and returns
// the bundle path. An empty version writes no Info.plist.
func CreateBundle(t *testing.T, dir, name, bundleID, version string) string {
	t.Helper()

	bundle := CreateDir(t, dir, name+".app")
	if version != "" {
		CreateFile(t, bundle, filepath.Join("Contents", "Info.plist"), InfoPlist(bundleID, version))
	}
	return bundle
}
