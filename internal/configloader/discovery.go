package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ProjectConfigName is the file written by "linesplice init".
const ProjectConfigName = ".linesplice.yml"

const appName = "linesplice"

// ConfigPaths lists the configuration files found for a run.
// An empty field means no file was found at that level.
type ConfigPaths struct {
	// System is /etc/linesplice/config.yaml (%ProgramData%\linesplice on Windows).
	System string

	// User is $XDG_CONFIG_HOME/linesplice/config.yaml.
	User string

	// Project is the nearest .linesplice.yml above the working directory.
	Project string

	// Explicit is the --config path.
	Explicit string
}

// Config file names, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	projectConfigFiles = []string{ProjectConfigName, ".linesplice.yaml", "linesplice.yml", "linesplice.yaml"}
	globalConfigFiles  = []string{"config.yaml", "config.yml"}
	vcsRootMarkers     = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project configuration files for
// workDir. Missing files are not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), globalConfigFiles),
		User:    firstFile(userConfigDir(), globalConfigFiles),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, appName)
}

func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig walks up from startDir and returns the first project
// config file. The walk ends after the directory holding a VCS root marker,
// the home directory, or the filesystem root; "" means none was found.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if path := firstFile(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if isVCSRoot(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
