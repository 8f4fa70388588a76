package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/lcafocus/internal/logging"
)

// projectDirName is the name of both the user and project-local config directories.
const projectDirName = ".lcafocus"

//nolint:gochecknoglobals // Set once per command invocation by the CLI root.
var (
	resolvedProjectDir   string
	resolvedProjectDirMu sync.RWMutex
)

// SetResolvedProjectDir records the project directory resolved for the
// current invocation.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the project directory recorded by
// SetResolvedProjectDir, or "" outside a project.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .lcafocus directory path.
// It checks, in order:
//  1. flagValue (--project-dir CLI flag)
//  2. LCAFOCUS_PROJECT_DIR env var
//  3. a walk up from startDir looking for an existing .lcafocus directory
//
// Returns an absolute path, or "" if no project is found. Nothing is created.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	// The user-level directory is not a project directory.
	userDir, _ := GetConfigDir()
	for {
		candidate := filepath.Join(dir, projectDirName)
		if info, statErr := os.Stat(candidate); statErr == nil && info.IsDir() && candidate != userDir {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ProjectConfigPath returns the overlay file inside a project directory.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, configFileName)
}

// NewWithProjectDir creates a Config by loading global config then
// shallow-merging project-local config on top. If projectDir is empty,
// behaves identically to New(). An overlay that fails to merge is skipped
// and reported through LoadErrors.
func NewWithProjectDir(_ context.Context, projectDir string) *Config {
	cfg := New()

	if projectDir == "" {
		return cfg
	}

	overlayPath := ProjectConfigPath(projectDir)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := New()
	if err := ShallowMergeYAML(merged, overlayPath); err != nil {
		cfg.loadErrs = append(cfg.loadErrs, fmt.Errorf("merging project config: %w", err))
		return cfg
	}
	// Environment overrides win over the project file as well.
	merged.applyEnv()

	return merged
}

// toAbsProjectDir resolves dir to an absolute path ending in .lcafocus.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}

	return filepath.Join(abs, projectDirName)
}
