// Package project provides utilities for detecting the repository root.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// RepoDirEnv overrides repository detection when set to an existing directory.
const RepoDirEnv = "GITMIND_REPO_DIR"

// FindRoot finds the git repository root for the current working directory.
func FindRoot() (string, error) {
	if root, found := checkRepoDirEnv(); found {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := findRepoMarker(cwd); found {
		return root, nil
	}

	// Fall back to current working directory and let git report the problem
	return cwd, nil
}

func checkRepoDirEnv() (string, bool) {
	dir := os.Getenv(RepoDirEnv)
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", false
	}

	return abs, true
}

// findRepoMarker walks up from startDir looking for a .git entry. A .git
// file (worktrees, submodules) counts as well as a directory.
func findRepoMarker(startDir string) (string, bool) {
	currentDir := startDir

	for {
		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", false
}
