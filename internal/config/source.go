// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// configFileRelPath is where agent.config lives, fixed relative to the agent
// package directory.
var configFileRelPath = filepath.Join("config", "agent.config")

// locateConfigFile opens the agent config file under baseDir. The returned
// stream must be closed by the caller. The resolved path is returned for
// logging regardless of outcome.
//
// Every failure mode (path missing, not a regular file, unreadable) wraps
// ErrConfigNotFound so the orchestrator can treat them uniformly as
// "run on defaults".
func locateConfigFile(baseDir string) (io.ReadCloser, string, error) {
	path := filepath.Join(baseDir, configFileRelPath)

	info, err := os.Stat(path)
	if err != nil {
		return nil, path, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	if !info.Mode().IsRegular() {
		return nil, path, fmt.Errorf("%w: %s is not a regular file", ErrConfigNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, path, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}

	return file, path, nil
}
