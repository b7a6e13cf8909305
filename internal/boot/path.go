// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

package boot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrPackageNotFound indicates that the agent installation directory could
// not be determined. Initialization must abort in that case: without a base
// directory there is nothing to locate the config file against.
var ErrPackageNotFound = errors.New("agent package path not found")

type packagePathResolver struct {
	once sync.Once
	path string
	err  error
}

// NewPathResolver returns the production PathResolver. The resolved path is
// the directory containing the running executable, with symlinks evaluated,
// and is cached for the lifetime of the process.
func NewPathResolver() PathResolver {
	return &packagePathResolver{}
}

func (r *packagePathResolver) PackagePath() (string, error) {
	r.once.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			r.err = fmt.Errorf("%w: %v", ErrPackageNotFound, err)
			return
		}

		exe, err = filepath.EvalSymlinks(exe)
		if err != nil {
			r.err = fmt.Errorf("%w: %v", ErrPackageNotFound, err)
			return
		}

		r.path = filepath.Dir(exe)
	})

	return r.path, r.err
}
