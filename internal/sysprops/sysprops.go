// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

// Package sysprops holds process-wide agent properties supplied on the
// command line as repeatable -D key=value definitions. Together with the
// process environment they form the override layer applied on top of the
// agent config file during initialization.
package sysprops

import (
	"errors"
	"flag"
	"strings"
	"sync"
)

var (
	mu    sync.RWMutex
	props = make(map[string]string)
)

// Set stores a property, overwriting any previous value for the same key.
func Set(key, value string) {
	mu.Lock()
	defer mu.Unlock()
	props[key] = value
}

// Get returns the value stored for key and whether it was present.
func Get(key string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	v, ok := props[key]
	return v, ok
}

// Snapshot returns a copy of all currently stored properties. Mutating the
// returned map does not affect the registry.
func Snapshot() map[string]string {
	mu.RLock()
	defer mu.RUnlock()

	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}

// Reset removes all stored properties. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	props = make(map[string]string)
}

// propertyFlag adapts the registry to the flag.Value interface so that
// repeated -D key=value arguments accumulate into the registry.
type propertyFlag struct{}

// PropertyFlag returns a flag.Value accepting key=value definitions.
func PropertyFlag() flag.Value {
	return propertyFlag{}
}

// String renders nothing; the registry has no useful single-string form.
func (propertyFlag) String() string {
	return ""
}

// Set parses a definition of form key=value and stores it in the registry.
// The value may itself contain '=' characters; only the first one splits.
func (propertyFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return errors.New("need property in a form `key=value`")
	}

	Set(key, value)
	return nil
}
