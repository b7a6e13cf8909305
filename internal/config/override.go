// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

package config

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// EnvKeyPrefix marks a property or environment entry as an override
// candidate. Entries without it are ignored entirely.
const EnvKeyPrefix = "skywalking."

// collectOverrides builds the override overlay from the two origins:
// -D properties first, then the process environment merged on top, so the
// environment wins for the same stripped key. Eligible keys lose exactly
// the reserved prefix and nothing else.
func collectOverrides(sysProps map[string]string, environ []string) (map[string]string, error) {
	overlay := make(map[string]string)
	for key, value := range sysProps {
		if strings.HasPrefix(key, EnvKeyPrefix) {
			overlay[key[len(EnvKeyPrefix):]] = value
		}
	}

	envLayer := make(map[string]string)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, EnvKeyPrefix) {
			continue
		}
		envLayer[key[len(EnvKeyPrefix):]] = value
	}

	if err := mergo.Merge(&overlay, envLayer, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging override layers: %w", err)
	}

	return overlay, nil
}

// applyEnvironmentOverrides binds the override overlay onto cfg, overwriting
// any field previously set by defaults or by the file layer. An empty
// overlay leaves cfg untouched.
func applyEnvironmentOverrides(cfg *AgentConfig, sysProps map[string]string, environ []string) error {
	overlay, err := collectOverrides(sysProps, environ)
	if err != nil {
		return err
	}

	if len(overlay) == 0 {
		return nil
	}

	return bind(cfg, overlay)
}
