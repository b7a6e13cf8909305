// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/magiconair/properties"

	"github.com/apmkit/go-agent/internal/boot"
	"github.com/apmkit/go-agent/internal/logger"
	"github.com/apmkit/go-agent/internal/sysprops"
)

// Initialize runs the one-shot configuration pass at agent startup:
// defaults, then the agent.config file, then `skywalking.`-prefixed
// overrides from -D properties and the process environment, then the
// validation gate.
//
// The file and override layers are best-effort: their failures are logged
// and resolution continues with whatever has been bound so far. Two
// failures are fatal and returned to the caller: the agent package path
// cannot be resolved (wrapping boot.ErrPackageNotFound), or a mandatory
// field is blank after all layers (*InitializationError).
//
// On success the returned config is frozen and safe for concurrent reads.
func Initialize(resolver boot.PathResolver, log *logger.Logger) (*AgentConfig, error) {
	cfg := defaultConfig()

	baseDir, err := resolver.PackagePath()
	if err != nil {
		return nil, fmt.Errorf("resolving agent package path: %w", err)
	}

	if err := loadFromAgentFolder(cfg, baseDir, log); err != nil {
		log.Error().Err(err).Msg("failed to read the config file, agent is going to run in default config")
	}

	if err := applyEnvironmentOverrides(cfg, sysprops.Snapshot(), os.Environ()); err != nil {
		log.Error().Err(err).Msg("failed to apply environment overrides")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.freeze()
	return cfg, nil
}

// loadFromAgentFolder locates, parses, and binds the config file layer.
// The file stream is closed on every exit path. Value expansion is disabled
// so settings are taken verbatim.
func loadFromAgentFolder(cfg *AgentConfig, baseDir string, log *logger.Logger) error {
	stream, path, err := locateConfigFile(baseDir)
	if err != nil {
		return err
	}
	defer stream.Close()

	log.Info().Str("path", path).Msg("config file found")

	data, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	return bind(cfg, props.Map())
}
