// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// setter assigns one raw string value to its typed field on the config.
type setter func(cfg *AgentConfig, value string) error

// fieldTable statically maps every recognized dotted key to its setter.
// Keys absent from the table are ignored by bind, so unknown entries in any
// layer have no effect.
var fieldTable = map[string]setter{
	"agent.application_code": func(cfg *AgentConfig, v string) error {
		cfg.Agent.ApplicationCode = v
		return nil
	},
	"agent.sample_n_per_3_secs": func(cfg *AgentConfig, v string) error {
		return setInt(&cfg.Agent.SampleNPer3Secs, v)
	},
	"agent.ignore_suffix": func(cfg *AgentConfig, v string) error {
		cfg.Agent.IgnoreSuffix = v
		return nil
	},
	"agent.is_open_debugging_class": func(cfg *AgentConfig, v string) error {
		return setBool(&cfg.Agent.IsOpenDebuggingClass, v)
	},
	"collector.servers": func(cfg *AgentConfig, v string) error {
		cfg.Collector.Servers = v
		return nil
	},
	"collector.discovery_check_interval": func(cfg *AgentConfig, v string) error {
		return setInt(&cfg.Collector.DiscoveryCheckInterval, v)
	},
	"collector.grpc_channel_check_interval": func(cfg *AgentConfig, v string) error {
		return setInt(&cfg.Collector.GRPCChannelCheckInterval, v)
	},
	"buffer.channel_size": func(cfg *AgentConfig, v string) error {
		return setInt(&cfg.Buffer.ChannelSize, v)
	},
	"buffer.buffer_size": func(cfg *AgentConfig, v string) error {
		return setInt(&cfg.Buffer.BufferSize, v)
	},
	"logging.dir_name": func(cfg *AgentConfig, v string) error {
		cfg.Logging.DirName = v
		return nil
	},
	"logging.file_name": func(cfg *AgentConfig, v string) error {
		cfg.Logging.FileName = v
		return nil
	},
	"logging.max_file_size": func(cfg *AgentConfig, v string) error {
		return setInt(&cfg.Logging.MaxFileSize, v)
	},
}

// bind copies every recognized key of layer onto cfg, overwriting whatever
// earlier layers set. A failing setter does not stop the pass; failures are
// joined into the returned error and successfully bound keys stay bound.
// Keys are processed in sorted order so failures report deterministically.
func bind(cfg *AgentConfig, layer map[string]string) error {
	if cfg.frozen {
		return ErrFrozen
	}

	keys := make([]string, 0, len(layer))
	for key := range layer {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		set, known := fieldTable[key]
		if !known {
			continue
		}

		if err := set(cfg, layer[key]); err != nil {
			errs = append(errs, fmt.Errorf("binding `%s`: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}

	*dst = n
	return nil
}

func setBool(dst *bool, v string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return err
	}

	*dst = b
	return nil
}
