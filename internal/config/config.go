// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The apmkit Authors

package config

import (
	"github.com/apmkit/go-agent/internal/utils"
)

// AgentConfig is the fully-resolved agent configuration. It is populated by
// successive binder passes during [Initialize] and frozen once validation
// succeeds; from that point on it is process-wide read-only state.
//
// Every field maps one-to-one to a dotted configuration key (see fieldTable).
type AgentConfig struct {
	// Agent holds identification and sampling settings.
	Agent Agent

	// Collector holds backend endpoint and discovery settings.
	Collector Collector

	// Buffer holds trace segment buffering settings.
	Buffer Buffer

	// Logging holds the agent's own log file settings.
	Logging Logging

	frozen bool
}

// Agent holds identification and sampling settings.
type Agent struct {
	// ApplicationCode names the monitored application. Mandatory.
	// Key: agent.application_code
	ApplicationCode string

	// SampleNPer3Secs caps how many trace segments are sampled per three
	// seconds. Negative means sample everything.
	// Key: agent.sample_n_per_3_secs
	SampleNPer3Secs int

	// IgnoreSuffix lists endpoint suffixes excluded from tracing,
	// comma-separated.
	// Key: agent.ignore_suffix
	IgnoreSuffix string

	// IsOpenDebuggingClass dumps instrumented classes to disk when true.
	// Key: agent.is_open_debugging_class
	IsOpenDebuggingClass bool
}

// Collector holds backend endpoint and discovery settings.
type Collector struct {
	// Servers lists collector endpoints as comma-separated host:port pairs.
	// Mandatory.
	// Key: collector.servers
	Servers string

	// DiscoveryCheckInterval is the collector instance re-discovery period
	// in seconds.
	// Key: collector.discovery_check_interval
	DiscoveryCheckInterval int

	// GRPCChannelCheckInterval is the channel health check period in seconds.
	// Key: collector.grpc_channel_check_interval
	GRPCChannelCheckInterval int
}

// Buffer holds trace segment buffering settings.
type Buffer struct {
	// ChannelSize is the number of buffer channels.
	// Key: buffer.channel_size
	ChannelSize int

	// BufferSize is the capacity of each buffer channel.
	// Key: buffer.buffer_size
	BufferSize int
}

// Logging holds the agent's own log file settings.
type Logging struct {
	// DirName is the log directory, relative to the agent package directory.
	// Key: logging.dir_name
	DirName string

	// FileName is the log file name inside DirName.
	// Key: logging.file_name
	FileName string

	// MaxFileSize is the rollover threshold in bytes.
	// Key: logging.max_file_size
	MaxFileSize int
}

// defaultConfig returns an AgentConfig carrying the compile-time defaults,
// the first layer of resolution. The two mandatory fields intentionally
// default to blank so an unconfigured agent fails the validation gate.
func defaultConfig() *AgentConfig {
	return &AgentConfig{
		Agent: Agent{
			SampleNPer3Secs: -1,
			IgnoreSuffix:    ".jpg,.jpeg,.js,.css,.png,.bmp,.gif,.ico,.mp3,.mp4,.html,.svg",
		},
		Collector: Collector{
			DiscoveryCheckInterval:   60,
			GRPCChannelCheckInterval: 30,
		},
		Buffer: Buffer{
			ChannelSize: 5,
			BufferSize:  300,
		},
		Logging: Logging{
			DirName:     "logs",
			FileName:    "skywalking-api.log",
			MaxFileSize: 300 * 1024 * 1024,
		},
	}
}

// validate checks the mandatory fields after all layers are applied.
// This is the only fatal step of initialization: a blank mandatory field
// returns an *InitializationError naming the missing key.
func (cfg *AgentConfig) validate() error {
	if utils.IsBlank(cfg.Agent.ApplicationCode) {
		return newInitializationError("agent.application_code")
	}

	if utils.IsBlank(cfg.Collector.Servers) {
		return newInitializationError("collector.servers")
	}

	return nil
}

// freeze marks the config immutable. Binder passes refuse a frozen config.
func (cfg *AgentConfig) freeze() {
	cfg.frozen = true
}

// Frozen reports whether the config has passed validation and is immutable.
func (cfg *AgentConfig) Frozen() bool {
	return cfg.frozen
}
