package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/apmkit/go-agent/internal/boot"
	"github.com/apmkit/go-agent/internal/config"
	"github.com/apmkit/go-agent/internal/logger"
	"github.com/apmkit/go-agent/internal/sysprops"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	flag.Var(sysprops.PropertyFlag(), "D", "Agent property key=value (repeatable)")
	flag.Parse()

	log := logger.NewLogger("apm-agent")

	resolver := boot.NewPathResolver()
	cfg, err := config.Initialize(resolver, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing agent config")
	}

	log.Debug().Any("config", cfg).Msg("agent config initialized")

	// the agent keeps its own log file under the package directory
	baseDir, err := resolver.PackagePath()
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving agent package path")
	}

	agentLog := logger.NewFileLogger("apm-agent",
		filepath.Join(baseDir, cfg.Logging.DirName), cfg.Logging.FileName)
	agentLog.Info().
		Str("application_code", cfg.Agent.ApplicationCode).
		Str("collector_servers", cfg.Collector.Servers).
		Msg("agent started")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
