// Package config implements the agent's startup configuration resolution.
//
// Settings are assembled from three layers in fixed precedence order
// (later layers overwrite earlier ones for keys they carry):
//  1. Compile-time defaults on [AgentConfig]
//  2. The agent.config properties file under the agent package directory
//  3. Overrides from -D properties and the process environment, restricted
//     to keys carrying the reserved `skywalking.` prefix
//
// The file and override layers degrade gracefully: a missing file or a
// failing bind is logged and resolution continues with whatever has been
// bound so far. The only fatal step is the final validation gate, which
// requires `agent.application_code` and `collector.servers` to be non-blank.
//
// The main entry point is [Initialize], run exactly once during process
// startup before any other agent subsystem. The returned config is frozen:
// no layer can be bound onto it afterwards.
package config
