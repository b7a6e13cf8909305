// Package boot resolves the installation directory of the running agent.
//
// The agent locates its configuration file, plugin directory, and log
// directory relative to the directory containing its own binary, never
// relative to the process working directory. [NewPathResolver] returns the
// production resolver; the [PathResolver] interface exists so the
// initialization sequence can be tested against a fake installation layout.
package boot
