// Package config provides configuration loading and path resolution for the
// analyzer. Configuration merges environment variables (IPL_* prefix) over an
// optional executable-relative config.yaml, then validates the result. Paths
// are always resolved relative to the executable directory so the tool can be
// run from any working directory.
package config
