// Package config resolves skillcheck settings from an optional YAML file
// (.skillcheck.yaml in the working directory by default), SKILLCHECK_*
// environment variables, and built-in defaults. The result is a Settings
// snapshot that commands receive explicitly.
package config
