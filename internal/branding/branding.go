// Package branding holds the product identity: command name, env prefix,
// and config file name. Values come from the embedded branding.yaml.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

type identity struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigFile  string `yaml:"config_file"`
}

// fallback is used for any field branding.yaml leaves empty.
var fallback = identity{
	CLIName:     "skillcheck",
	DisplayName: "SkillCheck",
	Description: "Integrity checks for skill migrations between snapshot trees",
	EnvPrefix:   "SKILLCHECK",
	ConfigFile:  ".skillcheck.yaml",
}

var current = sync.OnceValue(func() identity {
	id := fallback
	if err := yaml.Unmarshal(rawBranding, &id); err != nil {
		return fallback
	}
	return id
})

// CLIName returns the root command name.
func CLIName() string { return current().CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return current().DisplayName }

// Description returns the one-line summary shown in the root command help.
func Description() string { return current().Description }

// EnvPrefix is prepended to every environment override, e.g. SKILLCHECK_IMPORT_ROOT.
func EnvPrefix() string { return current().EnvPrefix }

// ConfigFile is the settings file looked up in the working directory.
func ConfigFile() string { return current().ConfigFile }

// EnvVar maps a settings key to its environment variable:
// EnvVar("source_root") is "SKILLCHECK_SOURCE_ROOT".
func EnvVar(key string) string {
	return current().EnvPrefix + "_" + strings.ToUpper(key)
}
