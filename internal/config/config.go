package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/agentx-labs/skillcheck/internal/branding"
	"github.com/agentx-labs/skillcheck/internal/skill"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Keys understood in the config file and as SKILLCHECK_<KEY> env vars.
const (
	KeySourceRoot    = "source_root"
	KeyImportRoot    = "import_root"
	KeyMarkerFile    = "marker_file"
	KeyIgnoredNames  = "ignored_names"
	KeyMetadataFiles = "metadata_files"
	KeyLogLevel      = "log_level"
)

// Defaults mirror the conventional layout of a migration checkout.
var (
	DefaultSourceRoot    = ".github/skills"
	DefaultImportRoot    = "skills"
	DefaultMarkerFile    = skill.DefaultMarker
	DefaultIgnoredNames  = skill.DefaultIgnoredNames
	DefaultMetadataFiles = []string{"skills_index.json", "data/catalog.json", "data/aliases.json"}
	DefaultLogLevel      = "warn"
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	SourceRoot    string   `mapstructure:"source_root" yaml:"source_root"`
	ImportRoot    string   `mapstructure:"import_root" yaml:"import_root"`
	MarkerFile    string   `mapstructure:"marker_file" yaml:"marker_file"`
	IgnoredNames  []string `mapstructure:"ignored_names" yaml:"ignored_names"`
	MetadataFiles []string `mapstructure:"metadata_files" yaml:"metadata_files"`
	LogLevel      string   `mapstructure:"log_level" yaml:"log_level"`

	// ConfigFile is the file that was read, empty if none was found.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

// Default returns the settings used when no file or environment overrides exist.
func Default() *Settings {
	return &Settings{
		SourceRoot:    DefaultSourceRoot,
		ImportRoot:    DefaultImportRoot,
		MarkerFile:    DefaultMarkerFile,
		IgnoredNames:  append([]string(nil), DefaultIgnoredNames...),
		MetadataFiles: append([]string(nil), DefaultMetadataFiles...),
		LogLevel:      DefaultLogLevel,
	}
}

// Load resolves settings. An empty path means the default config file name in
// the working directory, which may be absent. An explicit path must exist.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeySourceRoot, DefaultSourceRoot)
	v.SetDefault(KeyImportRoot, DefaultImportRoot)
	v.SetDefault(KeyMarkerFile, DefaultMarkerFile)
	v.SetDefault(KeyIgnoredNames, slices.Clone(DefaultIgnoredNames))
	v.SetDefault(KeyMetadataFiles, slices.Clone(DefaultMetadataFiles))
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	explicit := path != ""
	if !explicit {
		path = branding.ConfigFile()
	}
	v.SetConfigFile(path)

	readFile := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
		if explicit || !missing {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		readFile = ""
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	s.ConfigFile = readFile

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings that cannot drive a scan.
func (s *Settings) Validate() error {
	if s.MarkerFile == "" {
		return fmt.Errorf("%s must not be empty", KeyMarkerFile)
	}
	if s.SourceRoot == "" {
		return fmt.Errorf("%s must not be empty", KeySourceRoot)
	}
	if s.ImportRoot == "" {
		return fmt.Errorf("%s must not be empty", KeyImportRoot)
	}
	return nil
}

// Get returns the value of key as text. List values are comma-separated.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeySourceRoot:
		return s.SourceRoot, nil
	case KeyImportRoot:
		return s.ImportRoot, nil
	case KeyMarkerFile:
		return s.MarkerFile, nil
	case KeyIgnoredNames:
		return strings.Join(s.IgnoredNames, ","), nil
	case KeyMetadataFiles:
		return strings.Join(s.MetadataFiles, ","), nil
	case KeyLogLevel:
		return s.LogLevel, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}
