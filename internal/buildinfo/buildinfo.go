// Package buildinfo carries the version, commit, and build date injected via
// ldflags and normalizes the version string with semver.
package buildinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go"`
	Target  string `json:"platform"`
}

// New returns Info with the version normalized when it is valid semver.
func New(version, commit, date string) Info {
	return Info{
		Version: Normalize(version),
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
		Target:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsRelease reports whether the version is a semver release without a
// prerelease suffix.
func (i Info) IsRelease() bool {
	v, err := parseSemver(i.Version)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

func (i Info) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}

// Normalize renders a semver version as "vX.Y.Z[-pre][+meta]". Anything that
// does not parse, such as "dev", is returned unchanged.
func Normalize(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
