// Package version holds build information for argconsole and checks schema
// files against it.
package version

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information, set at link time with
// -ldflags "-X argconsole/internal/version.Version=..."
var (
	Version   = "0.3.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ErrIncompatible means a schema file requires a different argconsole version.
var ErrIncompatible = errors.New("version: incompatible version")

// Info is the parsed build information.
type Info struct {
	Version   string          `json:"version"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetVersion returns the current version string
func GetVersion() string {
	return Version
}

// GetBaseVersion returns major.minor.patch without prerelease or build metadata
func GetBaseVersion() string {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return Version
	}
	return fmt.Sprintf("%d.%d.%d", sv.Major(), sv.Minor(), sv.Patch())
}

// GetInfo parses the build information. Fails when Version is not semver.
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		SemVer:    sv,
	}, nil
}

func known(s string) bool {
	return s != "" && s != "unknown"
}

// Short renders "argconsole vX, commit abc1234, built DATE", omitting
// unknown parts.
func (i *Info) Short() string {
	parts := []string{"argconsole v" + i.Version}
	if known(i.GitCommit) {
		commit := i.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		parts = append(parts, "commit "+commit)
	}
	if known(i.BuildDate) {
		parts = append(parts, "built "+i.BuildDate)
	}
	return strings.Join(parts, ", ")
}

// Detailed renders one "Key: value" line per attribute.
func (i *Info) Detailed() string {
	lines := []string{
		"argconsole v" + i.Version,
		"Git Commit: " + i.GitCommit,
		"Build Date: " + i.BuildDate,
	}
	if meta := i.SemVer.Metadata(); meta != "" {
		lines = append(lines, "Build Metadata: "+meta)
	}
	lines = append(lines, "Go Version: "+i.GoVersion, "Platform: "+i.Platform)
	return strings.Join(lines, "\n")
}

// GetFormattedVersion returns Info.Short for the running binary.
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("argconsole v%s (invalid version)", Version)
	}
	return info.Short()
}

// GetDetailedVersion returns Info.Detailed for the running binary.
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("argconsole v%s (error: %v)", Version, err)
	}
	return info.Detailed()
}

// Satisfies checks the running version against a constraint such as
// ">= 0.2, < 1.0". Prerelease versions are compared on their base version.
func Satisfies(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint '%s': %w", constraint, err)
	}

	sv, err := semver.NewVersion(GetBaseVersion())
	if err != nil {
		return fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	if !c.Check(sv) {
		return fmt.Errorf("%w: have %s, need %s", ErrIncompatible, sv, constraint)
	}
	return nil
}

// SetBuildInfo sets build information (used for testing)
func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}
