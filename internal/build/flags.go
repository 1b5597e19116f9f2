// SPDX-License-Identifier: MIT
//
// Package build provides functionality to manage and retrieve build information
// for the toolkit binary. It allows embedding metadata such as the application
// name, build timestamp, Git commit hash, and semantic version into the binary
// at compile time using linker flags. This information can be useful for
// debugging, logging, and displaying version information to users.
package build

// ldFlags holds build-time information that is injected during compilation.
// The fields are populated via -ldflags during the build process, for example:
//
//	go build -ldflags "-X toolkit/internal/build.buildVersion=0.1.0"
type ldFlags struct {
	Name    string // Application name
	Time    string // Build timestamp
	Commit  string // Git commit hash
	Version string // Semantic version
}

// Package-level variables for build information. These are populated by
// -ldflags during compilation. Development builds without linker flags
// fall back to the defaults below.
var (
	buildName    string
	buildTime    string
	buildCommit  string
	buildVersion string
	buildFlags   = &ldFlags{
		Name:    "toolkit",
		Time:    "unknown",
		Commit:  "unknown",
		Version: "unknown",
	}
)

// Initialize copies build information from the ldflags variables into the
// buildFlags struct. It should be called early in program startup. Flags
// the build did not inject keep their defaults, so development builds run
// unconfigured.
func Initialize() {
	if buildName != "" {
		buildFlags.Name = buildName
	}
	if buildTime != "" {
		buildFlags.Time = buildTime
	}
	if buildCommit != "" {
		buildFlags.Commit = buildCommit
	}
	if buildVersion != "" {
		buildFlags.Version = buildVersion
	}
}

// GetBuildFlags returns the current build information. Initialize()
// should be called first so injected flags are visible. This function
// is safe to call after initialization.
func GetBuildFlags() *ldFlags {
	return buildFlags
}
