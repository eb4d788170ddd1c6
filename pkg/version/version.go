package version

import (
	"fmt"
	"runtime"

	"github.com/zsiec/tick/pkg/tick"
)

// Build information. These variables are set at build time using ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

// Info contains version information along with the tick resolution the
// binary was compiled with.
type Info struct {
	Version        string `json:"version"`
	GitCommit      string `json:"git_commit"`
	BuildTime      string `json:"build_time"`
	GoVersion      string `json:"go_version"`
	OS             string `json:"os"`
	Arch           string `json:"arch"`
	TicksPerSecond int64  `json:"ticks_per_second"`
}

// GetInfo returns the version information.
func GetInfo() Info {
	return Info{
		Version:        Version,
		GitCommit:      GitCommit,
		BuildTime:      BuildTime,
		GoVersion:      GoVersion,
		OS:             OS,
		Arch:           Arch,
		TicksPerSecond: tick.TicksPerSecond,
	}
}

// String returns the version string.
func (i Info) String() string {
	return fmt.Sprintf("tick %s (commit: %s, built: %s, go: %s, os/arch: %s/%s, resolution: %d/s)",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.OS, i.Arch, i.TicksPerSecond)
}

// Short returns a short version string.
func (i Info) Short() string {
	return fmt.Sprintf("tick %s", i.Version)
}
