package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zsiec/tick/pkg/tick"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildTime, info.BuildTime)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Equal(t, int64(tick.TicksPerSecond), info.TicksPerSecond)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:        "1.0.0",
		GitCommit:      "abc123",
		BuildTime:      "2024-01-01",
		GoVersion:      "go1.23",
		OS:             "linux",
		Arch:           "amd64",
		TicksPerSecond: 3603600,
	}

	str := info.String()
	assert.Contains(t, str, "tick 1.0.0")
	assert.Contains(t, str, "commit: abc123")
	assert.Contains(t, str, "built: 2024-01-01")
	assert.Contains(t, str, "go: go1.23")
	assert.Contains(t, str, "os/arch: linux/amd64")
	assert.Contains(t, str, "resolution: 3603600/s")
}

func TestInfoShort(t *testing.T) {
	info := Info{Version: "1.0.0"}
	assert.Equal(t, "tick 1.0.0", info.Short())
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, GitCommit)
	assert.NotEmpty(t, BuildTime)
	assert.NotEmpty(t, GoVersion)
	assert.NotEmpty(t, OS)
	assert.NotEmpty(t, Arch)

	assert.True(t, strings.HasPrefix(GoVersion, "go"))
}
