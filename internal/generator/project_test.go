package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectType(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		console  bool
		host     string
		want     string
	}{
		{name: "macos", platform: PlatformMacOS, host: "Darwin", want: "Xcode"},
		{name: "ios", platform: PlatformIOS, host: "Darwin", want: "Xcode"},
		{name: "windows", platform: PlatformWindows, host: HostWindows, want: "Visual Studio 12"},
		{name: "windows ignores console", platform: PlatformWindows, console: true, host: HostWindows, want: "Visual Studio 12"},
		{name: "android on linux", platform: PlatformAndroid, host: "Linux", want: "Eclipse CDT4 - Unix Makefiles"},
		{name: "android on darwin", platform: PlatformAndroid, host: "Darwin", want: "Eclipse CDT4 - Unix Makefiles"},
		{name: "android console on windows", platform: PlatformAndroid, console: true, host: HostWindows, want: "NMake Makefiles"},
		{name: "android on windows", platform: PlatformAndroid, host: HostWindows, want: "Eclipse CDT4 - NMake Makefiles"},
		{
			// The MinGW branch does not exclude the Windows/else pair, so the
			// Unix suffix lands too. Kept bug-for-bug with the original script.
			name:     "android on mingw keeps both suffixes",
			platform: PlatformAndroid,
			host:     HostMinGW,
			want:     "Eclipse CDT4 - Mingw MakefilesUnix Makefiles",
		},
		{name: "android console on mingw", platform: PlatformAndroid, console: true, host: HostMinGW, want: "Mingw MakefilesUnix Makefiles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectType(tt.platform, tt.console, tt.host)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProjectTypeMinGWContainsEditorPrefix(t *testing.T) {
	got, err := ProjectType(PlatformAndroid, false, HostMinGW)
	require.NoError(t, err)
	assert.Contains(t, got, "Eclipse CDT4 - ")
	assert.Contains(t, got, "Mingw Makefiles")
}

func TestProjectTypeUnknownPlatform(t *testing.T) {
	_, err := ProjectType("freebsd", false, "Linux")
	var unknown *UnknownGeneratorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "freebsd", unknown.Platform)
}
