package generator

import (
	"os"
	"runtime"
	"slices"
	"strings"
)

// Destination platforms the generator knows how to produce projects for.
const (
	PlatformMacOS   = "macos"
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWindows = "windows"
)

var SupportedPlatforms = []string{PlatformMacOS, PlatformIOS, PlatformAndroid, PlatformWindows}

// Additional parameters accepted after the platform name.
const (
	ModifierConsole = "console"
	ModifierUAP     = "uap"
)

var SupportedModifiers = []string{ModifierConsole, ModifierUAP}

// ValidatePlatform checks name against the supported set. The set is
// lowercase and the match is exact, so "MacOS" is rejected.
func ValidatePlatform(name string) (string, error) {
	if !slices.Contains(SupportedPlatforms, name) {
		return "", &InvalidPlatformError{Name: name}
	}
	return strings.ToLower(name), nil
}

// Modifiers are the boolean switches set by additional parameters.
type Modifiers struct {
	Console bool
	UAP     bool
}

// ParseModifiers case-folds each token and sets the matching switch. An empty
// list is fine; an unrecognized token is an InvalidModifierError.
func ParseModifiers(tokens []string) (Modifiers, error) {
	var mods Modifiers
	for _, token := range tokens {
		switch strings.ToLower(token) {
		case ModifierConsole:
			mods.Console = true
		case ModifierUAP:
			mods.UAP = true
		default:
			return Modifiers{}, &InvalidModifierError{Token: token}
		}
	}
	return mods, nil
}

// Host system names as seen by the generator mapping.
const (
	HostMinGW   = "MinGW"
	HostWindows = "Windows"
)

// HostSystem reports the host flavor used to pick the android makefile
// generator. MSYS/MinGW shells are detected through the MSYSTEM variable.
func HostSystem() string {
	switch runtime.GOOS {
	case "windows":
		if os.Getenv("MSYSTEM") != "" {
			return HostMinGW
		}
		return HostWindows
	case "darwin":
		return "Darwin"
	case "linux":
		return "Linux"
	default:
		return strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
	}
}
