package generator

// ProjectType maps the destination platform to the cmake generator string.
//
// The android host branch is carried over verbatim from the original
// generator script: the MinGW check does not short-circuit the
// Windows/else pair, so a MinGW host selects "Mingw Makefiles" AND falls
// through to "Unix Makefiles". Whether that was intended is an open
// question upstream; the observable output is kept as-is.
func ProjectType(platform string, console bool, host string) (string, error) {
	project := ""

	if platform == PlatformMacOS || platform == PlatformIOS {
		project += "Xcode"
	}
	if platform == PlatformWindows {
		project += "Visual Studio 12"
	}
	if platform == PlatformAndroid {
		if !console {
			project += "Eclipse CDT4 - "
		}
		if host == HostMinGW {
			project += "Mingw Makefiles"
		}
		if host == HostWindows {
			project += "NMake Makefiles"
		} else {
			project += "Unix Makefiles"
		}
	}

	if project == "" {
		return "", &UnknownGeneratorError{Platform: platform, Host: host}
	}
	return project, nil
}
