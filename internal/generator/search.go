package generator

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// CMake.app does not put itself on PATH, so this directory is always
// searched last on macOS installs.
const cmakeAppBinDir = "/Applications/CMake.app/Contents/bin"

// SearchProgram locates program the way the original generator script did:
// a name containing a path separator is checked directly, anything else is
// looked up in each PATH entry (surrounding quotes stripped) plus the
// CMake.app fallback directory.
func SearchProgram(program string) (string, error) {
	if strings.ContainsRune(program, '/') || strings.ContainsRune(program, os.PathSeparator) {
		if isExecutable(program) {
			return program, nil
		}
		return "", &ProgramNotFoundError{Program: program}
	}

	dirs := filepath.SplitList(os.Getenv("PATH"))
	dirs = append(dirs, cmakeAppBinDir)

	for _, dir := range dirs {
		dir = strings.Trim(dir, `"`)
		candidate := filepath.Join(dir, program)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", &ProgramNotFoundError{Program: program}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
