// Package env derives framework-relative paths from the location of the
// running dava-gen binary. The tool only works from inside a dava.framework
// checkout; everything else keys off the resolved root.
package env

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const toolchainsRelPath = "Sources/CMake/Toolchains/"

// ErrNotInFramework means the executable path contains no dava.framework
// ancestor directory, so there is no tree to generate projects for.
var ErrNotInFramework = errors.New("not inside a dava.framework checkout")

// The root is the first ancestor directory whose name starts with
// "dava.framework" (suffixes like dava.framework-v2 count too).
var rootPattern = regexp.MustCompile(`^(.*?dava\.framework[^/]*/)`)

// Env holds the paths derived from the executable location.
type Env struct {
	// FrameworkRoot is the dava.framework directory, with a trailing slash.
	FrameworkRoot string
	// ToolchainsDir is FrameworkRoot + Sources/CMake/Toolchains/.
	ToolchainsDir string
}

// Resolve locates the dava.framework root along exePath and derives the
// toolchains directory from it. exePath is made absolute and slash-normalized
// before matching.
func Resolve(exePath string) (Env, error) {
	path, err := filepath.Abs(exePath)
	if err != nil {
		return Env{}, err
	}
	path = filepath.ToSlash(path)
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	m := rootPattern.FindStringSubmatch(path)
	if m == nil {
		return Env{}, ErrNotInFramework
	}

	root := m[1]
	return Env{
		FrameworkRoot: root,
		ToolchainsDir: root + toolchainsRelPath,
	}, nil
}

// ResolveFromExecutable resolves against the current process image.
func ResolveFromExecutable() (Env, error) {
	exe, err := os.Executable()
	if err != nil {
		return Env{}, err
	}
	return Resolve(exe)
}
