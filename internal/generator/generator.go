// Package generator computes the cmake command line for a destination
// platform and runs it. It does not parse CMakeLists files or drive builds;
// cmake owns everything past the invocation.
package generator

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Options is the immutable per-run configuration assembled from the command
// line and the optional defaults file.
type Options struct {
	Platform      string
	Console       bool
	UAP           bool
	Host          string // host system name, normally HostSystem()
	CMakeListPath string // absolute path to the CMakeLists.txt to generate from
	ToolchainsDir string
	GenerationDir string   // empty means the current directory
	Definitions   []string // extra -D tokens appended after the list path
	UnityBuild    bool
}

// Generator assembles and runs the cmake project-generation command.
type Generator struct {
	opts Options

	// stubbed out in tests
	run    func(args []string) error
	lookup func(program string) (string, error)
}

func New(opts Options) *Generator {
	return &Generator{
		opts:   opts,
		run:    runCommand,
		lookup: SearchProgram,
	}
}

// SplitDefinitions normalizes an --add_definitions value: commas count as
// separators and the result is whitespace-split.
func SplitDefinitions(s string) []string {
	return strings.Fields(strings.ReplaceAll(s, ",", " "))
}

// CommandLine assembles the full cmake argument vector. The first five
// elements are fixed: executable, -G, generator string, toolchain argument
// (possibly empty, but always present) and the list path.
func (g *Generator) CommandLine() ([]string, error) {
	project, err := ProjectType(g.opts.Platform, g.opts.Console, g.opts.Host)
	if err != nil {
		return nil, err
	}

	cmake, err := g.lookup("cmake")
	if err != nil {
		return nil, err
	}

	args := []string{cmake, "-G", project, ToolchainArg(g.opts.Platform, g.opts.ToolchainsDir), g.opts.CMakeListPath}
	args = append(args, g.opts.Definitions...)
	if g.opts.UnityBuild {
		args = append(args, "-DUNITY_BUILD=true")
	}
	return args, nil
}

// Generate creates the generation directory if requested, moves into it and
// invokes cmake. Android generation runs cmake twice with identical
// arguments; the original generator script did the same and the projects it
// produced depend on the second pass, so both runs must succeed.
func (g *Generator) Generate() ([]string, error) {
	args, err := g.CommandLine()
	if err != nil {
		return nil, err
	}

	if g.opts.GenerationDir != "" {
		if err := os.MkdirAll(g.opts.GenerationDir, 0o755); err != nil {
			return nil, fmt.Errorf("create generation dir: %w", err)
		}
		if err := os.Chdir(g.opts.GenerationDir); err != nil {
			return nil, fmt.Errorf("enter generation dir: %w", err)
		}
	}

	if err := g.run(args); err != nil {
		return nil, fmt.Errorf("cmake failed: %w", err)
	}
	if g.opts.Platform == PlatformAndroid {
		if err := g.run(args); err != nil {
			return nil, fmt.Errorf("cmake failed on second pass: %w", err)
		}
	}

	return args, nil
}

func runCommand(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
