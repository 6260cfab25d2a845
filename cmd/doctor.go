// dava-gen doctor
package cmd

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/heaths/go-vssetup"
	"github.com/spf13/cobra"

	"github.com/dava-framework/dava-gen/internal/env"
	"github.com/dava-framework/dava-gen/internal/generator"
	"github.com/dava-framework/dava-gen/internal/msg"
)

func doDoctor(cmd *cobra.Command, args []string) {
	healthy := true

	if e, err := env.ResolveFromExecutable(); err != nil {
		msg.Error("%v", err)
		healthy = false
	} else {
		msg.Info("framework root: %s", e.FrameworkRoot)
		msg.Info("toolchains dir: %s", e.ToolchainsDir)
	}

	if cmake, err := generator.SearchProgram("cmake"); err != nil {
		msg.Error("%v", err)
		healthy = false
	} else {
		msg.Info("cmake: %s", cmake)
		probe := exec.Command(cmake, "--version")
		probe.Stdout = &msg.IndentWriter{Indent: "    ", W: os.Stdout}
		probe.Stderr = probe.Stdout
		if err := probe.Run(); err != nil {
			msg.Warn("cmake --version failed: %v", err)
		}
	}

	msg.Info("host system: %s", generator.HostSystem())

	if runtime.GOOS == "windows" {
		reportVisualStudio()
	}

	if !healthy {
		os.Exit(1)
	}
}

// reportVisualStudio lists installed Visual Studio instances; the windows
// platform generator needs one to open the generated solution.
func reportVisualStudio() {
	instances, err := vssetup.Instances(false)
	if err != nil {
		msg.Warn("could not enumerate Visual Studio instances: %v", err)
		return
	}
	if len(instances) == 0 {
		msg.Warn("no Visual Studio instances found")
		return
	}
	for _, instance := range instances {
		path, err := instance.InstallationPath()
		if err != nil {
			continue
		}
		version, err := instance.InstallationVersion()
		if err != nil {
			version = "unknown version"
		}
		msg.Info("visual studio %s: %s", version, path)
	}
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the environment can generate projects",
	Args:  cobra.NoArgs,
	Run:   doDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
