// dava-gen toolchains
package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dava-framework/dava-gen/internal/env"
	"github.com/dava-framework/dava-gen/internal/generator"
	"github.com/dava-framework/dava-gen/internal/msg"
)

func doToolchains(cmd *cobra.Command, args []string) {
	e, err := env.ResolveFromExecutable()
	if err != nil {
		msg.Fatal("%v", err)
	}

	matches, err := doublestar.Glob(os.DirFS(e.ToolchainsDir), "**/*.cmake", doublestar.WithFilesOnly())
	if err != nil {
		msg.Fatal("list toolchains in %s: %v", e.ToolchainsDir, err)
	}
	if len(matches) == 0 {
		msg.Warn("no toolchain files found in %s", e.ToolchainsDir)
		return
	}

	slices.Sort(matches)
	fmt.Printf("toolchains in %s:\n", e.ToolchainsDir)
	for _, m := range matches {
		switch m {
		case generator.IOSToolchainFile:
			fmt.Printf("  %s %s\n", m, color.HiGreenString("(used for ios)"))
		case generator.AndroidToolchainFile:
			fmt.Printf("  %s %s\n", m, color.HiGreenString("(used for android)"))
		default:
			fmt.Printf("  %s\n", m)
		}
	}
}

var toolchainsCmd = &cobra.Command{
	Use:   "toolchains",
	Short: "List the cmake toolchain files shipped with the framework",
	Args:  cobra.NoArgs,
	Run:   doToolchains,
}

func init() {
	rootCmd.AddCommand(toolchainsCmd)
}
