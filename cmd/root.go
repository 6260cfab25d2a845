// dava-gen <platform> [modifiers...] <path to CMakeLists.txt>
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dava-framework/dava-gen/internal/env"
	"github.com/dava-framework/dava-gen/internal/generator"
	"github.com/dava-framework/dava-gen/internal/msg"
)

var (
	flagGenerationDir string
	flagDefinitions   string
	flagUnityBuild    bool
)

func doGenerate(cmd *cobra.Command, args []string) {
	e, err := env.ResolveFromExecutable()
	if err != nil {
		fatalUsage(cmd, fmt.Errorf("couldn't configure environment, run dava-gen from inside a dava.framework checkout (%v)", err))
	}

	platform, modifierTokens, listPath := splitPositionals(args)

	platform, err = generator.ValidatePlatform(platform)
	if err != nil {
		fatalUsage(cmd, err)
	}
	mods, err := generator.ParseModifiers(modifierTokens)
	if err != nil {
		fatalUsage(cmd, err)
	}

	listPath, err = filepath.Abs(listPath)
	if err != nil {
		msg.Fatal("resolve %s: %v", args[len(args)-1], err)
	}

	denv := generator.DefaultsEnv{
		Platform: platform,
		Host:     generator.HostSystem(),
		Console:  mods.Console,
		UAP:      mods.UAP,
	}
	defaults, err := generator.LoadDefaults(e.FrameworkRoot, denv)
	if err != nil {
		msg.Fatal("%s: %v", generator.DefaultsFilename, err)
	}

	generationDir := flagGenerationDir
	if generationDir == "" {
		generationDir = defaults.GenerationDir
	}
	definitions := append(slices.Clone(defaults.Definitions), generator.SplitDefinitions(flagDefinitions)...)

	g := generator.New(generator.Options{
		Platform:      platform,
		Console:       mods.Console,
		UAP:           mods.UAP,
		Host:          denv.Host,
		CMakeListPath: listPath,
		ToolchainsDir: e.ToolchainsDir,
		GenerationDir: generationDir,
		Definitions:   definitions,
		UnityBuild:    flagUnityBuild || defaults.UnityBuild,
	})

	cmdline, err := g.Generate()
	if err != nil {
		if isUsageError(err) {
			fatalUsage(cmd, err)
		}
		msg.Fatal("%v", err)
	}

	fmt.Println(cmdline)
}

var rootCmd = &cobra.Command{
	Use:   "dava-gen <platform> [modifiers...] <path to CMakeLists.txt>",
	Short: "DAVA Framework project generator",
	Long: `Generates native IDE projects (Xcode, Visual Studio, Eclipse CDT, Makefiles)
for DAVA Framework applications by invoking cmake with the generator and
toolchain file matching the destination platform.

Platforms: macos, ios, android, windows
Modifiers: console, uap`,
	Args: cobra.MinimumNArgs(2),
	Run:  doGenerate,
}

func init() {
	rootCmd.Flags().StringVar(&flagGenerationDir, "generation_dir", "", "Directory to generate the project in, created if missing")
	rootCmd.Flags().StringVar(&flagDefinitions, "add_definitions", "", "Extra cmake definitions, comma or space separated")
	rootCmd.Flags().BoolVar(&flagUnityBuild, "unity_build", false, "Enable unity build")
	rootCmd.Flags().BoolVar(&flagUnityBuild, "ub", false, "Enable unity build (alias)")
	rootCmd.Flags().MarkHidden("ub")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
