// dava-gen version
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dava-framework/dava-gen/internal/env"
	"github.com/dava-framework/dava-gen/internal/msg"
)

// set via -ldflags "-X github.com/dava-framework/dava-gen/cmd.version=..."
var version = "dev"

func doVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("dava-gen %s\n", version)

	e, err := env.ResolveFromExecutable()
	if err != nil {
		msg.Warn("%v", err)
		return
	}
	rev, err := e.FrameworkRevision()
	if err != nil {
		msg.Warn("framework revision unavailable: %v", err)
		return
	}
	fmt.Printf("framework %s\n", rev)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tool version and the framework checkout revision",
	Args:  cobra.NoArgs,
	Run:   doVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
