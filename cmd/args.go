package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dava-framework/dava-gen/internal/env"
	"github.com/dava-framework/dava-gen/internal/generator"
	"github.com/dava-framework/dava-gen/internal/msg"
)

// splitPositionals splits `<platform> [modifiers...] <list path>`. Cobra
// guarantees at least two args.
func splitPositionals(args []string) (platform string, modifiers []string, listPath string) {
	return args[0], args[1 : len(args)-1], args[len(args)-1]
}

// isUsageError reports whether err is an argument/environment problem that
// warrants reprinting the usage text. A failed cmake run is not one.
func isUsageError(err error) bool {
	var invalidPlatform *generator.InvalidPlatformError
	var invalidModifier *generator.InvalidModifierError
	var unknownGenerator *generator.UnknownGeneratorError
	var notFound *generator.ProgramNotFoundError
	return errors.Is(err, env.ErrNotInFramework) ||
		errors.As(err, &invalidPlatform) ||
		errors.As(err, &invalidModifier) ||
		errors.As(err, &unknownGenerator) ||
		errors.As(err, &notFound)
}

// fatalUsage prints the error followed by the usage text and exits.
func fatalUsage(cmd *cobra.Command, err error) {
	msg.Error("%v", err)
	_ = cmd.Usage()
	os.Exit(1)
}
