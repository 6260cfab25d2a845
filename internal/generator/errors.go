package generator

import (
	"fmt"
	"strings"
)

// InvalidPlatformError reports a destination platform outside the supported set.
type InvalidPlatformError struct {
	Name string
}

func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("wrong destination platform %q, use one of [%s]",
		e.Name, strings.Join(SupportedPlatforms, ", "))
}

// InvalidModifierError reports an unrecognized additional parameter.
type InvalidModifierError struct {
	Token string
}

func (e *InvalidModifierError) Error() string {
	return fmt.Sprintf("unsupported additional parameter %q, use a combination of [%s]",
		e.Token, strings.Join(SupportedModifiers, ", "))
}

// UnknownGeneratorError means no cmake generator string exists for the
// platform/host combination.
type UnknownGeneratorError struct {
	Platform string
	Host     string
}

func (e *UnknownGeneratorError) Error() string {
	return fmt.Sprintf("no project generator for platform %q on host %q", e.Platform, e.Host)
}

// ProgramNotFoundError means the external generator executable could not be
// located on the search path.
type ProgramNotFoundError struct {
	Program string
}

func (e *ProgramNotFoundError) Error() string {
	return fmt.Sprintf("%s command not found", e.Program)
}
