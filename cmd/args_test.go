package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dava-framework/dava-gen/internal/env"
	"github.com/dava-framework/dava-gen/internal/generator"
)

func TestSplitPositionals(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantPlatform  string
		wantModifiers []string
		wantPath      string
	}{
		{
			name:          "no modifiers",
			args:          []string{"windows", "CMakeLists.txt"},
			wantPlatform:  "windows",
			wantModifiers: []string{},
			wantPath:      "CMakeLists.txt",
		},
		{
			name:          "modifiers in the middle",
			args:          []string{"android", "console", "uap", "Projects/UnitTests/CMakeLists.txt"},
			wantPlatform:  "android",
			wantModifiers: []string{"console", "uap"},
			wantPath:      "Projects/UnitTests/CMakeLists.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			platform, modifiers, path := splitPositionals(tt.args)
			assert.Equal(t, tt.wantPlatform, platform)
			assert.Equal(t, tt.wantModifiers, modifiers)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestIsUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid platform", &generator.InvalidPlatformError{Name: "linux"}, true},
		{"invalid modifier", &generator.InvalidModifierError{Token: "fancy"}, true},
		{"unknown generator", &generator.UnknownGeneratorError{Platform: "x", Host: "y"}, true},
		{"program not found", &generator.ProgramNotFoundError{Program: "cmake"}, true},
		{"outside framework", env.ErrNotInFramework, true},
		{"wrapped typed error", fmt.Errorf("while generating: %w", &generator.ProgramNotFoundError{Program: "cmake"}), true},
		{"cmake failure", fmt.Errorf("cmake failed: %w", errors.New("exit status 1")), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUsageError(tt.err))
		})
	}
}
