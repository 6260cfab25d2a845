package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/expr-lang/expr"
	"github.com/pelletier/go-toml/v2"
)

// DefaultsFilename is the optional per-checkout defaults file at the
// framework root.
const DefaultsFilename = "DavaGen.toml"

// Defaults is the [defaults] table of DavaGen.toml. Command-line flags win
// over these; definitions from the file come first on the command line.
type Defaults struct {
	GenerationDir string   `toml:"generation_dir"`
	Definitions   []string `toml:"definitions"`
	UnityBuild    bool     `toml:"unity_build"`
}

// DefaultsEnv is the expression environment for conditional [defaults]
// subtables, e.g. [defaults.'platform == "android" and not console'].
type DefaultsEnv struct {
	Platform string `expr:"platform"`
	Host     string `expr:"host"`
	Console  bool   `expr:"console"`
	UAP      bool   `expr:"uap"`
}

// ParseDefaults decodes the [defaults] table. Subtables whose key compiles as
// a boolean expression over env are merged in when the expression holds.
func ParseDefaults(rdr io.Reader, env DefaultsEnv) (*Defaults, error) {
	var raw map[string]any
	dec := toml.NewDecoder(rdr)
	if err := dec.Decode(&raw); err != nil {
		if derr, ok := err.(*toml.DecodeError); ok {
			return nil, errors.New(derr.String())
		}
		return nil, err
	}

	section, ok := raw["defaults"]
	if !ok {
		return &Defaults{}, nil
	}
	sectionMap, ok := section.(map[string]any)
	if !ok {
		return nil, errors.New("invalid [defaults] section: expected a table")
	}

	baseFields := make(map[string]any)
	conditionalFields := make(map[string]map[string]any)

	for key, val := range sectionMap {
		if subMap, ok := val.(map[string]any); ok {
			if _, err := expr.Compile(key, expr.Env(env)); err == nil {
				conditionalFields[key] = subMap
				continue
			}
		}
		baseFields[key] = val
	}

	dst := new(Defaults)
	if err := unmarshalFields(baseFields, dst); err != nil {
		return nil, fmt.Errorf("failed to parse [defaults] section: %w", err)
	}

	for expression, condMap := range conditionalFields {
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			return nil, fmt.Errorf("failed to compile expression [defaults.%q]: %w", expression, err)
		}
		result, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("failed to run expression [defaults.%q]: %w", expression, err)
		}

		if matched, ok := result.(bool); !ok || !matched {
			continue
		}

		var cond Defaults
		if err := unmarshalFields(condMap, &cond); err != nil {
			return nil, fmt.Errorf("failed to parse conditional section [defaults.%q]: %w", expression, err)
		}
		dst.merge(cond)
	}

	return dst, nil
}

// LoadDefaults reads DavaGen.toml from the framework root. A missing file is
// not an error.
func LoadDefaults(frameworkRoot string, env DefaultsEnv) (*Defaults, error) {
	f, err := os.Open(filepath.Join(frameworkRoot, DefaultsFilename))
	if errors.Is(err, os.ErrNotExist) {
		return &Defaults{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseDefaults(bufio.NewReader(f), env)
}

func unmarshalFields(fields map[string]any, dst *Defaults) error {
	if len(fields) == 0 {
		return nil
	}
	b, err := toml.Marshal(fields)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, dst)
}

func (d *Defaults) merge(other Defaults) {
	if other.GenerationDir != "" {
		d.GenerationDir = other.GenerationDir
	}
	d.Definitions = append(d.Definitions, other.Definitions...)
	d.UnityBuild = d.UnityBuild || other.UnityBuild
}
