// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/gogpu/glslgen/ir"
)

// Errors returned by emission.
var (
	// ErrUnresolvedPlaceholder is returned when a placeholder reaches the
	// output because no binding was supplied for it.
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")

	// ErrUnsupported is returned for constructs the target version cannot
	// express.
	ErrUnsupported = errors.New("unsupported by target")
)

// Version represents a GLSL version.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES (OpenGL ES / WebGL)
}

// Common GLSL versions.
var (
	// Desktop OpenGL versions
	Version110 = Version{Major: 1, Minor: 10} // OpenGL 2.0
	Version120 = Version{Major: 1, Minor: 20} // OpenGL 2.1
	Version130 = Version{Major: 1, Minor: 30} // OpenGL 3.0
	Version140 = Version{Major: 1, Minor: 40} // OpenGL 3.1
	Version150 = Version{Major: 1, Minor: 50} // OpenGL 3.2
	Version330 = Version{Major: 3, Minor: 30} // OpenGL 3.3 Core
	Version400 = Version{Major: 4, Minor: 0}  // OpenGL 4.0
	Version410 = Version{Major: 4, Minor: 10} // OpenGL 4.1
	Version420 = Version{Major: 4, Minor: 20} // OpenGL 4.2
	Version430 = Version{Major: 4, Minor: 30} // OpenGL 4.3
	Version450 = Version{Major: 4, Minor: 50} // OpenGL 4.5
	Version460 = Version{Major: 4, Minor: 60} // OpenGL 4.6

	// OpenGL ES / WebGL versions
	VersionES100 = Version{Major: 1, Minor: 0, ES: true}  // ES 2.0 / WebGL 1.0
	VersionES300 = Version{Major: 3, Minor: 0, ES: true}  // ES 3.0 / WebGL 2.0
	VersionES310 = Version{Major: 3, Minor: 10, ES: true} // ES 3.1
	VersionES320 = Version{Major: 3, Minor: 20, ES: true} // ES 3.2
)

// String returns the version as a GLSL version directive value.
// ES 1.00 and desktop versions before 1.50 have no profile suffix.
func (v Version) String() string {
	switch {
	case v.ES && v.number() < 300:
		return v.VersionNumber()
	case v.ES:
		return v.VersionNumber() + " es"
	case v.number() < 150:
		return v.VersionNumber()
	default:
		return v.VersionNumber() + " core"
	}
}

// VersionNumber returns just the numeric version (e.g., "330", "300").
func (v Version) VersionNumber() string {
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

func (v Version) number() int {
	return int(v.Major)*100 + int(v.Minor)
}

// versionLessThan returns true if the numeric version (Major*100+Minor) is
// less than the given number.
func (v Version) versionLessThan(number int) bool {
	return v.number() < number
}

// Capabilities returns the features the version accepts.
func (v Version) Capabilities() ir.Capabilities {
	if v.ES {
		return ir.Capabilities{
			Precision:         true,
			InOut:             !v.versionLessThan(300),
			ExplicitLocations: !v.versionLessThan(300),
			ExplicitBindings:  !v.versionLessThan(310),
			TextureFunction:   !v.versionLessThan(300),
			UnsignedIntegers:  !v.versionLessThan(300),
		}
	}
	return ir.Capabilities{
		Precision:         !v.versionLessThan(130),
		InOut:             !v.versionLessThan(130),
		ExplicitLocations: !v.versionLessThan(330),
		ExplicitBindings:  !v.versionLessThan(420),
		TextureFunction:   !v.versionLessThan(130),
		UnsignedIntegers:  !v.versionLessThan(130),
	}
}

var knownVersions = []Version{
	Version110, Version120, Version130, Version140, Version150,
	Version330, Version400, Version410, Version420, Version430, Version450, Version460,
	VersionES100, VersionES300, VersionES310, VersionES320,
}

// ParseVersion parses a version as written after #version ("330",
// "330 core", "300 es", "100") or in the compact forms "300es" and "es300".
func ParseVersion(s string) (Version, error) {
	fields := strings.Fields(strings.ToLower(s))
	es := false
	switch {
	case len(fields) == 1 && strings.HasPrefix(fields[0], "es"):
		fields[0] = strings.TrimPrefix(fields[0], "es")
		es = true
	case len(fields) == 1 && strings.HasSuffix(fields[0], "es"):
		fields[0] = strings.TrimSuffix(fields[0], "es")
		es = true
	case len(fields) == 2 && fields[1] == "es":
		es = true
	case len(fields) == 2 && (fields[1] == "core" || fields[1] == "compatibility"):
	case len(fields) == 1:
	default:
		return Version{}, fmt.Errorf("glsl: invalid version %q", s)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Version{}, fmt.Errorf("glsl: invalid version %q: %w", s, err)
	}
	if n == 100 {
		es = true
	}
	for _, v := range knownVersions {
		if v.ES == es && v.number() == n {
			return v, nil
		}
	}
	return Version{}, fmt.Errorf("glsl: unknown version %q", s)
}

// Options configures GLSL code generation.
type Options struct {
	// LangVersion is the target GLSL version.
	// Defaults to Version330 if zero.
	LangVersion Version

	// IndentWidth is the number of spaces per nesting level.
	// Defaults to 4 if zero.
	IndentWidth int

	// ForceHighPrecision selects highp as the default float precision on
	// ES targets. If false, mediump is declared instead.
	ForceHighPrecision bool

	// Bindings supplies expressions for placeholders, keyed by name.
	Bindings map[string]ir.Expression

	// Rules are applied during Process, before the dialect rules of the
	// target version.
	Rules []ir.Rule
}

// DefaultOptions returns sensible default options for GLSL generation.
func DefaultOptions() Options {
	return Options{
		LangVersion:        Version330,
		IndentWidth:        4,
		ForceHighPrecision: true,
	}
}

func (o Options) withDefaults() Options {
	if o.LangVersion.Major == 0 {
		o.LangVersion = Version330
	}
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// NewContext builds the Process context for options: the version
// capabilities, a copy of the bindings, the user rules and then the dialect
// rules the version needs.
func NewContext(options Options) *ir.Context {
	options = options.withDefaults()
	ctx := ir.NewContext()
	ctx.Caps = options.LangVersion.Capabilities()
	maps.Copy(ctx.Bindings, options.Bindings)
	for _, r := range options.Rules {
		ctx.AddRule(r)
	}
	if !ctx.Caps.TextureFunction {
		ctx.AddRule(legacyTextureRule)
	}
	return ctx
}

// TranslationInfo contains metadata about the translation.
type TranslationInfo struct {
	// Version is the version the source was written for.
	Version Version

	// Uniforms lists uniform names in declaration order.
	Uniforms []string

	// Inputs lists stage input names in declaration order.
	Inputs []string

	// Outputs lists stage output names in declaration order. On targets
	// without in/out, fragment outputs are reported as the built-in they
	// were rewritten to.
	Outputs []string

	// Structs lists declared struct names in declaration order.
	Structs []string
}

// Compile processes program for the target in options and generates GLSL
// source code. Returns the GLSL source as a string, translation info, or an
// error.
func Compile(program *ir.Program, options Options) (string, TranslationInfo, error) {
	options = options.withDefaults()

	ctx := NewContext(options)
	outputs, err := fragOutputRule(program, ctx.Caps)
	if err != nil {
		return "", TranslationInfo{}, fmt.Errorf("glsl: %w", err)
	}
	if outputs != nil {
		ctx.AddRule(outputs)
	}
	processed := program.Process(ctx)

	var sb strings.Builder
	out := NewOutput(&sb, ctx, options)
	info, err := out.Program(processed)
	if err != nil {
		return "", TranslationInfo{}, fmt.Errorf("glsl: %w", err)
	}
	return sb.String(), info, nil
}
