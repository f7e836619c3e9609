// Package glslgen builds GLSL shader source from a Go-constructed syntax tree.
//
// Programs are composed with the ir package: blocks of statements, locals
// with generated names, helper functions and globals. Generation runs in two
// phases. Process rewrites the tree for a target (placeholder substitution,
// dialect rules) and returns a new tree; emission then writes indented GLSL
// text for the processed tree.
//
// Example usage:
//
//	p := ir.NewProgram(ir.StageFragment)
//	color := p.Uniform(ir.Vec4, "u_color")
//	out := p.FragOutput(ir.Vec4, "frag_color")
//	p.Main().Add(ir.Set(out.Ref(), color.Ref()))
//
//	source, err := glslgen.Generate(p, glslgen.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For the target versions, translation details and the Output type, use the
// glsl package directly. Ready-made programs live in the shaders package.
package glslgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogpu/glslgen/glsl"
	"github.com/gogpu/glslgen/ir"
)

// DefaultOptions returns the options used when none are given: GLSL 3.30
// core, four-space indentation.
func DefaultOptions() glsl.Options {
	return glsl.DefaultOptions()
}

// Process returns p rewritten for the target described by opts. The input
// program is left unchanged.
func Process(p *ir.Program, opts glsl.Options) *ir.Program {
	return p.Process(glsl.NewContext(opts))
}

// Validate checks the structural rules Process and emission rely on. It
// returns the first violation found.
func Validate(p *ir.Program) error {
	validationErrors, err := ir.Validate(p)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if len(validationErrors) > 0 {
		return fmt.Errorf("validation failed: %w", &validationErrors[0])
	}
	return nil
}

// Generate compiles p to GLSL source.
//
// The pipeline is:
//  1. Validate the program (scopes, loop control, returns)
//  2. Build a Context for the target version and bindings
//  3. Process the program with it
//  4. Emit the processed program
func Generate(p *ir.Program, opts glsl.Options) (string, error) {
	if err := Validate(p); err != nil {
		return "", err
	}
	source, _, err := glsl.Compile(p, opts)
	if err != nil {
		return "", err
	}
	return source, nil
}

// GenerateBlock processes b for the target and writes it as a standalone
// statement at depth zero: "{", the statements one level deeper, "}".
func GenerateBlock(b *ir.Block, opts glsl.Options) (string, error) {
	ctx := glsl.NewContext(opts)
	processed := b.Process(ctx)

	var sb strings.Builder
	if err := glsl.NewOutput(&sb, ctx, opts).Statement(processed); err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return sb.String(), nil
}

// Variants compiles p once per target version, concurrently, and returns the
// sources in the order of versions.
func Variants(ctx context.Context, p *ir.Program, base glsl.Options, versions ...glsl.Version) ([]string, error) {
	targets := make([]glsl.Options, len(versions))
	for i, v := range versions {
		targets[i] = base
		targets[i].LangVersion = v
	}
	variants, err := glsl.CompileVariants(ctx, p, targets)
	if err != nil {
		return nil, err
	}
	sources := make([]string, len(variants))
	for i, v := range variants {
		sources[i] = v.Source
	}
	return sources, nil
}
