// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glslgen/ir"
)

// Variant is the source generated for one target.
type Variant struct {
	Options Options
	Source  string
	Info    TranslationInfo
}

// CompileVariants compiles program once per entry of targets, concurrently.
// The program is frozen first so the concurrent passes only read it.
// Results are returned in the order of targets. The first failure cancels
// the remaining compilations and is returned.
func CompileVariants(ctx context.Context, program *ir.Program, targets []Options) ([]Variant, error) {
	program.Freeze()

	variants := make([]Variant, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	for i, opts := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			source, info, err := Compile(program, opts)
			if err != nil {
				return fmt.Errorf("target %s: %w", opts.withDefaults().LangVersion, err)
			}
			variants[i] = Variant{Options: opts, Source: source, Info: info}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}
