// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/glslgen/ir"
)

// legacyTextureNames maps sampler types to the per-dimension sampling
// built-ins of GLSL 1.20 and ES 1.00.
var legacyTextureNames = map[ir.SamplerDim]string{
	ir.Dim1D:   "texture1D",
	ir.Dim2D:   "texture2D",
	ir.Dim3D:   "texture3D",
	ir.DimCube: "textureCube",
}

// legacyTextureRule rewrites texture(s, uv) into texture2D(s, uv) and its
// siblings, picking the name from the sampler operand's type.
func legacyTextureRule(_ *ir.Context, e ir.Expression) (ir.Expression, bool) {
	call, ok := e.(ir.Call)
	if !ok || call.Func != ir.Named("texture") || len(call.Args) == 0 {
		return e, false
	}
	name := "texture2D"
	if t, err := ir.ResolveType(call.Args[0]); err == nil {
		if st, ok := t.(ir.SamplerType); ok {
			if st.Shadow {
				name = "shadow2D"
			} else if n, ok := legacyTextureNames[st.Dim]; ok {
				name = n
			}
		}
	}
	return ir.Call{Func: ir.Named(name), Args: call.Args}, true
}

// legacyOutput returns the built-in a fragment output is written through
// when the target has no out variables.
func legacyOutput(g *ir.Global) ir.Expression {
	if g.Location != nil {
		return ir.At(ir.Ref{Name: ir.Named("gl_FragData"), Type: ir.ArrayOf(ir.Vec4, 0)}, ir.I32(int32(*g.Location))) //nolint:gosec // G115: locations are small
	}
	return ir.Ref{Name: ir.Named("gl_FragColor"), Type: ir.Vec4}
}

// fragOutputRule returns a rule redirecting references to fragment outputs
// to gl_FragColor or gl_FragData[N], or nil when the target declares outputs
// itself.
func fragOutputRule(p *ir.Program, caps ir.Capabilities) (ir.Rule, error) {
	if caps.InOut || p.Stage != ir.StageFragment {
		return nil, nil
	}
	redirect := make(map[ir.Symbol]ir.Expression)
	unlocated := 0
	for _, g := range p.Globals {
		if g.Qualifier != ir.StorageFragOutput {
			continue
		}
		if g.Location == nil {
			unlocated++
		}
		redirect[g.Symbol()] = legacyOutput(g)
	}
	if len(redirect) == 0 {
		return nil, nil
	}
	if unlocated > 1 || (unlocated == 1 && len(redirect) > 1) {
		return nil, fmt.Errorf("%w: several fragment outputs need explicit locations", ErrUnsupported)
	}
	return func(_ *ir.Context, e ir.Expression) (ir.Expression, bool) {
		ref, ok := e.(ir.Ref)
		if !ok {
			return e, false
		}
		to, ok := redirect[ref.Name]
		return to, ok
	}, nil
}
