// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/glslgen/ir"
)

// Program writes a complete shader for p at depth zero. p is expected to
// have been processed already; Compile does both.
func (o *Output) Program(p *ir.Program) (TranslationInfo, error) {
	info := TranslationInfo{Version: o.options.LangVersion}
	o.stage = p.Stage

	// 1. Reserve every verbatim name before any generated one is assigned
	o.reserveProgram(p)

	// 2. Write version directive
	if err := o.writeVersionDirective(); err != nil {
		return info, err
	}

	// 3. Write default precision (ES only)
	if err := o.writePrecisionQualifiers(); err != nil {
		return info, err
	}

	// 4. Write struct definitions
	if err := o.writeTypes(p, &info); err != nil {
		return info, err
	}

	// 5. Write globals (constants, uniforms, inputs, outputs)
	if err := o.writeGlobals(p, &info); err != nil {
		return info, err
	}

	// 6. Write helper functions
	for _, f := range p.Functions {
		if err := o.writeFunction(f); err != nil {
			return info, fmt.Errorf("function %s: %w", f.Name, err)
		}
	}

	// 7. Write main
	if err := o.Write("void main() "); err != nil {
		return info, err
	}
	if err := o.writeBody(p.Main()); err != nil {
		return info, fmt.Errorf("main: %w", err)
	}
	return info, o.Write("\n")
}

func (o *Output) reserveProgram(p *ir.Program) {
	o.names.reserve("main")
	for _, g := range p.Globals {
		o.names.reserve(g.Symbol().Name())
		if g.Init != nil {
			o.Reserve(ir.ExprStmt{Expr: g.Init})
		}
	}
	for _, f := range p.Functions {
		o.names.reserve(f.Name.Name())
		for _, param := range f.Params {
			o.names.reserve(param.Symbol().Name())
		}
		o.Reserve(f.Body)
	}
	o.Reserve(p.Main())
}

// writeVersionDirective writes the #version directive.
func (o *Output) writeVersionDirective() error {
	if err := o.writeLine("#version " + o.options.LangVersion.String()); err != nil {
		return err
	}
	return o.writeLine("")
}

// writePrecisionQualifiers writes default precision for ES, where fragment
// shaders have none for float.
func (o *Output) writePrecisionQualifiers() error {
	if !o.options.LangVersion.ES {
		return nil
	}
	precision := "mediump"
	if o.options.ForceHighPrecision {
		precision = "highp"
	}
	for _, line := range []string{
		"precision " + precision + " float;",
		"precision " + precision + " int;",
		"",
	} {
		if err := o.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// writeTypes declares every struct the program uses, dependencies first.
func (o *Output) writeTypes(p *ir.Program, info *TranslationInfo) error {
	reg := ir.NewTypeRegistry()
	register := func(t ir.Type) error {
		if t == nil {
			return nil
		}
		return reg.Register(t)
	}

	for _, g := range p.Globals {
		if err := register(g.Type()); err != nil {
			return err
		}
	}
	bodies := make([]*ir.Block, 0, len(p.Functions)+1)
	for _, f := range p.Functions {
		if err := register(f.Result); err != nil {
			return err
		}
		for _, param := range f.Params {
			if err := register(param.Type()); err != nil {
				return err
			}
		}
		bodies = append(bodies, f.Body)
	}
	bodies = append(bodies, p.Main())

	var err error
	for _, b := range bodies {
		ir.Inspect(b, func(n any) bool {
			if err != nil {
				return false
			}
			switch n := n.(type) {
			case ir.Def:
				err = register(n.Type)
			case ir.Construct:
				err = register(n.Type)
			}
			return err == nil
		})
		if err != nil {
			return err
		}
	}

	for _, st := range reg.Structs() {
		if err := o.writeStruct(st); err != nil {
			return err
		}
		info.Structs = append(info.Structs, st.Name)
	}
	return nil
}

func (o *Output) writeStruct(st *ir.StructType) error {
	if err := o.writeLine("struct " + st.Name + " {"); err != nil {
		return err
	}
	o.pushIndent()
	for _, m := range st.Members {
		decl, err := o.declaration(m.Type, m.Name)
		if err != nil {
			o.popIndent()
			return fmt.Errorf("struct %s: member %s: %w", st.Name, m.Name, err)
		}
		if err := o.writeLine(decl + ";"); err != nil {
			o.popIndent()
			return err
		}
	}
	o.popIndent()
	if err := o.writeLine("};"); err != nil {
		return err
	}
	return o.writeLine("")
}

// writeGlobals writes the program-scope declarations.
func (o *Output) writeGlobals(p *ir.Program, info *TranslationInfo) error {
	written := 0
	for _, g := range p.Globals {
		line, err := o.global(g, info)
		if err != nil {
			return fmt.Errorf("global %s: %w", g.Symbol(), err)
		}
		if line == "" {
			continue
		}
		if err := o.writeLine(line); err != nil {
			return err
		}
		written++
	}
	if written == 0 {
		return nil
	}
	return o.writeLine("")
}

// global renders the declaration of g, or "" when the target declares it
// implicitly.
//
//nolint:gocyclo,cyclop // One case per storage qualifier and dialect
func (o *Output) global(g *ir.Global, info *TranslationInfo) (string, error) {
	caps := o.ctx.Caps
	name := o.Name(g.Symbol())
	decl, err := o.declaration(g.Type(), name)
	if err != nil {
		return "", err
	}

	switch g.Qualifier {
	case ir.StorageConst:
		if g.Init == nil {
			return "", fmt.Errorf("constant has no value")
		}
		value, err := o.expression(g.Init)
		if err != nil {
			return "", err
		}
		return "const " + decl + " = " + value + ";", nil

	case ir.StorageUniform:
		info.Uniforms = append(info.Uniforms, name)
		if g.Binding != nil && caps.ExplicitBindings {
			return fmt.Sprintf("layout(binding = %d) uniform %s;", *g.Binding, decl), nil
		}
		return "uniform " + decl + ";", nil

	case ir.StorageAttribute:
		if o.stage != ir.StageVertex {
			return "", fmt.Errorf("%w: attribute in %s stage", ErrUnsupported, o.stage)
		}
		info.Inputs = append(info.Inputs, name)
		if !caps.InOut {
			return "attribute " + decl + ";", nil
		}
		return o.location(g) + "in " + decl + ";", nil

	case ir.StorageVarying:
		switch {
		case o.stage == ir.StageVertex:
			info.Outputs = append(info.Outputs, name)
		default:
			info.Inputs = append(info.Inputs, name)
		}
		if !caps.InOut {
			return "varying " + decl + ";", nil
		}
		if o.stage == ir.StageVertex {
			return "out " + decl + ";", nil
		}
		return "in " + decl + ";", nil

	case ir.StorageFragOutput:
		if o.stage != ir.StageFragment {
			return "", fmt.Errorf("%w: fragment output in %s stage", ErrUnsupported, o.stage)
		}
		if !caps.InOut {
			builtin, err := o.expression(legacyOutput(g))
			if err != nil {
				return "", err
			}
			info.Outputs = append(info.Outputs, builtin)
			return "", nil
		}
		info.Outputs = append(info.Outputs, name)
		return o.location(g) + "out " + decl + ";", nil

	default:
		return "", fmt.Errorf("unsupported storage qualifier: %v", g.Qualifier)
	}
}

func (o *Output) location(g *ir.Global) string {
	if g.Location == nil || !o.ctx.Caps.ExplicitLocations {
		return ""
	}
	return fmt.Sprintf("layout(location = %d) ", *g.Location)
}

// writeFunction writes a helper function followed by a blank line.
func (o *Output) writeFunction(f *ir.Function) error {
	result := "void"
	if f.Result != nil {
		var err error
		if result, err = o.qualifiedTypeName(f.Result); err != nil {
			return err
		}
	}

	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		decl, err := o.declaration(p.Type(), o.Name(p.Symbol()))
		if err != nil {
			return err
		}
		switch p.Direction {
		case ir.ParamOut:
			decl = "out " + decl
		case ir.ParamInOut:
			decl = "inout " + decl
		}
		params[i] = decl
	}

	if err := o.Write(fmt.Sprintf("%s %s(%s) ", result, o.Name(f.Name), strings.Join(params, ", "))); err != nil {
		return err
	}
	if err := o.writeBody(f.Body); err != nil {
		return err
	}
	return o.Write("\n\n")
}
