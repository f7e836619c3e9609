// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslgen/ir"
)

// GLSL type name constants for repeated use.
const (
	glslTypeInt   = "int"
	glslTypeUint  = "uint"
	glslTypeFloat = "float"
)

// typeName returns the GLSL spelling of t without a precision qualifier,
// as used by constructors. Arrays include their size ("vec2[3]").
func (o *Output) typeName(t ir.Type) (string, error) {
	switch t := t.(type) {
	case ir.ScalarType:
		return o.scalarToGLSL(t.Kind)
	case ir.VectorType:
		return o.vectorToGLSL(t)
	case ir.MatrixType:
		return o.matrixToGLSL(t)
	case ir.ArrayType:
		elem, suffix := unwrapArray(t)
		base, err := o.typeName(elem)
		if err != nil {
			return "", err
		}
		return base + suffix, nil
	case ir.SamplerType:
		return o.samplerToGLSL(t)
	case *ir.StructType:
		return t.Name, nil
	case ir.VoidType:
		return "void", nil
	case nil:
		return "", fmt.Errorf("missing type")
	default:
		return "", fmt.Errorf("unsupported type: %T", t)
	}
}

// qualifiedTypeName returns typeName prefixed with the precision qualifier
// of t when the target accepts one.
func (o *Output) qualifiedTypeName(t ir.Type) (string, error) {
	name, err := o.typeName(t)
	if err != nil {
		return "", err
	}
	if q := o.precisionOf(t); q != "" {
		return q + " " + name, nil
	}
	return name, nil
}

// declaration renders "type name" with array sizes after the name, the form
// every GLSL version accepts for declarations.
func (o *Output) declaration(t ir.Type, name string) (string, error) {
	base, suffix := unwrapArray(t)
	typeName, err := o.qualifiedTypeName(base)
	if err != nil {
		return "", err
	}
	return typeName + " " + name + suffix, nil
}

// unwrapArray returns the element type of t and its array suffix, outermost
// dimension first: array of 3 arrays of 4 floats is ("float", "[3][4]").
func unwrapArray(t ir.Type) (ir.Type, string) {
	suffix := ""
	for {
		arr, ok := t.(ir.ArrayType)
		if !ok {
			return t, suffix
		}
		if arr.Size == 0 {
			suffix += "[]"
		} else {
			suffix += "[" + strconv.FormatUint(uint64(arr.Size), 10) + "]"
		}
		t = arr.Base
	}
}

func (o *Output) precisionOf(t ir.Type) string {
	if !o.ctx.Caps.Precision {
		return ""
	}
	var p ir.Precision
	switch t := t.(type) {
	case ir.ScalarType:
		p = t.Precision
	case ir.VectorType:
		p = t.Precision
	case ir.MatrixType:
		p = t.Precision
	case ir.SamplerType:
		p = t.Precision
	case ir.ArrayType:
		return o.precisionOf(t.Base)
	}
	switch p {
	case ir.PrecisionLow:
		return "lowp"
	case ir.PrecisionMedium:
		return "mediump"
	case ir.PrecisionHigh:
		return "highp"
	default:
		return ""
	}
}

// scalarToGLSL returns the GLSL name for a scalar type.
func (o *Output) scalarToGLSL(kind ir.ScalarKind) (string, error) {
	switch kind {
	case ir.ScalarBool:
		return "bool", nil
	case ir.ScalarInt:
		return glslTypeInt, nil
	case ir.ScalarUint:
		if !o.ctx.Caps.UnsignedIntegers {
			return "", fmt.Errorf("%w: uint needs GLSL 1.30 or ES 3.00", ErrUnsupported)
		}
		return glslTypeUint, nil
	case ir.ScalarFloat:
		return glslTypeFloat, nil
	case ir.ScalarDouble:
		if err := o.requireDouble(); err != nil {
			return "", err
		}
		return "double", nil
	default:
		return "", fmt.Errorf("unsupported scalar kind: %d", kind)
	}
}

// vectorToGLSL returns the GLSL name for a vector type.
func (o *Output) vectorToGLSL(t ir.VectorType) (string, error) {
	if t.Size < 2 || t.Size > 4 {
		return "", fmt.Errorf("invalid vector size %d", t.Size)
	}
	prefix := ""
	switch t.Kind {
	case ir.ScalarBool:
		prefix = "b"
	case ir.ScalarInt:
		prefix = "i"
	case ir.ScalarUint:
		if !o.ctx.Caps.UnsignedIntegers {
			return "", fmt.Errorf("%w: uvec%d needs GLSL 1.30 or ES 3.00", ErrUnsupported, t.Size)
		}
		prefix = "u"
	case ir.ScalarDouble:
		if err := o.requireDouble(); err != nil {
			return "", err
		}
		prefix = "d"
	}
	return fmt.Sprintf("%svec%d", prefix, t.Size), nil
}

// matrixToGLSL returns the GLSL name for a matrix type.
func (o *Output) matrixToGLSL(t ir.MatrixType) (string, error) {
	cols, rows := t.Columns, t.Rows
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return "", fmt.Errorf("invalid matrix size %dx%d", cols, rows)
	}
	prefix := ""
	switch t.Kind {
	case ir.ScalarFloat:
	case ir.ScalarDouble:
		if err := o.requireDouble(); err != nil {
			return "", err
		}
		prefix = "d"
	default:
		// GLSL only supports float and double matrices
		return "", fmt.Errorf("%w: matrix of scalar kind %d", ErrUnsupported, t.Kind)
	}
	if cols == rows {
		return fmt.Sprintf("%smat%d", prefix, cols), nil
	}
	if o.options.LangVersion.ES && o.options.LangVersion.versionLessThan(300) ||
		!o.options.LangVersion.ES && o.options.LangVersion.versionLessThan(120) {
		return "", fmt.Errorf("%w: non-square matrices need GLSL 1.20 or ES 3.00", ErrUnsupported)
	}
	return fmt.Sprintf("%smat%dx%d", prefix, cols, rows), nil
}

// samplerToGLSL returns the GLSL name for a combined sampler type.
func (o *Output) samplerToGLSL(t ir.SamplerType) (string, error) {
	prefix := ""
	switch t.Kind {
	case ir.ScalarInt:
		prefix = "i"
	case ir.ScalarUint:
		prefix = "u"
	}
	if prefix != "" && !o.ctx.Caps.UnsignedIntegers {
		return "", fmt.Errorf("%w: integer samplers need GLSL 1.30 or ES 3.00", ErrUnsupported)
	}

	var dim string
	switch t.Dim {
	case ir.Dim1D:
		dim = "1D"
	case ir.Dim2D:
		dim = "2D"
	case ir.Dim3D:
		dim = "3D"
	case ir.DimCube:
		dim = "Cube"
	default:
		return "", fmt.Errorf("unsupported sampler dimension: %d", t.Dim)
	}

	name := prefix + "sampler" + dim
	if t.Arrayed {
		name += "Array"
	}
	if t.Shadow {
		name += "Shadow"
	}
	return name, nil
}

// requireDouble reports whether the target has double precision types.
func (o *Output) requireDouble() error {
	v := o.options.LangVersion
	if v.ES || v.versionLessThan(400) {
		return fmt.Errorf("%w: double needs GLSL 4.00", ErrUnsupported)
	}
	return nil
}
