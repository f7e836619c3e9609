// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/glslgen/ir"
)

// expression renders an expression inline.
//
//nolint:gocyclo,cyclop // Expression handling requires many cases
func (o *Output) expression(expr ir.Expression) (string, error) {
	switch e := expr.(type) {
	case ir.Literal:
		return o.writeLiteral(e)
	case ir.Ref:
		return o.Name(e.Name), nil
	case ir.Unary:
		return o.writeUnary(e)
	case ir.Binary:
		return o.writeBinary(e)
	case ir.Call:
		args, err := o.arguments(e.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", o.Name(e.Func), args), nil
	case ir.Construct:
		typeName, err := o.typeName(e.Type)
		if err != nil {
			return "", err
		}
		args, err := o.arguments(e.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", typeName, args), nil
	case ir.Swizzle:
		return o.writeSwizzle(e)
	case ir.Index:
		base, err := o.expression(e.Base)
		if err != nil {
			return "", err
		}
		index, err := o.expression(e.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", base, index), nil
	case ir.Field:
		base, err := o.expression(e.Base)
		if err != nil {
			return "", err
		}
		return base + "." + e.Name, nil
	case ir.Select:
		return o.writeSelect(e)
	case ir.Placeholder:
		return "", fmt.Errorf("%w: %q", ErrUnresolvedPlaceholder, e.Key)
	case nil:
		return "", fmt.Errorf("nil expression")
	default:
		return "", fmt.Errorf("unsupported expression kind: %T", expr)
	}
}

func (o *Output) arguments(args []ir.Expression) (string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		s, err := o.expression(a)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// writeLiteral writes a literal expression.
func (o *Output) writeLiteral(lit ir.Literal) (string, error) {
	switch v := lit.Value.(type) {
	case ir.LiteralBool:
		if v {
			return "true", nil
		}
		return "false", nil
	case ir.LiteralI32:
		return strconv.FormatInt(int64(v), 10), nil
	case ir.LiteralU32:
		if !o.ctx.Caps.UnsignedIntegers {
			return "", fmt.Errorf("%w: unsigned literal %du needs GLSL 1.30 or ES 3.00", ErrUnsupported, uint32(v))
		}
		return fmt.Sprintf("%du", uint32(v)), nil
	case ir.LiteralF32:
		if !isFinite(float64(v)) {
			return "", fmt.Errorf("non-finite float literal %v", float32(v))
		}
		return formatFloat(float32(v)), nil
	case ir.LiteralF64:
		if !isFinite(float64(v)) {
			return "", fmt.Errorf("non-finite double literal %v", float64(v))
		}
		if err := o.requireDouble(); err != nil {
			return "", err
		}
		return formatFloat64(float64(v)), nil
	default:
		return "", fmt.Errorf("unsupported literal type: %T", lit.Value)
	}
}

// writeSwizzle writes a swizzle expression.
func (o *Output) writeSwizzle(s ir.Swizzle) (string, error) {
	vector, err := o.expression(s.Vector)
	if err != nil {
		return "", err
	}

	const components = "xyzw"
	var sb strings.Builder
	for i := uint8(0); i < s.Size && i < 4; i++ {
		if int(s.Pattern[i]) < len(components) {
			sb.WriteByte(components[s.Pattern[i]])
		}
	}
	return vector + "." + sb.String(), nil
}

// writeUnary writes a unary expression.
func (o *Output) writeUnary(u ir.Unary) (string, error) {
	operand, err := o.expression(u.Expr)
	if err != nil {
		return "", err
	}

	switch u.Op {
	case ir.UnaryNegate:
		return fmt.Sprintf("-(%s)", operand), nil
	case ir.UnaryLogicalNot:
		return fmt.Sprintf("!(%s)", operand), nil
	case ir.UnaryBitwiseNot:
		return fmt.Sprintf("~(%s)", operand), nil
	case ir.UnaryPreIncrement:
		return "++" + operand, nil
	case ir.UnaryPreDecrement:
		return "--" + operand, nil
	case ir.UnaryPostIncrement:
		return operand + "++", nil
	case ir.UnaryPostDecrement:
		return operand + "--", nil
	default:
		return "", fmt.Errorf("unsupported unary operator: %v", u.Op)
	}
}

// writeBinary writes a binary expression. Every binary expression is
// parenthesized, so operator precedence never depends on context.
func (o *Output) writeBinary(b ir.Binary) (string, error) {
	left, err := o.expression(b.Left)
	if err != nil {
		return "", err
	}
	right, err := o.expression(b.Right)
	if err != nil {
		return "", err
	}
	if int(b.Op) > int(ir.BinaryShiftRight) {
		return "", fmt.Errorf("unsupported binary operator: %v", b.Op)
	}
	return fmt.Sprintf("(%s %s %s)", left, b.Op, right), nil
}

// writeSelect writes a select (ternary) expression.
func (o *Output) writeSelect(s ir.Select) (string, error) {
	condition, err := o.expression(s.Condition)
	if err != nil {
		return "", err
	}
	accept, err := o.expression(s.Accept)
	if err != nil {
		return "", err
	}
	reject, err := o.expression(s.Reject)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s ? %s : %s)", condition, accept, reject), nil
}

// isFinite reports whether f has a GLSL literal spelling.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatFloat formats a float32 for GLSL output.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatFloat64 formats a float64 for GLSL output.
func formatFloat64(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + "lf" // double literal suffix
}
