// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/glslgen/ir"
)

// writeBody writes "{", the statements of b one level deeper and the closing
// brace at the current depth, without a trailing newline. A nil block is
// written as an empty one.
func (o *Output) writeBody(b *ir.Block) error {
	if err := o.Write("{\n"); err != nil {
		return err
	}
	if err := o.writeNested(b); err != nil {
		return err
	}
	if err := o.Indent(); err != nil {
		return err
	}
	return o.Write("}")
}

func (o *Output) writeNested(b *ir.Block) error {
	o.pushIndent()
	defer o.popIndent()

	if b == nil {
		return nil
	}
	for i := 0; i < b.Len(); i++ {
		if err := o.Indent(); err != nil {
			return err
		}
		if err := o.writeStatement(b.At(i)); err != nil {
			return err
		}
		if err := o.Write("\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeStatement writes a single statement at the current column, without
// indentation or a trailing newline.
func (o *Output) writeStatement(stmt ir.Statement) error {
	switch s := stmt.(type) {
	case *ir.Block:
		return o.writeBody(s)
	case ir.If:
		return o.writeIf(s)
	case ir.For:
		return o.writeFor(s)
	case ir.While:
		return o.writeWhile(s)
	default:
		text, err := o.simpleStatement(stmt)
		if err != nil {
			return err
		}
		return o.Write(text)
	}
}

// simpleStatement renders a statement that fits on one line.
func (o *Output) simpleStatement(stmt ir.Statement) (string, error) {
	switch s := stmt.(type) {
	case ir.ExprStmt:
		expr, err := o.expression(s.Expr)
		if err != nil {
			return "", err
		}
		return expr + ";", nil

	case ir.Def:
		return o.writeDef(s)

	case ir.Assign:
		target, err := o.expression(s.Target)
		if err != nil {
			return "", err
		}
		value, err := o.expression(s.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s;", target, s.Op, value), nil

	case ir.Return:
		if s.Value == nil {
			return "return;", nil
		}
		value, err := o.expression(s.Value)
		if err != nil {
			return "", err
		}
		return "return " + value + ";", nil

	case ir.Break:
		return "break;", nil

	case ir.Continue:
		return "continue;", nil

	case ir.Discard:
		return "discard;", nil

	case nil:
		return "", fmt.Errorf("nil statement")

	default:
		return "", fmt.Errorf("unsupported statement kind: %T", stmt)
	}
}

// writeDef renders a local declaration.
func (o *Output) writeDef(def ir.Def) (string, error) {
	decl, err := o.declaration(def.Type, o.Name(def.Name))
	if err != nil {
		return "", err
	}
	if def.Init == nil {
		return decl + ";", nil
	}
	init, err := o.expression(def.Init)
	if err != nil {
		return "", err
	}
	return decl + " = " + init + ";", nil
}

// writeIf writes an if statement.
func (o *Output) writeIf(ifStmt ir.If) error {
	condition, err := o.expression(ifStmt.Condition)
	if err != nil {
		return err
	}
	if err := o.Write(fmt.Sprintf("if (%s) ", condition)); err != nil {
		return err
	}
	if err := o.writeBody(ifStmt.Accept); err != nil {
		return err
	}
	if ifStmt.Reject == nil {
		return nil
	}
	if err := o.Write(" else "); err != nil {
		return err
	}
	return o.writeBody(ifStmt.Reject)
}

// writeFor writes a C-style loop header and its body.
func (o *Output) writeFor(loop ir.For) error {
	header := "for ("
	if loop.Init == nil {
		header += ";"
	} else {
		init, err := o.simpleStatement(loop.Init)
		if err != nil {
			return err
		}
		header += init
	}
	if loop.Condition != nil {
		condition, err := o.expression(loop.Condition)
		if err != nil {
			return err
		}
		header += " " + condition
	}
	header += ";"
	if loop.Step != nil {
		step, err := o.expression(loop.Step)
		if err != nil {
			return err
		}
		header += " " + step
	}
	if err := o.Write(header + ") "); err != nil {
		return err
	}
	return o.writeBody(loop.Body)
}

// writeWhile writes a while loop.
func (o *Output) writeWhile(loop ir.While) error {
	condition, err := o.expression(loop.Condition)
	if err != nil {
		return err
	}
	if err := o.Write(fmt.Sprintf("while (%s) ", condition)); err != nil {
		return err
	}
	return o.writeBody(loop.Body)
}
