// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"io"
	"strings"

	"github.com/gogpu/glslgen/ir"
)

// Output writes GLSL text to a sink.
//
// It tracks the current indentation depth and the spelling given to every
// generated symbol, so all statements written through one Output agree on
// names. Depth is restored when a write returns, including on error; the
// sink may hold a partial line after a failed write.
type Output struct {
	w       io.Writer
	ctx     *ir.Context
	options Options
	unit    string
	indent  int
	names   *namer
	stage   ir.Stage
}

// NewOutput creates an Output writing to w at depth zero. A nil ctx is
// replaced by NewContext(options).
func NewOutput(w io.Writer, ctx *ir.Context, options Options) *Output {
	options = options.withDefaults()
	if ctx == nil {
		ctx = NewContext(options)
	}
	return &Output{
		w:       w,
		ctx:     ctx,
		options: options,
		unit:    strings.Repeat(" ", options.IndentWidth),
		names:   newNamer(),
	}
}

// Context returns the context the Output renders for.
func (o *Output) Context() *ir.Context {
	return o.ctx
}

// Depth returns the current indentation depth.
func (o *Output) Depth() int {
	return o.indent
}

// Name returns the spelling of sym. Generated symbols are assigned a name
// on first use.
func (o *Output) Name(sym ir.Symbol) string {
	return o.names.name(sym)
}

// Reserve keeps the names of every named symbol in s away from generated
// symbols. Statement and Trail reserve their argument themselves.
func (o *Output) Reserve(s ir.Statement) {
	o.names.reserveNamed(s)
}

// Write appends text verbatim.
func (o *Output) Write(text string) error {
	_, err := io.WriteString(o.w, text)
	return err
}

// Indent writes the indentation of the current depth.
func (o *Output) Indent() error {
	if o.indent == 0 {
		return nil
	}
	return o.Write(strings.Repeat(o.unit, o.indent))
}

// Statement writes s on its own line: indentation, the statement and a
// newline. A block opens its brace on that line.
func (o *Output) Statement(s ir.Statement) error {
	o.Reserve(s)
	if err := o.Indent(); err != nil {
		return err
	}
	if err := o.writeStatement(s); err != nil {
		return err
	}
	return o.Write("\n")
}

// Trail writes b from the current column: an opening brace, each statement
// on its own line one level deeper, then the closing brace at the current
// depth and a newline.
func (o *Output) Trail(b *ir.Block) error {
	o.Reserve(b)
	if err := o.writeBody(b); err != nil {
		return err
	}
	return o.Write("\n")
}

// Expression writes e inline.
func (o *Output) Expression(e ir.Expression) error {
	text, err := o.expression(e)
	if err != nil {
		return err
	}
	return o.Write(text)
}

// pushIndent increases indentation.
func (o *Output) pushIndent() {
	o.indent++
}

// popIndent decreases indentation.
func (o *Output) popIndent() {
	if o.indent > 0 {
		o.indent--
	}
}

// writeLine writes a line with indentation and newline.
func (o *Output) writeLine(text string) error {
	if err := o.Indent(); err != nil {
		return err
	}
	if err := o.Write(text); err != nil {
		return err
	}
	return o.Write("\n")
}
