// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"
	"strings"

	"github.com/gogpu/glslgen/ir"
)

// namer assigns the rendered spelling of every symbol seen by one Output.
type namer struct {
	usedNames map[string]struct{}
	counters  map[string]uint32
	symbols   map[ir.Symbol]string
}

func newNamer() *namer {
	return &namer{
		usedNames: make(map[string]struct{}),
		counters:  make(map[string]uint32),
		symbols:   make(map[ir.Symbol]string),
	}
}

// reserve marks a verbatim name as taken.
func (n *namer) reserve(name string) {
	if name != "" {
		n.usedNames[name] = struct{}{}
	}
}

// call generates a unique name based on the given base.
func (n *namer) call(base string) string {
	// Escape reserved words
	escaped := escapeKeyword(base)

	// First try the base name directly
	if _, used := n.usedNames[escaped]; !used {
		n.usedNames[escaped] = struct{}{}
		return escaped
	}

	// Add numeric suffix; a trailing underscore would form a reserved "__"
	stem := strings.TrimRight(escaped, "_")
	for {
		n.counters[escaped]++
		candidate := stem + "_" + strconv.FormatUint(uint64(n.counters[escaped]), 10)
		if _, used := n.usedNames[candidate]; !used {
			n.usedNames[candidate] = struct{}{}
			return candidate
		}
	}
}

// name returns the spelling of sym, assigning one on first use.
func (n *namer) name(sym ir.Symbol) string {
	if !sym.IsGenerated() {
		return sym.Name()
	}
	if s, ok := n.symbols[sym]; ok {
		return s
	}
	s := n.call(sym.Prefix())
	n.symbols[sym] = s
	return s
}

// reserveNamed reserves every named symbol in s so generated names cannot
// shadow them.
func (n *namer) reserveNamed(s ir.Statement) {
	for _, sym := range ir.Symbols(s) {
		if !sym.IsGenerated() {
			n.reserve(sym.Name())
		}
	}
}
