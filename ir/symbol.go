package ir

import "fmt"

// defaultPrefix is used for generated symbols requested without a prefix.
const defaultPrefix = "s"

// Symbol is an identifier in the tree.
//
// A Symbol is either named, in which case its text is emitted verbatim, or
// generated by a Generator, in which case it is given a unique spelling when
// the tree is emitted. Symbols are comparable and may be used as map keys.
type Symbol struct {
	name   string
	prefix string
	id     uint32
	gen    *Generator
}

// Named returns a symbol spelled exactly as name.
func Named(name string) Symbol {
	return Symbol{name: name}
}

// IsZero reports whether s is the zero Symbol.
func (s Symbol) IsZero() bool {
	return s == Symbol{}
}

// IsGenerated reports whether s was produced by a Generator.
func (s Symbol) IsGenerated() bool {
	return s.gen != nil
}

// Name returns the text of a named symbol, or "" for a generated one.
func (s Symbol) Name() string {
	return s.name
}

// Prefix returns the prefix a generated symbol was requested with.
// An empty request yields the default prefix.
func (s Symbol) Prefix() string {
	if !s.IsGenerated() {
		return ""
	}
	if s.prefix == "" {
		return defaultPrefix
	}
	return s.prefix
}

// String returns a debug form of the symbol: the name for named symbols and
// "prefix#id" for generated ones.
func (s Symbol) String() string {
	if s.IsGenerated() {
		return fmt.Sprintf("%s#%d", s.Prefix(), s.id)
	}
	if s.name == "" {
		return "<zero>"
	}
	return s.name
}

// Generator hands out generated symbols for one generation session.
//
// Symbols from one Generator never collide with each other, and never collide
// with symbols from a different Generator. A Generator is not safe for
// concurrent use.
type Generator struct {
	next uint32
}

// NewGenerator creates a generation session.
func NewGenerator() *Generator {
	return &Generator{}
}

// Symbol returns a fresh symbol spelled after prefix.
func (g *Generator) Symbol(prefix string) Symbol {
	g.next++
	return Symbol{prefix: prefix, id: g.next, gen: g}
}

// Count returns the number of symbols generated so far.
func (g *Generator) Count() int {
	return int(g.next)
}

// Block creates an empty-or-seeded block whose locals draw names from g.
func (g *Generator) Block(stmts ...Statement) *Block {
	b := &Block{gen: g}
	b.stmts = append(b.stmts, stmts...)
	return b
}
