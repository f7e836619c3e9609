package ir

import "slices"

// Block is an ordered sequence of statements forming a lexical scope.
//
// A Block is built by appending and then frozen. Statement order is emission
// order, and there is no way to insert before an existing statement, so a
// Local declared by the block is always defined before anything added after
// it can reference it.
type Block struct {
	stmts  []Statement
	gen    *Generator
	frozen bool
}

func (*Block) statement() {}

// NewBlock creates a block holding stmts in order. Locals declared through it
// draw generated names from a fresh Generator.
func NewBlock(stmts ...Statement) *Block {
	return NewGenerator().Block(stmts...)
}

// Block creates a nested block sharing b's Generator.
func (b *Block) Block(stmts ...Statement) *Block {
	return b.generator().Block(stmts...)
}

// Generator returns the session b generates local names from.
func (b *Block) Generator() *Generator {
	return b.generator()
}

func (b *Block) generator() *Generator {
	if b.gen == nil {
		b.gen = NewGenerator()
	}
	return b.gen
}

// Add appends stmt. It panics if the block is frozen.
func (b *Block) Add(stmt Statement) {
	if b.frozen {
		panic("ir: Add on frozen block")
	}
	b.stmts = append(b.stmts, stmt)
}

// AddExpr appends an expression statement.
func (b *Block) AddExpr(expr Expression) {
	b.Add(ExprStmt{Expr: expr})
}

// Local declares a local variable named after prefix and appends its Def.
// An empty prefix yields a fully generated name. init may be nil.
func (b *Block) Local(t Type, prefix string, init Expression) *Local {
	return b.Declare(t, b.generator().Symbol(prefix), init)
}

// Declare declares a local variable with the caller's symbol and appends its
// Def. A zero symbol is replaced with a generated one. init may be nil.
func (b *Block) Declare(t Type, name Symbol, init Expression) *Local {
	if name.IsZero() {
		name = b.generator().Symbol("")
	}
	l := &Local{typ: t, name: name}
	b.Add(Def{Type: t, Name: name, Init: init})
	return l
}

// Freeze marks the block and every nested block as complete.
// A frozen block may be shared by concurrent readers.
func (b *Block) Freeze() *Block {
	if b.frozen {
		return b
	}
	b.frozen = true
	for _, s := range b.stmts {
		freezeStatement(s)
	}
	return b
}

// Frozen reports whether the block has been frozen.
func (b *Block) Frozen() bool {
	return b.frozen
}

// Len returns the number of statements.
func (b *Block) Len() int {
	return len(b.stmts)
}

// Statements returns a copy of the statement sequence.
func (b *Block) Statements() []Statement {
	return slices.Clone(b.stmts)
}

// At returns the i-th statement.
func (b *Block) At(i int) Statement {
	return b.stmts[i]
}

// Process returns a new frozen block holding every statement processed with
// ctx, in the original order.
func (b *Block) Process(ctx *Context) *Block {
	return processBlock(ctx, b)
}

func freezeStatement(s Statement) {
	switch s := s.(type) {
	case *Block:
		s.Freeze()
	case If:
		freezeBlock(s.Accept)
		freezeBlock(s.Reject)
	case For:
		freezeBlock(s.Body)
	case While:
		freezeBlock(s.Body)
	}
}

func freezeBlock(b *Block) {
	if b != nil {
		b.Freeze()
	}
}
