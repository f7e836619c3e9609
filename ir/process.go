package ir

import "fmt"

// processor holds per-pass state. The Context itself stays read-only.
type processor struct {
	ctx       *Context
	expanding map[string]bool
}

func newProcessor(ctx *Context) *processor {
	if ctx == nil {
		ctx = NewContext()
	}
	return &processor{ctx: ctx, expanding: make(map[string]bool)}
}

// ProcessExpression returns e rewritten with ctx. A nil expression stays nil.
func ProcessExpression(ctx *Context, e Expression) Expression {
	return newProcessor(ctx).expression(e)
}

// ProcessStatement returns s rewritten with ctx. A nil statement stays nil.
func ProcessStatement(ctx *Context, s Statement) Statement {
	return newProcessor(ctx).statement(s)
}

func processBlock(ctx *Context, b *Block) *Block {
	return newProcessor(ctx).block(b)
}

func (p *processor) block(b *Block) *Block {
	if b == nil {
		return nil
	}
	out := &Block{
		stmts:  make([]Statement, len(b.stmts)),
		gen:    b.gen,
		frozen: true,
	}
	for i, s := range b.stmts {
		out.stmts[i] = p.statement(s)
	}
	return out
}

func (p *processor) statement(s Statement) Statement {
	switch s := s.(type) {
	case nil:
		return nil
	case *Block:
		return p.block(s)
	case ExprStmt:
		return ExprStmt{Expr: p.expression(s.Expr)}
	case Def:
		return Def{Type: s.Type, Name: s.Name, Init: p.expression(s.Init)}
	case Assign:
		return Assign{Op: s.Op, Target: p.expression(s.Target), Value: p.expression(s.Value)}
	case Return:
		return Return{Value: p.expression(s.Value)}
	case If:
		return If{
			Condition: p.expression(s.Condition),
			Accept:    p.block(s.Accept),
			Reject:    p.block(s.Reject),
		}
	case For:
		return For{
			Init:      p.statement(s.Init),
			Condition: p.expression(s.Condition),
			Step:      p.expression(s.Step),
			Body:      p.block(s.Body),
		}
	case While:
		return While{Condition: p.expression(s.Condition), Body: p.block(s.Body)}
	case Break, Continue, Discard:
		return s
	default:
		panic(fmt.Sprintf("ir: unsupported statement kind %T", s))
	}
}

func (p *processor) expression(e Expression) Expression {
	var out Expression
	switch e := e.(type) {
	case nil:
		return nil
	case Literal, Ref:
		out = e
	case Placeholder:
		if bound, ok := p.ctx.Lookup(e.Key); ok && !p.expanding[e.Key] {
			p.expanding[e.Key] = true
			defer delete(p.expanding, e.Key)
			return p.expression(bound)
		}
		out = e
	case Unary:
		out = Unary{Op: e.Op, Expr: p.expression(e.Expr)}
	case Binary:
		out = Binary{Op: e.Op, Left: p.expression(e.Left), Right: p.expression(e.Right)}
	case Call:
		out = Call{Func: e.Func, Args: p.expressions(e.Args)}
	case Construct:
		out = Construct{Type: e.Type, Args: p.expressions(e.Args)}
	case Swizzle:
		out = Swizzle{Vector: p.expression(e.Vector), Size: e.Size, Pattern: e.Pattern}
	case Index:
		out = Index{Base: p.expression(e.Base), Index: p.expression(e.Index)}
	case Field:
		out = Field{Base: p.expression(e.Base), Name: e.Name}
	case Select:
		out = Select{
			Condition: p.expression(e.Condition),
			Accept:    p.expression(e.Accept),
			Reject:    p.expression(e.Reject),
		}
	default:
		panic(fmt.Sprintf("ir: unsupported expression kind %T", e))
	}
	return p.rewrite(out)
}

func (p *processor) expressions(es []Expression) []Expression {
	if es == nil {
		return nil
	}
	out := make([]Expression, len(es))
	for i, e := range es {
		out[i] = p.expression(e)
	}
	return out
}

func (p *processor) rewrite(e Expression) Expression {
	for _, rule := range p.ctx.Rules {
		if next, ok := rule(p.ctx, e); ok {
			e = next
		}
	}
	return e
}
