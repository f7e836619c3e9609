package ir

// Inspect traverses s depth-first in emission order. It calls f with each
// statement and expression it meets; if f returns false the children of that
// node are skipped. Nil nodes are not visited.
func Inspect(s Statement, f func(node any) bool) {
	if s == nil || !f(s) {
		return
	}
	switch s := s.(type) {
	case *Block:
		if s == nil {
			return
		}
		for _, c := range s.stmts {
			Inspect(c, f)
		}
	case ExprStmt:
		InspectExpression(s.Expr, f)
	case Def:
		InspectExpression(s.Init, f)
	case Assign:
		InspectExpression(s.Target, f)
		InspectExpression(s.Value, f)
	case Return:
		InspectExpression(s.Value, f)
	case If:
		InspectExpression(s.Condition, f)
		inspectBlock(s.Accept, f)
		inspectBlock(s.Reject, f)
	case For:
		Inspect(s.Init, f)
		InspectExpression(s.Condition, f)
		InspectExpression(s.Step, f)
		inspectBlock(s.Body, f)
	case While:
		InspectExpression(s.Condition, f)
		inspectBlock(s.Body, f)
	}
}

func inspectBlock(b *Block, f func(node any) bool) {
	if b != nil {
		Inspect(b, f)
	}
}

// InspectExpression traverses e depth-first like Inspect.
func InspectExpression(e Expression, f func(node any) bool) {
	if e == nil || !f(e) {
		return
	}
	switch e := e.(type) {
	case Unary:
		InspectExpression(e.Expr, f)
	case Binary:
		InspectExpression(e.Left, f)
		InspectExpression(e.Right, f)
	case Call:
		for _, a := range e.Args {
			InspectExpression(a, f)
		}
	case Construct:
		for _, a := range e.Args {
			InspectExpression(a, f)
		}
	case Swizzle:
		InspectExpression(e.Vector, f)
	case Index:
		InspectExpression(e.Base, f)
		InspectExpression(e.Index, f)
	case Field:
		InspectExpression(e.Base, f)
	case Select:
		InspectExpression(e.Condition, f)
		InspectExpression(e.Accept, f)
		InspectExpression(e.Reject, f)
	}
}

// Symbols returns the distinct symbols s declares or references, in first
// occurrence order.
func Symbols(s Statement) []Symbol {
	var out []Symbol
	seen := make(map[Symbol]bool)
	add := func(sym Symbol) {
		if !sym.IsZero() && !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	Inspect(s, func(n any) bool {
		switch n := n.(type) {
		case Def:
			add(n.Name)
		case Ref:
			add(n.Name)
		case Call:
			add(n.Func)
		}
		return true
	})
	return out
}
