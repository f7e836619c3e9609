package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbols_FirstOccurrenceOrder(t *testing.T) {
	b := NewBlock()
	x := b.Local(Float, "x", CallFn("f", Ref{Name: Named("u")}))
	y := b.Local(Float, "y", Add(x.Ref(), x.Ref()))
	b.Add(If{
		Condition: Greater(y.Ref(), F32(0)),
		Accept:    b.Block(Set(Ref{Name: Named("out")}, y.Ref())),
	})

	want := []Symbol{x.Symbol(), Named("f"), Named("u"), y.Symbol(), Named("out")}
	assert.Equal(t, want, Symbols(b))
}

func TestInspect_SkipChildren(t *testing.T) {
	b := NewBlock()
	b.Add(b.Block(ExprStmt{Expr: CallFn("hidden")}))
	b.AddExpr(CallFn("visible"))

	var calls []string
	Inspect(b, func(n any) bool {
		if inner, ok := n.(*Block); ok && inner != b {
			return false
		}
		if c, ok := n.(Call); ok {
			calls = append(calls, c.Func.Name())
		}
		return true
	})
	assert.Equal(t, []string{"visible"}, calls)
}

func TestInspect_Nil(t *testing.T) {
	count := 0
	visit := func(any) bool { count++; return true }

	Inspect(nil, visit)
	InspectExpression(nil, visit)
	Inspect(For{}, visit)
	Inspect(If{Condition: BoolLit(true)}, visit)
	assert.Equal(t, 3, count)
}
