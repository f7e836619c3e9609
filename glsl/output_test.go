// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glslgen/ir"
)

// =============================================================================
// Helpers
// =============================================================================

func render(t *testing.T, s ir.Statement) string {
	t.Helper()
	var sb strings.Builder
	out := NewOutput(&sb, nil, DefaultOptions())
	require.NoError(t, out.Statement(s))
	require.Zero(t, out.Depth())
	return sb.String()
}

var errWriteFailed = errors.New("write failed")

// failingWriter accepts limit bytes and then fails every write.
type failingWriter struct {
	limit int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errWriteFailed
	}
	w.limit -= len(p)
	return len(p), nil
}

// nestedBlock exercises every compound statement.
func nestedBlock() *ir.Block {
	b := ir.NewBlock()
	x := b.Local(ir.Float, "x", ir.F32(0))
	gen := b.Generator()

	i := gen.Symbol("i")
	iRef := ir.Ref{Name: i, Type: ir.Int}
	b.Add(ir.For{
		Init:      ir.Def{Type: ir.Int, Name: i, Init: ir.I32(0)},
		Condition: ir.Less(iRef, ir.I32(4)),
		Step:      ir.PostInc(iRef),
		Body: b.Block(
			ir.Assign{Op: ir.AssignAdd, Target: x.Ref(), Value: ir.F32(0.5)},
			ir.If{
				Condition: ir.Greater(x.Ref(), ir.F32(1)),
				Accept:    b.Block(ir.Break{}),
				Reject:    b.Block(ir.Continue{}),
			},
		),
	})
	b.Add(ir.While{Condition: ir.BoolLit(false), Body: b.Block(ir.Discard{})})
	b.Add(b.Block(ir.Return{Value: x.Ref()}))
	return b
}

const nestedBlockText = `{
    float x = 0.0;
    for (int i = 0; (i < 4); i++) {
        x += 0.5;
        if ((x > 1.0)) {
            break;
        } else {
            continue;
        }
    }
    while (false) {
        discard;
    }
    {
        return x;
    }
}
`

// =============================================================================
// Statement and Trail
// =============================================================================

func TestOutput_Statement_Block(t *testing.T) {
	b := ir.NewBlock()
	x := b.Local(ir.Float, "x", ir.F32(1))
	b.AddExpr(ir.CallFn("use", x.Ref()))

	got := render(t, b)
	want := "{\n    float x = 1.0;\n    use(x);\n}\n"
	if got != want {
		t.Errorf("Statement() = %q, want %q", got, want)
	}
}

func TestOutput_Statement_Nested(t *testing.T) {
	if diff := cmp.Diff(nestedBlockText, render(t, nestedBlock())); diff != "" {
		t.Errorf("Statement() mismatch (-want +got):\n%s", diff)
	}
}

func TestOutput_Statement_Simple(t *testing.T) {
	tests := []struct {
		name string
		stmt ir.Statement
		want string
	}{
		{"expr", ir.ExprStmt{Expr: ir.CallFn("f")}, "f();\n"},
		{"def without init", ir.Def{Type: ir.Vec3, Name: ir.Named("n")}, "vec3 n;\n"},
		{"array def", ir.Def{Type: ir.ArrayOf(ir.Float, 4), Name: ir.Named("w")}, "float w[4];\n"},
		{"assign", ir.Set(ir.Dot(ir.Ref{Name: ir.Named("v")}, "x"), ir.I32(1)), "v.x = 1;\n"},
		{"multiply", ir.Assign{Op: ir.AssignMultiply, Target: ir.Ref{Name: ir.Named("v")}, Value: ir.F32(2)}, "v *= 2.0;\n"},
		{"bare return", ir.Return{}, "return;\n"},
		{"empty block", ir.NewBlock(), "{\n}\n"},
		{"for without clauses", ir.For{Body: ir.NewBlock(ir.Break{})}, "for (;;) {\n    break;\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.stmt)
			if got != tt.want {
				t.Errorf("Statement() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutput_Trail(t *testing.T) {
	b := ir.NewBlock()
	b.Add(ir.Return{})

	var sb strings.Builder
	out := NewOutput(&sb, nil, DefaultOptions())
	require.NoError(t, out.Write("void main() "))
	require.NoError(t, out.Trail(b))

	assert.Equal(t, "void main() {\n    return;\n}\n", sb.String())
	assert.Zero(t, out.Depth())
}

func TestOutput_IndentWidth(t *testing.T) {
	b := ir.NewBlock(ir.NewBlock(ir.Break{}))

	var sb strings.Builder
	out := NewOutput(&sb, nil, Options{IndentWidth: 2})
	require.NoError(t, out.Statement(b))

	assert.Equal(t, "{\n  {\n    break;\n  }\n}\n", sb.String())
}

// =============================================================================
// Indentation balance
// =============================================================================

func TestOutput_DepthRestoredOnError(t *testing.T) {
	full := render(t, nestedBlock())

	for limit := 0; limit < len(full); limit++ {
		w := &failingWriter{limit: limit}
		out := NewOutput(w, nil, DefaultOptions())
		err := out.Statement(nestedBlock())
		require.ErrorIs(t, err, errWriteFailed, "limit %d", limit)
		require.Zero(t, out.Depth(), "limit %d", limit)
	}
}

func TestOutput_DepthRestoredOnPlaceholder(t *testing.T) {
	b := ir.NewBlock()
	inner := b.Block()
	inner.AddExpr(ir.Placeholder{Key: "missing"})
	b.Add(inner)

	var sb strings.Builder
	out := NewOutput(&sb, nil, DefaultOptions())
	err := out.Statement(b)
	assert.ErrorIs(t, err, ErrUnresolvedPlaceholder)
	assert.Zero(t, out.Depth())
}

// =============================================================================
// Names
// =============================================================================

func TestOutput_GeneratedNames(t *testing.T) {
	b := ir.NewBlock()
	b.Local(ir.Float, "x", nil)
	b.Local(ir.Float, "x", nil)
	b.Declare(ir.Float, ir.Named("y"), nil)
	b.Local(ir.Float, "y", nil)
	b.Local(ir.Float, "int", nil)
	b.Local(ir.Float, "gl_Position", nil)
	b.Local(ir.Float, "", nil)
	b.Local(ir.Float, "a_", nil)
	b.Local(ir.Float, "a_", nil)

	want := `{
    float x;
    float x_1;
    float y;
    float y_1;
    float _int;
    float _gl_Position;
    float s;
    float a_;
    float a_1;
}
`
	assert.Equal(t, want, render(t, b))
}

func TestOutput_NamedSymbolsWin(t *testing.T) {
	// The generated x is declared first but the named x is reserved up front.
	b := ir.NewBlock()
	gen := b.Local(ir.Int, "x", ir.I32(1))
	b.Declare(ir.Int, ir.Named("x"), gen.Ref())

	assert.Equal(t, "{\n    int x_1 = 1;\n    int x = x_1;\n}\n", render(t, b))
}

func TestOutput_NamesStableAcrossStatements(t *testing.T) {
	b := ir.NewBlock()
	v := b.Local(ir.Vec2, "uv", nil)
	use := ir.ExprStmt{Expr: ir.CallFn("f", v.Ref())}

	var sb strings.Builder
	out := NewOutput(&sb, nil, DefaultOptions())
	require.NoError(t, out.Statement(b))
	require.NoError(t, out.Statement(use))

	assert.Equal(t, "{\n    vec2 uv;\n}\nf(uv);\n", sb.String())
	assert.Equal(t, "uv", out.Name(v.Symbol()))
}

func TestOutput_Deterministic(t *testing.T) {
	b := nestedBlock()
	assert.Equal(t, render(t, b), render(t, b))
}

// =============================================================================
// Round trip
// =============================================================================

func TestOutput_IdentityProcess(t *testing.T) {
	b := nestedBlock()
	before := render(t, b)
	after := render(t, b.Process(ir.NewContext()))

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("identity Process changed output (-before +after):\n%s", diff)
	}
}

func TestOutput_ProcessRewrites(t *testing.T) {
	b := ir.NewBlock()
	b.Local(ir.Int, "n", ir.Add(ir.Placeholder{Key: "TAPS"}, ir.I32(1)))
	b.AddExpr(ir.CallFn("use"))

	ctx := ir.NewContext().
		Bind("TAPS", ir.I32(4)).
		AddRule(func(_ *ir.Context, e ir.Expression) (ir.Expression, bool) {
			if call, ok := e.(ir.Call); ok && call.Func == ir.Named("use") {
				return ir.CallFn("consume"), true
			}
			return e, false
		})

	got := render(t, b.Process(ctx))
	assert.Equal(t, "{\n    int n = (4 + 1);\n    consume();\n}\n", got)
}
