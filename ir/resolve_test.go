package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveLiteralType(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want Type
	}{
		{"f32", F32(1), Float},
		{"f64", F64(1), Double},
		{"i32", I32(1), Int},
		{"u32", U32(1), Uint},
		{"bool", BoolLit(true), Bool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveType(tt.expr)
			if err != nil {
				t.Fatalf("ResolveType failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveType() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestResolveType_Expressions(t *testing.T) {
	v := Ref{Name: Named("v"), Type: Vec3}
	m := Ref{Name: Named("m"), Type: Mat4}
	m3x2 := Ref{Name: Named("n"), Type: MatrixType{Columns: 3, Rows: 2, Kind: ScalarFloat}}
	tex := Ref{Name: Named("tex"), Type: Sampler2D}
	shadow := Ref{Name: Named("sh"), Type: Sampler2DShadow}
	arr := Ref{Name: Named("a"), Type: ArrayOf(Vec2, 4)}
	light := &StructType{Name: "Light", Members: []StructMember{
		{Name: "color", Type: Vec3},
		{Name: "power", Type: Float},
	}}
	l := Ref{Name: Named("l"), Type: light}

	tests := []struct {
		name string
		expr Expression
		want Type
	}{
		{"ref", v, Vec3},
		{"negate", Neg(v), Vec3},
		{"scalar times vector", Mul(F32(2), v), Vec3},
		{"vector times scalar", Mul(v, F32(2)), Vec3},
		{"matrix times vector", Mul(m, Vec(Vec4, v, F32(1))), Vec4},
		{"non-square matrix times vector", Mul(m3x2, v), Vec2},
		{"vector times matrix", Mul(Vec(Vec2, F32(1)), m3x2), Vec3},
		{"scalar plus vector", Add(F32(1), v), Vec3},
		{"comparison", Less(F32(1), F32(2)), Bool},
		{"logical", Binary{Op: BinaryLogicalAnd, Left: BoolLit(true), Right: BoolLit(false)}, Bool},
		{"construct", Vec(Vec4, F32(0)), Vec4},
		{"swizzle", Swiz(v, "xy"), Vec2},
		{"swizzle scalar", Swiz(v, "z"), Float},
		{"index array", At(arr, I32(1)), Vec2},
		{"index vector", At(v, I32(1)), Float},
		{"index matrix", At(m, I32(0)), Vec4},
		{"field", Dot(l, "power"), Float},
		{"select", Select{Condition: BoolLit(true), Accept: v, Reject: v}, Vec3},
		{"texture", CallFn("texture", tex, Vec(Vec2, F32(0))), Vec4},
		{"shadow texture", CallFn("texture", shadow, Vec(Vec3, F32(0))), Float},
		{"texture2D", CallFn("texture2D", tex, Vec(Vec2, F32(0))), Vec4},
		{"gentype builtin", CallFn("pow", v, Vec(Vec3, F32(2))), Vec3},
		{"scalar builtin", CallFn("length", v), Float},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveType(tt.expr)
			if err != nil {
				t.Fatalf("ResolveType failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveType() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveType_Errors(t *testing.T) {
	v := Ref{Name: Named("v"), Type: Vec3}
	g := NewGenerator()

	tests := []struct {
		name    string
		expr    Expression
		unknown bool
	}{
		{name: "nil", expr: nil},
		{name: "untyped ref", expr: Ref{Name: Named("x")}},
		{name: "placeholder", expr: Placeholder{Key: "N"}, unknown: true},
		{name: "user function", expr: CallFn("shade", v), unknown: true},
		{name: "generated function", expr: Call{Func: g.Symbol("f")}, unknown: true},
		{name: "texture without sampler", expr: CallFn("texture", v)},
		{name: "swizzle of matrix", expr: Swiz(Ref{Name: Named("m"), Type: Mat2}, "x")},
		{name: "field of vector", expr: Dot(v, "x")},
		{name: "missing member", expr: Dot(Ref{Name: Named("s"), Type: &StructType{Name: "S"}}, "x")},
		{name: "index scalar", expr: At(F32(1), I32(0))},
		{name: "nested", expr: Add(Placeholder{Key: "N"}, F32(1)), unknown: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveType(tt.expr)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.Is(err, ErrUnknownType); got != tt.unknown {
				t.Errorf("errors.Is(err, ErrUnknownType) = %v, want %v (err: %v)", got, tt.unknown, err)
			}
		})
	}
}
