package ir

import (
	"strings"
	"testing"
)

func expectValidationErrors(t *testing.T, p *Program, expectedSubstrings ...string) {
	t.Helper()

	errs, err := Validate(p)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	for _, want := range expectedSubstrings {
		found := false
		for _, e := range errs {
			if strings.Contains(e.Error(), want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected validation error containing %q, got %v", want, errs)
		}
	}
	if len(expectedSubstrings) == 0 && len(errs) > 0 {
		t.Errorf("expected no validation errors, got:")
		for _, e := range errs {
			t.Errorf("  - %s", e.Error())
		}
	}
}

func TestValidate_ValidProgram(t *testing.T) {
	p := NewProgram(StageFragment)
	tex := p.Uniform(Sampler2D, "u_texture")
	uv := p.Varying(Vec2, "v_uv")
	out := p.FragOutput(Vec4, "frag_color")

	c := p.Param(Vec3, "c")
	f := p.Function("scale", Vec3, c)
	f.Body.Add(Return{Value: Mul(c.Ref(), F32(2))})

	m := p.Main()
	sum := m.Local(Vec4, "sum", Vec(Vec4, F32(0)))
	i := m.Generator().Symbol("i")
	iRef := Ref{Name: i, Type: Int}
	body := m.Block()
	s := body.Local(Vec4, "s", CallFn("texture", tex.Ref(), uv.Ref()))
	body.Add(If{Condition: Less(Swiz(s.Ref(), "w"), F32(0.5)), Accept: m.Block(Continue{})})
	body.Add(Assign{Op: AssignAdd, Target: sum.Ref(), Value: s.Ref()})
	m.Add(For{
		Init:      Def{Type: Int, Name: i, Init: I32(0)},
		Condition: Less(iRef, Placeholder{Key: "N"}),
		Step:      PostInc(iRef),
		Body:      body,
	})
	m.Add(Set(out.Ref(), Vec(Vec4, f.Call(Swiz(sum.Ref(), "rgb")), F32(1))))
	m.Add(Return{})

	expectValidationErrors(t, p)
}

func TestValidate_NilProgram(t *testing.T) {
	_, err := Validate(nil)
	if err == nil {
		t.Error("Expected error for nil program, got nil")
	}
}

func TestValidate_LocalOutsideScope(t *testing.T) {
	p := NewProgram(StageFragment)
	m := p.Main()
	inner := m.Block()
	x := inner.Local(Float, "x", F32(1))
	m.Add(inner)
	m.AddExpr(CallFn("use", x.Ref()))

	expectValidationErrors(t, p, "used outside the scope")
}

func TestValidate_LocalBeforeDef(t *testing.T) {
	p := NewProgram(StageFragment)
	m := p.Main()
	x := m.Generator().Symbol("x")
	m.AddExpr(CallFn("use", Ref{Name: x, Type: Float}))
	m.Declare(Float, x, F32(1))

	expectValidationErrors(t, p, "in function main, statement 0: x#")
}

func TestValidate_LoopVariableScopedToLoop(t *testing.T) {
	p := NewProgram(StageFragment)
	m := p.Main()
	i := m.Generator().Symbol("i")
	iRef := Ref{Name: i, Type: Int}
	m.Add(For{Init: Def{Type: Int, Name: i, Init: I32(0)}, Condition: Less(iRef, I32(4)), Step: PostInc(iRef), Body: m.Block()})
	m.AddExpr(CallFn("use", iRef))

	expectValidationErrors(t, p, "statement 1")
}

func TestValidate_ParamOutsideFunction(t *testing.T) {
	p := NewProgram(StageFragment)
	c := p.Param(Float, "c")
	p.Function("f", Void, c)
	p.Main().AddExpr(CallFn("use", c.Ref()))

	expectValidationErrors(t, p, "used outside the scope")
}

func TestValidate_BreakOutsideLoop(t *testing.T) {
	p := NewProgram(StageFragment)
	p.Main().Add(Break{})
	p.Main().Add(p.Main().Block(Continue{}))

	expectValidationErrors(t, p, "break outside of loop", "continue outside of loop")
}

func TestValidate_BreakInsideWhile(t *testing.T) {
	p := NewProgram(StageFragment)
	m := p.Main()
	m.Add(While{Condition: BoolLit(true), Body: m.Block(Break{})})

	expectValidationErrors(t, p)
}

func TestValidate_Returns(t *testing.T) {
	p := NewProgram(StageFragment)
	f := p.Function("f", Float)
	f.Body.Add(Return{})
	g := p.Function("g", nil)
	g.Body.Add(Return{Value: F32(1)})
	p.Main().Add(Return{Value: F32(1)})

	expectValidationErrors(t, p,
		"in function f, statement 0: missing return value",
		"in function g, statement 0: return value in void function",
		"in function main, statement 0: return value in void function",
	)
}

func TestValidate_Conditions(t *testing.T) {
	p := NewProgram(StageFragment)
	m := p.Main()
	m.Add(If{Condition: F32(1), Accept: m.Block()})
	m.Add(While{Condition: Ref{Name: Named("x")}, Body: m.Block()})
	// Unknown types are not reported
	m.Add(If{Condition: CallFn("check"), Accept: m.Block()})

	errs, err := Validate(p)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0].Error(), "if condition must be bool") {
		t.Errorf("errs[0] = %q, want if condition error", errs[0].Error())
	}
	if !strings.Contains(errs[1].Error(), "while condition: reference x has no type") {
		t.Errorf("errs[1] = %q, want while condition error", errs[1].Error())
	}
}

func TestValidate_Globals(t *testing.T) {
	p := NewProgram(StageVertex)
	p.Uniform(Float, "u")
	p.Uniform(Vec2, "u")
	p.FragOutput(Vec4, "color")
	p.Const(Float, "K", nil)
	p.Function("f", Void)
	p.Function("f", Void)
	p.Function("main", Void)
	p.Main().Add(Discard{})

	expectValidationErrors(t, p,
		`duplicate global "u"`,
		`fragment output "color" in vertex stage`,
		`constant "K" has no value`,
		`duplicate function "f"`,
		`duplicate function "main"`,
		"discard in vertex stage",
	)
}

func TestValidate_AttributeInFragment(t *testing.T) {
	p := NewProgram(StageFragment)
	p.Attribute(Vec3, "a_position")

	expectValidationErrors(t, p, `attribute "a_position" in fragment stage`)
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		err  ValidationError
		want string
	}{
		{ValidationError{Message: "bad", Statement: -1}, "bad"},
		{ValidationError{Message: "bad", Function: "f", Statement: -1}, "in function f: bad"},
		{ValidationError{Message: "bad", Function: "f", Statement: 2}, "in function f, statement 2: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
