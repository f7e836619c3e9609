package shaders

import "github.com/gogpu/glslgen/ir"

// Placeholder keys.
const (
	// KeyTaps is the number of samples the blur takes.
	KeyTaps = "TAPS"
)

func init() {
	register(Template{
		Name:        "solid",
		Description: "fragment shader filling with a uniform color",
		Stage:       ir.StageFragment,
		build:       buildSolid,
	})
	register(Template{
		Name:        "transform",
		Description: "vertex shader applying a model-view-projection matrix",
		Stage:       ir.StageVertex,
		build:       buildTransform,
	})
	register(Template{
		Name:        "blur",
		Description: "horizontal box blur over TAPS texels",
		Stage:       ir.StageFragment,
		Bindings:    map[string]ir.Expression{KeyTaps: ir.I32(5)},
		build:       buildBlur,
	})
	register(Template{
		Name:        "tonemap",
		Description: "Reinhard tone mapping with exposure and gamma",
		Stage:       ir.StageFragment,
		build:       buildTonemap,
	})
}

func buildSolid(p *ir.Program) {
	color := p.Uniform(ir.Vec4, "u_color")
	out := p.FragOutput(ir.Vec4, "frag_color")

	p.Main().Add(ir.Set(out.Ref(), color.Ref()))
}

func buildTransform(p *ir.Program) {
	pos := p.Attribute(ir.Vec3, "a_position").AtLocation(0)
	uv := p.Attribute(ir.Vec2, "a_uv").AtLocation(1)
	mvp := p.Uniform(ir.Mat4, "u_mvp").AtBinding(0)
	vUV := p.Varying(ir.Vec2, "v_uv")
	position := ir.Ref{Name: ir.Named("gl_Position"), Type: ir.Vec4}

	m := p.Main()
	m.Add(ir.Set(position, ir.Mul(mvp.Ref(), ir.Vec(ir.Vec4, pos.Ref(), ir.F32(1)))))
	m.Add(ir.Set(vUV.Ref(), uv.Ref()))
}

func buildBlur(p *ir.Program) {
	tex := p.Uniform(ir.Sampler2D, "u_texture").AtBinding(0)
	texel := p.Uniform(ir.Vec2, "u_texel")
	uv := p.Varying(ir.Vec2, "v_uv")
	out := p.FragOutput(ir.Vec4, "frag_color")
	taps := ir.Placeholder{Key: KeyTaps}

	m := p.Main()
	sum := m.Local(ir.Vec4, "sum", ir.Vec(ir.Vec4, ir.F32(0)))
	center := m.Local(ir.Float, "center", ir.Mul(ir.Vec(ir.Float, ir.Sub(taps, ir.I32(1))), ir.F32(0.5)))

	i := m.Generator().Symbol("i")
	iRef := ir.Ref{Name: i, Type: ir.Int}
	body := m.Block()
	offset := body.Local(ir.Float, "offset", ir.Sub(ir.Vec(ir.Float, iRef), center.Ref()))
	sample := ir.CallFn("texture", tex.Ref(), ir.Add(uv.Ref(), ir.Mul(texel.Ref(), offset.Ref())))
	body.Add(ir.Assign{Op: ir.AssignAdd, Target: sum.Ref(), Value: sample})

	m.Add(ir.For{
		Init:      ir.Def{Type: ir.Int, Name: i, Init: ir.I32(0)},
		Condition: ir.Less(iRef, taps),
		Step:      ir.PostInc(iRef),
		Body:      body,
	})
	m.Add(ir.Set(out.Ref(), ir.Div(sum.Ref(), ir.Vec(ir.Float, taps))))
}

func buildTonemap(p *ir.Program) {
	tex := p.Uniform(ir.Sampler2D, "u_texture").AtBinding(0)
	exposure := p.Uniform(ir.Float, "u_exposure")
	uv := p.Varying(ir.Vec2, "v_uv")
	out := p.FragOutput(ir.Vec4, "frag_color")
	gamma := p.Const(ir.Float, "GAMMA", ir.F32(2.2))

	c := p.Param(ir.Vec3, "c")
	reinhard := p.Function("reinhard", ir.Vec3, c)
	reinhard.Body.Add(ir.Return{Value: ir.Div(c.Ref(), ir.Add(c.Ref(), ir.Vec(ir.Vec3, ir.F32(1))))})

	m := p.Main()
	hdr := m.Local(ir.Vec3, "hdr", ir.Mul(ir.Swiz(ir.CallFn("texture", tex.Ref(), uv.Ref()), "rgb"), exposure.Ref()))
	mapped := m.Local(ir.Vec3, "mapped", reinhard.Call(hdr.Ref()))
	corrected := m.Local(ir.Vec3, "color", ir.CallFn("pow", mapped.Ref(), ir.Vec(ir.Vec3, ir.Div(ir.F32(1), gamma.Ref()))))
	m.Add(ir.Set(out.Ref(), ir.Vec(ir.Vec4, corrected.Ref(), ir.F32(1))))
}
