package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glslgen/glsl"
	"github.com/gogpu/glslgen/ir"
)

var allTargets = []glsl.Version{
	glsl.Version120,
	glsl.Version330,
	glsl.Version450,
	glsl.VersionES100,
	glsl.VersionES300,
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"blur", "solid", "tonemap", "transform"}, Names())
}

func TestLookup(t *testing.T) {
	tmpl, ok := Lookup("blur")
	require.True(t, ok)
	assert.Equal(t, "blur", tmpl.Name)
	assert.Equal(t, ir.StageFragment, tmpl.Stage)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestTemplate_ProgramIsFreshAndFrozen(t *testing.T) {
	tmpl, _ := Lookup("solid")
	a := tmpl.Program()
	b := tmpl.Program()
	assert.NotSame(t, a, b)
	assert.True(t, a.Main().Frozen())
	assert.Equal(t, 1, a.Main().Len())
}

func TestTemplate_Options(t *testing.T) {
	tmpl, _ := Lookup("blur")

	opts := tmpl.Options(glsl.DefaultOptions())
	assert.Equal(t, ir.I32(5), opts.Bindings[KeyTaps])

	base := glsl.DefaultOptions()
	base.Bindings = map[string]ir.Expression{KeyTaps: ir.I32(9)}
	opts = tmpl.Options(base)
	assert.Equal(t, ir.I32(9), opts.Bindings[KeyTaps])
	assert.Equal(t, ir.I32(9), base.Bindings[KeyTaps], "base bindings must not be modified")

	solid, _ := Lookup("solid")
	assert.Empty(t, solid.Options(glsl.DefaultOptions()).Bindings)
}

func TestTemplates_CompileEveryTarget(t *testing.T) {
	for _, name := range Names() {
		tmpl, _ := Lookup(name)
		for _, v := range allTargets {
			t.Run(name+"/"+v.String(), func(t *testing.T) {
				base := glsl.DefaultOptions()
				base.LangVersion = v
				src, info, err := glsl.Compile(tmpl.Program(), tmpl.Options(base))
				require.NoError(t, err)
				assert.Contains(t, src, "#version "+v.String()+"\n")
				assert.Contains(t, src, "void main() {\n")
				assert.NotEmpty(t, info.Outputs)
			})
		}
	}
}

func TestBlur_WithoutBindingFails(t *testing.T) {
	tmpl, _ := Lookup("blur")
	_, _, err := glsl.Compile(tmpl.Program(), glsl.DefaultOptions())
	assert.ErrorIs(t, err, glsl.ErrUnresolvedPlaceholder)
}

func TestBlur_TapsBinding(t *testing.T) {
	tmpl, _ := Lookup("blur")
	base := glsl.DefaultOptions()
	base.Bindings = map[string]ir.Expression{KeyTaps: ir.I32(9)}

	src, _, err := glsl.Compile(tmpl.Program(), tmpl.Options(base))
	require.NoError(t, err)
	assert.Contains(t, src, "for (int i = 0; (i < 9); i++) {\n")
	assert.Contains(t, src, "float center = (float((9 - 1)) * 0.5);\n")
	assert.Contains(t, src, "frag_color = (sum / float(9));\n")
}

func TestTemplates_LegacyTargets(t *testing.T) {
	tests := []struct {
		template string
		want     []string
	}{
		{"solid", []string{"uniform vec4 u_color;\n", "gl_FragColor = u_color;\n"}},
		{"blur", []string{"texture2D(u_texture, (v_uv + (u_texel * offset)))", "varying vec2 v_uv;\n"}},
		{"tonemap", []string{"texture2D(u_texture, v_uv).xyz", "gl_FragColor = vec4(color, 1.0);\n"}},
		{"transform", []string{"attribute vec3 a_position;\n", "varying vec2 v_uv;\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			tmpl, _ := Lookup(tt.template)
			base := glsl.DefaultOptions()
			base.LangVersion = glsl.Version120
			src, _, err := glsl.Compile(tmpl.Program(), tmpl.Options(base))
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, src, w)
			}
			assert.NotContains(t, src, "frag_color")
		})
	}
}

func TestTemplates_Validate(t *testing.T) {
	for _, name := range Names() {
		tmpl, _ := Lookup(name)
		errs, err := ir.Validate(tmpl.Program())
		require.NoError(t, err)
		assert.Empty(t, errs, name)
	}
}
