// Package shaders holds ready-made programs built with the ir API.
//
// Each template builds a fresh single-stage program. Templates that leave a
// value open use a placeholder and supply a default binding for it.
package shaders

import (
	"maps"
	"slices"

	"github.com/gogpu/glslgen/glsl"
	"github.com/gogpu/glslgen/ir"
)

// Template is a named program builder.
type Template struct {
	Name        string
	Description string
	Stage       ir.Stage

	// Bindings are the default values of the template's placeholders.
	Bindings map[string]ir.Expression

	build func(p *ir.Program)
}

// Program builds the template into a new frozen program.
func (t Template) Program() *ir.Program {
	p := ir.NewProgram(t.Stage)
	t.build(p)
	return p.Freeze()
}

// Options returns base with the template's default bindings added. Bindings
// already present in base win.
func (t Template) Options(base glsl.Options) glsl.Options {
	merged := maps.Clone(t.Bindings)
	if merged == nil {
		merged = make(map[string]ir.Expression)
	}
	maps.Copy(merged, base.Bindings)
	base.Bindings = merged
	return base
}

var registry = map[string]Template{}

func register(t Template) {
	registry[t.Name] = t
}

// Names returns the template names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the template called name.
func Lookup(name string) (Template, bool) {
	t, ok := registry[name]
	return t, ok
}
