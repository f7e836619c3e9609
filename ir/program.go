package ir

// Function is a user-defined function.
type Function struct {
	Name   Symbol
	Result Type
	Params []*Param
	Body   *Block
}

// Call returns an expression invoking f.
func (f *Function) Call(args ...Expression) Expression {
	return Call{Func: f.Name, Args: args}
}

// Program is a complete shader for one stage: globals, helper functions and
// the body of main.
type Program struct {
	Stage     Stage
	Globals   []*Global
	Functions []*Function

	gen  *Generator
	main *Block
}

// NewProgram creates an empty program for stage.
func NewProgram(stage Stage) *Program {
	gen := NewGenerator()
	return &Program{
		Stage: stage,
		gen:   gen,
		main:  gen.Block(),
	}
}

// Generator returns the session the program's blocks generate names from.
func (p *Program) Generator() *Generator {
	return p.gen
}

// Main returns the body of main.
func (p *Program) Main() *Block {
	return p.main
}

func (p *Program) global(t Type, name string, q StorageQualifier) *Global {
	g := &Global{typ: t, name: Named(name), Qualifier: q}
	p.Globals = append(p.Globals, g)
	return g
}

// Uniform declares a uniform.
func (p *Program) Uniform(t Type, name string) *Global {
	return p.global(t, name, StorageUniform)
}

// Attribute declares a per-vertex input.
func (p *Program) Attribute(t Type, name string) *Global {
	return p.global(t, name, StorageAttribute)
}

// Varying declares a value interpolated between stages.
func (p *Program) Varying(t Type, name string) *Global {
	return p.global(t, name, StorageVarying)
}

// FragOutput declares a fragment color output.
func (p *Program) FragOutput(t Type, name string) *Global {
	return p.global(t, name, StorageFragOutput)
}

// Const declares a global constant.
func (p *Program) Const(t Type, name string, value Expression) *Global {
	g := p.global(t, name, StorageConst)
	g.Init = value
	return g
}

// Function declares a helper function with a named symbol and returns it;
// its body shares the program's Generator.
func (p *Program) Function(name string, result Type, params ...*Param) *Function {
	f := &Function{
		Name:   Named(name),
		Result: result,
		Params: params,
		Body:   p.gen.Block(),
	}
	p.Functions = append(p.Functions, f)
	return f
}

// Param creates a parameter whose name is generated from prefix.
func (p *Program) Param(t Type, prefix string) *Param {
	return NewParam(t, p.gen.Symbol(prefix))
}

// Freeze freezes every block of the program.
func (p *Program) Freeze() *Program {
	for _, f := range p.Functions {
		f.Body.Freeze()
	}
	p.main.Freeze()
	return p
}

// Process returns a new program with every initializer and body processed
// with ctx. Globals and functions keep their symbols.
func (p *Program) Process(ctx *Context) *Program {
	proc := newProcessor(ctx)
	out := &Program{
		Stage:     p.Stage,
		Globals:   make([]*Global, len(p.Globals)),
		Functions: make([]*Function, len(p.Functions)),
		gen:       p.gen,
	}
	for i, g := range p.Globals {
		ng := *g
		ng.Init = proc.expression(g.Init)
		out.Globals[i] = &ng
	}
	for i, f := range p.Functions {
		out.Functions[i] = &Function{
			Name:   f.Name,
			Result: f.Result,
			Params: f.Params,
			Body:   proc.block(f.Body),
		}
	}
	out.main = proc.block(p.main)
	return out
}
