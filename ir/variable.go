package ir

// Variable is a named, typed storage slot that expressions can reference.
type Variable interface {
	Type() Type
	Symbol() Symbol
	Ref() Expression
}

// Local is a variable declared by a Block. It is always paired with exactly
// one Def statement in that block.
type Local struct {
	typ  Type
	name Symbol
}

// Type returns the declared type.
func (l *Local) Type() Type { return l.typ }

// Symbol returns the declared name.
func (l *Local) Symbol() Symbol { return l.name }

// Ref returns an expression referencing the local.
func (l *Local) Ref() Expression { return Ref{Name: l.name, Type: l.typ} }

// ParamDirection represents parameter qualifiers.
type ParamDirection uint8

const (
	ParamIn ParamDirection = iota
	ParamOut
	ParamInOut
)

// Param is a function parameter.
type Param struct {
	typ       Type
	name      Symbol
	Direction ParamDirection
}

// NewParam creates an input parameter.
func NewParam(t Type, name Symbol) *Param {
	return &Param{typ: t, name: name}
}

// Type returns the parameter type.
func (p *Param) Type() Type { return p.typ }

// Symbol returns the parameter name.
func (p *Param) Symbol() Symbol { return p.name }

// Ref returns an expression referencing the parameter.
func (p *Param) Ref() Expression { return Ref{Name: p.name, Type: p.typ} }

// StorageQualifier represents how a global is bound to the pipeline.
type StorageQualifier uint8

const (
	// StorageUniform is a value set by the application.
	StorageUniform StorageQualifier = iota
	// StorageAttribute is a per-vertex input.
	StorageAttribute
	// StorageVarying is passed from the vertex to the fragment stage.
	StorageVarying
	// StorageFragOutput is a fragment shader color output.
	StorageFragOutput
	// StorageConst is a compile-time constant.
	StorageConst
)

// String returns the qualifier name.
func (q StorageQualifier) String() string {
	switch q {
	case StorageUniform:
		return "uniform"
	case StorageAttribute:
		return "attribute"
	case StorageVarying:
		return "varying"
	case StorageFragOutput:
		return "output"
	case StorageConst:
		return "const"
	default:
		return "unknown"
	}
}

// Global is a program-scope variable.
type Global struct {
	typ       Type
	name      Symbol
	Qualifier StorageQualifier
	Location  *uint32    // layout(location = N), when the target supports it
	Binding   *uint32    // layout(binding = N), when the target supports it
	Init      Expression // required for StorageConst
}

// Type returns the global's type.
func (g *Global) Type() Type { return g.typ }

// Symbol returns the global's name.
func (g *Global) Symbol() Symbol { return g.name }

// Ref returns an expression referencing the global.
func (g *Global) Ref() Expression { return Ref{Name: g.name, Type: g.typ} }

// AtLocation sets an explicit location and returns g.
func (g *Global) AtLocation(loc uint32) *Global {
	g.Location = &loc
	return g
}

// AtBinding sets an explicit binding and returns g.
func (g *Global) AtBinding(binding uint32) *Global {
	g.Binding = &binding
	return g
}
