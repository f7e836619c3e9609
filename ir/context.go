package ir

// Capabilities describes what the target dialect accepts.
// Rules and emitters read them; Process itself never does.
type Capabilities struct {
	// Precision reports whether precision qualifiers are accepted.
	Precision bool
	// InOut reports whether in/out replace attribute/varying.
	InOut bool
	// ExplicitLocations reports whether layout(location = N) is accepted on
	// stage inputs and outputs.
	ExplicitLocations bool
	// ExplicitBindings reports whether layout(binding = N) is accepted on
	// uniforms.
	ExplicitBindings bool
	// TextureFunction reports whether the overloaded texture() built-in
	// exists. Older dialects spell it texture2D(), textureCube() and so on.
	TextureFunction bool
	// UnsignedIntegers reports whether uint is a type.
	UnsignedIntegers bool
}

// Rule rewrites an expression whose operands have already been processed.
// It returns the replacement and true, or anything and false to decline.
type Rule func(ctx *Context, e Expression) (Expression, bool)

// Context carries the state of one Process pass.
//
// A Context must not be modified while a pass is using it. The same Context
// may be shared by any number of passes, including concurrent ones.
type Context struct {
	Caps     Capabilities
	Bindings map[string]Expression
	Rules    []Rule
}

// NewContext returns the identity context: no bindings and no rules.
// Processing with it yields a tree that emits byte-identical text.
func NewContext() *Context {
	return &Context{Bindings: make(map[string]Expression)}
}

// Bind sets the expression substituted for Placeholder{Key: key}.
func (c *Context) Bind(key string, e Expression) *Context {
	if c.Bindings == nil {
		c.Bindings = make(map[string]Expression)
	}
	c.Bindings[key] = e
	return c
}

// AddRule appends a rewrite rule. Rules run in the order they were added.
func (c *Context) AddRule(r Rule) *Context {
	c.Rules = append(c.Rules, r)
	return c
}

// Lookup returns the binding for key.
func (c *Context) Lookup(key string) (Expression, bool) {
	e, ok := c.Bindings[key]
	return e, ok
}
