package ir

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error.
type ValidationError struct {
	Message string
	// Optional context
	Function  string
	Statement int
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Function != "" {
		if e.Statement >= 0 {
			return fmt.Sprintf("in function %s, statement %d: %s", e.Function, e.Statement, e.Message)
		}
		return fmt.Sprintf("in function %s: %s", e.Function, e.Message)
	}
	return e.Message
}

// Validator checks the structural rules that Process and emission take on
// trust: locals are only referenced inside the scope that defines them and
// after their Def, loop control only appears inside loops, and returns match
// the enclosing function.
type Validator struct {
	program *Program
	errors  []ValidationError
	context validationContext
}

// validationContext holds current validation context.
type validationContext struct {
	functionName string
	result       Type
	loopDepth    int
	statement    int
	scopes       []map[Symbol]struct{}
}

// Validate checks the program for correctness.
// Returns validation errors if any, or nil if the program is valid.
func Validate(program *Program) ([]ValidationError, error) {
	if program == nil {
		return nil, fmt.Errorf("program is nil")
	}

	v := &Validator{program: program}
	v.ValidateProgram()

	if len(v.errors) > 0 {
		return v.errors, nil
	}
	return nil, nil
}

// ValidateProgram validates globals, every function and main.
func (v *Validator) ValidateProgram() {
	v.validateGlobals()
	v.validateFunctions()

	v.context = validationContext{functionName: "main", result: Void}
	v.validateBody(v.program.Main())
}

func (v *Validator) validateGlobals() {
	seen := make(map[string]bool)
	for _, g := range v.program.Globals {
		name := g.Symbol().Name()
		if name == "" {
			v.addError("global has no name")
			continue
		}
		if seen[name] {
			v.addError(fmt.Sprintf("duplicate global %q", name))
		}
		seen[name] = true

		if g.Qualifier == StorageConst && g.Init == nil {
			v.addError(fmt.Sprintf("constant %q has no value", name))
		}
		if g.Qualifier == StorageAttribute && v.program.Stage != StageVertex {
			v.addError(fmt.Sprintf("attribute %q in %s stage", name, v.program.Stage))
		}
		if g.Qualifier == StorageFragOutput && v.program.Stage != StageFragment {
			v.addError(fmt.Sprintf("fragment output %q in %s stage", name, v.program.Stage))
		}
	}
}

func (v *Validator) validateFunctions() {
	seen := map[string]bool{"main": true}
	for _, f := range v.program.Functions {
		name := f.Name.Name()
		if f.Name.IsGenerated() {
			name = f.Name.String()
		}
		if seen[name] {
			v.addError(fmt.Sprintf("duplicate function %q", name))
		}
		seen[name] = true

		result := f.Result
		if result == nil {
			result = Void
		}
		v.context = validationContext{functionName: name, result: result}
		params := make(map[Symbol]struct{}, len(f.Params))
		for _, p := range f.Params {
			params[p.Symbol()] = struct{}{}
		}
		v.context.scopes = append(v.context.scopes, params)
		v.validateBody(f.Body)
	}
}

// validateBody validates a function body at the top level of the function.
func (v *Validator) validateBody(b *Block) {
	if b == nil {
		return
	}
	for i := 0; i < b.Len(); i++ {
		v.context.statement = i
		v.validateStatement(b.At(i))
	}
}

// validateBlock validates a nested block in a scope of its own.
func (v *Validator) validateBlock(b *Block) {
	v.pushScope()
	defer v.popScope()

	if b == nil {
		return
	}
	for i := 0; i < b.Len(); i++ {
		v.validateStatement(b.At(i))
	}
}

// validateStatement validates a single statement.
//
//nolint:gocyclo,cyclop // Statement validation requires checking many statement variants
func (v *Validator) validateStatement(stmt Statement) {
	switch s := stmt.(type) {
	case nil:
		v.addErrorInStatement("statement is nil")

	case *Block:
		v.validateBlock(s)

	case ExprStmt:
		v.validateExpression(s.Expr)

	case Def:
		if s.Type == nil {
			v.addErrorInStatement(fmt.Sprintf("local %s has no type", s.Name))
		}
		if s.Init != nil {
			v.validateExpression(s.Init)
		}
		v.define(s.Name)

	case Assign:
		v.validateExpression(s.Target)
		v.validateExpression(s.Value)

	case Return:
		_, void := v.context.result.(VoidType)
		switch {
		case s.Value == nil && !void:
			v.addErrorInStatement("missing return value")
		case s.Value != nil && void:
			v.addErrorInStatement("return value in void function")
		case s.Value != nil:
			v.validateExpression(s.Value)
		}

	case If:
		v.validateCondition("if", s.Condition)
		v.validateBlock(s.Accept)
		if s.Reject != nil {
			v.validateBlock(s.Reject)
		}

	case For:
		// The init statement is scoped to the loop
		v.pushScope()
		if s.Init != nil {
			v.validateStatement(s.Init)
		}
		if s.Condition != nil {
			v.validateCondition("for", s.Condition)
		}
		if s.Step != nil {
			v.validateExpression(s.Step)
		}
		v.context.loopDepth++
		v.validateBlock(s.Body)
		v.context.loopDepth--
		v.popScope()

	case While:
		v.validateCondition("while", s.Condition)
		v.context.loopDepth++
		v.validateBlock(s.Body)
		v.context.loopDepth--

	case Break:
		if v.context.loopDepth == 0 {
			v.addErrorInStatement("break outside of loop")
		}

	case Continue:
		if v.context.loopDepth == 0 {
			v.addErrorInStatement("continue outside of loop")
		}

	case Discard:
		if v.program.Stage != StageFragment {
			v.addErrorInStatement(fmt.Sprintf("discard in %s stage", v.program.Stage))
		}

	default:
		v.addErrorInStatement(fmt.Sprintf("unsupported statement kind: %T", stmt))
	}
}

// validateExpression checks that every generated symbol e references is in
// scope.
func (v *Validator) validateExpression(e Expression) {
	if e == nil {
		v.addErrorInStatement("expression is nil")
		return
	}
	InspectExpression(e, func(n any) bool {
		ref, ok := n.(Ref)
		if !ok || !ref.Name.IsGenerated() {
			return true
		}
		if !v.inScope(ref.Name) {
			v.addErrorInStatement(fmt.Sprintf("%s is used outside the scope that defines it", ref.Name))
		}
		return true
	})
}

// validateCondition checks e and, when its type can be resolved, that it
// is a bool.
func (v *Validator) validateCondition(what string, e Expression) {
	v.validateExpression(e)
	if e == nil {
		return
	}
	t, err := ResolveType(e)
	if err != nil {
		if !errors.Is(err, ErrUnknownType) {
			v.addErrorInStatement(fmt.Sprintf("%s condition: %v", what, err))
		}
		return
	}
	if s, ok := t.(ScalarType); !ok || s.Kind != ScalarBool {
		v.addErrorInStatement(fmt.Sprintf("%s condition must be bool, got %T", what, t))
	}
}

func (v *Validator) pushScope() {
	v.context.scopes = append(v.context.scopes, make(map[Symbol]struct{}))
}

func (v *Validator) popScope() {
	v.context.scopes = v.context.scopes[:len(v.context.scopes)-1]
}

func (v *Validator) define(sym Symbol) {
	if len(v.context.scopes) == 0 {
		v.pushScope()
	}
	v.context.scopes[len(v.context.scopes)-1][sym] = struct{}{}
}

func (v *Validator) inScope(sym Symbol) bool {
	for i := len(v.context.scopes) - 1; i >= 0; i-- {
		if _, ok := v.context.scopes[i][sym]; ok {
			return true
		}
	}
	return false
}

func (v *Validator) addError(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message:   msg,
		Statement: -1,
	})
}

func (v *Validator) addErrorInStatement(msg string) {
	v.errors = append(v.errors, ValidationError{
		Message:   msg,
		Function:  v.context.functionName,
		Statement: v.context.statement,
	})
}
