package ir

// Statement is a node with effects or control flow.
// Blocks are statements too, so they nest.
type Statement interface {
	statement()
}

// ExprStmt evaluates an expression for its effects.
type ExprStmt struct {
	Expr Expression
}

func (ExprStmt) statement() {}

// Def declares a local variable, optionally initialized.
// The declared Type and Name are carried unchanged through Process.
type Def struct {
	Type Type
	Name Symbol
	Init Expression // nil for no initializer
}

func (Def) statement() {}

// AssignOperator represents plain and compound assignment.
type AssignOperator uint8

const (
	AssignPlain AssignOperator = iota
	AssignAdd
	AssignSubtract
	AssignMultiply
	AssignDivide
)

// String returns the assignment token.
func (op AssignOperator) String() string {
	switch op {
	case AssignAdd:
		return "+="
	case AssignSubtract:
		return "-="
	case AssignMultiply:
		return "*="
	case AssignDivide:
		return "/="
	default:
		return "="
	}
}

// Assign stores Value into Target.
type Assign struct {
	Op     AssignOperator
	Target Expression
	Value  Expression
}

func (Assign) statement() {}

// Return returns from the function, possibly with a value.
type Return struct {
	Value Expression // nil for a bare return
}

func (Return) statement() {}

// If conditionally executes one of two blocks.
type If struct {
	Condition Expression
	Accept    *Block
	Reject    *Block // nil for no else branch
}

func (If) statement() {}

// For is a C-style loop. Init, Condition and Step may each be nil.
type For struct {
	Init      Statement
	Condition Expression
	Step      Expression
	Body      *Block
}

func (For) statement() {}

// While repeats Body while Condition holds.
type While struct {
	Condition Expression
	Body      *Block
}

func (While) statement() {}

// Break exits the innermost loop.
type Break struct{}

func (Break) statement() {}

// Continue skips to the next iteration of the innermost loop.
type Continue struct{}

func (Continue) statement() {}

// Discard drops the current fragment.
type Discard struct{}

func (Discard) statement() {}

// Set returns the statement target = value.
func Set(target, value Expression) Statement {
	return Assign{Op: AssignPlain, Target: target, Value: value}
}
