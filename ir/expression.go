package ir

import "fmt"

// Expression is a value-producing node.
// Expressions own their operands; trees never share or cycle.
type Expression interface {
	expression()
}

// Literal represents a literal constant value.
type Literal struct {
	Value LiteralValue
}

func (Literal) expression() {}

// LiteralValue represents the value of a literal.
type LiteralValue interface {
	literalValue()
}

// LiteralF32 represents a 32-bit float literal (may not be NaN or infinity).
type LiteralF32 float32

func (LiteralF32) literalValue() {}

// LiteralF64 represents a 64-bit float literal (may not be NaN or infinity).
type LiteralF64 float64

func (LiteralF64) literalValue() {}

// LiteralI32 represents a 32-bit signed integer literal.
type LiteralI32 int32

func (LiteralI32) literalValue() {}

// LiteralU32 represents a 32-bit unsigned integer literal.
type LiteralU32 uint32

func (LiteralU32) literalValue() {}

// LiteralBool represents a boolean literal.
type LiteralBool bool

func (LiteralBool) literalValue() {}

// Ref references a variable by symbol.
type Ref struct {
	Name Symbol
	Type Type
}

func (Ref) expression() {}

// UnaryOperator represents unary operators.
type UnaryOperator uint8

const (
	UnaryNegate UnaryOperator = iota
	UnaryLogicalNot
	UnaryBitwiseNot
	UnaryPreIncrement
	UnaryPreDecrement
	UnaryPostIncrement
	UnaryPostDecrement
)

// Unary applies a unary operator.
type Unary struct {
	Op   UnaryOperator
	Expr Expression
}

func (Unary) expression() {}

// BinaryOperator represents binary operators.
type BinaryOperator uint8

const (
	BinaryAdd BinaryOperator = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryEqual
	BinaryNotEqual
	BinaryLess
	BinaryLessEqual
	BinaryGreater
	BinaryGreaterEqual
	BinaryAnd
	BinaryExclusiveOr
	BinaryInclusiveOr
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryShiftLeft
	BinaryShiftRight
)

var binaryOperatorText = [...]string{
	BinaryAdd:          "+",
	BinarySubtract:     "-",
	BinaryMultiply:     "*",
	BinaryDivide:       "/",
	BinaryModulo:       "%",
	BinaryEqual:        "==",
	BinaryNotEqual:     "!=",
	BinaryLess:         "<",
	BinaryLessEqual:    "<=",
	BinaryGreater:      ">",
	BinaryGreaterEqual: ">=",
	BinaryAnd:          "&",
	BinaryExclusiveOr:  "^",
	BinaryInclusiveOr:  "|",
	BinaryLogicalAnd:   "&&",
	BinaryLogicalOr:    "||",
	BinaryShiftLeft:    "<<",
	BinaryShiftRight:   ">>",
}

// String returns the operator token.
func (op BinaryOperator) String() string {
	if int(op) < len(binaryOperatorText) {
		return binaryOperatorText[op]
	}
	return fmt.Sprintf("BinaryOperator(%d)", uint8(op))
}

// Binary applies a binary operator.
type Binary struct {
	Op    BinaryOperator
	Left  Expression
	Right Expression
}

func (Binary) expression() {}

// Call invokes a built-in or user function.
type Call struct {
	Func Symbol
	Args []Expression
}

func (Call) expression() {}

// Construct builds a value of Type from its components, e.g. vec4(rgb, 1.0).
type Construct struct {
	Type Type
	Args []Expression
}

func (Construct) expression() {}

// SwizzleComponent represents a single component in a vector swizzle.
type SwizzleComponent uint8

const (
	SwizzleX SwizzleComponent = 0
	SwizzleY SwizzleComponent = 1
	SwizzleZ SwizzleComponent = 2
	SwizzleW SwizzleComponent = 3
)

// Swizzle reorders or duplicates vector components.
type Swizzle struct {
	Vector  Expression
	Size    uint8
	Pattern [4]SwizzleComponent
}

func (Swizzle) expression() {}

// Index subscripts an array, vector or matrix.
type Index struct {
	Base  Expression
	Index Expression
}

func (Index) expression() {}

// Field selects a struct member.
type Field struct {
	Base Expression
	Name string
}

func (Field) expression() {}

// Select is the conditional operator: Condition ? Accept : Reject.
type Select struct {
	Condition Expression
	Accept    Expression
	Reject    Expression
}

func (Select) expression() {}

// Placeholder stands for an expression supplied by the Context during
// Process. An unresolved placeholder cannot be emitted.
type Placeholder struct {
	Key string
}

func (Placeholder) expression() {}

// Constructors

// F32 returns a float literal.
func F32(v float32) Expression { return Literal{Value: LiteralF32(v)} }

// F64 returns a double literal.
func F64(v float64) Expression { return Literal{Value: LiteralF64(v)} }

// I32 returns an int literal.
func I32(v int32) Expression { return Literal{Value: LiteralI32(v)} }

// U32 returns a uint literal.
func U32(v uint32) Expression { return Literal{Value: LiteralU32(v)} }

// BoolLit returns a bool literal.
func BoolLit(v bool) Expression { return Literal{Value: LiteralBool(v)} }

// Add returns l + r.
func Add(l, r Expression) Expression { return Binary{Op: BinaryAdd, Left: l, Right: r} }

// Sub returns l - r.
func Sub(l, r Expression) Expression { return Binary{Op: BinarySubtract, Left: l, Right: r} }

// Mul returns l * r.
func Mul(l, r Expression) Expression { return Binary{Op: BinaryMultiply, Left: l, Right: r} }

// Div returns l / r.
func Div(l, r Expression) Expression { return Binary{Op: BinaryDivide, Left: l, Right: r} }

// Less returns l < r.
func Less(l, r Expression) Expression { return Binary{Op: BinaryLess, Left: l, Right: r} }

// Greater returns l > r.
func Greater(l, r Expression) Expression { return Binary{Op: BinaryGreater, Left: l, Right: r} }

// Neg returns -e.
func Neg(e Expression) Expression { return Unary{Op: UnaryNegate, Expr: e} }

// PostInc returns e++.
func PostInc(e Expression) Expression { return Unary{Op: UnaryPostIncrement, Expr: e} }

// CallFn calls the function spelled name.
func CallFn(name string, args ...Expression) Expression {
	return Call{Func: Named(name), Args: args}
}

// Vec constructs a value of type t.
func Vec(t Type, args ...Expression) Expression {
	return Construct{Type: t, Args: args}
}

// At returns base[index].
func At(base, index Expression) Expression {
	return Index{Base: base, Index: index}
}

// Dot returns base.name.
func Dot(base Expression, name string) Expression {
	return Field{Base: base, Name: name}
}

// Swiz builds a swizzle from a pattern such as "xyz" or "rgba".
// It panics on patterns that are empty, longer than four or mix sets.
func Swiz(vector Expression, pattern string) Expression {
	if len(pattern) == 0 || len(pattern) > 4 {
		panic(fmt.Sprintf("ir: invalid swizzle %q", pattern))
	}
	s := Swizzle{Vector: vector, Size: uint8(len(pattern))} //nolint:gosec // G115: bounded above
	set := -1
	for i := 0; i < len(pattern); i++ {
		comp, which, ok := swizzleComponent(pattern[i])
		if !ok || (set >= 0 && which != set) {
			panic(fmt.Sprintf("ir: invalid swizzle %q", pattern))
		}
		set = which
		s.Pattern[i] = comp
	}
	return s
}

var swizzleSets = [...]string{"xyzw", "rgba", "stpq"}

func swizzleComponent(c byte) (SwizzleComponent, int, bool) {
	for set, letters := range swizzleSets {
		for i := 0; i < len(letters); i++ {
			if letters[i] == c {
				return SwizzleComponent(i), set, true //nolint:gosec // G115: i < 4
			}
		}
	}
	return 0, 0, false
}
