package ir

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned by ResolveType for expressions whose type
// cannot be derived from the tree alone, such as calls to user functions.
var ErrUnknownType = errors.New("type cannot be resolved")

// ResolveType resolves the type of an expression from the types carried by
// its references, literals and constructors.
//
//nolint:gocyclo,cyclop // Type resolution requires handling all expression kinds
func ResolveType(e Expression) (Type, error) {
	switch e := e.(type) {
	case Literal:
		return resolveLiteralType(e)
	case Ref:
		if e.Type == nil {
			return nil, fmt.Errorf("reference %s has no type", e.Name)
		}
		return e.Type, nil
	case Unary:
		// Unary operators preserve the operand type
		t, err := ResolveType(e.Expr)
		if err != nil {
			return nil, fmt.Errorf("unary operand: %w", err)
		}
		return t, nil
	case Binary:
		return resolveBinaryType(e)
	case Call:
		return resolveCallType(e)
	case Construct:
		return e.Type, nil
	case Swizzle:
		return resolveSwizzleType(e)
	case Index:
		return resolveIndexType(e)
	case Field:
		return resolveFieldType(e)
	case Select:
		// Select returns the type of accept/reject (they must match)
		t, err := ResolveType(e.Accept)
		if err != nil {
			return nil, fmt.Errorf("select accept: %w", err)
		}
		return t, nil
	case Placeholder:
		return nil, fmt.Errorf("%w: placeholder %q", ErrUnknownType, e.Key)
	case nil:
		return nil, fmt.Errorf("nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression kind: %T", e)
	}
}

func resolveLiteralType(lit Literal) (Type, error) {
	switch lit.Value.(type) {
	case LiteralF32:
		return Float, nil
	case LiteralF64:
		return Double, nil
	case LiteralI32:
		return Int, nil
	case LiteralU32:
		return Uint, nil
	case LiteralBool:
		return Bool, nil
	default:
		return nil, fmt.Errorf("unsupported literal type: %T", lit.Value)
	}
}

func resolveBinaryType(e Binary) (Type, error) {
	left, err := ResolveType(e.Left)
	if err != nil {
		return nil, fmt.Errorf("binary left: %w", err)
	}

	switch e.Op {
	case BinaryEqual, BinaryNotEqual, BinaryLogicalAnd, BinaryLogicalOr:
		return Bool, nil

	case BinaryLess, BinaryLessEqual, BinaryGreater, BinaryGreaterEqual:
		// Relational operators only take scalars in GLSL
		return Bool, nil

	case BinaryMultiply:
		right, err := ResolveType(e.Right)
		if err != nil {
			return nil, fmt.Errorf("binary right: %w", err)
		}
		return resolveMulResultType(left, right), nil

	default:
		// A scalar operand is broadcast to the other side's vector size
		right, err := ResolveType(e.Right)
		if err != nil {
			return nil, fmt.Errorf("binary right: %w", err)
		}
		if _, ok := left.(ScalarType); ok {
			switch right.(type) {
			case VectorType, MatrixType:
				return right, nil
			}
		}
		return left, nil
	}
}

// resolveMulResultType determines the result type of a multiplication:
// scalar*vec→vec, scalar*mat→mat, mat*vec→vec(rows), vec*mat→vec(cols).
func resolveMulResultType(left, right Type) Type {
	leftMat, leftIsMat := left.(MatrixType)
	rightMat, rightIsMat := right.(MatrixType)
	_, leftIsScalar := left.(ScalarType)
	_, rightIsVec := right.(VectorType)
	_, leftIsVec := left.(VectorType)

	switch {
	case leftIsScalar && (rightIsVec || rightIsMat):
		return right
	case leftIsMat && rightIsVec:
		return VectorType{Size: leftMat.Rows, Kind: leftMat.Kind, Precision: leftMat.Precision}
	case leftIsVec && rightIsMat:
		return VectorType{Size: rightMat.Columns, Kind: rightMat.Kind, Precision: rightMat.Precision}
	default:
		return left
	}
}

// Built-in functions whose result type follows from their first argument.
var (
	genTypeBuiltins = map[string]bool{
		"abs": true, "sign": true, "floor": true, "ceil": true, "fract": true,
		"mod": true, "min": true, "max": true, "clamp": true, "mix": true,
		"step": true, "smoothstep": true, "pow": true, "exp": true, "log": true,
		"exp2": true, "log2": true, "sqrt": true, "inversesqrt": true,
		"sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
		"atan": true, "radians": true, "degrees": true, "normalize": true,
		"reflect": true, "refract": true, "faceforward": true,
		"dFdx": true, "dFdy": true, "fwidth": true,
	}
	scalarBuiltins = map[string]bool{
		"length": true, "distance": true, "dot": true,
	}
	textureBuiltins = map[string]bool{
		"texture": true, "texture1D": true, "texture2D": true, "texture3D": true,
		"textureCube": true, "textureLod": true, "texelFetch": true,
	}
)

func resolveCallType(e Call) (Type, error) {
	if e.Func.IsGenerated() {
		return nil, fmt.Errorf("%w: call to %s", ErrUnknownType, e.Func)
	}
	name := e.Func.Name()
	switch {
	case name == "shadow2D":
		return Vec4, nil
	case textureBuiltins[name]:
		if len(e.Args) == 0 {
			return nil, fmt.Errorf("%s: missing sampler", name)
		}
		st, err := resolveSampler(e.Args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if st.Shadow {
			return Float, nil
		}
		return VectorType{Size: 4, Kind: st.Kind}, nil
	case genTypeBuiltins[name], scalarBuiltins[name]:
		if len(e.Args) == 0 {
			return nil, fmt.Errorf("%s: missing argument", name)
		}
		t, err := ResolveType(e.Args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if scalarBuiltins[name] {
			if v, ok := t.(VectorType); ok {
				return ScalarType{Kind: v.Kind, Precision: v.Precision}, nil
			}
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: call to %s", ErrUnknownType, name)
	}
}

func resolveSampler(e Expression) (SamplerType, error) {
	t, err := ResolveType(e)
	if err != nil {
		return SamplerType{}, err
	}
	st, ok := t.(SamplerType)
	if !ok {
		return SamplerType{}, fmt.Errorf("expected sampler, got %T", t)
	}
	return st, nil
}

func resolveSwizzleType(e Swizzle) (Type, error) {
	t, err := ResolveType(e.Vector)
	if err != nil {
		return nil, fmt.Errorf("swizzle vector: %w", err)
	}
	var kind ScalarKind
	var precision Precision
	switch v := t.(type) {
	case VectorType:
		kind, precision = v.Kind, v.Precision
	case ScalarType:
		kind, precision = v.Kind, v.Precision
	default:
		return nil, fmt.Errorf("swizzle of non-vector type %T", t)
	}
	if e.Size == 1 {
		return ScalarType{Kind: kind, Precision: precision}, nil
	}
	return VectorType{Size: e.Size, Kind: kind, Precision: precision}, nil
}

func resolveIndexType(e Index) (Type, error) {
	t, err := ResolveType(e.Base)
	if err != nil {
		return nil, fmt.Errorf("index base: %w", err)
	}
	switch base := t.(type) {
	case ArrayType:
		return base.Base, nil
	case VectorType:
		return ScalarType{Kind: base.Kind, Precision: base.Precision}, nil
	case MatrixType:
		// Indexing a matrix yields a column
		return VectorType{Size: base.Rows, Kind: base.Kind, Precision: base.Precision}, nil
	default:
		return nil, fmt.Errorf("cannot index type %T", t)
	}
}

func resolveFieldType(e Field) (Type, error) {
	t, err := ResolveType(e.Base)
	if err != nil {
		return nil, fmt.Errorf("field base: %w", err)
	}
	st, ok := t.(*StructType)
	if !ok {
		return nil, fmt.Errorf("field %s of non-struct type %T", e.Name, t)
	}
	for _, m := range st.Members {
		if m.Name == e.Name {
			return m.Type, nil
		}
	}
	return nil, fmt.Errorf("struct %s has no member %s", st.Name, e.Name)
}
