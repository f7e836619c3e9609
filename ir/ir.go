package ir

// Type describes a shader data type.
// Types only carry what is needed to print their GLSL spelling.
type Type interface {
	typ()
}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarFloat  ScalarKind = iota // Single precision float
	ScalarInt                      // Signed integer
	ScalarUint                     // Unsigned integer
	ScalarBool                     // Boolean
	ScalarDouble                   // Double precision float
)

// Precision is an optional GLSL precision qualifier.
type Precision uint8

const (
	PrecisionDefault Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh
)

// ScalarType represents scalar types.
type ScalarType struct {
	Kind      ScalarKind
	Precision Precision
}

func (ScalarType) typ() {}

// VectorType represents vector types. Size is 2, 3 or 4.
type VectorType struct {
	Size      uint8
	Kind      ScalarKind
	Precision Precision
}

func (VectorType) typ() {}

// MatrixType represents matrix types. GLSL only has float and double matrices.
type MatrixType struct {
	Columns   uint8
	Rows      uint8
	Kind      ScalarKind
	Precision Precision
}

func (MatrixType) typ() {}

// ArrayType represents array types.
type ArrayType struct {
	Base Type
	Size uint32 // 0 for unsized arrays
}

func (ArrayType) typ() {}

// SamplerDim represents sampler dimensions.
type SamplerDim uint8

const (
	Dim2D SamplerDim = iota
	Dim1D
	Dim3D
	DimCube
)

// SamplerType represents combined texture-sampler types.
type SamplerType struct {
	Dim       SamplerDim
	Kind      ScalarKind // ScalarFloat, ScalarInt or ScalarUint
	Arrayed   bool
	Shadow    bool
	Precision Precision
}

func (SamplerType) typ() {}

// StructType represents a user-declared struct. Struct types are compared by
// identity, so a struct is declared once however often it is referenced.
type StructType struct {
	Name    string
	Members []StructMember
}

func (*StructType) typ() {}

// StructMember represents a struct member.
type StructMember struct {
	Name string
	Type Type
}

// VoidType is the result type of functions that return nothing.
type VoidType struct{}

func (VoidType) typ() {}

// Common types.
var (
	Void   Type = VoidType{}
	Bool   Type = ScalarType{Kind: ScalarBool}
	Int    Type = ScalarType{Kind: ScalarInt}
	Uint   Type = ScalarType{Kind: ScalarUint}
	Float  Type = ScalarType{Kind: ScalarFloat}
	Double Type = ScalarType{Kind: ScalarDouble}

	Vec2 Type = VectorType{Size: 2, Kind: ScalarFloat}
	Vec3 Type = VectorType{Size: 3, Kind: ScalarFloat}
	Vec4 Type = VectorType{Size: 4, Kind: ScalarFloat}

	IVec2 Type = VectorType{Size: 2, Kind: ScalarInt}
	IVec3 Type = VectorType{Size: 3, Kind: ScalarInt}
	IVec4 Type = VectorType{Size: 4, Kind: ScalarInt}

	UVec2 Type = VectorType{Size: 2, Kind: ScalarUint}
	UVec3 Type = VectorType{Size: 3, Kind: ScalarUint}
	UVec4 Type = VectorType{Size: 4, Kind: ScalarUint}

	BVec2 Type = VectorType{Size: 2, Kind: ScalarBool}
	BVec3 Type = VectorType{Size: 3, Kind: ScalarBool}
	BVec4 Type = VectorType{Size: 4, Kind: ScalarBool}

	Mat2 Type = MatrixType{Columns: 2, Rows: 2, Kind: ScalarFloat}
	Mat3 Type = MatrixType{Columns: 3, Rows: 3, Kind: ScalarFloat}
	Mat4 Type = MatrixType{Columns: 4, Rows: 4, Kind: ScalarFloat}

	Sampler2D       Type = SamplerType{Dim: Dim2D, Kind: ScalarFloat}
	Sampler3D       Type = SamplerType{Dim: Dim3D, Kind: ScalarFloat}
	SamplerCube     Type = SamplerType{Dim: DimCube, Kind: ScalarFloat}
	Sampler2DShadow Type = SamplerType{Dim: Dim2D, Kind: ScalarFloat, Shadow: true}
)

// ArrayOf returns an array type of size elements of base.
func ArrayOf(base Type, size uint32) Type {
	return ArrayType{Base: base, Size: size}
}

// WithPrecision returns t carrying precision p. Types without a precision
// qualifier (bool, double, void, structs, arrays) are returned unchanged,
// except arrays, whose element type is qualified instead.
func WithPrecision(t Type, p Precision) Type {
	switch t := t.(type) {
	case ScalarType:
		if t.Kind == ScalarBool || t.Kind == ScalarDouble {
			return t
		}
		t.Precision = p
		return t
	case VectorType:
		if t.Kind == ScalarBool || t.Kind == ScalarDouble {
			return t
		}
		t.Precision = p
		return t
	case MatrixType:
		t.Precision = p
		return t
	case SamplerType:
		t.Precision = p
		return t
	case ArrayType:
		t.Base = WithPrecision(t.Base, p)
		return t
	default:
		return t
	}
}

// Stage represents a shader stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}
