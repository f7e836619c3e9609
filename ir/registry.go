package ir

import (
	"fmt"
	"strconv"
)

// TypeRegistry collects the struct types a program uses so each one is
// declared exactly once, after the structs it depends on.
type TypeRegistry struct {
	structs []*StructType
	byKey   map[string]int
	keyBuf  []byte // reusable buffer for building type keys
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		structs: make([]*StructType, 0, 8),
		byKey:   make(map[string]int, 8),
		keyBuf:  make([]byte, 0, 64),
	}
}

// Register records every struct reachable from t, dependencies first.
// Structurally identical structs are recorded once. Two different structs
// sharing a name are an error.
func (r *TypeRegistry) Register(t Type) error {
	switch t := t.(type) {
	case ArrayType:
		return r.Register(t.Base)
	case *StructType:
		for _, m := range t.Members {
			if err := r.Register(m.Type); err != nil {
				return err
			}
		}
		key := r.normalizeType(t)
		if _, exists := r.byKey[key]; exists {
			return nil
		}
		for _, st := range r.structs {
			if st.Name == t.Name {
				return fmt.Errorf("struct %q declared with conflicting members", t.Name)
			}
		}
		r.byKey[key] = len(r.structs)
		r.structs = append(r.structs, t)
	}
	return nil
}

// Structs returns the registered structs in declaration order.
func (r *TypeRegistry) Structs() []*StructType {
	return r.structs
}

// Count returns the number of unique structs registered.
func (r *TypeRegistry) Count() int {
	return len(r.structs)
}

// normalizeType creates a key for a type based on its structure.
// Two structurally identical types produce the same key.
func (r *TypeRegistry) normalizeType(t Type) string {
	b := r.keyBuf[:0]

	switch t := t.(type) {
	case ScalarType:
		b = append(b, "scalar:"...)
		b = strconv.AppendUint(b, uint64(t.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Precision), 10)
		r.keyBuf = b
		return string(b)

	case VectorType:
		b = append(b, "vec:"...)
		b = strconv.AppendUint(b, uint64(t.Size), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Kind), 10)
		b = append(b, ':')
		b = strconv.AppendUint(b, uint64(t.Precision), 10)
		r.keyBuf = b
		return string(b)

	case MatrixType:
		return fmt.Sprintf("mat:%dx%d:%d:%d", t.Columns, t.Rows, t.Kind, t.Precision)

	case ArrayType:
		// Recursive call clobbers keyBuf, so build with string concat.
		return "array:" + r.normalizeType(t.Base) + ":" + strconv.FormatUint(uint64(t.Size), 10)

	case SamplerType:
		return fmt.Sprintf("sampler:%d:%d:%v:%v:%d", t.Dim, t.Kind, t.Arrayed, t.Shadow, t.Precision)

	case *StructType:
		key := "struct:" + t.Name
		for _, m := range t.Members {
			key += ":m(" + m.Name + "," + r.normalizeType(m.Type) + ")"
		}
		return key

	case VoidType:
		return "void"

	default:
		return fmt.Sprintf("unknown:%T", t)
	}
}
