package ir

import (
	"testing"
)

func TestTypeRegistry_NonStructsIgnored(t *testing.T) {
	registry := NewTypeRegistry()

	for _, typ := range []Type{Float, Vec4, Mat3, Sampler2D, Void, ArrayOf(Vec2, 4)} {
		if err := registry.Register(typ); err != nil {
			t.Fatalf("Register(%T) failed: %v", typ, err)
		}
	}

	if registry.Count() != 0 {
		t.Errorf("Expected 0 structs, got %d", registry.Count())
	}
}

func TestTypeRegistry_StructDeduplication(t *testing.T) {
	registry := NewTypeRegistry()

	light := &StructType{Name: "Light", Members: []StructMember{{Name: "color", Type: Vec3}}}
	same := &StructType{Name: "Light", Members: []StructMember{{Name: "color", Type: Vec3}}}

	for _, typ := range []Type{light, same, ArrayOf(light, 4)} {
		if err := registry.Register(typ); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	if registry.Count() != 1 {
		t.Errorf("Expected 1 struct, got %d", registry.Count())
	}
	if registry.Structs()[0] != light {
		t.Error("Expected the first registration to be kept")
	}
}

func TestTypeRegistry_DependenciesFirst(t *testing.T) {
	registry := NewTypeRegistry()

	material := &StructType{Name: "Material", Members: []StructMember{{Name: "albedo", Type: Vec4}}}
	light := &StructType{Name: "Light", Members: []StructMember{{Name: "color", Type: Vec3}}}
	scene := &StructType{Name: "Scene", Members: []StructMember{
		{Name: "lights", Type: ArrayOf(light, 4)},
		{Name: "material", Type: material},
	}}

	if err := registry.Register(scene); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	want := []string{"Light", "Material", "Scene"}
	got := registry.Structs()
	if len(got) != len(want) {
		t.Fatalf("Expected %d structs, got %d", len(want), len(got))
	}
	for i, st := range got {
		if st.Name != want[i] {
			t.Errorf("Structs()[%d] = %q, want %q", i, st.Name, want[i])
		}
	}
}

func TestTypeRegistry_NameConflict(t *testing.T) {
	registry := NewTypeRegistry()

	a := &StructType{Name: "S", Members: []StructMember{{Name: "x", Type: Float}}}
	b := &StructType{Name: "S", Members: []StructMember{{Name: "x", Type: WithPrecision(Float, PrecisionHigh)}}}

	if err := registry.Register(a); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := registry.Register(b); err == nil {
		t.Error("Expected an error for a conflicting struct named S")
	}
}
