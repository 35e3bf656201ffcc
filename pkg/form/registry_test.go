package form

import (
	"errors"
	"testing"
)

func TestRegistryNormalisesNames(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"FieldGroup", "fieldgroup", `Forms\FieldGroup`, " FieldGroup "} {
		if !reg.IsComposite(name) {
			t.Fatalf("expected %q to resolve to a composite type", name)
		}
	}
	if reg.IsComposite("TextField") {
		t.Fatalf("TextField is not composite")
	}
	if reg.IsComposite("TabSet") {
		t.Fatalf("tab sets are containers, not composite descriptors")
	}
	if reg.IsComposite("Missing") {
		t.Fatalf("unknown types are not composite")
	}
}

func TestRegistryCreate(t *testing.T) {
	reg := NewRegistry()

	field, err := reg.Create("TextField", Params{Name: "Title", Title: "Title", Value: "Hello"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if field.Name() != "Title" || field.Value() != "Hello" {
		t.Fatalf("unexpected field %s=%v", field.Name(), field.Value())
	}

	toggle, err := reg.Create("ToggleCompositeField", Params{Name: "ToggleMeta", Title: "Meta"})
	if err != nil {
		t.Fatalf("create toggle: %v", err)
	}
	if _, ok := toggle.(Composite); !ok {
		t.Fatalf("toggle composite must expose children")
	}

	if _, err := reg.Create("Nope", Params{}); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()
	def := TypeDef{Name: "Panel", Kind: KindComposite, New: func(p Params) Field {
		return NewCompositeField(p.Children)
	}}
	if err := reg.Register(def); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(def); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.Register(TypeDef{Name: "Empty"}); err == nil {
		t.Fatalf("expected missing constructor to fail")
	}
	if !reg.IsComposite(`App\Panel`) {
		t.Fatalf("expected custom composite to be recognised")
	}
	if !reg.Has("panel") {
		t.Fatalf("expected Has to normalise")
	}
}

func TestRegistryList(t *testing.T) {
	list := NewRegistry().List()
	if len(list) != 15 {
		t.Fatalf("expected 15 builtins, got %d: %v", len(list), list)
	}
	for idx := 1; idx < len(list); idx++ {
		if list[idx-1] > list[idx] {
			t.Fatalf("expected sorted list, got %v", list)
		}
	}
}
